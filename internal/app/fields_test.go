package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilekit/internal/profile"
)

func TestWithHeaderField(t *testing.T) {
	tests := []struct {
		field   string
		value   string
		check   func(t *testing.T, doc profile.ProfileData)
		wantErr bool
	}{
		{field: "username", value: "kim", check: func(t *testing.T, d profile.ProfileData) { assert.Equal(t, "kim", d.Username) }},
		{field: "followersCount", value: "40 mill.", check: func(t *testing.T, d profile.ProfileData) { assert.Equal(t, "40 mill.", d.FollowersCount) }},
		{field: "mutualFollowers.text", value: "nadie", check: func(t *testing.T, d profile.ProfileData) { assert.Equal(t, "nadie", d.MutualFollowers.Text) }},
		{field: "postsCount", value: " 700 ", check: func(t *testing.T, d profile.ProfileData) { assert.Equal(t, 700, d.PostsCount) }},
		{field: "isVerified", value: "false", check: func(t *testing.T, d profile.ProfileData) { assert.False(t, d.IsVerified) }},
		{field: "followingCount", value: "many", wantErr: true},
		{field: "isVerified", value: "maybe", wantErr: true},
		{field: "posts", value: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.field+"="+tt.value, func(t *testing.T) {
			orig := profile.DefaultProfile()
			got, err := WithHeaderField(orig, tt.field, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, orig, got)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
			assert.Equal(t, profile.DefaultProfile(), orig, "input must not change")
		})
	}
}

func TestHeaderFieldNames(t *testing.T) {
	names := HeaderFieldNames()
	assert.Contains(t, names, "displayName")
	assert.IsIncreasing(t, names)
}
