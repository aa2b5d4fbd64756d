package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilekit/internal/profile"
)

func ids(posts []profile.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestMutations_MissingIDIsNoOp(t *testing.T) {
	doc := profile.DefaultProfile()

	tests := []struct {
		name   string
		mutate func(profile.ProfileData) profile.ProfileData
	}{
		{"SetHighlightCover", func(d profile.ProfileData) profile.ProfileData {
			return profile.SetHighlightCover(d, "99", "blob:x")
		}},
		{"SetHighlightTitle", func(d profile.ProfileData) profile.ProfileData {
			return profile.SetHighlightTitle(d, "99", "nope")
		}},
		{"ReplacePostMedia", func(d profile.ProfileData) profile.ProfileData {
			return profile.ReplacePostMedia(d, "zz", "blob:x", profile.MediaImage)
		}},
		{"DeletePost", func(d profile.ProfileData) profile.ProfileData {
			return profile.DeletePost(d, "zz")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, doc, tt.mutate(doc))
		})
	}
}

func TestDeletePost_DefaultP1(t *testing.T) {
	doc := profile.DefaultProfile()

	got := profile.DeletePost(doc, "p1")

	require.Len(t, got.Posts, 11)
	assert.Equal(t, "p2", got.Posts[0].ID)
	assert.True(t, got.Posts[0].Pinned(), "p2 must remain pinned")
	assert.Equal(t, doc.Reels, got.Reels)
	assert.Equal(t, doc.Tagged, got.Tagged)

	assert.Len(t, doc.Posts, 12, "input must not be modified")
	assert.Equal(t, "p1", doc.Posts[0].ID)
}

func TestDeletePost_RemovesFromEverySequence(t *testing.T) {
	doc := profile.DefaultProfile()
	shared := profile.Post{ID: "dup", ImageURL: "u", Type: profile.MediaImage}
	doc.Posts = append(doc.Posts, shared)
	doc.Reels = append([]profile.Post{shared}, doc.Reels...)
	doc.Tagged = append(doc.Tagged, shared)

	got := profile.DeletePost(doc, "dup")

	for _, seq := range []profile.Sequence{profile.SeqPosts, profile.SeqReels, profile.SeqTagged} {
		assert.NotContains(t, ids(got.Items(seq)), "dup", "sequence %s", seq)
	}
	assert.Equal(t, profile.DefaultProfile(), got)
}

func TestReplacePostMedia_R3(t *testing.T) {
	doc := profile.DefaultProfile()

	got := profile.ReplacePostMedia(doc, "r3", "blob:xyz", profile.MediaVideo)

	want := profile.DefaultProfile()
	want.Reels[2].ImageURL = "blob:xyz"
	want.Reels[2].Type = profile.MediaVideo
	assert.Equal(t, want, got)

	assert.Equal(t, "https://picsum.photos/id/35/300/533", doc.Reels[2].ImageURL, "input must not be modified")
}

func TestReplacePostMedia_ChangesType(t *testing.T) {
	doc := profile.DefaultProfile()

	got := profile.ReplacePostMedia(doc, "p4", "blob:clip", profile.MediaVideo)

	assert.Equal(t, profile.MediaVideo, got.Posts[3].Type)
	assert.Equal(t, "blob:clip", got.Posts[3].ImageURL)
	assert.Equal(t, doc.Posts[3].Caption, got.Posts[3].Caption)
	assert.Equal(t, doc.Posts[3].Likes, got.Posts[3].Likes)
}

// ReplacePostMedia only touches the first sequence containing the id while
// DeletePost touches all of them. Both behaviours are relied upon.
func TestReplaceAndDelete_Asymmetry(t *testing.T) {
	doc := profile.DefaultProfile()
	doc.Reels = append(doc.Reels, profile.Post{ID: "p3", ImageURL: "reel-p3", Type: profile.MediaVideo})
	doc.Tagged = append(doc.Tagged, profile.Post{ID: "p3", ImageURL: "tagged-p3", Type: profile.MediaImage})

	replaced := profile.ReplacePostMedia(doc, "p3", "blob:new", profile.MediaImage)
	assert.Equal(t, "blob:new", replaced.Posts[2].ImageURL)
	assert.Equal(t, doc.Reels, replaced.Reels, "reels must be untouched")
	assert.Equal(t, doc.Tagged, replaced.Tagged, "tagged must be untouched")

	deleted := profile.DeletePost(doc, "p3")
	assert.NotContains(t, ids(deleted.Posts), "p3")
	assert.NotContains(t, ids(deleted.Reels), "p3")
	assert.NotContains(t, ids(deleted.Tagged), "p3")

	onlyInReels := profile.DefaultProfile()
	onlyInReels.Tagged = append(onlyInReels.Tagged, profile.Post{ID: "r1", ImageURL: "tagged-r1"})
	got := profile.ReplacePostMedia(onlyInReels, "r1", "blob:r", profile.MediaVideo)
	assert.Equal(t, "blob:r", got.Reels[0].ImageURL)
	assert.Equal(t, "tagged-r1", got.Tagged[12].ImageURL)
}

func TestSetHighlightTitle_Idempotent(t *testing.T) {
	doc := profile.DefaultProfile()

	once := profile.SetHighlightTitle(doc, "2", "Tour 2025")
	twice := profile.SetHighlightTitle(once, "2", "Tour 2025")

	assert.Equal(t, once, twice)
	assert.Equal(t, "Tour 2025", once.Highlights[1].Title)
	assert.Equal(t, "K I M A x2 🦋", doc.Highlights[1].Title)
}

func TestSetHighlightCover(t *testing.T) {
	doc := profile.DefaultProfile()

	got := profile.SetHighlightCover(doc, "4", "blob:cover")

	assert.Equal(t, "blob:cover", got.Highlights[3].CoverURL)
	assert.Equal(t, "#NoSeasCelo", got.Highlights[3].Title)
	assert.Equal(t, "https://picsum.photos/id/237/100/100", doc.Highlights[3].CoverURL)
}

func TestUpdateProfile_ReplacesWholesale(t *testing.T) {
	doc := profile.DefaultProfile()
	next := profile.ProfileData{Username: "someone.else", Posts: []profile.Post{{ID: "x1"}}}

	got := profile.UpdateProfile(doc, next)
	assert.Equal(t, next, got)
	assert.Empty(t, got.Highlights, "no field merge with the previous document")

	next.Posts[0].ID = "changed"
	assert.Equal(t, "x1", got.Posts[0].ID, "result must not alias the argument")
}

func TestSetBioAndProfilePic(t *testing.T) {
	doc := profile.DefaultProfile()

	got := profile.SetProfilePic(profile.SetBio(doc, "nueva bio"), "blob:avatar")

	assert.Equal(t, "nueva bio", got.Bio)
	assert.Equal(t, "blob:avatar", got.ProfilePicURL)
	assert.Equal(t, profile.DefaultProfile().Bio, doc.Bio)
}

func TestMutations_DoNotShareModifiedSlices(t *testing.T) {
	doc := profile.DefaultProfile()

	got := profile.ReplacePostMedia(doc, "p1", "blob:a", profile.MediaImage)
	*got.Posts[1].IsPinned = false

	assert.True(t, doc.Posts[1].Pinned(), "pinned flag shared between snapshots")
}
