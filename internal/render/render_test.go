package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilekit/internal/profile"
)

func TestBar(t *testing.T) {
	tests := []struct {
		percent    string
		wantFilled int
	}{
		{"50", 15},
		{"100", 30},
		{"250", 30},
		{"0", 0},
		{"-5", 0},
		{"abc", 0},
		{"", 0},
		{"46.4%", 14},
	}

	for _, tt := range tests {
		t.Run(tt.percent, func(t *testing.T) {
			bar := Bar(tt.percent)
			assert.Equal(t, tt.wantFilled, strings.Count(bar, "█"))
			assert.Equal(t, BarCells-tt.wantFilled, strings.Count(bar, "░"))
		})
	}
}

func TestProfile(t *testing.T) {
	doc := profile.DefaultProfile()

	var buf bytes.Buffer
	require.NoError(t, Profile(&buf, doc, profile.Focus{ActiveTab: profile.TabGrid, SelectedPostID: "p2"}))
	out := buf.String()

	assert.Contains(t, out, "kimberly.loaiza")
	assert.Contains(t, out, "KIM LOAIZA")
	assert.Contains(t, out, "37.5 mill.")
	assert.Contains(t, out, "Juanito 🦁")
	assert.Contains(t, out, "Concert vibe")
	assert.Contains(t, out, "pinned")
	assert.NotContains(t, out, "Dance trend")
}

func TestProfile_ReelsTab(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Profile(&buf, profile.DefaultProfile(), profile.Focus{ActiveTab: profile.TabReels}))

	assert.Contains(t, buf.String(), "Dance trend")
	assert.NotContains(t, buf.String(), "Concert vibe")
}

func TestStats(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Interactions(&buf, profile.DefaultInteractions()))
	require.NoError(t, Views(&buf, profile.DefaultViews()))
	require.NoError(t, Audience(&buf, profile.DefaultAudience()))
	out := buf.String()

	assert.Contains(t, out, "7 de dic - 5 de ene")
	assert.Contains(t, out, "Culiacán")
	assert.Contains(t, out, "740 mil")
	assert.Contains(t, out, "35-44")
}

func TestStats_UnparseablePercent(t *testing.T) {
	a := profile.DefaultAudience()
	a.WomenPercent = "mucho"

	var buf bytes.Buffer
	require.NoError(t, Audience(&buf, a))
	assert.Contains(t, buf.String(), "mucho%")
}
