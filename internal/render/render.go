// Package render prints profile documents and statistics to a terminal.
package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"profilekit/internal/profile"
)

// BarCells is the width in cells of a full (100%) percentage bar.
const BarCells = 30

var (
	colorAccent = lipgloss.Color("#E1306C")
	colorMuted  = lipgloss.Color("#8E8E8E")
	colorBar    = lipgloss.Color("#833AB4")
)

var styles = struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Bar     lipgloss.Style
	Track   lipgloss.Style
	Box     lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
	Heading: lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(colorMuted),
	Bar:     lipgloss.NewStyle().Foreground(colorBar),
	Track:   lipgloss.NewStyle().Foreground(colorMuted),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1),
}

// Bar draws a horizontal bar for a percent display string. Text that does
// not parse as a number draws an empty bar.
func Bar(percent string) string {
	filled := int(math.Round(profile.BarWidth(percent) / 100 * BarCells))
	return styles.Bar.Render(strings.Repeat("█", filled)) +
		styles.Track.Render(strings.Repeat("░", BarCells-filled))
}

// Profile writes the header, bio, highlights and the grid selected by focus.
func Profile(w io.Writer, doc profile.ProfileData, focus profile.Focus) error {
	var b strings.Builder

	name := doc.Username
	if doc.IsVerified {
		name += " ✔"
	}
	fmt.Fprintln(&b, styles.Title.Render(name))
	fmt.Fprintf(&b, "%s %s\n", styles.Heading.Render(doc.DisplayName), doc.Flag)
	fmt.Fprintf(&b, "%d posts · %s followers · %d following\n", doc.PostsCount, doc.FollowersCount, doc.FollowingCount)
	if doc.Category != "" {
		fmt.Fprintln(&b, styles.Muted.Render(doc.Category))
	}
	if doc.Bio != "" {
		fmt.Fprintln(&b, doc.Bio)
	}
	if doc.LinkText != "" {
		fmt.Fprintf(&b, "🔗 %s\n", doc.LinkText)
	}
	if doc.MutualFollowers.Text != "" {
		fmt.Fprintln(&b, styles.Muted.Render(doc.MutualFollowers.Text))
	}

	if len(doc.Highlights) > 0 {
		titles := make([]string, 0, len(doc.Highlights))
		for _, h := range doc.Highlights {
			titles = append(titles, fmt.Sprintf("[%s] %s", h.ID, h.Title))
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", styles.Heading.Render("Highlights"), strings.Join(titles, "  "))
	}

	seq := sequenceForTab(focus.ActiveTab)
	fmt.Fprintf(&b, "\n%s\n", styles.Heading.Render(strings.ToUpper(string(seq))))
	for _, p := range doc.Items(seq) {
		marker := " "
		if p.ID == focus.SelectedPostID {
			marker = ">"
		}
		flags := string(p.Type)
		if p.Pinned() {
			flags += ", pinned"
		}
		fmt.Fprintf(&b, "%s %-4s %-24s %8d likes  %s\n", marker, p.ID, p.Caption, p.Likes, styles.Muted.Render("("+flags+")"))
	}

	_, err := io.WriteString(w, styles.Box.Render(strings.TrimRight(b.String(), "\n"))+"\n")
	return err
}

func sequenceForTab(tab profile.Tab) profile.Sequence {
	switch tab {
	case profile.TabReels:
		return profile.SeqReels
	case profile.TabTagged:
		return profile.SeqTagged
	default:
		return profile.SeqPosts
	}
}

// Interactions writes the interactions snapshot.
func Interactions(w io.Writer, s profile.InteractionsStats) error {
	var b strings.Builder
	fmt.Fprintln(&b, styles.Title.Render("Interactions"))
	fmt.Fprintln(&b, styles.Muted.Render(s.DateRange))
	fmt.Fprintf(&b, "%s interactions\n", s.Interactions)
	writeBar(&b, "Followers", s.FollowersPercent)
	writeBar(&b, "Non-followers", s.NonFollowersPercent)
	writeBar(&b, "Publications", s.PublicationsPercent)
	return flush(w, &b)
}

// Views writes the views snapshot.
func Views(w io.Writer, s profile.ViewsStats) error {
	var b strings.Builder
	fmt.Fprintln(&b, styles.Title.Render("Views"))
	fmt.Fprintln(&b, styles.Muted.Render(s.DateRange))
	writeBar(&b, "Stories", s.StoriesPercent)
	writeBar(&b, "Posts", s.PostsPercent)
	writeBar(&b, "Reels", s.ReelsPercent)

	if len(s.TopContent) > 0 {
		fmt.Fprintf(&b, "\n%s\n", styles.Heading.Render("Top content"))
		for _, c := range s.TopContent {
			fmt.Fprintf(&b, "  #%d  %-10s %s\n", c.ID, c.Views, styles.Muted.Render(c.Date))
		}
	}
	if len(s.Cities) > 0 {
		fmt.Fprintf(&b, "\n%s\n", styles.Heading.Render("Top cities"))
		for _, c := range s.Cities {
			writeBar(&b, c.Name, c.Percent)
		}
	}
	return flush(w, &b)
}

// Audience writes the audience snapshot.
func Audience(w io.Writer, s profile.AudienceStats) error {
	var b strings.Builder
	fmt.Fprintln(&b, styles.Title.Render("Audience"))
	writeBar(&b, "Women", s.WomenPercent)
	writeBar(&b, "Men", s.MenPercent)
	writeShares(&b, "Age ranges", s.Ages)
	writeShares(&b, "Countries", s.Countries)
	writeShares(&b, "Discovery", s.Discovery)
	return flush(w, &b)
}

func writeShares(b *strings.Builder, title string, shares []profile.Share) {
	if len(shares) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s\n", styles.Heading.Render(title))
	for _, s := range shares {
		writeBar(b, s.Label, s.Percent)
	}
}

func writeBar(b *strings.Builder, label, percent string) {
	fmt.Fprintf(b, "  %-14s %s %s%%\n", label, Bar(percent), percent)
}

func flush(w io.Writer, b *strings.Builder) error {
	_, err := io.WriteString(w, b.String())
	return err
}
