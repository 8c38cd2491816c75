package views

import (
	"strings"

	"allstars/internal/feed"
	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	ShareConfirmZoneID = "share_confirm"
	ShareCloseZoneID   = "share_close"
)

// ShareModalView is the bottom sheet opened by the send icon. Offset
// is the animated vertical displacement: 0 fully open, the viewport
// height when closed.
type ShareModalView struct {
	Post   feed.Post
	Offset int
}

func (v ShareModalView) Render(s state.AppState, props ViewProps) string {
	first := v.Post.FirstPage()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		zone.Mark(ShareCloseZoneID, styles.Subtle.Render("✕ [esc]")),
		"  ",
		styles.Headline.Render("Share"),
	)

	desc := first.Description
	if lipgloss.Width(desc) > 0 {
		desc = styles.Description.Width(props.Width - 12).Render(desc)
		lines := strings.Split(desc, "\n")
		if len(lines) > 3 {
			lines = lines[:3]
			lines[2] += "…"
		}
		desc = strings.Join(lines, "\n")
	}

	preview := styles.CardStyle.Width(props.Width - 8).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			styles.CategoryChip.Render(v.Post.Category),
			styles.Headline.Width(props.Width-12).Render(v.Post.Headline),
			desc,
			styles.Hint.Render("⛶ "+first.Image),
		))

	button := zone.Mark(ShareConfirmZoneID, styles.Button.Render("Share [enter]"))

	sheet := lipgloss.NewStyle().
		Width(props.Width).
		Border(lipgloss.RoundedBorder(), true, false, false, false).
		BorderForeground(styles.Charcoal).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			preview,
			"",
			button,
		))

	// Slide up from the bottom edge.
	pad := v.Offset
	topGap := props.Height - lipgloss.Height(sheet) - pad
	if topGap < 0 {
		topGap = 0
	}
	blank := strings.Repeat("\n", topGap)

	return zone.Scan(blank + sheet)
}
