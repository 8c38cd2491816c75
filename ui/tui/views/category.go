package views

import (
	"fmt"

	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	ContinueZoneID = "category_continue"
	SkipZoneID     = "category_skip"
)

// TagZoneID names the mouse zone of one interest tag.
func TagZoneID(tag string) string {
	return fmt.Sprintf("tag_%s", tag)
}

// CategoryView is the multi-select interest screen. Continue is only
// actionable once at least one tag is selected.
type CategoryView struct {
	Tags     []string
	Selected map[string]bool
	Cursor   int
}

func (v CategoryView) Render(s state.AppState, props ViewProps) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Headline.Render("Select your Interest"),
		"   ",
		zone.Mark(SkipZoneID, styles.Subtle.Render("Skip [s]")),
	)
	subtitle := styles.Subtle.Render("Pick at least one or more...")

	var cards []string
	for i, tag := range v.Tags {
		style := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.Charcoal).
			Foreground(styles.White).
			Width(18).
			Align(lipgloss.Center)

		if v.Selected[tag] {
			style = style.BorderForeground(styles.Gold).Foreground(styles.GoldBright).Bold(true)
		}
		if i == v.Cursor {
			style = style.BorderForeground(styles.GoldBright)
		}

		label := tag
		if v.Selected[tag] {
			label = "✓ " + tag
		}
		cards = append(cards, zone.Mark(TagZoneID(tag), style.Render(label)))
	}

	// Two cards per row.
	var rows []string
	for i := 0; i < len(cards); i += 2 {
		end := min(i+2, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	button := styles.ButtonDisabled.Render("Continue")
	if countSelected(v.Selected) > 0 {
		button = styles.Button.Render("Continue [enter]")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		subtitle,
		"",
		grid,
		"",
		zone.Mark(ContinueZoneID, button),
		"",
		styles.Hint.Render("[↑/↓] move • [space] toggle • [enter] continue"),
	)

	return zone.Scan(lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body))
}

func countSelected(selected map[string]bool) int {
	n := 0
	for _, on := range selected {
		if on {
			n++
		}
	}
	return n
}
