package views

import (
	"strings"

	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	MenuProfileZoneID = "menu_profile"
	MenuCloseZoneID   = "menu_close"
)

// SlideMenuView is the right-edge overlay panel. Offset is the
// animated horizontal displacement in cells: 0 when fully open, the
// viewport width when closed.
type SlideMenuView struct {
	Offset  int
	Phone   string
	Entries []string
	Cursor  int
}

func DefaultMenuEntries() []string {
	return []string{"News", "Quiz", "Polls", "Bookmarks"}
}

// OtherEntries is the secondary block under the main rows.
func OtherEntries() []string {
	return []string{"FAQs", "About us", "Privacy Policy", "Terms and Conditions"}
}

func (v SlideMenuView) Render(s state.AppState, props ViewProps) string {
	panelWidth := props.Width - v.Offset
	if panelWidth < 1 {
		return ""
	}

	phone := v.Phone
	if phone == "" {
		phone = "not signed in"
	}

	profile := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center,
			lipgloss.NewStyle().Foreground(styles.Gold).Render("◉ "),
			styles.Headline.Render("Profile"),
			"  ",
			zone.Mark(MenuCloseZoneID, styles.Subtle.Render("close [esc]")),
		),
		styles.Subtle.Render(phone),
		zone.Mark(MenuProfileZoneID, styles.ReadMore.Render("Edit profile [p]")),
	)

	trending := lipgloss.JoinVertical(lipgloss.Left,
		styles.Headline.Render("🔥 Trending"),
		styles.Subtle.Render("El Clásico build-up, transfer window latest"),
	)

	var rows []string
	for i, entry := range v.Entries {
		style := lipgloss.NewStyle().Foreground(styles.White)
		prefix := "  "
		if i == v.Cursor {
			style = style.Foreground(styles.GoldBright).Bold(true)
			prefix = "▸ "
		}
		rows = append(rows, style.Render(prefix+entry+" ›"))
	}

	var others []string
	others = append(others, styles.Subtle.Render("OTHERS"))
	for _, entry := range OtherEntries() {
		others = append(others, lipgloss.NewStyle().Foreground(styles.Dim).Render("  "+entry))
	}
	others = append(others, lipgloss.NewStyle().Foreground(styles.WrongRed).Render("  Log Out"))

	panel := lipgloss.NewStyle().
		Width(panelWidth).
		Height(props.Height).
		Background(lipgloss.Color("#0D0D0D")).
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			profile,
			"",
			trending,
			"",
			lipgloss.JoinVertical(lipgloss.Left, rows...),
			"",
			lipgloss.JoinVertical(lipgloss.Left, others...),
		))

	// The panel slides in from the right; the uncovered strip stays dark.
	if v.Offset > 0 {
		gutterLine := strings.Repeat(" ", v.Offset)
		gutter := strings.TrimSuffix(strings.Repeat(gutterLine+"\n", max(props.Height, 1)), "\n")
		return zone.Scan(lipgloss.JoinHorizontal(lipgloss.Top, gutter, panel))
	}
	return zone.Scan(panel)
}
