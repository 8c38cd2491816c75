package views

import (
	"fmt"
	"strings"

	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// The indicator is purely derived from the continuous horizontal
// scroll offset: a ring-style "current/total" badge plus a dot row
// whose widths and brightness interpolate against page-width
// breakpoints, clamped at the sequence boundaries.

const (
	dotMinWidth = 1
	dotMaxWidth = 3
)

var (
	ringStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.GoldBright).
			Padding(0, 1)

	dotBright = lipgloss.NewStyle().Foreground(styles.GoldBright).Bold(true)
	dotMid    = lipgloss.NewStyle().Foreground(styles.Gold)
	dotFaint  = lipgloss.NewStyle().Foreground(styles.Charcoal)
)

// dotProximity returns, per dot, how close the scroll offset is to
// that dot's page: 1 at the page center, falling linearly to 0 one
// page-width away, clamped to [0, 1].
func dotProximity(total int, scrollX float64, pageWidth int) []float64 {
	out := make([]float64, total)
	if pageWidth <= 0 {
		return out
	}
	for i := range out {
		center := float64(i * pageWidth)
		d := scrollX - center
		if d < 0 {
			d = -d
		}
		t := 1 - d/float64(pageWidth)
		if t < 0 {
			t = 0
		}
		if t > 1 {
			t = 1
		}
		out[i] = t
	}
	return out
}

// DotWidths maps the proximity of each dot to a rendered cell width in
// [dotMinWidth, dotMaxWidth].
func DotWidths(total int, scrollX float64, pageWidth int) []int {
	prox := dotProximity(total, scrollX, pageWidth)
	widths := make([]int, total)
	for i, t := range prox {
		widths[i] = dotMinWidth + int(t*float64(dotMaxWidth-dotMinWidth)+0.5)
	}
	return widths
}

// RenderIndicator renders the "current/total" ring and the dot row.
func RenderIndicator(current, total int, scrollX float64, pageWidth int) string {
	ring := ringStyle.Render(fmt.Sprintf("%d/%d", current+1, total))

	prox := dotProximity(total, scrollX, pageWidth)
	widths := DotWidths(total, scrollX, pageWidth)

	dots := make([]string, total)
	for i := range dots {
		dot := strings.Repeat("━", widths[i])
		switch {
		case prox[i] > 0.66:
			dots[i] = dotBright.Render(dot)
		case prox[i] > 0.33:
			dots[i] = dotMid.Render(dot)
		default:
			dots[i] = dotFaint.Render(dot)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, ring, "  ", strings.Join(dots, " "))
}
