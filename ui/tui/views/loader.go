package views

import (
	"strings"

	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// SplashView is the full-screen loader shown for the fixed delay after
// the feed mounts, before any post renders.
type SplashView struct{}

func (v SplashView) Render(s state.AppState, props ViewProps) string {
	logo := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.Gold).
		Render("ALL STARS")

	body := lipgloss.JoinVertical(lipgloss.Center,
		logo,
		"",
		props.SpinnerView+" Loading your feed...",
	)

	return lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body)
}

// PostLoaderView is the per-post shimmer placeholder shown until the
// post's first-page image probe reports success.
type PostLoaderView struct{}

func (v PostLoaderView) Render(s state.AppState, props ViewProps) string {
	w := props.Width
	h := props.Height
	if w < 1 {
		w = 1
	}
	if h < 4 {
		h = 4
	}

	shimmerA := lipgloss.NewStyle().Foreground(styles.Charcoal)
	shimmerB := lipgloss.NewStyle().Foreground(lipgloss.Color("#2A2A2A"))

	var b strings.Builder
	for row := 0; row < h-2; row++ {
		line := strings.Repeat("░", w)
		if row%2 == 0 {
			b.WriteString(shimmerA.Render(line))
		} else {
			b.WriteString(shimmerB.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(w, lipgloss.Center, props.SpinnerView+" "+styles.Subtle.Render("Loading story...")))

	return b.String()
}
