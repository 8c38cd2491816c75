package views

import (
	"fmt"
	"strings"

	"allstars/internal/feed"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ContentProps is the read-only slice of interaction state a page
// needs to render. Mutations happen upstream in the feed model; the
// renderer only reflects them.
type ContentProps struct {
	Width     int
	ClipLines int

	Expanded bool

	Voted       bool
	VotedOption string

	Answered       bool
	AnsweredOption string

	// Fills holds the animated 0-100 fill position per option id,
	// present only once a vote has been cast.
	Fills map[string]float64

	// OptionScales holds the press-pulse scale per option id.
	OptionScales map[string]float64

	// ChartView is the rendered poll results chart, empty before a vote.
	ChartView string
}

// OptionZoneID names the mouse zone of one option row.
func OptionZoneID(pageID, optionID string) string {
	return fmt.Sprintf("opt_%s_%s", pageID, optionID)
}

// ReadMoreZoneID names the description toggle zone of one post.
func ReadMoreZoneID(postID string) string {
	return fmt.Sprintf("readmore_%s", postID)
}

// FillWidth maps a 0-100 fill position to rendered cells, clamped to
// the row. Monotonic in pct for a fixed row width.
func FillWidth(pct float64, rowWidth int) int {
	if rowWidth <= 0 {
		return 0
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(pct / 100 * float64(rowWidth))
}

// RenderPageContent maps a page variant to its visual block. Pure
// function of (page, props); tap targets are zone-marked for the
// controller.
func RenderPageContent(page feed.Page, postID string, p ContentProps) string {
	switch page.Type {
	case feed.PageNormal:
		return renderDescription(page, postID, p)
	case feed.PagePoll:
		return renderPoll(page, p)
	case feed.PageMCQ:
		return renderQuiz(page, p)
	}
	return ""
}

func renderDescription(page feed.Page, postID string, p ContentProps) string {
	wrapped := styles.Description.Width(p.Width).Render(page.Description)
	lines := strings.Split(wrapped, "\n")

	toggle := "Read more"
	if p.Expanded {
		toggle = "Show less"
	} else if len(lines) > p.ClipLines {
		lines = lines[:p.ClipLines]
		lines[len(lines)-1] += "…"
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(lines, "\n"),
		zone.Mark(ReadMoreZoneID(postID), styles.ReadMore.Render(toggle+" [d]")),
	)
}

func renderPoll(page feed.Page, p ContentProps) string {
	rows := []string{
		styles.CategoryChip.Render("Poll"),
		"",
		styles.Headline.Width(p.Width).Render(page.Question),
		"",
	}

	for i, opt := range page.Options {
		row := pollRow(page, opt, i, p)
		rows = append(rows, zone.Mark(OptionZoneID(page.ID, opt.ID), row))
	}

	if p.Voted && p.ChartView != "" {
		rows = append(rows, "", p.ChartView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func pollRow(page feed.Page, opt feed.Option, idx int, p ContentProps) string {
	rowW := p.Width - 4
	if rowW < 12 {
		rowW = 12
	}

	if !p.Voted {
		// Plain row before any vote.
		text := fmt.Sprintf(" %d. %s", idx+1, opt.Text)
		return pressNudge(opt.ID, p,
			lipgloss.NewStyle().
				Foreground(styles.White).
				Width(rowW).
				Render(text))
	}

	// After the vote every row carries a proportional horizontal fill.
	pct := fmt.Sprintf("%d%%", opt.Votes)
	label := " " + opt.Text
	gap := rowW - lipgloss.Width(label) - lipgloss.Width(pct) - 1
	if gap < 1 {
		gap = 1
	}
	row := label + strings.Repeat(" ", gap) + pct + " "

	fill := p.Fills[opt.ID]
	fw := FillWidth(fill, rowW)
	runes := []rune(row)
	if fw > len(runes) {
		fw = len(runes)
	}

	selected := opt.ID == p.VotedOption
	fillStyle := lipgloss.NewStyle().Background(styles.Charcoal).Foreground(styles.White)
	if selected {
		fillStyle = lipgloss.NewStyle().Background(styles.Gold).Foreground(lipgloss.Color("#000000")).Bold(true)
	}
	restStyle := lipgloss.NewStyle().Foreground(styles.White)
	if selected {
		restStyle = restStyle.Foreground(styles.GoldBright)
	}

	return fillStyle.Render(string(runes[:fw])) + restStyle.Render(string(runes[fw:]))
}

func renderQuiz(page feed.Page, p ContentProps) string {
	rows := []string{
		styles.CategoryChip.Render("Quiz"),
		"",
		styles.Headline.Width(p.Width).Render(page.Question),
		"",
	}

	for i, opt := range page.Options {
		row := quizRow(page, opt, i, p)
		rows = append(rows, zone.Mark(OptionZoneID(page.ID, opt.ID), row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func quizRow(page feed.Page, opt feed.Option, idx int, p ContentProps) string {
	rowW := p.Width - 4
	if rowW < 12 {
		rowW = 12
	}

	if !p.Answered {
		text := fmt.Sprintf(" %d. %s", idx+1, opt.Text)
		return pressNudge(opt.ID, p,
			lipgloss.NewStyle().Foreground(styles.White).Width(rowW).Render(text))
	}

	isCorrect := opt.ID == page.CorrectAnswer
	isSelected := opt.ID == p.AnsweredOption

	style := lipgloss.NewStyle().Foreground(styles.White).Width(rowW)
	glyph := ""
	switch {
	case isCorrect:
		// Correct row goes green whether or not it was picked.
		style = style.Background(styles.CorrectGreen).Foreground(lipgloss.Color("#000000")).Bold(true)
		glyph = " ✓"
	case isSelected:
		style = style.Background(styles.WrongRed).Foreground(styles.White).Bold(true)
		glyph = " ✗"
	default:
		style = style.Foreground(styles.Dim)
	}

	return style.Render(" " + opt.Text + glyph)
}

// pressNudge shifts a row right while its press pulse is in flight,
// the terminal stand-in for the scale-down effect.
func pressNudge(optionID string, p ContentProps, row string) string {
	if scale, ok := p.OptionScales[optionID]; ok && scale < 0.97 {
		return " " + row
	}
	return row
}
