package components

import (
	"allstars/internal/feed"
	"allstars/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
)

// PollChart renders the vote split of an answered poll page as a
// compact horizontal bar chart under the option rows.
type PollChart struct {
	Chart    barchart.Model
	Width    int
	Height   int
	hasVotes bool
}

var _ Component = (*PollChart)(nil)

func NewPollChart(width, height int) *PollChart {
	bc := barchart.New(width, height,
		barchart.WithHorizontalBars(),
		barchart.WithMaxValue(100),
	)
	return &PollChart{
		Chart:  bc,
		Width:  width,
		Height: height,
	}
}

// SetResults replaces the chart data with one bar per option. The
// selected option's bar renders in the gold brand color.
func (c *PollChart) SetResults(options []feed.Option, selectedID string) {
	c.Chart.Clear()
	for _, opt := range options {
		style := lipgloss.NewStyle().Foreground(styles.Dim)
		if opt.ID == selectedID {
			style = lipgloss.NewStyle().Foreground(styles.GoldBright)
		}
		c.Chart.Push(barchart.BarData{
			Label: opt.Text,
			Values: []barchart.BarValue{
				{Name: opt.Text, Value: float64(opt.Votes), Style: style},
			},
		})
	}
	c.hasVotes = true
}

func (c *PollChart) View() string {
	if !c.hasVotes {
		return ""
	}
	c.Chart.Draw()
	return c.Chart.View()
}
