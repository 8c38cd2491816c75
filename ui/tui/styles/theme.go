package styles

import "github.com/charmbracelet/lipgloss"

var (
	Gold       = lipgloss.Color("#FFD205")
	GoldBright = lipgloss.Color("#FFD700")
	Ink        = lipgloss.Color("#1A1A1A")
	Charcoal   = lipgloss.Color("#383838")
	Dim        = lipgloss.Color("#696969")
	White      = lipgloss.Color("#FCFCFC")

	CorrectGreen      = lipgloss.Color("#7BE300")
	CorrectGreenLight = lipgloss.Color("#C7FE60")
	WrongRed          = lipgloss.Color("#FF2E00")
	WrongRedLight     = lipgloss.Color("#FF6201")

	CategoryChip = lipgloss.NewStyle().
			Background(Gold).
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Padding(0, 1)

	Headline = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	Description = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DDDDDD"))

	ReadMore = lipgloss.NewStyle().
			Foreground(GoldBright).
			Bold(true)

	Button = lipgloss.NewStyle().
		Background(Gold).
		Foreground(lipgloss.Color("#000000")).
		Bold(true).
		Padding(0, 3)

	ButtonDisabled = lipgloss.NewStyle().
			Background(Charcoal).
			Foreground(Dim).
			Padding(0, 3)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Charcoal).
			Padding(0, 1)

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888"))

	Hint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555555"))
)
