package views

import (
	"fmt"
	"time"

	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const SaveProfileZoneID = "profile_save"

// DayCell is one slot in the 6x7 calendar grid; cells outside the
// displayed month spill in from the previous and next months.
type DayCell struct {
	Day          int
	CurrentMonth bool
}

// CalendarGrid lays out the 42-cell month grid, Monday-first.
func CalendarGrid(month time.Time) []DayCell {
	year, m, _ := month.Date()
	first := time.Date(year, m, 1, 0, 0, 0, 0, month.Location())

	// Monday-first offset of the 1st.
	lead := (int(first.Weekday()) + 6) % 7
	daysIn := first.AddDate(0, 1, -1).Day()
	prevDays := first.AddDate(0, 0, -1).Day()

	cells := make([]DayCell, 0, 42)
	for i := lead - 1; i >= 0; i-- {
		cells = append(cells, DayCell{Day: prevDays - i})
	}
	for d := 1; d <= daysIn; d++ {
		cells = append(cells, DayCell{Day: d, CurrentMonth: true})
	}
	for d := 1; len(cells) < 42; d++ {
		cells = append(cells, DayCell{Day: d})
	}
	return cells
}

// DatePickerMode selects which pane of the picker is active.
type DatePickerMode int

const (
	PickDay DatePickerMode = iota
	PickMonth
	PickYear
)

// ProfileView is the local profile form plus the calendar date picker.
type ProfileView struct {
	NameInput  string
	EmailInput string
	Gender     string
	DOB        time.Time

	PickerOpen   bool
	PickerMode   DatePickerMode
	PickerMonth  time.Time
	PickerCursor int // index into the 42-cell grid when picking a day

	Focus int // which form field has focus
	Saved bool
}

var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (v ProfileView) Render(s state.AppState, props ViewProps) string {
	title := styles.Headline.Render("Profile")

	dob := "not set"
	if !v.DOB.IsZero() {
		dob = v.DOB.Format("02-01-2006")
	}
	gender := v.Gender
	if gender == "" {
		gender = "not set"
	}

	field := func(idx int, label, value string) string {
		l := styles.Subtle.Render(label)
		if idx == v.Focus {
			l = styles.ReadMore.Render("▸ " + label)
		}
		return lipgloss.JoinVertical(lipgloss.Left, l, value)
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		field(0, "Full Name", v.NameInput),
		"",
		field(1, "Email", v.EmailInput),
		"",
		field(2, "Date of Birth [enter opens picker]", styles.Description.Render(dob)),
		"",
		field(3, "Gender [←/→]", styles.Description.Render(gender)),
	)

	save := zone.Mark(SaveProfileZoneID, styles.Button.Render("Save [ctrl+s]"))
	status := ""
	if v.Saved {
		status = styles.ReadMore.Render("Saved ✓")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		form,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, save, "  ", status),
		"",
		styles.Hint.Render("[tab] next field • [esc] back to feed"),
	)

	if v.PickerOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "   ", v.renderPicker())
	}

	return zone.Scan(lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body))
}

func (v ProfileView) renderPicker() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Subtle.Render("‹ [h] "),
		styles.Headline.Render(v.PickerMonth.Format("Jan 2006")),
		styles.Subtle.Render(" [l] ›"),
	)

	var body string
	switch v.PickerMode {
	case PickMonth:
		body = v.renderMonthPane()
	case PickYear:
		body = v.renderYearPane()
	default:
		body = v.renderDayPane()
	}

	return styles.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		header,
		body,
		styles.Hint.Render("[m] months • [y] years • [enter] pick"),
	))
}

func (v ProfileView) renderDayPane() string {
	var head string
	for _, wd := range weekDays {
		head += fmt.Sprintf("%4s", wd)
	}

	cells := CalendarGrid(v.PickerMonth)
	rows := []string{styles.Subtle.Render(head)}
	for week := 0; week < 6; week++ {
		var row string
		for d := 0; d < 7; d++ {
			idx := week*7 + d
			cell := cells[idx]
			text := fmt.Sprintf("%4d", cell.Day)

			style := lipgloss.NewStyle().Foreground(styles.White)
			if !cell.CurrentMonth {
				style = style.Foreground(styles.Charcoal)
			}
			if idx == v.PickerCursor {
				style = style.Background(styles.Gold).Foreground(lipgloss.Color("#000000")).Bold(true)
			}
			row += style.Render(text)
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v ProfileView) renderMonthPane() string {
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	var rows []string
	for i := 0; i < 12; i += 4 {
		var row string
		for j := i; j < i+4; j++ {
			style := lipgloss.NewStyle().Foreground(styles.White)
			if time.Month(j+1) == v.PickerMonth.Month() {
				style = style.Foreground(styles.GoldBright).Bold(true)
			}
			row += style.Render(fmt.Sprintf("%5s", months[j]))
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v ProfileView) renderYearPane() string {
	year := v.PickerMonth.Year()
	var rows []string
	for y := year - 4; y <= year+4; y++ {
		style := lipgloss.NewStyle().Foreground(styles.White)
		if y == year {
			style = style.Foreground(styles.GoldBright).Bold(true)
		}
		rows = append(rows, style.Render(fmt.Sprintf("%d", y)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
