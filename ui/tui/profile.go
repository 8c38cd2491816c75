package tui

import (
	"strings"
	"time"

	"allstars/internal/session"
	"allstars/ui/tui/state"
	"allstars/ui/tui/views"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const (
	focusName = iota
	focusEmail
	focusDOB
	focusGender
	focusCount
)

var genders = []string{"", "Male", "Female", "Other"}

// profileModel is the local profile form: name, email, gender and a
// calendar date-of-birth picker. Saving writes to the session store;
// nothing leaves the process.
type profileModel struct {
	name  textinput.Model
	email textinput.Model

	genderIdx int
	dob       time.Time
	focus     int
	saved     bool

	pickerOpen   bool
	pickerMode   views.DatePickerMode
	pickerMonth  time.Time
	pickerCursor int

	sess session.Store
}

func newProfileModel(sess session.Store) *profileModel {
	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 48
	name.Width = 28
	name.Focus()

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 64
	email.Width = 28

	m := &profileModel{
		name:        name,
		email:       email,
		pickerMonth: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		sess:        sess,
	}
	m.load()
	return m
}

// load seeds the form from whatever was saved before, so reopening the
// screen round-trips.
func (m *profileModel) load() {
	p := m.sess.Profile()
	m.name.SetValue(p.FullName)
	m.email.SetValue(p.Email)
	m.dob = p.DateOfBirth
	for i, g := range genders {
		if g == p.Gender {
			m.genderIdx = i
		}
	}
	if !m.dob.IsZero() {
		m.pickerMonth = time.Date(m.dob.Year(), m.dob.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

func (m *profileModel) mount() tea.Cmd {
	m.saved = false
	m.load()
	return textinput.Blink
}

func (m *profileModel) setFocus(f int) {
	m.focus = (f + focusCount) % focusCount
	m.name.Blur()
	m.email.Blur()
	switch m.focus {
	case focusName:
		m.name.Focus()
	case focusEmail:
		m.email.Focus()
	}
}

func (m *profileModel) save() {
	m.sess.SetProfile(session.Profile{
		FullName:    strings.TrimSpace(m.name.Value()),
		Email:       strings.TrimSpace(m.email.Value()),
		DateOfBirth: m.dob,
		Gender:      genders[m.genderIdx],
	})
	m.saved = true
}

func (m *profileModel) update(msg tea.Msg) (tea.Cmd, navRequest) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.pickerOpen {
			m.updatePicker(msg)
			return nil, navNone
		}
		return m.updateForm(msg)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return nil, navNone
		}
		if zone.Get(views.SaveProfileZoneID).InBounds(msg) {
			m.save()
		}
		return nil, navNone
	}

	return m.forwardInput(msg), navNone
}

func (m *profileModel) updateForm(msg tea.KeyMsg) (tea.Cmd, navRequest) {
	switch msg.String() {
	case "esc":
		return nil, navFeed
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return nil, navNone
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return nil, navNone
	case "ctrl+s":
		m.save()
		return nil, navNone
	case "enter":
		if m.focus == focusDOB {
			m.pickerOpen = true
			m.pickerMode = views.PickDay
			m.pickerCursor = dayCursor(m.pickerMonth, m.dob)
			return nil, navNone
		}
		m.setFocus(m.focus + 1)
		return nil, navNone
	case "left", "right":
		if m.focus == focusGender {
			delta := 1
			if msg.String() == "left" {
				delta = len(genders) - 1
			}
			m.genderIdx = (m.genderIdx + delta) % len(genders)
			return nil, navNone
		}
	}
	return m.forwardInput(msg), navNone
}

// dayCursor locates a date inside the 42-cell grid of its month, or
// falls back to the first row.
func dayCursor(month, date time.Time) int {
	cells := views.CalendarGrid(month)
	for i, c := range cells {
		if c.CurrentMonth && !date.IsZero() &&
			date.Year() == month.Year() && date.Month() == month.Month() &&
			c.Day == date.Day() {
			return i
		}
	}
	for i, c := range cells {
		if c.CurrentMonth {
			return i
		}
	}
	return 0
}

func (m *profileModel) updatePicker(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.pickerOpen = false
	case "m":
		m.pickerMode = views.PickMonth
	case "y":
		m.pickerMode = views.PickYear
	case "h":
		m.shiftMonth(-1)
	case "l":
		m.shiftMonth(1)
	case "left":
		switch m.pickerMode {
		case views.PickDay:
			m.moveCursor(-1)
		case views.PickMonth:
			m.shiftMonth(-1)
		case views.PickYear:
			m.shiftMonth(-12)
		}
	case "right":
		switch m.pickerMode {
		case views.PickDay:
			m.moveCursor(1)
		case views.PickMonth:
			m.shiftMonth(1)
		case views.PickYear:
			m.shiftMonth(12)
		}
	case "up":
		if m.pickerMode == views.PickDay {
			m.moveCursor(-7)
		} else {
			m.shiftMonth(-12)
		}
	case "down":
		if m.pickerMode == views.PickDay {
			m.moveCursor(7)
		} else {
			m.shiftMonth(12)
		}
	case "enter":
		if m.pickerMode != views.PickDay {
			m.pickerMode = views.PickDay
			m.pickerCursor = dayCursor(m.pickerMonth, m.dob)
			return
		}
		cell := views.CalendarGrid(m.pickerMonth)[m.pickerCursor]
		if cell.CurrentMonth {
			m.dob = time.Date(m.pickerMonth.Year(), m.pickerMonth.Month(),
				cell.Day, 0, 0, 0, 0, time.UTC)
			m.pickerOpen = false
		}
	}
}

func (m *profileModel) shiftMonth(months int) {
	m.pickerMonth = m.pickerMonth.AddDate(0, months, 0)
	m.pickerCursor = dayCursor(m.pickerMonth, m.dob)
}

func (m *profileModel) moveCursor(delta int) {
	next := m.pickerCursor + delta
	if next >= 0 && next < 42 {
		m.pickerCursor = next
	}
}

func (m *profileModel) forwardInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusEmail:
		m.email, cmd = m.email.Update(msg)
	}
	return cmd
}

func (m *profileModel) view(s state.AppState, props views.ViewProps) string {
	return views.ProfileView{
		NameInput:    m.name.View(),
		EmailInput:   m.email.View(),
		Gender:       genders[m.genderIdx],
		DOB:          m.dob,
		PickerOpen:   m.pickerOpen,
		PickerMode:   m.pickerMode,
		PickerMonth:  m.pickerMonth,
		PickerCursor: m.pickerCursor,
		Focus:        m.focus,
		Saved:        m.saved,
	}.Render(s, props)
}
