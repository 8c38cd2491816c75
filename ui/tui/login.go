package tui

import (
	"strings"

	"allstars/internal/session"
	"allstars/ui/tui/state"
	"allstars/ui/tui/views"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// loginModel captures a phone number and a login/signup mode toggle.
// OTP delivery is a stub: submitting a non-empty number moves straight
// on to interest selection.
type loginModel struct {
	phone   textinput.Model
	isLogin bool
	sess    session.Store
}

func newLoginModel(sess session.Store) *loginModel {
	ti := textinput.New()
	ti.Placeholder = "98765 43210"
	ti.Prompt = "+91 "
	ti.CharLimit = 12
	ti.Width = 16
	ti.Focus()

	return &loginModel{phone: ti, sess: sess}
}

func (m *loginModel) mount() tea.Cmd {
	return textinput.Blink
}

func (m *loginModel) submit() navRequest {
	number := strings.TrimSpace(m.phone.Value())
	if number == "" {
		return navNone
	}
	m.sess.SetPhone(number)
	return navCategory
}

func (m *loginModel) update(msg tea.Msg) (tea.Cmd, navRequest) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return nil, m.submit()
		case "tab":
			m.isLogin = !m.isLogin
			return nil, navNone
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return nil, navNone
		}
		if zone.Get(views.SendOTPZoneID).InBounds(msg) {
			return nil, m.submit()
		}
		if zone.Get(views.ToggleModeZoneID).InBounds(msg) {
			m.isLogin = !m.isLogin
		}
		return nil, navNone
	}

	var cmd tea.Cmd
	m.phone, cmd = m.phone.Update(msg)
	return cmd, navNone
}

func (m *loginModel) view(s state.AppState, props views.ViewProps) string {
	return views.LoginView{
		PhoneInput: m.phone.View(),
		IsLogin:    m.isLogin,
	}.Render(s, props)
}
