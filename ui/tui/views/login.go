package views

import (
	"allstars/ui/tui/state"
	"allstars/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const (
	SendOTPZoneID    = "login_send_otp"
	ToggleModeZoneID = "login_toggle_mode"
)

// LoginView captures a phone number; "Send OTP" moves straight on to
// interest selection, the verification boundary is a stub.
type LoginView struct {
	PhoneInput string
	IsLogin    bool
}

func (v LoginView) Render(s state.AppState, props ViewProps) string {
	logo := lipgloss.NewStyle().Bold(true).Foreground(styles.Gold).Render("★ ALL STARS")

	welcome := styles.Headline.Render("Hey, Welcome!")

	modePrompt := "Don't have an Account?"
	modeAction := "Signup"
	if v.IsLogin {
		modePrompt = "Already have an Account?"
		modeAction = "Login"
	}
	mode := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Subtle.Render(modePrompt+" "),
		zone.Mark(ToggleModeZoneID, styles.ReadMore.Render(modeAction+" [tab]")),
	)

	phone := lipgloss.JoinVertical(lipgloss.Left,
		"Enter Phone Number",
		v.PhoneInput,
	)

	button := zone.Mark(SendOTPZoneID, styles.Button.Render("Send OTP [enter]"))

	body := lipgloss.JoinVertical(lipgloss.Left,
		logo,
		"",
		welcome,
		mode,
		"",
		phone,
		"",
		button,
		"",
		styles.Hint.Render("[tab] toggle login/signup • [ctrl+c] quit"),
	)

	return zone.Scan(lipgloss.Place(props.Width, props.Height, lipgloss.Center, lipgloss.Center, body))
}
