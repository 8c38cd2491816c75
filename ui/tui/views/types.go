package views

import (
	"allstars/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height  int
	MouseX, MouseY int

	SpinnerView string
}

// View defines the contract for any renderable screen in the TUI.
type View interface {
	Render(s state.AppState, props ViewProps) string
}
