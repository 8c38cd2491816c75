package state

import (
	"allstars/internal/session"
)

type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup // placeholder route, not implemented
	ScreenCategory
	ScreenProfile
	ScreenFeed
)

// AppState holds what crosses screen boundaries: the active route and
// the shared session store. Everything else is screen-local.
type AppState struct {
	CurrentScreen Screen
	Session       session.Store
	Err           error
}
