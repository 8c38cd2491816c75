package tui

import (
	"time"

	"allstars/internal/config"
	"allstars/internal/feed"
	"allstars/internal/images"
	"allstars/internal/session"
	"allstars/internal/share"
	"allstars/ui/tui/state"
	"allstars/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// MainModel is the Bubble Tea Model acting as the Controller: it owns
// the route and fans messages out to the mounted screen model.
type MainModel struct {
	cfg   config.AppConfig
	state state.AppState

	login    *loginModel
	category *categoryModel
	profile  *profileModel
	feed     *feedModel

	// The feed mounts once; revisiting it from the profile screen must
	// not replay the splash.
	feedStarted bool

	mouseX   int
	mouseY   int
	quitting bool
	width    int
	height   int
}

// Messages
type FrameMsg time.Time
type SplashMsg struct{}
type ShareDoneMsg struct{}
type ImageLoadedMsg struct {
	PostID string
	Err    error
}

func InitialModel(provider feed.Provider, sess session.Store, sharer share.Sharer, loader images.Loader, cfg config.AppConfig) MainModel {
	return MainModel{
		cfg:      cfg,
		login:    newLoginModel(sess),
		category: newCategoryModel(sess),
		profile:  newProfileModel(sess),
		feed:     newFeedModel(provider, sess, sharer, loader, cfg),
		state: state.AppState{
			CurrentScreen: state.ScreenLogin,
			Session:       sess,
		},
	}
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.login.mount(),
		frameCmd(m.cfg.FrameInterval),
	)
}

// Commands
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func splashCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return SplashMsg{}
	})
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.feed.setSize(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		cmd, _ := m.feed.update(msg)
		return m, tea.Batch(cmd, frameCmd(m.cfg.FrameInterval))

	// Feed-owned async results land on the feed regardless of the
	// screen currently mounted.
	case SplashMsg, ImageLoadedMsg, ShareDoneMsg:
		cmd, _ := m.feed.update(msg)
		return m, cmd

	case tea.MouseMsg:
		m.mouseX = msg.X
		m.mouseY = msg.Y
	}

	return m.route(msg)
}

// route hands the message to the mounted screen and applies whatever
// navigation it asked for.
func (m *MainModel) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd tea.Cmd
		nav navRequest
	)

	switch m.state.CurrentScreen {
	case state.ScreenLogin, state.ScreenSignup:
		cmd, nav = m.login.update(msg)
	case state.ScreenCategory:
		cmd, nav = m.category.update(msg)
	case state.ScreenProfile:
		cmd, nav = m.profile.update(msg)
	default:
		cmd, nav = m.feed.update(msg)
	}

	navCmd := m.navigate(nav)
	return m, tea.Batch(cmd, navCmd)
}

func (m *MainModel) navigate(nav navRequest) tea.Cmd {
	switch nav {
	case navCategory:
		m.state.CurrentScreen = state.ScreenCategory
		return nil
	case navProfile:
		m.state.CurrentScreen = state.ScreenProfile
		return m.profile.mount()
	case navFeed:
		m.state.CurrentScreen = state.ScreenFeed
		if !m.feedStarted {
			m.feedStarted = true
			return m.feed.mount()
		}
		return nil
	}
	return nil
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	props := views.ViewProps{
		Width:  m.width,
		Height: m.height,
		MouseX: m.mouseX,
		MouseY: m.mouseY,
	}

	switch m.state.CurrentScreen {
	case state.ScreenLogin, state.ScreenSignup:
		return m.login.view(m.state, props)
	case state.ScreenCategory:
		return m.category.view(m.state, props)
	case state.ScreenProfile:
		return m.profile.view(m.state, props)
	default:
		return m.feed.view(m.state, props)
	}
}

func Start(provider feed.Provider, sess session.Store, sharer share.Sharer, loader images.Loader, cfg config.AppConfig) error {
	m := InitialModel(provider, sess, sharer, loader, cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
