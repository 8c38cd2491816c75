package tui

import (
	"strings"

	"allstars/internal/session"
	"allstars/ui/tui/state"
	"allstars/ui/tui/views"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/samber/lo"
)

// defaultTags is the fixed sports tag set of the interest picker.
func defaultTags() []string {
	return []string{
		"Football", "Cricket", "Esports",
		"Kabaddi", "MMA", "Motorsports",
	}
}

// categoryModel is the interest selection screen. Continue is gated on
// at least one picked tag; Skip always passes through with none.
type categoryModel struct {
	tags     []string
	selected map[string]bool
	cursor   int
	sess     session.Store
}

func newCategoryModel(sess session.Store) *categoryModel {
	return &categoryModel{
		tags:     defaultTags(),
		selected: map[string]bool{},
		sess:     sess,
	}
}

func (m *categoryModel) toggle(tag string) {
	m.selected[tag] = !m.selected[tag]
}

func (m *categoryModel) picked() []string {
	return lo.Filter(m.tags, func(tag string, _ int) bool {
		return m.selected[tag]
	})
}

// confirm persists picked interests lowercased, matching how the feed
// compares them against post categories.
func (m *categoryModel) confirm() navRequest {
	picked := m.picked()
	if len(picked) == 0 {
		return navNone
	}
	m.sess.SetInterests(lo.Map(picked, func(tag string, _ int) string {
		return strings.ToLower(tag)
	}))
	return navFeed
}

func (m *categoryModel) update(msg tea.Msg) (tea.Cmd, navRequest) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l", "down", "j":
			if m.cursor < len(m.tags)-1 {
				m.cursor++
			}
		case " ", "x":
			m.toggle(m.tags[m.cursor])
		case "enter":
			return nil, m.confirm()
		case "s":
			return nil, navFeed
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease {
			return nil, navNone
		}
		if zone.Get(views.ContinueZoneID).InBounds(msg) {
			return nil, m.confirm()
		}
		if zone.Get(views.SkipZoneID).InBounds(msg) {
			return nil, navFeed
		}
		for i, tag := range m.tags {
			if zone.Get(views.TagZoneID(tag)).InBounds(msg) {
				m.cursor = i
				m.toggle(tag)
				break
			}
		}
	}
	return nil, navNone
}

func (m *categoryModel) view(s state.AppState, props views.ViewProps) string {
	return views.CategoryView{
		Tags:     m.tags,
		Selected: m.selected,
		Cursor:   m.cursor,
	}.Render(s, props)
}
