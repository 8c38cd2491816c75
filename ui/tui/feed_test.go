package tui

import (
	"strings"
	"testing"
	"time"

	"allstars/internal/interaction"

	tea "github.com/charmbracelet/bubbletea"
)

// settleFrames is more than enough for the page spring to come to rest.
const settleFrames = 600

func runFrames(m *MainModel, n int) {
	for i := 0; i < n; i++ {
		m.Update(FrameMsg(time.Now()))
	}
}

func TestSplashGatesInput(t *testing.T) {
	m, _ := newTestModel()
	m.Update(keyRunes("9876543210"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(keyRunes("s"))

	// Before the splash timer fires, navigation keys are ignored.
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	runFrames(m, settleFrames)
	if got := m.feed.inter.CurrentPage("post_001"); got != 0 {
		t.Errorf("Expected page 0 while splash is up, got %d", got)
	}

	m.Update(SplashMsg{})
	if !m.feed.splashDone {
		t.Fatal("Expected splash to be dismissed")
	}
}

func TestPageSettleCommitsIndex(t *testing.T) {
	m, _ := newTestModel()
	reachFeed(m)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.feed.inter.CurrentPage("post_001"); got != 0 {
		t.Fatalf("Expected index to commit only on settle, got %d", got)
	}

	runFrames(m, settleFrames)
	if got := m.feed.inter.CurrentPage("post_001"); got != 1 {
		t.Errorf("Expected page 1 after spring settles, got %d", got)
	}

	// Past the last page the target clamps.
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	runFrames(m, settleFrames)
	if got := m.feed.inter.CurrentPage("post_001"); got != 1 {
		t.Errorf("Expected page to clamp at 1, got %d", got)
	}
}

func TestVoteIsWriteOnce(t *testing.T) {
	m, _ := newTestModel()
	reachFeed(m)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	runFrames(m, settleFrames)

	m.Update(keyRunes("1"))
	got, ok := m.feed.inter.VoteFor("page_001_2")
	if !ok || got != "opt_001_1" {
		t.Fatalf("Expected vote for opt_001_1, got %q (ok=%v)", got, ok)
	}
	if m.feed.charts["page_001_2"] == nil {
		t.Error("Expected results chart after voting")
	}

	// A second choice on the same page must not take.
	m.Update(keyRunes("2"))
	got, _ = m.feed.inter.VoteFor("page_001_2")
	if got != "opt_001_1" {
		t.Errorf("Expected vote to stay opt_001_1, got %q", got)
	}
}

func TestQuizAnswerLandsOnSecondPost(t *testing.T) {
	m, _ := newTestModel()
	reachFeed(m)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(ImageLoadedMsg{PostID: "post_002"})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	runFrames(m, settleFrames)

	m.Update(keyRunes("2"))
	got, ok := m.feed.inter.AnswerFor("page_002_2")
	if !ok || got != "opt_002_2" {
		t.Fatalf("Expected answer opt_002_2, got %q (ok=%v)", got, ok)
	}

	m.Update(keyRunes("1"))
	got, _ = m.feed.inter.AnswerFor("page_002_2")
	if got != "opt_002_2" {
		t.Errorf("Expected answer to stay opt_002_2, got %q", got)
	}
}

func TestIconTogglesAndPulses(t *testing.T) {
	m, _ := newTestModel()
	reachFeed(m)

	m.Update(keyRunes("1"))
	key := interaction.IconKey{PostID: "post_001", Icon: interaction.IconHeart}
	if !m.feed.inter.IconActive(key) {
		t.Fatal("Expected heart active after press")
	}
	runFrames(m, 1)
	if scale := m.feed.iconPulses.Scale(key); scale >= 1.0 {
		t.Errorf("Expected pulse to dip below rest scale, got %f", scale)
	}

	m.Update(keyRunes("1"))
	if m.feed.inter.IconActive(key) {
		t.Error("Expected heart inactive after second press")
	}
}

func TestSendOpensShareAndDispatches(t *testing.T) {
	m, sharer := newTestModel()
	reachFeed(m)

	m.Update(keyRunes("3"))
	if !m.feed.shareOpen {
		t.Fatal("Expected share sheet to open on send")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected a dispatch command from confirm")
	}
	if msg := cmd(); msg == nil {
		t.Fatal("Expected dispatch to produce a completion message")
	}

	if len(sharer.payloads) != 1 {
		t.Fatalf("Expected one payload, got %d", len(sharer.payloads))
	}
	p := sharer.payloads[0]
	if !strings.HasPrefix(p.Message, "Breaking: Major Transfer News Revealed") {
		t.Errorf("Expected message to lead with the headline, got %q", p.Message)
	}
	if p.URL == "" {
		t.Error("Expected payload url from the first page image")
	}
}

func TestImageLoadedIsOneShot(t *testing.T) {
	m, _ := newTestModel()
	m.Update(keyRunes("9876543210"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(keyRunes("s"))
	m.Update(SplashMsg{})

	if m.feed.inter.ImageLoaded("post_001") {
		t.Fatal("Expected placeholder before the probe lands")
	}
	m.Update(ImageLoadedMsg{PostID: "post_001"})
	if !m.feed.inter.ImageLoaded("post_001") {
		t.Fatal("Expected loaded after probe")
	}
	m.Update(ImageLoadedMsg{PostID: "post_001"})
	if !m.feed.inter.ImageLoaded("post_001") {
		t.Error("Expected loaded to stick")
	}
}

func TestMenuSlidesClosed(t *testing.T) {
	m, _ := newTestModel()
	reachFeed(m)

	m.Update(keyRunes("m"))
	if !m.feed.menuOpen {
		t.Fatal("Expected menu open")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !m.feed.menuOpen {
		t.Fatal("Expected menu to stay mounted while sliding out")
	}
	runFrames(m, settleFrames)
	if m.feed.menuOpen {
		t.Error("Expected menu unmounted once the slide settles")
	}
}
