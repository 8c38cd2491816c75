package tui

import (
	"context"
	"log/slog"
	"math"
	"strings"

	"allstars/internal/anim"
	"allstars/internal/config"
	"allstars/internal/feed"
	"allstars/internal/images"
	"allstars/internal/interaction"
	"allstars/internal/session"
	"allstars/internal/share"
	"allstars/ui/tui/components"
	"allstars/ui/tui/state"
	"allstars/ui/tui/views"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/samber/lo"
)

// navRequest is how the feed asks the controller to change route.
type navRequest int

const (
	navNone navRequest = iota
	navProfile
	navCategory
	navFeed
)

// optionKey addresses one option's fill animation on one page.
type optionKey struct {
	PageID   string
	OptionID string
}

// feedModel owns the feed screen: the vertical post pager, per-post
// horizontal page springs, the interaction-state maps and the menu and
// share overlays. All maps live exactly as long as the feed is mounted.
type feedModel struct {
	cfg    config.AppConfig
	posts  []feed.Post
	inter  *interaction.State
	sess   session.Store
	sharer share.Sharer
	loader images.Loader

	spin       spinner.Model
	splashDone bool

	width  int
	height int

	postIndex int

	scrollX      *anim.Registry[string]
	fills        *anim.Registry[optionKey]
	iconPulses   *anim.PulseRegistry[interaction.IconKey]
	optionPulses *anim.PulseRegistry[string]
	charts       map[string]*components.PollChart
	probing      map[string]bool

	menuOpen    bool
	menuClosing bool
	menuCursor  int
	menuSlide   *anim.Value

	shareOpen    bool
	shareClosing bool
	sharePost    *feed.Post
	shareSlide   *anim.Value
}

func newFeedModel(provider feed.Provider, sess session.Store, sharer share.Sharer, loader images.Loader, cfg config.AppConfig) *feedModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	uiSpring := harmonica.NewSpring(harmonica.FPS(60), cfg.SpringFreq, cfg.SpringDamping)
	// Critically damped so result bars sweep up without overshoot.
	fillSpring := harmonica.NewSpring(harmonica.FPS(60), cfg.FillSpringFreq, 1.0)

	return &feedModel{
		cfg:          cfg,
		posts:        orderPosts(provider.Posts(), sess),
		inter:        interaction.NewState(),
		sess:         sess,
		sharer:       sharer,
		loader:       loader,
		spin:         s,
		scrollX:      anim.NewRegistry[string](uiSpring, 0),
		fills:        anim.NewRegistry[optionKey](fillSpring, 0),
		iconPulses:   anim.NewPulseRegistry[interaction.IconKey](uiSpring),
		optionPulses: anim.NewPulseRegistry[string](uiSpring),
		charts:       map[string]*components.PollChart{},
		probing:      map[string]bool{},
		menuSlide:    anim.NewValue(uiSpring, 0),
		shareSlide:   anim.NewValue(uiSpring, 0),
	}
}

// orderPosts surfaces posts whose category matches a picked interest
// first, keeping the fixture order otherwise. With no interests the
// order is untouched.
func orderPosts(posts []feed.Post, sess session.Store) []feed.Post {
	if sess == nil || len(sess.Interests()) == 0 {
		return posts
	}
	matched := lo.Filter(posts, func(p feed.Post, _ int) bool {
		return sess.HasInterest(strings.ToLower(p.Category))
	})
	rest := lo.Filter(posts, func(p feed.Post, _ int) bool {
		return !sess.HasInterest(strings.ToLower(p.Category))
	})
	return append(matched, rest...)
}

// mount starts the splash delay, the animation loop and the first
// image probe.
func (f *feedModel) mount() tea.Cmd {
	cmds := []tea.Cmd{
		f.spin.Tick,
		splashCmd(f.cfg.SplashDelay),
	}
	if cmd := f.probeImage(f.currentPost()); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (f *feedModel) setSize(w, h int) {
	f.width = w
	f.height = h
	// Reanchor every horizontal spring to its committed page so a
	// resize does not fake a drag.
	for _, post := range f.posts {
		idx := f.inter.CurrentPage(post.ID)
		f.scrollX.Get(post.ID).Snap(float64(idx * f.pageW()))
	}
	f.menuSlide.Snap(f.menuSlide.Pos())
	f.shareSlide.Snap(f.shareSlide.Pos())
}

func (f *feedModel) pageW() int {
	if f.width <= 0 {
		return 1
	}
	return f.width
}

func (f *feedModel) currentPost() feed.Post {
	return f.posts[f.postIndex]
}

// displayedPage is the page nearest the continuous scroll offset, the
// one actually rendered while a drag is in flight.
func (f *feedModel) displayedPage(post feed.Post) (feed.Page, int) {
	v := f.scrollX.Get(post.ID)
	idx := int(math.Round(v.Pos() / float64(f.pageW())))
	idx = clampInt(idx, 0, len(post.Pages)-1)
	return post.Pages[idx], idx
}

func (f *feedModel) update(msg tea.Msg) (tea.Cmd, navRequest) {
	switch msg := msg.(type) {
	case SplashMsg:
		f.splashDone = true
		return nil, navNone

	case FrameMsg:
		return f.handleFrame(), navNone

	case ImageLoadedMsg:
		f.handleImageLoaded(msg)
		return nil, navNone

	case ShareDoneMsg:
		return nil, navNone

	case spinner.TickMsg:
		var cmd tea.Cmd
		f.spin, cmd = f.spin.Update(msg)
		return cmd, navNone

	case tea.KeyMsg:
		return f.handleKey(msg)

	case tea.MouseMsg:
		return f.handleMouse(msg)
	}
	return nil, navNone
}

func (f *feedModel) handleFrame() tea.Cmd {
	f.fills.Update()
	f.iconPulses.Update()
	f.optionPulses.Update()

	f.scrollX.Update()
	// Momentum end: when the horizontal spring settles, commit the
	// page index from the offset.
	post := f.currentPost()
	v := f.scrollX.Get(post.ID)
	if v.Settled() {
		idx := int(math.Round(v.Pos() / float64(f.pageW())))
		if idx != f.inter.CurrentPage(post.ID) {
			f.inter.SetCurrentPage(post.ID, clampInt(idx, 0, len(post.Pages)-1))
		}
	}

	f.menuSlide.Update()
	if f.menuClosing && f.menuSlide.Settled() {
		f.menuOpen = false
		f.menuClosing = false
	}
	f.shareSlide.Update()
	if f.shareClosing && f.shareSlide.Settled() {
		f.shareOpen = false
		f.shareClosing = false
		f.sharePost = nil
	}
	return nil
}

func (f *feedModel) handleImageLoaded(msg ImageLoadedMsg) {
	if msg.Err != nil {
		// No retry path: the placeholder simply stays up.
		slog.Warn("image probe failed", "post", msg.PostID, "error", msg.Err)
		return
	}
	f.inter.MarkImageLoaded(msg.PostID)
}

func (f *feedModel) handleKey(msg tea.KeyMsg) (tea.Cmd, navRequest) {
	if !f.splashDone {
		return nil, navNone
	}

	if f.shareOpen {
		switch msg.String() {
		case "enter":
			return f.submitShare(), navNone
		case "esc", "q":
			f.closeShare()
		}
		return nil, navNone
	}

	if f.menuOpen {
		switch msg.String() {
		case "esc", "m", "q":
			f.closeMenu()
		case "up", "k":
			if f.menuCursor > 0 {
				f.menuCursor--
			}
		case "down", "j":
			if f.menuCursor < len(views.DefaultMenuEntries())-1 {
				f.menuCursor++
			}
		case "p":
			f.closeMenu()
			return nil, navProfile
		}
		return nil, navNone
	}

	switch msg.String() {
	case "down", "j":
		return f.movePost(1), navNone
	case "up", "k":
		return f.movePost(-1), navNone
	case "right", "l":
		f.movePage(1)
	case "left", "h":
		f.movePage(-1)
	case "d":
		f.toggleDescription()
	case "m":
		f.openMenu()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return f.pressNumber(int(msg.String()[0] - '1')), navNone
	}
	return nil, navNone
}

func (f *feedModel) handleMouse(msg tea.MouseMsg) (tea.Cmd, navRequest) {
	if !f.splashDone {
		return nil, navNone
	}

	if msg.Button == tea.MouseButtonWheelDown {
		return f.movePost(1), navNone
	}
	if msg.Button == tea.MouseButtonWheelUp {
		return f.movePost(-1), navNone
	}
	if msg.Action != tea.MouseActionRelease {
		return nil, navNone
	}

	if f.shareOpen {
		if zone.Get(views.ShareConfirmZoneID).InBounds(msg) {
			return f.submitShare(), navNone
		}
		if zone.Get(views.ShareCloseZoneID).InBounds(msg) {
			f.closeShare()
		}
		return nil, navNone
	}

	if f.menuOpen {
		if zone.Get(views.MenuProfileZoneID).InBounds(msg) {
			f.closeMenu()
			return nil, navProfile
		}
		if zone.Get(views.MenuCloseZoneID).InBounds(msg) {
			f.closeMenu()
		}
		return nil, navNone
	}

	if zone.Get(views.MenuZoneID).InBounds(msg) {
		f.openMenu()
		return nil, navNone
	}

	post := f.currentPost()
	page, _ := f.displayedPage(post)

	if page.Type == feed.PageNormal {
		if zone.Get(views.ReadMoreZoneID(post.ID)).InBounds(msg) {
			f.toggleDescription()
			return nil, navNone
		}
		for _, icon := range []interaction.IconType{
			interaction.IconHeart, interaction.IconComment,
			interaction.IconSend, interaction.IconBookmark,
		} {
			if zone.Get(views.IconZoneID(post.ID, icon)).InBounds(msg) {
				return f.pressIcon(icon), navNone
			}
		}
		return nil, navNone
	}

	for _, opt := range page.Options {
		if zone.Get(views.OptionZoneID(page.ID, opt.ID)).InBounds(msg) {
			f.selectOption(page, opt)
			return nil, navNone
		}
	}
	return nil, navNone
}

func (f *feedModel) movePost(delta int) tea.Cmd {
	next := clampInt(f.postIndex+delta, 0, len(f.posts)-1)
	if next == f.postIndex {
		return nil
	}
	f.postIndex = next
	return f.probeImage(f.currentPost())
}

func (f *feedModel) movePage(delta int) {
	post := f.currentPost()
	v := f.scrollX.Get(post.ID)
	w := float64(f.pageW())

	target := int(math.Round(v.Target()/w)) + delta
	target = clampInt(target, 0, len(post.Pages)-1)
	v.SetTarget(float64(target) * w)
}

func (f *feedModel) toggleDescription() {
	post := f.currentPost()
	if page, _ := f.displayedPage(post); page.Type == feed.PageNormal {
		f.inter.ToggleDescription(post.ID)
	}
}

// pressNumber routes the 1-9 keys: option selection on poll/quiz
// pages, the icon rail on normal pages.
func (f *feedModel) pressNumber(n int) tea.Cmd {
	post := f.currentPost()
	page, _ := f.displayedPage(post)

	if page.Type == feed.PageNormal {
		icons := []interaction.IconType{
			interaction.IconHeart, interaction.IconComment,
			interaction.IconSend, interaction.IconBookmark,
		}
		if n < len(icons) {
			return f.pressIcon(icons[n])
		}
		return nil
	}

	if n < len(page.Options) {
		f.selectOption(page, page.Options[n])
	}
	return nil
}

func (f *feedModel) selectOption(page feed.Page, opt feed.Option) {
	switch page.Type {
	case feed.PagePoll:
		// Write-once: a second tap anywhere on a voted page no-ops.
		if !f.inter.Vote(page.ID, opt.ID) {
			return
		}
		f.optionPulses.Trigger(opt.ID)
		for _, o := range page.Options {
			f.fills.Get(optionKey{PageID: page.ID, OptionID: o.ID}).SetTarget(float64(o.Votes))
		}
		chart := components.NewPollChart(clampInt(f.width-8, 20, 40), len(page.Options))
		chart.SetResults(page.Options, opt.ID)
		f.charts[page.ID] = chart

	case feed.PageMCQ:
		if !f.inter.Answer(page.ID, opt.ID) {
			return
		}
		f.optionPulses.Trigger(opt.ID)
	}
}

func (f *feedModel) pressIcon(icon interaction.IconType) tea.Cmd {
	post := f.currentPost()
	key := interaction.IconKey{PostID: post.ID, Icon: icon}
	f.iconPulses.Trigger(key)

	if icon == interaction.IconSend {
		f.openShare(post)
		return nil
	}
	f.inter.ToggleIcon(key)
	return nil
}

func (f *feedModel) openMenu() {
	f.menuOpen = true
	f.menuClosing = false
	f.menuSlide.Snap(float64(f.pageW()))
	f.menuSlide.SetTarget(0)
}

func (f *feedModel) closeMenu() {
	f.menuClosing = true
	f.menuSlide.SetTarget(float64(f.pageW()))
}

func (f *feedModel) openShare(post feed.Post) {
	f.sharePost = &post
	f.shareOpen = true
	f.shareClosing = false
	f.shareSlide.Snap(float64(max(f.height, 1)))
	f.shareSlide.SetTarget(0)
}

func (f *feedModel) closeShare() {
	f.shareClosing = true
	f.shareSlide.SetTarget(float64(max(f.height, 1)))
}

func (f *feedModel) submitShare() tea.Cmd {
	if f.sharePost == nil {
		return nil
	}
	payload := share.BuildPayload(*f.sharePost)
	sharer := f.sharer
	f.closeShare()
	return func() tea.Msg {
		share.Dispatch(context.Background(), sharer, payload)
		return ShareDoneMsg{}
	}
}

func (f *feedModel) probeImage(post feed.Post) tea.Cmd {
	if f.loader == nil || f.inter.ImageLoaded(post.ID) || f.probing[post.ID] {
		return nil
	}
	f.probing[post.ID] = true

	loader := f.loader
	timeout := f.cfg.ImageTimeout
	uri := post.FirstPage().Image
	id := post.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return ImageLoadedMsg{PostID: id, Err: loader.Probe(ctx, uri)}
	}
}

func (f *feedModel) view(s state.AppState, props views.ViewProps) string {
	props.SpinnerView = f.spin.View()

	if !f.splashDone {
		return views.SplashView{}.Render(s, props)
	}

	if f.shareOpen && f.sharePost != nil {
		return views.ShareModalView{
			Post:   *f.sharePost,
			Offset: int(f.shareSlide.Pos()),
		}.Render(s, props)
	}

	if f.menuOpen {
		return views.SlideMenuView{
			Offset:  int(f.menuSlide.Pos()),
			Phone:   f.sess.Phone(),
			Entries: views.DefaultMenuEntries(),
			Cursor:  f.menuCursor,
		}.Render(s, props)
	}

	post := f.currentPost()
	page, _ := f.displayedPage(post)

	content := views.ContentProps{
		ClipLines: f.cfg.ClippedDescriptionLines,
		Expanded:  f.inter.DescriptionExpanded(post.ID),
	}

	if vote, ok := f.inter.VoteFor(page.ID); ok {
		content.Voted = true
		content.VotedOption = vote
		content.Fills = map[string]float64{}
		for _, o := range page.Options {
			content.Fills[o.ID] = f.fills.Get(optionKey{PageID: page.ID, OptionID: o.ID}).Pos()
		}
		if chart, ok := f.charts[page.ID]; ok {
			content.ChartView = chart.View()
		}
	}
	if answer, ok := f.inter.AnswerFor(page.ID); ok {
		content.Answered = true
		content.AnsweredOption = answer
	}
	content.OptionScales = map[string]float64{}
	for _, o := range page.Options {
		content.OptionScales[o.ID] = f.optionPulses.Scale(o.ID)
	}

	icons := views.IconProps{
		Active: map[interaction.IconType]bool{},
		Scales: map[interaction.IconType]float64{},
	}
	for _, icon := range []interaction.IconType{
		interaction.IconHeart, interaction.IconComment,
		interaction.IconSend, interaction.IconBookmark,
	} {
		key := interaction.IconKey{PostID: post.ID, Icon: icon}
		icons.Active[icon] = f.inter.IconActive(key)
		icons.Scales[icon] = f.iconPulses.Scale(key)
	}

	return zone.Scan(views.PostView{
		Post:      post,
		Page:      page,
		PageIndex: clampInt(f.inter.CurrentPage(post.ID), 0, len(post.Pages)-1),
		ScrollX:   f.scrollX.Get(post.ID).Pos(),
		Loaded:    f.inter.ImageLoaded(post.ID),
		Content:   content,
		Icons:     icons,
	}.Render(s, props))
}

func clampInt(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
