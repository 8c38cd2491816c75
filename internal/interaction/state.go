// Package interaction tracks the per-session state the feed mutates in
// response to user input. Every map is owned by the feed model and
// written only from its event handlers; nothing here is persisted.
package interaction

// IconType identifies one of the fixed action icons on a normal page.
type IconType int

const (
	IconHeart IconType = iota
	IconComment
	IconSend
	IconBookmark
)

func (i IconType) String() string {
	switch i {
	case IconHeart:
		return "heart"
	case IconComment:
		return "comment"
	case IconSend:
		return "send"
	case IconBookmark:
		return "bookmark"
	}
	return "unknown"
}

// IconKey addresses one icon on one post.
type IconKey struct {
	PostID string
	Icon   IconType
}

// State holds the feed's runtime interaction maps. Created empty at
// feed mount, populated lazily on first interaction per key, discarded
// on unmount.
type State struct {
	currentPage  map[string]int
	descExpanded map[string]bool
	votes        map[string]string
	answers      map[string]string
	imageLoaded  map[string]bool
	activeIcons  map[IconKey]bool
}

func NewState() *State {
	return &State{
		currentPage:  map[string]int{},
		descExpanded: map[string]bool{},
		votes:        map[string]string{},
		answers:      map[string]string{},
		imageLoaded:  map[string]bool{},
		activeIcons:  map[IconKey]bool{},
	}
}

// CurrentPage returns which page of a post is on screen; zero until a
// horizontal drag settles.
func (s *State) CurrentPage(postID string) int {
	return s.currentPage[postID]
}

func (s *State) SetCurrentPage(postID string, idx int) {
	if idx < 0 {
		idx = 0
	}
	s.currentPage[postID] = idx
}

func (s *State) DescriptionExpanded(postID string) bool {
	return s.descExpanded[postID]
}

// ToggleDescription flips the read-more flag and returns the new value.
func (s *State) ToggleDescription(postID string) bool {
	s.descExpanded[postID] = !s.descExpanded[postID]
	return s.descExpanded[postID]
}

// Vote records the single vote for a poll page. Write-once: the first
// call per page id applies and returns true, later calls are no-ops.
func (s *State) Vote(pageID, optionID string) bool {
	if _, voted := s.votes[pageID]; voted {
		return false
	}
	s.votes[pageID] = optionID
	return true
}

func (s *State) VoteFor(pageID string) (string, bool) {
	v, ok := s.votes[pageID]
	return v, ok
}

// Answer records the single quiz answer for a page, with the same
// write-once contract as Vote.
func (s *State) Answer(pageID, optionID string) bool {
	if _, answered := s.answers[pageID]; answered {
		return false
	}
	s.answers[pageID] = optionID
	return true
}

func (s *State) AnswerFor(pageID string) (string, bool) {
	a, ok := s.answers[pageID]
	return a, ok
}

// MarkImageLoaded flags the post's first-page image as ready. One-shot:
// there is no way to unset it, so the placeholder never reappears.
func (s *State) MarkImageLoaded(postID string) {
	s.imageLoaded[postID] = true
}

func (s *State) ImageLoaded(postID string) bool {
	return s.imageLoaded[postID]
}

// ToggleIcon flips one icon's active styling and returns the new value.
func (s *State) ToggleIcon(key IconKey) bool {
	s.activeIcons[key] = !s.activeIcons[key]
	return s.activeIcons[key]
}

func (s *State) IconActive(key IconKey) bool {
	return s.activeIcons[key]
}
