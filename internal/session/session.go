// Package session is the shared store the screens write into and the
// feed reads from: interests picked on the category screen, the phone
// number from login, and the profile form. In-memory only; nothing
// outlives the process.
package session

import (
	"sort"
	"time"

	"github.com/samber/lo"
)

// Profile is the editable user record.
type Profile struct {
	FullName    string
	Email       string
	DateOfBirth time.Time
	Gender      string
}

// Store is the cross-screen session boundary.
type Store interface {
	SetPhone(number string)
	Phone() string

	SetInterests(categories []string)
	Interests() []string
	HasInterest(category string) bool

	SetProfile(p Profile)
	Profile() Profile
}

// InMemory is the only Store shipped; screens share one instance for
// the lifetime of the program. The TUI runs single-threaded on the
// Bubble Tea loop, so no locking is needed.
type InMemory struct {
	phone     string
	interests map[string]bool
	profile   Profile
}

func NewInMemory() *InMemory {
	return &InMemory{interests: map[string]bool{}}
}

func (s *InMemory) SetPhone(number string) { s.phone = number }

func (s *InMemory) Phone() string { return s.phone }

// SetInterests replaces the selection wholesale; the category screen
// owns the toggle state and commits it on Continue.
func (s *InMemory) SetInterests(categories []string) {
	s.interests = map[string]bool{}
	for _, c := range categories {
		s.interests[c] = true
	}
}

func (s *InMemory) Interests() []string {
	out := lo.Keys(s.interests)
	sort.Strings(out)
	return out
}

func (s *InMemory) HasInterest(category string) bool {
	return s.interests[category]
}

func (s *InMemory) SetProfile(p Profile) { s.profile = p }

func (s *InMemory) Profile() Profile { return s.profile }
