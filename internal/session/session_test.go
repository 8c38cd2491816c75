package session

import (
	"testing"
	"time"
)

func TestInterestsRoundTrip(t *testing.T) {
	s := NewInMemory()

	if len(s.Interests()) != 0 {
		t.Fatal("Expected no interests initially")
	}
	if s.HasInterest("football") {
		t.Fatal("Expected HasInterest false before selection")
	}

	s.SetInterests([]string{"football", "mma"})
	got := s.Interests()
	if len(got) != 2 || got[0] != "football" || got[1] != "mma" {
		t.Errorf("Expected sorted [football mma], got %v", got)
	}
	if !s.HasInterest("mma") {
		t.Error("Expected HasInterest true for mma")
	}

	// SetInterests replaces, not merges.
	s.SetInterests([]string{"cricket"})
	if s.HasInterest("football") {
		t.Error("Expected previous selection replaced")
	}
}

func TestPhoneAndProfile(t *testing.T) {
	s := NewInMemory()

	s.SetPhone("+91 9131678393")
	if s.Phone() != "+91 9131678393" {
		t.Errorf("Unexpected phone %q", s.Phone())
	}

	dob := time.Date(1998, time.March, 14, 0, 0, 0, 0, time.UTC)
	s.SetProfile(Profile{FullName: "Asha Rao", Email: "asha@example.com", DateOfBirth: dob, Gender: "female"})

	p := s.Profile()
	if p.FullName != "Asha Rao" || !p.DateOfBirth.Equal(dob) {
		t.Errorf("Unexpected profile %+v", p)
	}
}
