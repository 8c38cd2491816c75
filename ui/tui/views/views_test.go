package views

import (
	"strings"
	"testing"
	"time"

	"allstars/internal/feed"
)

func TestFillWidthClamps(t *testing.T) {
	cases := []struct {
		name     string
		pct      float64
		rowWidth int
		want     int
	}{
		{"negative clamps to zero", -10, 40, 0},
		{"zero", 0, 40, 0},
		{"half", 50, 40, 20},
		{"full", 100, 40, 40},
		{"over full clamps", 150, 40, 40},
		{"zero width row", 50, 0, 0},
	}
	for _, tc := range cases {
		if got := FillWidth(tc.pct, tc.rowWidth); got != tc.want {
			t.Errorf("%s: FillWidth(%v, %d) = %d, want %d", tc.name, tc.pct, tc.rowWidth, got, tc.want)
		}
	}
}

func TestFillWidthMonotonic(t *testing.T) {
	prev := 0
	for pct := 0.0; pct <= 100; pct++ {
		w := FillWidth(pct, 37)
		if w < prev {
			t.Fatalf("Expected fill width to never shrink, got %d after %d at %v%%", w, prev, pct)
		}
		prev = w
	}
	if prev != 37 {
		t.Errorf("Expected full fill to cover the row, got %d of 37", prev)
	}
}

func quizPage() feed.Page {
	return feed.Page{
		ID:       "pg",
		Type:     feed.PageMCQ,
		Question: "Which one?",
		Options: []feed.Option{
			{ID: "a", Text: "Right"},
			{ID: "b", Text: "Wrong"},
			{ID: "c", Text: "Other"},
		},
		CorrectAnswer: "a",
	}
}

func TestQuizRowBeforeAnswer(t *testing.T) {
	page := quizPage()
	p := ContentProps{Width: 40}

	row := quizRow(page, page.Options[0], 0, p)
	if !strings.Contains(row, "1. Right") {
		t.Errorf("Expected numbered neutral row before answering, got %q", row)
	}
	if strings.Contains(row, "✓") || strings.Contains(row, "✗") {
		t.Errorf("Expected no result glyphs before answering, got %q", row)
	}
}

func TestQuizRowWrongSelection(t *testing.T) {
	page := quizPage()
	p := ContentProps{Width: 40, Answered: true, AnsweredOption: "b"}

	if row := quizRow(page, page.Options[0], 0, p); !strings.Contains(row, "✓") {
		t.Errorf("Expected check on the correct row even when not picked, got %q", row)
	}
	if row := quizRow(page, page.Options[1], 1, p); !strings.Contains(row, "✗") {
		t.Errorf("Expected cross on the selected wrong row, got %q", row)
	}
	if row := quizRow(page, page.Options[2], 2, p); strings.Contains(row, "✓") || strings.Contains(row, "✗") {
		t.Errorf("Expected unpicked wrong row unmarked, got %q", row)
	}
}

func TestQuizRowCorrectSelection(t *testing.T) {
	page := quizPage()
	p := ContentProps{Width: 40, Answered: true, AnsweredOption: "a"}

	if row := quizRow(page, page.Options[0], 0, p); !strings.Contains(row, "✓") {
		t.Errorf("Expected check on the picked correct row, got %q", row)
	}
	// No row earns a cross when the pick was right.
	for i, opt := range page.Options {
		if row := quizRow(page, opt, i, p); strings.Contains(row, "✗") {
			t.Errorf("Expected no cross after a correct pick, got %q", row)
		}
	}
}

func TestDotWidthsInterpolation(t *testing.T) {
	pw := 80

	at0 := DotWidths(3, 0, pw)
	if at0[0] != dotMaxWidth {
		t.Errorf("Expected current dot at max width, got %d", at0[0])
	}
	if at0[1] != dotMinWidth || at0[2] != dotMinWidth {
		t.Errorf("Expected far dots at min width, got %v", at0)
	}

	// Halfway between pages both neighbors sit strictly between.
	mid := DotWidths(3, 40, pw)
	for _, i := range []int{0, 1} {
		if mid[i] <= dotMinWidth || mid[i] >= dotMaxWidth {
			t.Errorf("Expected dot %d between min and max at half offset, got %d", i, mid[i])
		}
	}
}

func TestDotWidthsClampAtBoundaries(t *testing.T) {
	pw := 80
	for _, scrollX := range []float64{-500, -1, 1000} {
		for i, w := range DotWidths(3, scrollX, pw) {
			if w < dotMinWidth || w > dotMaxWidth {
				t.Errorf("Expected dot %d width clamped at offset %v, got %d", i, scrollX, w)
			}
		}
	}

	// Degenerate page width must not panic or escape the range.
	for i, w := range DotWidths(3, 40, 0) {
		if w < dotMinWidth || w > dotMaxWidth {
			t.Errorf("Expected dot %d in range with zero page width, got %d", i, w)
		}
	}
}

func TestCalendarGridAlwaysHas42Cells(t *testing.T) {
	cases := []struct {
		name   string
		month  time.Time
		daysIn int
	}{
		{"february non-leap", time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{"february leap", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{"starts on monday", time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC), 31},
		{"starts on sunday", time.Date(2023, time.October, 1, 0, 0, 0, 0, time.UTC), 31},
		{"thirty days", time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC), 30},
	}

	for _, tc := range cases {
		cells := CalendarGrid(tc.month)
		if len(cells) != 42 {
			t.Errorf("%s: expected 42 cells, got %d", tc.name, len(cells))
		}

		current := 0
		firstIdx := -1
		for i, c := range cells {
			if c.CurrentMonth {
				if firstIdx == -1 {
					firstIdx = i
				}
				current++
			}
		}
		if current != tc.daysIn {
			t.Errorf("%s: expected %d in-month cells, got %d", tc.name, tc.daysIn, current)
		}
		if firstIdx == -1 || cells[firstIdx].Day != 1 {
			t.Errorf("%s: expected in-month cells to start at day 1", tc.name)
		}
	}
}
