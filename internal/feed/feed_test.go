package feed

import (
	"errors"
	"testing"
)

func TestDefaultPostsValid(t *testing.T) {
	posts := DefaultPosts()
	if len(posts) != 6 {
		t.Fatalf("Expected 6 fixture posts, got %d", len(posts))
	}
	if err := Validate(posts); err != nil {
		t.Fatalf("Expected default fixture to validate, got %v", err)
	}
}

func TestFixtureProviderServesPosts(t *testing.T) {
	posts := DefaultPosts()
	var p Provider = NewFixtureProvider(posts)

	got := p.Posts()
	if len(got) != len(posts) {
		t.Fatalf("Expected %d posts from provider, got %d", len(posts), len(got))
	}
	if got[0].ID != "post_001" {
		t.Errorf("Expected first post post_001, got %s", got[0].ID)
	}
}

func TestPageOptionLookup(t *testing.T) {
	page := DefaultPosts()[1].Pages[1] // mcq page

	opt, ok := page.Option("opt_002_1")
	if !ok {
		t.Fatal("Expected opt_002_1 to exist")
	}
	if opt.Text != "Real Madrid" {
		t.Errorf("Expected option text 'Real Madrid', got %q", opt.Text)
	}

	if _, ok := page.Option("missing"); ok {
		t.Error("Expected lookup of unknown option to fail")
	}
}

func TestValidateRejectsMalformedFixtures(t *testing.T) {
	base := func() []Post {
		return []Post{
			{
				ID:       "p1",
				Headline: "h",
				Category: "c",
				Pages: []Page{
					{ID: "g1", Type: PageNormal, Image: "http://img", Description: "d"},
				},
			},
		}
	}

	tests := []struct {
		name   string
		mutate func([]Post) []Post
	}{
		{
			name: "duplicate post id",
			mutate: func(p []Post) []Post {
				dup := p[0]
				dup.Pages = []Page{{ID: "g2", Type: PageNormal, Image: "http://img"}}
				return append(p, dup)
			},
		},
		{
			name: "duplicate page id across posts",
			mutate: func(p []Post) []Post {
				other := Post{ID: "p2", Headline: "h", Pages: []Page{
					{ID: "g1", Type: PageNormal, Image: "http://img"},
				}}
				return append(p, other)
			},
		},
		{
			name: "post without pages",
			mutate: func(p []Post) []Post {
				p[0].Pages = nil
				return p
			},
		},
		{
			name: "poll without options",
			mutate: func(p []Post) []Post {
				p[0].Pages[0] = Page{ID: "g1", Type: PagePoll, Image: "http://img", Question: "q"}
				return p
			},
		},
		{
			name: "mcq correct answer missing",
			mutate: func(p []Post) []Post {
				p[0].Pages[0] = Page{
					ID: "g1", Type: PageMCQ, Image: "http://img", Question: "q",
					Options:       []Option{{ID: "o1", Text: "a"}},
					CorrectAnswer: "o9",
				}
				return p
			},
		},
		{
			name: "unknown page type",
			mutate: func(p []Post) []Post {
				p[0].Pages[0].Type = "video"
				return p
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.mutate(base()))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			var fe *FixtureError
			if !errors.As(err, &fe) {
				t.Fatalf("Expected *FixtureError, got %T", err)
			}
		})
	}
}
