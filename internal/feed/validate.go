package feed

import (
	"fmt"

	"github.com/samber/lo"
)

// FixtureError reports an invariant violation in the post fixture.
type FixtureError struct {
	PostID string
	PageID string
	Reason string
}

func (e *FixtureError) Error() string {
	if e.PageID != "" {
		return fmt.Sprintf("fixture error: post %s page %s: %s", e.PostID, e.PageID, e.Reason)
	}
	return fmt.Sprintf("fixture error: post %s: %s", e.PostID, e.Reason)
}

// Validate checks the fixture invariants before the feed mounts:
// ids present and unique across the whole set, at least one page per
// post, non-empty options on poll/mcq pages, and mcq CorrectAnswer
// referencing an option of the same page. The first violation found is
// returned.
func Validate(posts []Post) error {
	seenPosts := map[string]bool{}
	seenPages := map[string]bool{}

	for _, post := range posts {
		if post.ID == "" {
			return &FixtureError{PostID: "?", Reason: "empty post id"}
		}
		if seenPosts[post.ID] {
			return &FixtureError{PostID: post.ID, Reason: "duplicate post id"}
		}
		seenPosts[post.ID] = true

		if post.Headline == "" {
			return &FixtureError{PostID: post.ID, Reason: "empty headline"}
		}
		if len(post.Pages) == 0 {
			return &FixtureError{PostID: post.ID, Reason: "post has no pages"}
		}

		for _, page := range post.Pages {
			if err := validatePage(post.ID, page, seenPages); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePage(postID string, page Page, seenPages map[string]bool) error {
	if page.ID == "" {
		return &FixtureError{PostID: postID, Reason: "empty page id"}
	}
	// Page ids key the interaction-state maps, so they must be unique
	// across the whole fixture set, not just within one post.
	if seenPages[page.ID] {
		return &FixtureError{PostID: postID, PageID: page.ID, Reason: "duplicate page id"}
	}
	seenPages[page.ID] = true

	if page.Image == "" {
		return &FixtureError{PostID: postID, PageID: page.ID, Reason: "empty image uri"}
	}

	switch page.Type {
	case PageNormal:
		if len(page.Options) != 0 {
			return &FixtureError{PostID: postID, PageID: page.ID, Reason: "normal page carries options"}
		}

	case PagePoll, PageMCQ:
		if page.Question == "" {
			return &FixtureError{PostID: postID, PageID: page.ID, Reason: "empty question"}
		}
		if len(page.Options) == 0 {
			return &FixtureError{PostID: postID, PageID: page.ID, Reason: "no options"}
		}
		optionIDs := lo.Map(page.Options, func(o Option, _ int) string { return o.ID })
		if len(lo.Uniq(optionIDs)) != len(optionIDs) {
			return &FixtureError{PostID: postID, PageID: page.ID, Reason: "duplicate option id"}
		}
		for _, o := range page.Options {
			if o.ID == "" || o.Text == "" {
				return &FixtureError{PostID: postID, PageID: page.ID, Reason: "option missing id or text"}
			}
		}
		if page.Type == PageMCQ {
			if _, ok := page.Option(page.CorrectAnswer); !ok {
				return &FixtureError{PostID: postID, PageID: page.ID, Reason: "correct answer references unknown option"}
			}
		}

	default:
		return &FixtureError{PostID: postID, PageID: page.ID, Reason: fmt.Sprintf("unknown page type %q", page.Type)}
	}
	return nil
}
