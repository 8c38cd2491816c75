package feed

// PageType discriminates the Page union.
type PageType string

const (
	PageNormal PageType = "normal"
	PagePoll   PageType = "poll"
	PageMCQ    PageType = "mcq"
)

// Option is one selectable answer on a poll or quiz page.
// Votes is a 0-100 percentage and only meaningful on poll pages.
type Option struct {
	ID    string
	Text  string
	Votes int
}

// Page is one swipeable unit within a Post. Which fields are set
// depends on Type: normal pages carry Description, poll pages carry
// Question and Options (with Votes), mcq pages carry Question, Options
// and CorrectAnswer.
type Page struct {
	ID            string
	Type          PageType
	Image         string
	Description   string
	Question      string
	Options       []Option
	CorrectAnswer string
}

// Option returns the option with the given id, if present.
func (p Page) Option(id string) (Option, bool) {
	for _, o := range p.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Post is one feed entry: a headline plus an ordered sequence of pages.
// Fixture data is immutable at runtime; identity is ID.
type Post struct {
	ID       string
	Headline string
	Category string
	Pages    []Page
}

// FirstPage returns the leading page. The fixture invariant guarantees
// at least one page per post.
func (p Post) FirstPage() Page {
	return p.Pages[0]
}

// Provider supplies the posts shown by the feed. The static fixture is
// the only implementation in this repo; a real data source slots in
// behind the same interface.
type Provider interface {
	Posts() []Post
}

// FixtureProvider serves the compiled-in fixture set.
type FixtureProvider struct {
	posts []Post
}

func NewFixtureProvider(posts []Post) FixtureProvider {
	return FixtureProvider{posts: posts}
}

func (f FixtureProvider) Posts() []Post {
	return f.posts
}
