package feed

// DefaultPosts returns the static fixture set shown by the feed. Loaded
// once at startup and never mutated.
func DefaultPosts() []Post {
	return []Post{
		{
			ID:       "post_001",
			Headline: "Breaking: Major Transfer News Revealed",
			Category: "Transfers",
			Pages: []Page{
				{
					ID:          "page_001_1",
					Type:        PageNormal,
					Image:       "https://picsum.photos/800/1200?random=1",
					Description: "Several Premier League clubs are preparing significant bids for key targets, with strikers being a priority. Manchester United and Arsenal are at the forefront of these negotiations.",
				},
				{
					ID:       "page_001_2",
					Type:     PagePoll,
					Image:    "https://picsum.photos/800/1200?random=2",
					Question: "Who is the best striker currently?",
					Options: []Option{
						{ID: "opt_001_1", Text: "Erling Haaland", Votes: 45},
						{ID: "opt_001_2", Text: "Kylian Mbappe", Votes: 35},
						{ID: "opt_001_3", Text: "Harry Kane", Votes: 20},
					},
				},
			},
		},
		{
			ID:       "post_002",
			Headline: "Champions League Quarter-Finals Draw",
			Category: "Champions League",
			Pages: []Page{
				{
					ID:          "page_002_1",
					Type:        PageNormal,
					Image:       "https://picsum.photos/800/1200?random=3",
					Description: "The Champions League draw has produced some fascinating matchups, with several heavyweight clashes set to take place in the quarter-finals.",
				},
				{
					ID:       "page_002_2",
					Type:     PageMCQ,
					Image:    "https://picsum.photos/800/1200?random=4",
					Question: "Which team has won the most Champions League titles?",
					Options: []Option{
						{ID: "opt_002_1", Text: "Real Madrid"},
						{ID: "opt_002_2", Text: "AC Milan"},
					},
					CorrectAnswer: "opt_002_1",
				},
			},
		},
		{
			ID:       "post_003",
			Headline: "Premier League Title Race Update",
			Category: "Premier League",
			Pages: []Page{
				{
					ID:          "page_003_1",
					Type:        PageNormal,
					Image:       "https://picsum.photos/800/1200?random=5",
					Description: "The Premier League title race is heating up with just five points separating the top three teams. Each match is becoming increasingly crucial as the season progresses.",
				},
				{
					ID:       "page_003_2",
					Type:     PagePoll,
					Image:    "https://picsum.photos/800/1200?random=6",
					Question: "Who will win the Premier League?",
					Options: []Option{
						{ID: "opt_003_1", Text: "Manchester City", Votes: 40},
						{ID: "opt_003_2", Text: "Arsenal", Votes: 35},
						{ID: "opt_003_3", Text: "Liverpool", Votes: 25},
					},
				},
			},
		},
		{
			ID:       "post_004",
			Headline: "Serie A Latest: Milan Derby Impact on Title Race",
			Category: "Serie A",
			Pages: []Page{
				{
					ID:          "page_004_1",
					Type:        PageNormal,
					Image:       "https://picsum.photos/800/1200?random=7",
					Description: "The Milan derby has significantly impacted the Serie A title race, with both teams showing exceptional quality in a high-stakes match.",
				},
				{
					ID:       "page_004_2",
					Type:     PageMCQ,
					Image:    "https://picsum.photos/800/1200?random=8",
					Question: "Which Milan team has won more Serie A titles?",
					Options: []Option{
						{ID: "opt_004_1", Text: "AC Milan"},
						{ID: "opt_004_2", Text: "Inter Milan"},
					},
					CorrectAnswer: "opt_004_1",
				},
			},
		},
		{
			ID:       "post_005",
			Headline: "La Liga: Barcelona vs Real Madrid Preview",
			Category: "La Liga",
			Pages: []Page{
				{
					ID:          "page_005_1",
					Type:        PageNormal,
					Image:       "https://picsum.photos/800/1200?random=9",
					Description: "El Clásico approaches with both teams in excellent form. The match could be decisive for the La Liga title race.",
				},
				{
					ID:       "page_005_2",
					Type:     PagePoll,
					Image:    "https://picsum.photos/800/1200?random=10",
					Question: "Who will win El Clásico?",
					Options: []Option{
						{ID: "opt_005_1", Text: "Real Madrid", Votes: 38},
						{ID: "opt_005_2", Text: "Barcelona", Votes: 42},
						{ID: "opt_005_3", Text: "Draw", Votes: 20},
					},
				},
			},
		},
		{
			ID:       "post_006",
			Headline: "Bundesliga Rising Stars",
			Category: "Bundesliga",
			Pages: []Page{
				{
					ID:          "page_006_1",
					Type:        PageNormal,
					Image:       "https://picsum.photos/800/1200?random=11",
					Description: "The Bundesliga continues to produce exceptional young talent, with several players catching the eye of major European clubs.",
				},
				{
					ID:       "page_006_2",
					Type:     PageMCQ,
					Image:    "https://picsum.photos/800/1200?random=12",
					Question: "Which club has produced the most Bundesliga players under 21 this season?",
					Options: []Option{
						{ID: "opt_006_1", Text: "Borussia Dortmund"},
						{ID: "opt_006_2", Text: "RB Leipzig"},
					},
					CorrectAnswer: "opt_006_1",
				},
			},
		},
	}
}
