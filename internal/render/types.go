package render

import "github.com/abhisek/ifrshub/internal/style"

// Badge is a short styled label.
type Badge struct {
	Label string      `json:"label"`
	Token style.Token `json:"token"`
}

// Stat is a labelled value in a card's stat row.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Action is a card's call to action. An empty Href means the action has no
// destination yet.
type Action struct {
	Label    string `json:"label"`
	Href     string `json:"href,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

// ProgressPanel shows completion of a standard.
type ProgressPanel struct {
	Percent int    `json:"percent"`
	Text    string `json:"text"`
}

// ScorePanel shows the best score of a test.
type ScorePanel struct {
	Score    int         `json:"score"`
	Text     string      `json:"text"`
	Band     style.Band  `json:"band"`
	Token    style.Token `json:"token"`
	Attempts int         `json:"attempts"`
}

// Card is one display unit, built from one catalog item.
type Card struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Description string         `json:"description,omitempty"`
	Badges      []Badge        `json:"badges,omitempty"`
	TagsHeading string         `json:"tagsHeading,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	Stats       []Stat         `json:"stats,omitempty"`
	Progress    *ProgressPanel `json:"progress,omitempty"`
	BestScore   *ScorePanel    `json:"bestScore,omitempty"`
	Action      Action         `json:"action"`
}

// Page is a titled list of cards.
type Page struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Cards    []Card `json:"cards"`
}

// Widget is a headline number.
type Widget struct {
	Label string      `json:"label"`
	Value string      `json:"value"`
	Token style.Token `json:"token"`
}

// ResultRow is one past test attempt.
type ResultRow struct {
	Title        string      `json:"title"`
	Score        int         `json:"score"`
	ScoreText    string      `json:"scoreText"`
	Band         style.Band  `json:"band"`
	ScoreToken   style.Token `json:"scoreToken"`
	Recency      string      `json:"recency"`
	Passed       bool        `json:"passed"`
	OutcomeToken style.Token `json:"outcomeToken"`
}

// TestsPage is the tests view: available tests plus the sidebar.
type TestsPage struct {
	Page
	Statistics  []Widget    `json:"statistics"`
	Results     []ResultRow `json:"results"`
	Recommended []Action    `json:"recommended"`
}

// Dashboard is the home view.
type Dashboard struct {
	Greeting     string   `json:"greeting"`
	Intro        string   `json:"intro"`
	Widgets      []Widget `json:"widgets"`
	Continue     []Card   `json:"continue"`
	Upcoming     []Card   `json:"upcoming"`
	UpcomingNote string   `json:"upcomingNote"`
	QuickActions []Action `json:"quickActions"`
}

// ModuleRow is one lesson of a standard's course.
type ModuleRow struct {
	Seq      int         `json:"seq"`
	Title    string      `json:"title"`
	Duration string      `json:"duration"`
	Icon     string      `json:"icon"`
	Token    style.Token `json:"token"`
	Current  bool        `json:"current,omitempty"`
	Action   Action      `json:"action"`
}

// Detail is the standard detail view.
type Detail struct {
	Header      Card        `json:"header"`
	LastUpdated string      `json:"lastUpdated,omitempty"`
	Modules     []ModuleRow `json:"modules,omitempty"`
	Practice    []Card      `json:"practice,omitempty"`
	Resources   []Card      `json:"resources,omitempty"`
}
