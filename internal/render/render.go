// Package render turns catalog content into display units. Every function
// is a single pass over its input: output order equals input order, nothing
// is filtered or sorted, and rendering the same input twice gives the same
// result.
package render

import (
	"fmt"
	"strings"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/style"
)

// Renderer builds display units using a shared style resolver.
type Renderer struct {
	styles *style.Resolver
}

// New creates a Renderer. A nil resolver means style.Default().
func New(r *style.Resolver) *Renderer {
	if r == nil {
		r = style.Default()
	}
	return &Renderer{styles: r}
}

// Styles returns the resolver used by this renderer.
func (r *Renderer) Styles() *style.Resolver {
	return r.styles
}

// Standards renders the standards library.
func (r *Renderer) Standards(items []catalog.Item) Page {
	page := Page{
		Title:    "IFRS Standards Library",
		Subtitle: "Comprehensive learning materials for International Financial Reporting Standards",
		Cards:    make([]Card, 0, len(items)),
	}
	for _, it := range items {
		page.Cards = append(page.Cards, r.StandardCard(it))
	}
	return page
}

// StandardCard renders one standard.
func (r *Renderer) StandardCard(it catalog.Item) Card {
	c := Card{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Badges:      r.difficultyBadges(it),
		TagsHeading: "Key Topics",
		Tags:        it.Tags,
		Stats:       durationStat(it),
	}
	if n, ok := it.IntMetric(catalog.MetricStudents); ok {
		c.Stats = append(c.Stats, Stat{Label: "Students", Value: FormatCount(n)})
	}
	if v, ok := it.Metric(catalog.MetricRating); ok {
		c.Stats = append(c.Stats, Stat{Label: "Rating", Value: FormatDecimal(v)})
	}

	progress, _ := it.IntMetric(catalog.MetricProgress)
	if progress > 0 {
		c.Progress = &ProgressPanel{Percent: progress, Text: FormatPercent(progress)}
	}

	label := "Continue"
	switch progress {
	case 0:
		label = "Start Learning"
	case 100:
		label = "Review"
	}
	c.Action = Action{Label: label, Href: Href(catalog.KindStandard, it.ID)}
	return c
}

// Examples renders the practice examples view.
func (r *Renderer) Examples(items []catalog.Item) Page {
	page := Page{
		Title:    "Practice Examples",
		Subtitle: "Work through real-world scenarios to apply IFRS standards in practice",
		Cards:    make([]Card, 0, len(items)),
	}
	for _, it := range items {
		page.Cards = append(page.Cards, r.ExampleCard(it))
	}
	return page
}

// ExampleCard renders one worked example.
func (r *Renderer) ExampleCard(it catalog.Item) Card {
	return Card{
		ID:          it.ID,
		Title:       it.Title,
		Subtitle:    it.Industry,
		Description: it.Description,
		Badges:      append(r.standardBadges(it), r.difficultyBadges(it)...),
		TagsHeading: "Key Concepts",
		Tags:        it.Tags,
		Stats:       durationStat(it),
		Action:      Action{Label: "Start Example", Href: Href(catalog.KindExample, it.ID)},
	}
}

// Tests renders the available tests together with the results sidebar.
func (r *Renderer) Tests(lib *catalog.Library) TestsPage {
	items := lib.Tests().List()
	page := TestsPage{
		Page: Page{
			Title:    "Knowledge Tests",
			Subtitle: "Assess your understanding of IFRS standards with comprehensive quizzes and assessments",
			Cards:    make([]Card, 0, len(items)),
		},
		Results:     r.Results(lib.Results()),
		Recommended: r.Recommend(lib),
	}
	for _, it := range items {
		page.Cards = append(page.Cards, r.TestCard(it))
	}

	stats := lib.Stats()
	page.Statistics = []Widget{
		{Label: "Tests Completed", Value: fmt.Sprint(stats.TestsCompleted), Token: style.Neutral},
		{Label: "Average Score", Value: FormatPercent(stats.AverageScore), Token: r.styles.Score(stats.AverageScore)},
		{Label: "Best Score", Value: FormatPercent(stats.BestScore), Token: r.styles.Score(stats.BestScore)},
		{Label: "Time Spent", Value: FormatDecimal(stats.TimeSpentHours) + " hours", Token: style.Neutral},
	}
	return page
}

// TestCard renders one test. The best score panel appears only when the
// item carries a score.
func (r *Renderer) TestCard(it catalog.Item) Card {
	c := Card{
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		Badges:      append(r.standardBadges(it), r.difficultyBadges(it)...),
	}
	if q, ok := it.IntMetric(catalog.MetricQuestions); ok {
		c.Stats = append(c.Stats, Stat{Label: "Questions", Value: fmt.Sprintf("%d questions", q)})
	}
	c.Stats = append(c.Stats, durationStat(it)...)

	attempts, _ := it.IntMetric(catalog.MetricAttempts)
	if score, ok := it.IntMetric(catalog.MetricScore); ok {
		c.BestScore = &ScorePanel{
			Score:    score,
			Text:     FormatPercent(score),
			Band:     style.BandFor(score),
			Token:    r.styles.Score(score),
			Attempts: attempts,
		}
	}

	label := "Retake Test"
	if attempts == 0 {
		label = "Start Test"
	}
	c.Action = Action{Label: label, Href: Href(catalog.KindTest, it.ID)}
	return c
}

// Results renders past attempts.
func (r *Renderer) Results(results []catalog.ResultRecord) []ResultRow {
	rows := make([]ResultRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, ResultRow{
			Title:        res.SubjectTitle,
			Score:        res.Score,
			ScoreText:    FormatPercent(res.Score),
			Band:         style.BandFor(res.Score),
			ScoreToken:   r.styles.Score(res.Score),
			Recency:      res.Recency,
			Passed:       res.Outcome == catalog.OutcomePassed,
			OutcomeToken: r.styles.Outcome(res.Outcome),
		})
	}
	return rows
}

// Recommend suggests study material for results that need improvement: the
// standard the result's subject belongs to and its first worked example.
// A subject belongs to a standard when it starts with the standard's code
// (the part of the standard title before the colon).
func (r *Renderer) Recommend(lib *catalog.Library) []Action {
	var out []Action
	seen := make(map[string]bool)
	standards := lib.Standards().List()
	examples := lib.Examples().List()

	for _, res := range lib.Results() {
		if res.Outcome != catalog.OutcomeNeedsImprovement {
			continue
		}
		for _, std := range standards {
			code := standardCode(std)
			if code == "" || !strings.HasPrefix(res.SubjectTitle, code+" ") || seen[std.ID] {
				continue
			}
			seen[std.ID] = true
			out = append(out, Action{Label: std.Title, Href: Href(catalog.KindStandard, std.ID)})
			for _, ex := range examples {
				if ex.Standard == code {
					out = append(out, Action{Label: ex.Title, Href: Href(catalog.KindExample, ex.ID)})
					break
				}
			}
		}
	}
	return out
}

// standardCode extracts "IFRS 15" from "IFRS 15: Revenue from Contracts".
func standardCode(std catalog.Item) string {
	code, _, ok := strings.Cut(std.Title, ":")
	if !ok {
		return ""
	}
	return strings.TrimSpace(code)
}

func (r *Renderer) difficultyBadges(it catalog.Item) []Badge {
	if it.Category == "" {
		return nil
	}
	return []Badge{{Label: it.Category, Token: r.styles.Difficulty(it.Category)}}
}

func (r *Renderer) standardBadges(it catalog.Item) []Badge {
	if it.Standard == "" {
		return nil
	}
	return []Badge{{Label: it.Standard, Token: r.styles.Standard(it.Standard)}}
}

func durationStat(it catalog.Item) []Stat {
	mins, ok := it.IntMetric(catalog.MetricDuration)
	if !ok {
		return nil
	}
	return []Stat{{Label: "Duration", Value: FormatDuration(mins)}}
}
