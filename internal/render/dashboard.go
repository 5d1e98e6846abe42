package render

import (
	"fmt"

	"github.com/abhisek/ifrshub/internal/catalog"
	"github.com/abhisek/ifrshub/internal/style"
)

// ContinueLimit caps the continue-learning list on the dashboard.
const ContinueLimit = 3

// Dashboard renders the home view.
func (r *Renderer) Dashboard(lib *catalog.Library) Dashboard {
	stats := lib.Stats()
	d := Dashboard{
		Greeting:     "Welcome back, Student!",
		Intro:        "Continue your IFRS learning journey and master international accounting standards.",
		UpcomingNote: "All caught up! New tests will appear here.",
		Widgets: []Widget{
			{Label: "Standards Studied", Value: fmt.Sprint(stats.StandardsStudied), Token: style.Info},
			{Label: "Tests Completed", Value: fmt.Sprint(stats.TestsCompleted), Token: style.Positive},
			{Label: "Study Hours", Value: fmt.Sprint(stats.StudyHours), Token: style.Featured},
			{Label: "Average Score", Value: FormatPercent(stats.AverageScore), Token: r.styles.Score(stats.AverageScore)},
		},
		QuickActions: []Action{
			{Label: "Browse Standards", Href: PathStandards},
			{Label: "Practice Examples", Href: PathExamples},
			{Label: "Take a Quiz", Href: PathTests},
		},
	}

	for _, it := range lib.Standards().List() {
		if len(d.Continue) == ContinueLimit {
			break
		}
		progress, _ := it.IntMetric(catalog.MetricProgress)
		if progress <= 0 {
			continue
		}
		d.Continue = append(d.Continue, r.continueCard(it, progress))
	}

	for _, u := range lib.Upcoming() {
		d.Upcoming = append(d.Upcoming, Card{
			Title:    u.Title,
			Subtitle: fmt.Sprintf("%d questions • Due %s", u.Questions, u.Due),
			Action:   Action{Label: "Start Test", Href: PathTests},
		})
	}
	return d
}

func (r *Renderer) continueCard(it catalog.Item, progress int) Card {
	done := progress >= 100
	status, label := "In Progress", "Continue"
	if done {
		status, label = "Completed", "Review"
	}
	return Card{
		ID:       it.ID,
		Title:    it.Title,
		Badges:   []Badge{{Label: status, Token: r.styles.Completion(done)}},
		Progress: &ProgressPanel{Percent: progress, Text: FormatPercent(progress) + " complete"},
		Action:   Action{Label: label, Href: Href(catalog.KindStandard, it.ID)},
	}
}
