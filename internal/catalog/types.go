package catalog

import "slices"

// Kind identifies which catalog an item belongs to.
type Kind string

const (
	KindStandard Kind = "standard"
	KindExample  Kind = "example"
	KindTest     Kind = "test"
)

// AllKinds returns all kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindStandard, KindExample, KindTest}
}

// DisplayName returns a human-readable label for the kind.
func (k Kind) DisplayName() string {
	switch k {
	case KindStandard:
		return "Standards"
	case KindExample:
		return "Examples"
	case KindTest:
		return "Tests"
	default:
		return string(k)
	}
}

// Difficulty levels used by the sample content. The field itself is an
// open string; unknown levels are legal and render with the neutral style.
const (
	Beginner     = "Beginner"
	Intermediate = "Intermediate"
	Advanced     = "Advanced"
)

// Metric names a numeric field on an item.
type Metric string

const (
	MetricDuration  Metric = "duration-minutes"
	MetricScore     Metric = "score-percent"
	MetricProgress  Metric = "progress-percent"
	MetricQuestions Metric = "question-count"
	MetricAttempts  Metric = "attempts"
	MetricRating    Metric = "rating"
	MetricStudents  Metric = "students"
)

// percentMetrics must lie in [0,100] when present.
var percentMetrics = []Metric{MetricProgress, MetricScore}

// Item is one learning unit: a standard, a worked example or a test.
type Item struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Category    string // difficulty level
	Standard    string // e.g. "IFRS 15"; empty for standards themselves
	Industry    string
	Metrics     map[Metric]float64
	Tags        []string
}

// Metric returns the named metric and whether it is present.
func (it Item) Metric(name Metric) (float64, bool) {
	v, ok := it.Metrics[name]
	return v, ok
}

// IntMetric returns the named metric truncated to an int.
func (it Item) IntMetric(name Metric) (int, bool) {
	v, ok := it.Metrics[name]
	return int(v), ok
}

// clone returns a deep copy so callers can never alias catalog state.
func (it Item) clone() Item {
	out := it
	if it.Metrics != nil {
		out.Metrics = make(map[Metric]float64, len(it.Metrics))
		for k, v := range it.Metrics {
			out.Metrics[k] = v
		}
	}
	out.Tags = slices.Clone(it.Tags)
	return out
}

// Outcome is the pass state of a past test attempt.
type Outcome string

const (
	OutcomePassed           Outcome = "passed"
	OutcomeNeedsImprovement Outcome = "needs-improvement"
)

// ResultRecord is a past test attempt shown in the recent results list.
type ResultRecord struct {
	SubjectTitle string
	Score        int
	Recency      string
	Outcome      Outcome
}

// ModuleType is the delivery format of a course module.
type ModuleType string

const (
	ModuleVideo    ModuleType = "video"
	ModuleReading  ModuleType = "reading"
	ModuleExercise ModuleType = "exercise"
)

// Icon returns the display icon for a module type. Unknown types use the
// reading icon.
func (t ModuleType) Icon() string {
	switch t {
	case ModuleVideo:
		return "▶"
	case ModuleExercise:
		return "✎"
	default:
		return "≡"
	}
}

// Module is one lesson in a standard's course.
type Module struct {
	Seq          int
	Title        string
	DurationMins int
	Type         ModuleType
	Completed    bool
	Current      bool
}

// Practice is a short worked example attached to a standard's detail page.
type Practice struct {
	Title        string
	Description  string
	Category     string
	DurationMins int
}

// Resource is a downloadable or linked reference for a standard.
type Resource struct {
	Title       string
	Description string
	Action      string
	Href        string
}

// Course holds the detail-page content for one standard.
type Course struct {
	StandardID  string
	LastUpdated string
	Modules     []Module
	Practice    []Practice
	Resources   []Resource
}

// Upcoming is a scheduled test reminder shown on the dashboard.
type Upcoming struct {
	Title     string
	Due       string
	Questions int
}

// Stats holds the headline numbers shown in dashboard widgets.
type Stats struct {
	StandardsStudied int
	TestsCompleted   int
	StudyHours       int
	AverageScore     int
	BestScore        int
	TimeSpentHours   float64
}
