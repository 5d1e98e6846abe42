package render

import (
	"github.com/abhisek/ifrshub/internal/catalog"
)

// StandardDetail renders the detail view of one standard. It reports false
// when the id is not in the standards catalog. Standards without course
// content still render a header.
func (r *Renderer) StandardDetail(lib *catalog.Library, id string) (Detail, bool) {
	it, ok := lib.Standards().Get(id)
	if !ok {
		return Detail{}, false
	}

	header := r.StandardCard(it)
	progress, _ := it.IntMetric(catalog.MetricProgress)
	header.Progress = &ProgressPanel{Percent: progress, Text: FormatPercent(progress) + " complete"}
	header.Action = Action{Label: "Continue Learning"}

	d := Detail{Header: header}
	course, ok := lib.Course(id)
	if !ok {
		return d, true
	}
	d.LastUpdated = course.LastUpdated

	for _, m := range course.Modules {
		d.Modules = append(d.Modules, r.moduleRow(m))
	}
	for _, p := range course.Practice {
		d.Practice = append(d.Practice, Card{
			Title:       p.Title,
			Description: p.Description,
			Badges:      r.difficultyBadges(catalog.Item{Category: p.Category}),
			Stats:       []Stat{{Label: "Duration", Value: FormatDuration(p.DurationMins)}},
			Action:      Action{Label: "Start Example", Href: PathExamples},
		})
	}
	for _, res := range course.Resources {
		d.Resources = append(d.Resources, Card{
			Title:       res.Title,
			Description: res.Description,
			Action:      Action{Label: res.Action, Href: res.Href},
		})
	}
	return d, true
}

func (r *Renderer) moduleRow(m catalog.Module) ModuleRow {
	row := ModuleRow{
		Seq:      m.Seq,
		Title:    m.Title,
		Duration: FormatDuration(m.DurationMins),
		Icon:     m.Type.Icon(),
		Token:    r.styles.Module(m),
		Current:  m.Current,
	}
	switch {
	case m.Completed:
		row.Action = Action{Label: "Review"}
	case m.Current:
		row.Action = Action{Label: "Continue"}
	default:
		row.Action = Action{Label: "Locked", Disabled: true}
	}
	return row
}
