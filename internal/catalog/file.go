package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var fileSchemaJSON []byte

const fileSchemaURL = "schema://catalog-file.json"

var compiledFileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(fileSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(fileSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(fileSchemaURL)
})

// fileDoc mirrors the YAML catalog file layout.
type fileDoc struct {
	Standards []fileItem     `yaml:"standards,omitempty"`
	Examples  []fileItem     `yaml:"examples,omitempty"`
	Tests     []fileItem     `yaml:"tests,omitempty"`
	Results   []fileResult   `yaml:"results,omitempty"`
	Courses   []fileCourse   `yaml:"courses,omitempty"`
	Upcoming  []fileUpcoming `yaml:"upcoming,omitempty"`
	Stats     fileStats      `yaml:"stats,omitempty"`
}

type fileItem struct {
	ID          string             `yaml:"id"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description,omitempty"`
	Category    string             `yaml:"category,omitempty"`
	Standard    string             `yaml:"standard,omitempty"`
	Industry    string             `yaml:"industry,omitempty"`
	Metrics     map[string]float64 `yaml:"metrics,omitempty"`
	Tags        []string           `yaml:"tags,omitempty"`
}

type fileResult struct {
	Subject string `yaml:"subject"`
	Score   int    `yaml:"score"`
	Recency string `yaml:"recency,omitempty"`
	Outcome string `yaml:"outcome"`
}

type fileCourse struct {
	Standard    string         `yaml:"standard"`
	LastUpdated string         `yaml:"last_updated,omitempty"`
	Modules     []fileModule   `yaml:"modules,omitempty"`
	Practice    []filePractice `yaml:"practice,omitempty"`
	Resources   []fileResource `yaml:"resources,omitempty"`
}

type fileModule struct {
	Seq          int    `yaml:"seq,omitempty"`
	Title        string `yaml:"title"`
	DurationMins int    `yaml:"duration_minutes,omitempty"`
	Type         string `yaml:"type,omitempty"`
	Completed    bool   `yaml:"completed,omitempty"`
	Current      bool   `yaml:"current,omitempty"`
}

type filePractice struct {
	Title        string `yaml:"title"`
	Description  string `yaml:"description,omitempty"`
	Category     string `yaml:"category,omitempty"`
	DurationMins int    `yaml:"duration_minutes,omitempty"`
}

type fileResource struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Action      string `yaml:"action,omitempty"`
	Href        string `yaml:"href,omitempty"`
}

type fileUpcoming struct {
	Title     string `yaml:"title"`
	Due       string `yaml:"due,omitempty"`
	Questions int    `yaml:"questions,omitempty"`
}

type fileStats struct {
	StandardsStudied int     `yaml:"standards_studied,omitempty"`
	TestsCompleted   int     `yaml:"tests_completed,omitempty"`
	StudyHours       int     `yaml:"study_hours,omitempty"`
	AverageScore     int     `yaml:"average_score,omitempty"`
	BestScore        int     `yaml:"best_score,omitempty"`
	TimeSpentHours   float64 `yaml:"time_spent_hours,omitempty"`
}

// LoadFile reads a YAML catalog file, checks it against the catalog file
// schema and builds a Library from it.
func LoadFile(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	lib, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// Parse builds a Library from YAML catalog data.
func Parse(data []byte) (*Library, error) {
	if err := validateFile(data); err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewLibrary(doc.contents())
}

// validateFile runs the schema check. The YAML is decoded generically and
// round-tripped through JSON so the validator sees JSON-typed values.
func validateFile(data []byte) error {
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("parse catalog YAML: %w", err)
	}
	if generic == nil {
		generic = map[string]any{}
	}
	raw, err := json.Marshal(generic)
	if err != nil {
		return fmt.Errorf("convert catalog to JSON: %w", err)
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("convert catalog to JSON: %w", err)
	}

	schema, err := compiledFileSchema()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("%w: schema validation failed: %w", ErrInvalidItem, err)
	}
	return nil
}

func (d fileDoc) contents() Contents {
	c := Contents{
		Standards: convertItems(d.Standards),
		Examples:  convertItems(d.Examples),
		Tests:     convertItems(d.Tests),
		Stats: Stats{
			StandardsStudied: d.Stats.StandardsStudied,
			TestsCompleted:   d.Stats.TestsCompleted,
			StudyHours:       d.Stats.StudyHours,
			AverageScore:     d.Stats.AverageScore,
			BestScore:        d.Stats.BestScore,
			TimeSpentHours:   d.Stats.TimeSpentHours,
		},
	}
	for _, r := range d.Results {
		c.Results = append(c.Results, ResultRecord{
			SubjectTitle: r.Subject,
			Score:        r.Score,
			Recency:      r.Recency,
			Outcome:      Outcome(r.Outcome),
		})
	}
	for _, fc := range d.Courses {
		course := Course{StandardID: fc.Standard, LastUpdated: fc.LastUpdated}
		for _, m := range fc.Modules {
			course.Modules = append(course.Modules, Module{
				Seq:          m.Seq,
				Title:        m.Title,
				DurationMins: m.DurationMins,
				Type:         ModuleType(m.Type),
				Completed:    m.Completed,
				Current:      m.Current,
			})
		}
		for _, p := range fc.Practice {
			course.Practice = append(course.Practice, Practice(p))
		}
		for _, r := range fc.Resources {
			course.Resources = append(course.Resources, Resource(r))
		}
		c.Courses = append(c.Courses, course)
	}
	for _, u := range d.Upcoming {
		c.Upcoming = append(c.Upcoming, Upcoming(u))
	}
	return c
}

func convertItems(in []fileItem) []Item {
	out := make([]Item, 0, len(in))
	for _, fi := range in {
		it := Item{
			ID:          fi.ID,
			Title:       fi.Title,
			Description: fi.Description,
			Category:    fi.Category,
			Standard:    fi.Standard,
			Industry:    fi.Industry,
			Tags:        fi.Tags,
		}
		if len(fi.Metrics) > 0 {
			it.Metrics = make(map[Metric]float64, len(fi.Metrics))
			for k, v := range fi.Metrics {
				it.Metrics[Metric(k)] = v
			}
		}
		out = append(out, it)
	}
	return out
}

// Marshal encodes a Library in the catalog file format. Parse(Marshal(lib))
// yields an equivalent Library.
func Marshal(lib *Library) ([]byte, error) {
	c := lib.Contents()
	doc := fileDoc{
		Standards: fileItems(c.Standards),
		Examples:  fileItems(c.Examples),
		Tests:     fileItems(c.Tests),
		Stats: fileStats{
			StandardsStudied: c.Stats.StandardsStudied,
			TestsCompleted:   c.Stats.TestsCompleted,
			StudyHours:       c.Stats.StudyHours,
			AverageScore:     c.Stats.AverageScore,
			BestScore:        c.Stats.BestScore,
			TimeSpentHours:   c.Stats.TimeSpentHours,
		},
	}
	for _, r := range c.Results {
		doc.Results = append(doc.Results, fileResult{
			Subject: r.SubjectTitle,
			Score:   r.Score,
			Recency: r.Recency,
			Outcome: string(r.Outcome),
		})
	}
	for _, course := range c.Courses {
		fc := fileCourse{Standard: course.StandardID, LastUpdated: course.LastUpdated}
		for _, m := range course.Modules {
			fc.Modules = append(fc.Modules, fileModule{
				Seq:          m.Seq,
				Title:        m.Title,
				DurationMins: m.DurationMins,
				Type:         string(m.Type),
				Completed:    m.Completed,
				Current:      m.Current,
			})
		}
		for _, p := range course.Practice {
			fc.Practice = append(fc.Practice, filePractice(p))
		}
		for _, r := range course.Resources {
			fc.Resources = append(fc.Resources, fileResource(r))
		}
		doc.Courses = append(doc.Courses, fc)
	}
	for _, u := range c.Upcoming {
		doc.Upcoming = append(doc.Upcoming, fileUpcoming(u))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return buf.Bytes(), nil
}

func fileItems(in []Item) []fileItem {
	out := make([]fileItem, 0, len(in))
	for _, it := range in {
		fi := fileItem{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			Category:    it.Category,
			Standard:    it.Standard,
			Industry:    it.Industry,
			Tags:        it.Tags,
		}
		if len(it.Metrics) > 0 {
			fi.Metrics = make(map[string]float64, len(it.Metrics))
			for k, v := range it.Metrics {
				fi.Metrics[string(k)] = v
			}
		}
		out = append(out, fi)
	}
	return out
}
