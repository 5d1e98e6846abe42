package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFile = `
standards:
  - id: ifrs-17
    title: "IFRS 17: Insurance Contracts"
    description: Measurement of insurance contract liabilities.
    category: Advanced
    metrics:
      duration-minutes: 300
      progress-percent: 10
    tags: [Building Block Approach, Contractual Service Margin]
examples:
  - id: insurer-onerous-contract
    title: Onerous Contract Group
    category: Expert
    standard: IFRS 17
    industry: Insurance
    metrics:
      duration-minutes: 30
    tags: [Loss Component]
tests:
  - id: ifrs-17-basics
    title: IFRS 17 Basics
    standard: IFRS 17
    category: Beginner
    metrics:
      question-count: 10
      score-percent: 74
      attempts: 1
results:
  - subject: IFRS 17 Basics
    score: 74
    recency: yesterday
    outcome: needs-improvement
courses:
  - standard: ifrs-17
    last_updated: March 2025
    modules:
      - seq: 1
        title: Scope
        duration_minutes: 20
        type: video
        current: true
upcoming:
  - title: IFRS 17 Mock Exam
    due: Friday
    questions: 30
stats:
  standards_studied: 1
  average_score: 74
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	lib, err := LoadFile(writeFile(t, sampleFile))
	require.NoError(t, err)

	std, ok := lib.Standards().Get("ifrs-17")
	require.True(t, ok)
	assert.Equal(t, KindStandard, std.Kind)
	assert.Equal(t, []string{"Building Block Approach", "Contractual Service Margin"}, std.Tags)
	progress, _ := std.Metric(MetricProgress)
	assert.Equal(t, 10.0, progress)

	test, ok := lib.Tests().Get("ifrs-17-basics")
	require.True(t, ok)
	score, ok := test.IntMetric(MetricScore)
	require.True(t, ok)
	assert.Equal(t, 74, score)

	require.Len(t, lib.Results(), 1)
	assert.Equal(t, OutcomeNeedsImprovement, lib.Results()[0].Outcome)

	course, ok := lib.Course("ifrs-17")
	require.True(t, ok)
	assert.Equal(t, ModuleVideo, course.Modules[0].Type)
	assert.Equal(t, 74, lib.Stats().AverageScore)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown top-level key", "lessons: []\n"},
		{"id not a slug", "standards:\n  - id: IFRS 15\n    title: x\n"},
		{"missing title", "standards:\n  - id: ifrs-15\n"},
		{"progress over 100", "standards:\n  - id: ifrs-15\n    title: x\n    metrics:\n      progress-percent: 150\n"},
		{"bad outcome", "results:\n  - subject: x\n    score: 50\n    outcome: failed\n"},
		{"score not integer", "results:\n  - subject: x\n    score: high\n    outcome: passed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			assert.ErrorIs(t, err, ErrInvalidItem)
		})
	}
}

func TestParse_DuplicateIDCaughtAfterSchema(t *testing.T) {
	body := "examples:\n  - id: a\n    title: A\n  - id: a\n    title: B\n"
	_, err := Parse([]byte(body))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestParse_Empty(t *testing.T) {
	lib, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 0, lib.Standards().Len())
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte("standards: [\n"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	lib := Default()
	data, err := Marshal(lib)
	require.NoError(t, err)

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, lib.Contents(), got.Contents())
}
