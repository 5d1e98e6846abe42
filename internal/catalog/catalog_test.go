package catalog

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PreservesOrder(t *testing.T) {
	c, err := New(
		Item{ID: "a", Title: "A"},
		Item{ID: "b", Title: "B"},
		Item{ID: "c", Title: "C"},
	)
	require.NoError(t, err)

	var ids []string
	for _, it := range c.List() {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestList_Deterministic(t *testing.T) {
	c := Default().Standards()
	assert.Equal(t, c.List(), c.List())
}

func TestList_ReturnsCopies(t *testing.T) {
	c := MustNew(Item{
		ID:      "ifrs-15",
		Title:   "IFRS 15",
		Metrics: map[Metric]float64{MetricProgress: 75},
		Tags:    []string{"Revenue"},
	})

	first := c.List()
	first[0].Metrics[MetricProgress] = 10
	first[0].Tags[0] = "changed"
	first[0].Title = "changed"

	again := c.List()
	assert.Equal(t, 75.0, again[0].Metrics[MetricProgress])
	assert.Equal(t, "Revenue", again[0].Tags[0])
	assert.Equal(t, "IFRS 15", again[0].Title)
}

func TestNew_CopiesInput(t *testing.T) {
	tags := []string{"Leases"}
	c := MustNew(Item{ID: "ifrs-16", Title: "IFRS 16", Tags: tags})
	tags[0] = "changed"

	it, ok := c.Get("ifrs-16")
	require.True(t, ok)
	assert.Equal(t, "Leases", it.Tags[0])
}

func TestNew_DuplicateID(t *testing.T) {
	_, err := New(Item{ID: "a", Title: "A"}, Item{ID: "a", Title: "Again"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestNew_RejectsNonSlugIDs(t *testing.T) {
	tests := []string{"", "IFRS 15", "ifrs_15", "-ifrs", "ifrs--15", "Ifrs-15"}
	for _, id := range tests {
		_, err := New(Item{ID: id, Title: "x"})
		assert.ErrorIs(t, err, ErrInvalidItem, "id %q", id)
	}
}

func TestNew_PercentRange(t *testing.T) {
	tests := []struct {
		name    string
		metrics map[Metric]float64
		wantErr bool
	}{
		{"progress zero", map[Metric]float64{MetricProgress: 0}, false},
		{"progress full", map[Metric]float64{MetricProgress: 100}, false},
		{"progress over", map[Metric]float64{MetricProgress: 101}, true},
		{"score negative", map[Metric]float64{MetricScore: -1}, true},
		{"score NaN", map[Metric]float64{MetricScore: math.NaN()}, true},
		{"progress NaN", map[Metric]float64{MetricProgress: math.NaN()}, true},
		{"duration unbounded", map[Metric]float64{MetricDuration: 600}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Item{ID: "x", Title: "X", Metrics: tt.metrics})
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidItem)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_EmptyTitle(t *testing.T) {
	_, err := New(Item{ID: "x", Title: "  "})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestItemMetric_Absent(t *testing.T) {
	it, ok := Lookup(Default().Tests(), "ifrs-15-basic")
	require.True(t, ok)

	_, present := it.Metric(MetricScore)
	assert.False(t, present)

	q, present := it.IntMetric(MetricQuestions)
	assert.True(t, present)
	assert.Equal(t, 15, q)
}

// listOnly hides the Static fast path so Lookup falls back to scanning.
type listOnly struct{ items []Item }

func (l listOnly) List() []Item { return l.items }

func TestLookup(t *testing.T) {
	items := []Item{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}

	for name, c := range map[string]Catalog{
		"static":    MustNew(items...),
		"list only": listOnly{items: items},
	} {
		t.Run(name, func(t *testing.T) {
			it, ok := Lookup(c, "b")
			require.True(t, ok)
			assert.Equal(t, "B", it.Title)

			_, ok = Lookup(c, "missing")
			assert.False(t, ok)
		})
	}
}

func TestKindDisplayName(t *testing.T) {
	assert.Equal(t, "Standards", KindStandard.DisplayName())
	assert.Equal(t, "Examples", KindExample.DisplayName())
	assert.Equal(t, "Tests", KindTest.DisplayName())
	assert.Equal(t, "other", Kind("other").DisplayName())
}

func TestModuleTypeIcon_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, ModuleReading.Icon(), ModuleType("podcast").Icon())
	assert.NotEqual(t, ModuleReading.Icon(), ModuleVideo.Icon())
}
