package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Counts(t *testing.T) {
	lib := Default()
	assert.Equal(t, 6, lib.Standards().Len())
	assert.Equal(t, 6, lib.Examples().Len())
	assert.Equal(t, 4, lib.Tests().Len())
	assert.Len(t, lib.Results(), 3)
	assert.Len(t, lib.Upcoming(), 2)
}

func TestDefault_KindsTagged(t *testing.T) {
	lib := Default()
	for _, k := range AllKinds() {
		for _, it := range lib.ByKind(k).List() {
			assert.Equal(t, k, it.Kind, "item %q", it.ID)
		}
	}
	assert.Nil(t, lib.ByKind(Kind("unknown")))
}

func TestDefault_Course(t *testing.T) {
	course, ok := Default().Course("ifrs-15")
	require.True(t, ok)
	assert.Len(t, course.Modules, 8)
	assert.Len(t, course.Practice, 3)
	assert.Len(t, course.Resources, 4)

	var current int
	for _, m := range course.Modules {
		if m.Current {
			current++
		}
	}
	assert.Equal(t, 1, current)

	_, ok = Default().Course("ias-1")
	assert.False(t, ok)
}

// Links between views must resolve: every href a resource carries points at
// a real item.
func TestDefault_ResourceLinksResolve(t *testing.T) {
	course, _ := Default().Course("ifrs-15")
	for _, r := range course.Resources {
		if r.Href == "" {
			continue
		}
		_, ok := Lookup(Default().Tests(), r.Href[len("/tests/"):])
		assert.True(t, ok, "href %q", r.Href)
	}
}

func TestNewLibrary_KindMismatch(t *testing.T) {
	_, err := NewLibrary(Contents{
		Standards: []Item{{ID: "ifrs-15", Title: "IFRS 15", Kind: KindTest}},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestNewLibrary_CourseForUnknownStandard(t *testing.T) {
	_, err := NewLibrary(Contents{
		Standards: []Item{{ID: "ifrs-15", Title: "IFRS 15"}},
		Courses:   []Course{{StandardID: "ifrs-99"}},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestNewLibrary_BadResult(t *testing.T) {
	_, err := NewLibrary(Contents{
		Results: []ResultRecord{{SubjectTitle: "Quiz", Score: 120, Outcome: OutcomePassed}},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)

	_, err = NewLibrary(Contents{
		Results: []ResultRecord{{SubjectTitle: "Quiz", Score: 50, Outcome: "failed"}},
	})
	assert.ErrorIs(t, err, ErrInvalidItem)
}

func TestContents_RoundTrip(t *testing.T) {
	lib, err := NewLibrary(Default().Contents())
	require.NoError(t, err)
	assert.Equal(t, Default().Contents(), lib.Contents())
}
