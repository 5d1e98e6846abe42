package catalog

import (
	"errors"
	"fmt"
	"slices"
)

// Contents is the raw material of a Library, as read from a seed, a file or
// the store.
type Contents struct {
	Standards []Item
	Examples  []Item
	Tests     []Item
	Results   []ResultRecord
	Courses   []Course
	Upcoming  []Upcoming
	Stats     Stats
}

// Library groups every catalog the views draw from.
type Library struct {
	standards *Static
	examples  *Static
	tests     *Static
	results   []ResultRecord
	courses   map[string]Course
	upcoming  []Upcoming
	stats     Stats
}

// NewLibrary validates c and builds a Library. Items with an empty Kind take
// the kind of the list they appear in; a conflicting Kind is an error.
func NewLibrary(c Contents) (*Library, error) {
	var errs []error

	build := func(kind Kind, items []Item) *Static {
		tagged := make([]Item, len(items))
		for i, it := range items {
			if it.Kind == "" {
				it.Kind = kind
			}
			if it.Kind != kind {
				errs = append(errs, fmt.Errorf("%w: %q has kind %q in %s list", ErrInvalidItem, it.ID, it.Kind, kind))
			}
			tagged[i] = it
		}
		s, err := New(tagged...)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", kind, err))
			return nil
		}
		return s
	}

	lib := &Library{
		standards: build(KindStandard, c.Standards),
		examples:  build(KindExample, c.Examples),
		tests:     build(KindTest, c.Tests),
		results:   slices.Clone(c.Results),
		courses:   make(map[string]Course, len(c.Courses)),
		upcoming:  slices.Clone(c.Upcoming),
		stats:     c.Stats,
	}

	if err := validateResults(c.Results); err != nil {
		errs = append(errs, err)
	}

	for _, course := range c.Courses {
		if lib.standards != nil {
			if _, ok := lib.standards.Get(course.StandardID); !ok {
				errs = append(errs, fmt.Errorf("%w: course for unknown standard %q", ErrInvalidItem, course.StandardID))
			}
		}
		lib.courses[course.StandardID] = cloneCourse(course)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return lib, nil
}

// Standards returns the standards catalog.
func (l *Library) Standards() *Static { return l.standards }

// Examples returns the worked examples catalog.
func (l *Library) Examples() *Static { return l.examples }

// Tests returns the tests catalog.
func (l *Library) Tests() *Static { return l.tests }

// ByKind returns the catalog holding items of kind k, or nil.
func (l *Library) ByKind(k Kind) *Static {
	switch k {
	case KindStandard:
		return l.standards
	case KindExample:
		return l.examples
	case KindTest:
		return l.tests
	default:
		return nil
	}
}

// Results returns past test attempts, most recent first.
func (l *Library) Results() []ResultRecord {
	return slices.Clone(l.results)
}

// Course returns the detail content for a standard.
func (l *Library) Course(standardID string) (Course, bool) {
	c, ok := l.courses[standardID]
	if !ok {
		return Course{}, false
	}
	return cloneCourse(c), true
}

// Upcoming returns scheduled test reminders.
func (l *Library) Upcoming() []Upcoming {
	return slices.Clone(l.upcoming)
}

// Stats returns the headline numbers.
func (l *Library) Stats() Stats {
	return l.stats
}

// Contents returns a copy of everything in the library. Courses are ordered
// by their standard's position in the standards catalog.
func (l *Library) Contents() Contents {
	c := Contents{
		Standards: l.standards.List(),
		Examples:  l.examples.List(),
		Tests:     l.tests.List(),
		Results:   l.Results(),
		Upcoming:  l.Upcoming(),
		Stats:     l.stats,
	}
	for _, s := range c.Standards {
		if course, ok := l.Course(s.ID); ok {
			c.Courses = append(c.Courses, course)
		}
	}
	return c
}

func cloneCourse(c Course) Course {
	c.Modules = slices.Clone(c.Modules)
	c.Practice = slices.Clone(c.Practice)
	c.Resources = slices.Clone(c.Resources)
	return c
}
