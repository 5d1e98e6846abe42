// Package catalog holds the learning content shown by every view: standards,
// worked examples, tests and past results. Content is loaded once and is
// read-only afterwards.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidItem = errors.New("invalid catalog item")
	ErrDuplicateID = errors.New("duplicate catalog id")
)

// Catalog supplies a fixed, ordered sequence of items. List returns the same
// sequence on every call and never a partial result.
type Catalog interface {
	List() []Item
}

// Static is a Catalog over a validated in-memory slice.
type Static struct {
	items []Item
	byID  map[string]int
}

var _ Catalog = (*Static)(nil)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// New validates items and returns a Static catalog preserving their order.
// Inputs are copied, so later changes to the caller's slice are not seen.
func New(items ...Item) (*Static, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}
	s := &Static{
		items: make([]Item, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for i, it := range items {
		s.items[i] = it.clone()
		s.byID[it.ID] = i
	}
	return s, nil
}

// MustNew is New for built-in content; it panics on invalid input.
func MustNew(items ...Item) *Static {
	s, err := New(items...)
	if err != nil {
		panic(err)
	}
	return s
}

// List returns a copy of the items in catalog order.
func (s *Static) List() []Item {
	out := make([]Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.clone()
	}
	return out
}

// Get returns the item with the given id.
func (s *Static) Get(id string) (Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Item{}, false
	}
	return s.items[i].clone(), true
}

// Len returns the number of items.
func (s *Static) Len() int {
	return len(s.items)
}

// Lookup resolves an identifier against any Catalog. This is how one view
// follows a link produced by another.
func Lookup(c Catalog, id string) (Item, bool) {
	if s, ok := c.(*Static); ok {
		return s.Get(id)
	}
	for _, it := range c.List() {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// IsSlug reports whether id is a valid URL-safe identifier.
func IsSlug(id string) bool {
	return slugPattern.MatchString(id)
}

// validateItems checks identifiers and metric ranges. All problems are
// reported together.
func validateItems(items []Item) error {
	var errs []error
	seen := make(map[string]bool, len(items))

	for i, it := range items {
		if !IsSlug(it.ID) {
			errs = append(errs, fmt.Errorf("%w: item %d: id %q is not a slug", ErrInvalidItem, i, it.ID))
		}
		if seen[it.ID] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateID, it.ID))
		}
		seen[it.ID] = true

		if strings.TrimSpace(it.Title) == "" {
			errs = append(errs, fmt.Errorf("%w: %q: empty title", ErrInvalidItem, it.ID))
		}
		for _, m := range percentMetrics {
			if v, ok := it.Metrics[m]; ok && !(v >= 0 && v <= 100) {
				errs = append(errs, fmt.Errorf("%w: %q: %s %v outside [0,100]", ErrInvalidItem, it.ID, m, v))
			}
		}
	}
	return errors.Join(errs...)
}

// validateResults checks that every score is a percentage.
func validateResults(results []ResultRecord) error {
	var errs []error
	for i, r := range results {
		if r.Score < 0 || r.Score > 100 {
			errs = append(errs, fmt.Errorf("%w: result %d: score %d outside [0,100]", ErrInvalidItem, i, r.Score))
		}
		switch r.Outcome {
		case OutcomePassed, OutcomeNeedsImprovement:
		default:
			errs = append(errs, fmt.Errorf("%w: result %d: unknown outcome %q", ErrInvalidItem, i, r.Outcome))
		}
	}
	return errors.Join(errs...)
}
