// Package style resolves category values and scores into abstract style
// tokens. Every view uses this one resolver; the mapping to concrete colors
// lives in the theme.
package style

import (
	"fmt"
	"maps"
	"slices"

	"github.com/abhisek/ifrshub/internal/catalog"
)

// Token selects a visual treatment.
type Token string

const (
	Neutral  Token = "neutral" // fallback for anything unmapped
	Positive Token = "positive"
	Caution  Token = "caution"
	Severe   Token = "severe"
	Info     Token = "info"
	Featured Token = "featured"
	Deep     Token = "deep"
)

// AllTokens returns every token in a stable order.
func AllTokens() []Token {
	return []Token{Neutral, Positive, Caution, Severe, Info, Featured, Deep}
}

// ParseToken returns the token named s.
func ParseToken(s string) (Token, error) {
	for _, t := range AllTokens() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown style token %q", s)
}

// Band is a qualitative bucket for a numeric score.
type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Score band lower bounds, inclusive.
const (
	HighScoreMin   = 80
	MediumScoreMin = 70
)

// BandFor buckets a percentage score.
func BandFor(score int) Band {
	switch {
	case score >= HighScoreMin:
		return BandHigh
	case score >= MediumScoreMin:
		return BandMedium
	default:
		return BandLow
	}
}

// Resolver maps categories to tokens. The zero value is not usable; build
// one with New or Default. A Resolver is immutable and safe to share.
type Resolver struct {
	difficulty map[string]Token
	standards  map[string]Token
	bands      map[Band]Token
}

// Option customizes a Resolver.
type Option func(*Resolver)

// WithStandard maps an additional standard code, or overrides a built-in one.
// An empty token is ignored.
func WithStandard(code string, t Token) Option {
	return func(r *Resolver) {
		if t != "" {
			r.standards[code] = t
		}
	}
}

// WithStandards applies WithStandard for every entry of m.
func WithStandards(m map[string]Token) Option {
	return func(r *Resolver) {
		for code, t := range m {
			WithStandard(code, t)(r)
		}
	}
}

// New returns a Resolver with the built-in tables plus opts.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		difficulty: map[string]Token{
			catalog.Beginner:     Positive,
			catalog.Intermediate: Caution,
			catalog.Advanced:     Severe,
		},
		standards: map[string]Token{
			"IFRS 15": Info,
			"IFRS 16": Featured,
			"IFRS 9":  Deep,
			"IFRS 3":  Severe,
			"IAS 1":   Positive,
			"IAS 16":  Positive,
		},
		bands: map[Band]Token{
			BandHigh:   Positive,
			BandMedium: Caution,
			BandLow:    Severe,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultResolver = New()

// Default returns the shared resolver with the built-in tables.
func Default() *Resolver {
	return defaultResolver
}

// StyleFor resolves any category label: a difficulty level, a standard code
// or a band name. Unknown labels resolve to Neutral.
func (r *Resolver) StyleFor(category string) Token {
	if t, ok := r.difficulty[category]; ok {
		return t
	}
	if t, ok := r.standards[category]; ok {
		return t
	}
	if t, ok := r.bands[Band(category)]; ok {
		return t
	}
	return Neutral
}

// Difficulty resolves a difficulty level.
func (r *Resolver) Difficulty(level string) Token {
	return lookup(r.difficulty, level)
}

// Standard resolves a standard code such as "IFRS 15".
func (r *Resolver) Standard(code string) Token {
	return lookup(r.standards, code)
}

// Score resolves a percentage score through its band.
func (r *Resolver) Score(score int) Token {
	return lookup(r.bands, BandFor(score))
}

// Outcome resolves a result outcome.
func (r *Resolver) Outcome(o catalog.Outcome) Token {
	switch o {
	case catalog.OutcomePassed:
		return Positive
	case catalog.OutcomeNeedsImprovement:
		return Caution
	default:
		return Neutral
	}
}

// Completion resolves a learning status badge: finished work is positive,
// anything in flight is informational.
func (r *Resolver) Completion(done bool) Token {
	if done {
		return Positive
	}
	return Info
}

// Module resolves the marker for a course module.
func (r *Resolver) Module(m catalog.Module) Token {
	switch {
	case m.Completed:
		return Positive
	case m.Current:
		return Info
	default:
		return Neutral
	}
}

// Standards returns the mapped standard codes in sorted order.
func (r *Resolver) Standards() []string {
	return slices.Sorted(maps.Keys(r.standards))
}

func lookup[K comparable](m map[K]Token, k K) Token {
	if t, ok := m[k]; ok && t != "" {
		return t
	}
	return Neutral
}
