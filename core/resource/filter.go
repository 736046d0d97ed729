package resource

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/schoolhub/core"
)

// Query holds the filter inputs of a screen.
type Query struct {
	// Search is matched case-insensitively as a substring of any text field.
	Search string
	// Selectors are exact-match filters keyed by selector name. Empty values do not constrain.
	Selectors map[string]string
}

func (q Query) IsEmpty() bool {
	if q.Search != "" {
		return false
	}
	for _, v := range q.Selectors {
		if v != "" {
			return false
		}
	}
	return true
}

// Field extracts a string value from a record.
type Field[T any] func(T) string

// Projection derives the visible subset of a collection from a Query.
type Projection[T any] struct {
	text      []Field[T]
	selectors map[string]Field[T]
}

// NewProjection returns a projection searching over the given text fields.
func NewProjection[T any](text ...Field[T]) *Projection[T] {
	return &Projection[T]{text: text, selectors: make(map[string]Field[T])}
}

// WithSelector registers an exact-match filter.
func (p *Projection[T]) WithSelector(name string, field Field[T]) *Projection[T] {
	p.selectors[name] = field
	return p
}

// SelectorNames returns the registered selector names, sorted.
func (p *Projection[T]) SelectorNames() []string {
	names := make([]string, 0, len(p.selectors))
	for name := range p.selectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check rejects selectors this projection does not know about.
func (p *Projection[T]) Check(q Query) error {
	for name := range q.Selectors {
		if _, ok := p.selectors[name]; !ok {
			return errors.Errorf("unknown filter %q (available: %s)", name, strings.Join(p.SelectorNames(), ", "))
		}
	}
	return nil
}

// Match reports whether item satisfies every active predicate of q.
func (p *Projection[T]) Match(item T, q Query) bool {
	if q.Search != "" && len(p.text) > 0 {
		found := false
		for _, f := range p.text {
			if core.ContainsFold(f(item), q.Search) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for name, want := range q.Selectors {
		if want == "" {
			continue
		}
		f, ok := p.selectors[name]
		if !ok || f(item) != want {
			return false
		}
	}
	return true
}

// Project returns the items matching q, in their original order. items is never modified.
func (p *Projection[T]) Project(items []T, q Query) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if p.Match(item, q) {
			out = append(out, item)
		}
	}
	return out
}
