package resource

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrStale is returned by List.Refresh when a newer refresh was started before this one finished.
// The stale response is discarded.
var ErrStale = errors.New("stale response discarded")

// Fetcher loads a whole collection.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// List holds the last fetched snapshot of a collection. It is safe for concurrent use.
type List[T any] struct {
	fetch Fetcher[T]

	mu      sync.RWMutex
	items   []T
	seq     uint64 // last issued refresh
	loading bool
	loaded  bool
}

func NewList[T any](fetch Fetcher[T]) *List[T] {
	return &List[T]{fetch: fetch, items: make([]T, 0)}
}

// Refresh replaces the whole collection with a fresh fetch.
// Only the most recently started refresh may update the list; older ones return ErrStale.
// On fetch error the previous snapshot is kept.
func (l *List[T]) Refresh(ctx context.Context) error {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.loading = true
	l.mu.Unlock()

	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if seq != l.seq {
		return ErrStale
	}
	l.loading = false
	if err != nil {
		return err
	}
	l.items = append(make([]T, 0, len(items)), items...)
	l.loaded = true
	return nil
}

// Items returns a copy of the current snapshot.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append(make([]T, 0, len(l.items)), l.items...)
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Loading reports whether the latest refresh is still in flight.
func (l *List[T]) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Loaded reports whether at least one refresh succeeded.
func (l *List[T]) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}
