package resource

import (
	"context"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestList_Refresh(t *testing.T) {
	calls := 0
	l := NewList[string](func(context.Context) ([]string, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("boom")
		}
		return []string{"a", "b"}, nil
	})
	assert.False(t, l.Loaded())
	assert.Equal(t, []string{}, l.Items())

	if err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	assert.True(t, l.Loaded())
	assert.Equal(t, []string{"a", "b"}, l.Items())

	// failures keep the previous snapshot
	assert.Error(t, l.Refresh(context.Background()))
	assert.Equal(t, []string{"a", "b"}, l.Items())
	assert.False(t, l.Loading())
}

func TestList_Items_ReturnsCopy(t *testing.T) {
	l := NewList[string](func(context.Context) ([]string, error) { return []string{"a"}, nil })
	_ = l.Refresh(context.Background())

	items := l.Items()
	items[0] = "z"
	assert.Equal(t, []string{"a"}, l.Items())
}

func TestList_Refresh_DiscardsStaleResponses(t *testing.T) {
	first := make(chan struct{})
	var mu sync.Mutex
	calls := 0

	l := NewList[string](func(context.Context) ([]string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			<-first // the first fetch answers last
			return []string{"old"}, nil
		}
		return []string{"new"}, nil
	})

	errc := make(chan error, 1)
	go func() { errc <- l.Refresh(context.Background()) }()

	// wait for the first refresh to be in flight
	for {
		mu.Lock()
		n := calls
		mu.Unlock()
		if n == 1 {
			break
		}
	}
	assert.True(t, l.Loading())

	if err := l.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	close(first)

	assert.Equal(t, ErrStale, <-errc)
	assert.Equal(t, []string{"new"}, l.Items())
	assert.False(t, l.Loading())
}
