// Package viewstate holds screen-level state for paged lists, the home feed, and user profiles.
// It is safe for concurrent use: network calls run without holding locks and results that were
// superseded by a later Refresh are dropped.
package viewstate

import (
	"context"
	"sync"

	"github.com/cookstemma/edge/internal/optimistic"
	"github.com/cookstemma/edge/internal/types"
)

// PageFunc fetches the page that starts at cursor. The first page has an empty cursor.
type PageFunc[T any] func(ctx context.Context, cursor string) (types.Page[T], error)

// Snapshot is an immutable copy of a Paginator's state.
type Snapshot[T any] struct {
	Items        []T
	HasMore      bool
	Loading      bool
	LoadingMore  bool
	ErrorMessage string
}

// Paginator accumulates pages from a PageFunc.
type Paginator[T any] struct {
	fetch PageFunc[T]
	key   func(T) string

	mu          sync.Mutex
	items       []T
	index       map[string]int
	cursor      string
	hasMore     bool
	loading     bool
	loadingMore bool
	generation  uint64
	errMsg      string
}

// NewPaginator creates a Paginator. key identifies items so pages that overlap are deduplicated.
func NewPaginator[T any](fetch PageFunc[T], key func(T) string) *Paginator[T] {
	return &Paginator[T]{fetch: fetch, key: key, index: map[string]int{}}
}

// Refresh loads the first page and replaces the current items. On failure the current items are
// kept and ErrorMessage is set.
func (p *Paginator[T]) Refresh(ctx context.Context) error {
	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.loading = true
	p.loadingMore = false
	p.mu.Unlock()

	page, err := p.fetch(ctx, "")

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return nil
	}
	p.loading = false
	if err != nil {
		p.errMsg = types.UserMessage(err)
		return err
	}

	p.items = p.items[:0:0]
	p.index = map[string]int{}
	p.appendLocked(page.Content)
	p.cursor = page.NextCursor
	p.hasMore = page.HasMore
	p.errMsg = ""
	return nil
}

// LoadMore appends the next page. It does nothing when there are no more pages or when a
// Refresh or another LoadMore is already in flight.
func (p *Paginator[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if !p.hasMore || p.loading || p.loadingMore {
		p.mu.Unlock()
		return nil
	}
	p.loadingMore = true
	gen := p.generation
	cursor := p.cursor
	p.mu.Unlock()

	page, err := p.fetch(ctx, cursor)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return nil
	}
	p.loadingMore = false
	if err != nil {
		p.errMsg = types.UserMessage(err)
		return err
	}

	p.appendLocked(page.Content)
	p.cursor = page.NextCursor
	p.hasMore = page.HasMore
	p.errMsg = ""
	return nil
}

func (p *Paginator[T]) appendLocked(items []T) {
	for _, item := range items {
		k := p.key(item)
		if _, seen := p.index[k]; seen {
			continue
		}
		p.index[k] = len(p.items)
		p.items = append(p.items, item)
	}
}

// Snapshot returns a copy of the current state.
func (p *Paginator[T]) Snapshot() Snapshot[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	items := make([]T, len(p.items))
	copy(items, p.items)
	return Snapshot[T]{
		Items:        items,
		HasMore:      p.hasMore,
		Loading:      p.loading,
		LoadingMore:  p.loadingMore,
		ErrorMessage: p.errMsg,
	}
}

// Get returns the item with the given key.
func (p *Paginator[T]) Get(key string) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.index[key]
	if !ok {
		var zero T
		return zero, false
	}
	return p.items[i], true
}

// Update replaces the item with the given key by fn(item). It reports whether the item exists.
func (p *Paginator[T]) Update(key string, fn func(T) T) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	i, ok := p.index[key]
	if !ok {
		return false
	}
	p.items[i] = fn(p.items[i])
	return true
}

// ErrorMessage is the message of the last failed load, empty after a successful one.
func (p *Paginator[T]) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errMsg
}

// toggleTarget exposes one item's flag and counter to optimistic.Apply. Stores against an item
// that has since disappeared are dropped.
func toggleTarget[T any](p *Paginator[T], key string, get func(T) optimistic.ToggleState, set func(T, optimistic.ToggleState) T) optimistic.Target {
	return optimistic.FuncTarget{
		LoadFunc: func() optimistic.ToggleState {
			item, _ := p.Get(key)
			return get(item)
		},
		StoreFunc: func(s optimistic.ToggleState) {
			p.Update(key, func(item T) T { return set(item, s) })
		},
	}
}
