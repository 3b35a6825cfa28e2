package preferences

import (
	"context"
	"strings"
	"sync"
)

const (
	// MaxSearchHistory is the number of recent searches kept.
	MaxSearchHistory = 10

	historyDelimiter = "|||"
)

// AddQuery returns history with q at the front. An existing identical entry is moved rather
// than duplicated, the result is capped at MaxSearchHistory, and blank queries are ignored.
func AddQuery(history []string, q string) []string {
	q = normalizeQuery(q)
	if q == "" {
		return history
	}
	out := make([]string, 0, min(len(history)+1, MaxSearchHistory))
	out = append(out, q)
	for _, h := range history {
		if len(out) == MaxSearchHistory {
			break
		}
		if h != q {
			out = append(out, h)
		}
	}
	return out
}

// RemoveQuery returns history without q.
func RemoveQuery(history []string, q string) []string {
	q = normalizeQuery(q)
	out := make([]string, 0, len(history))
	for _, h := range history {
		if h != q {
			out = append(out, h)
		}
	}
	return out
}

// normalizeQuery trims q and blanks out the storage delimiter.
func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ReplaceAll(q, historyDelimiter, " "))
}

func decodeHistory(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, historyDelimiter)
	out := make([]string, 0, min(len(parts), MaxSearchHistory))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == MaxSearchHistory {
			break
		}
	}
	return out
}

func encodeHistory(history []string) string {
	return strings.Join(history, historyDelimiter)
}

// SearchHistory persists recent searches, newest first.
type SearchHistory struct {
	store Store
	// mu serializes read-modify-write cycles within this process.
	mu sync.Mutex
}

func NewSearchHistory(store Store) *SearchHistory {
	return &SearchHistory{store: store}
}

func (h *SearchHistory) List(ctx context.Context) ([]string, error) {
	raw, _, err := h.store.Get(ctx, KeySearchHistory)
	if err != nil {
		return nil, err
	}
	return decodeHistory(raw), nil
}

// Add records q and returns the updated history.
func (h *SearchHistory) Add(ctx context.Context, q string) ([]string, error) {
	return h.update(ctx, func(cur []string) []string { return AddQuery(cur, q) })
}

// Remove drops q and returns the updated history.
func (h *SearchHistory) Remove(ctx context.Context, q string) ([]string, error) {
	return h.update(ctx, func(cur []string) []string { return RemoveQuery(cur, q) })
}

func (h *SearchHistory) Clear(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.store.Delete(ctx, KeySearchHistory)
}

func (h *SearchHistory) update(ctx context.Context, fn func([]string) []string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cur, err := h.List(ctx)
	if err != nil {
		return nil, err
	}
	next := fn(cur)
	if len(next) == 0 {
		return []string{}, h.store.Delete(ctx, KeySearchHistory)
	}
	if err := h.store.Set(ctx, KeySearchHistory, encodeHistory(next)); err != nil {
		return nil, err
	}
	return next, nil
}
