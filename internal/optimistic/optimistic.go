// Package optimistic applies boolean toggles (like, save, follow) to local state before the
// backend confirms them, and rolls them back when the backend call fails.
//
// Repeated toggles on the same entity are not coalesced. Each Apply snapshots the state it saw
// and restores that snapshot on failure, so interleaved failures can leave a stale state until
// the next refresh.
package optimistic

import (
	"context"
	"log/slog"
	"sync"

	"github.com/cookstemma/edge/internal/observability"
)

// Kind labels a toggle for logging and metrics.
type Kind string

const (
	KindLike   Kind = "like"
	KindSave   Kind = "save"
	KindFollow Kind = "follow"
)

// ToggleState is a flag together with its denormalized counter.
type ToggleState struct {
	Active bool
	Count  int
}

// Toggle flips Active and moves Count by exactly one. Count never goes below zero.
func Toggle(s ToggleState) ToggleState {
	if s.Active {
		return ToggleState{Active: false, Count: max(s.Count-1, 0)}
	}
	return ToggleState{Active: true, Count: s.Count + 1}
}

// Target is the piece of state a toggle reads and publishes. Implementations must be safe for
// concurrent use when toggles run asynchronously.
type Target interface {
	Load() ToggleState
	Store(ToggleState)
}

// FuncTarget adapts a pair of closures to Target.
type FuncTarget struct {
	LoadFunc  func() ToggleState
	StoreFunc func(ToggleState)
}

func (f FuncTarget) Load() ToggleState    { return f.LoadFunc() }
func (f FuncTarget) Store(s ToggleState) { f.StoreFunc(s) }

// Value is a standalone mutex-guarded Target.
type Value struct {
	mu    sync.Mutex
	state ToggleState
}

func NewValue(s ToggleState) *Value { return &Value{state: s} }

func (v *Value) Load() ToggleState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Value) Store(s ToggleState) {
	v.mu.Lock()
	v.state = s
	v.mu.Unlock()
}

// Call performs the backend mutation. desired is the flag value the backend should end up with.
type Call func(ctx context.Context, desired bool) error

// Apply publishes the toggled state, runs call, and restores the previous state if call fails.
// The error is returned for callers that want it; view state ignores it because the rollback
// is the only feedback the user gets.
func Apply(ctx context.Context, kind Kind, target Target, call Call) error {
	before, after := begin(target)
	return settle(ctx, kind, target, before, after, call)
}

// ApplyAsync publishes the toggled state before returning and runs call in a goroutine. The
// returned channel yields the call's result once and is then closed.
func ApplyAsync(ctx context.Context, kind Kind, target Target, call Call) <-chan error {
	before, after := begin(target)
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- settle(ctx, kind, target, before, after, call)
	}()
	return done
}

func begin(target Target) (before, after ToggleState) {
	before = target.Load()
	after = Toggle(before)
	target.Store(after)
	return before, after
}

func settle(ctx context.Context, kind Kind, target Target, before, after ToggleState, call Call) error {
	err := call(ctx, after.Active)
	if err == nil {
		return nil
	}

	target.Store(before)
	observability.OptimisticReverts.WithLabelValues(string(kind)).Inc()
	observability.GlobalLogger.DebugContext(ctx, "optimistic toggle reverted",
		slog.String("kind", string(kind)),
		slog.Bool("desired", after.Active),
		slog.String("error", err.Error()),
	)
	return err
}
