package optimistic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("backend unavailable")

func TestToggle(t *testing.T) {
	tests := []struct {
		name string
		in   ToggleState
		want ToggleState
	}{
		{"activate", ToggleState{Active: false, Count: 3}, ToggleState{Active: true, Count: 4}},
		{"deactivate", ToggleState{Active: true, Count: 4}, ToggleState{Active: false, Count: 3}},
		{"activate from zero", ToggleState{}, ToggleState{Active: true, Count: 1}},
		{"deactivate never negative", ToggleState{Active: true, Count: 0}, ToggleState{Active: false, Count: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Toggle(tt.in))
		})
	}
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	for _, s := range []ToggleState{{false, 0}, {false, 7}, {true, 1}, {true, 12}} {
		assert.Equal(t, s, Toggle(Toggle(s)))
	}
}

func TestApplyPublishesBeforeCall(t *testing.T) {
	v := NewValue(ToggleState{Active: false, Count: 10})

	err := Apply(context.Background(), KindLike, v, func(_ context.Context, desired bool) error {
		assert.True(t, desired)
		assert.Equal(t, ToggleState{Active: true, Count: 11}, v.Load())
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, ToggleState{Active: true, Count: 11}, v.Load())
}

func TestApplyRevertsOnFailure(t *testing.T) {
	for _, start := range []ToggleState{{false, 0}, {false, 5}, {true, 1}, {true, 9}} {
		v := NewValue(start)

		err := Apply(context.Background(), KindFollow, v, func(context.Context, bool) error {
			return errBackend
		})

		assert.ErrorIs(t, err, errBackend)
		assert.Equal(t, start, v.Load())
	}
}

func TestApplyWithFuncTarget(t *testing.T) {
	liked, count := true, 2
	target := FuncTarget{
		LoadFunc:  func() ToggleState { return ToggleState{Active: liked, Count: count} },
		StoreFunc: func(s ToggleState) { liked, count = s.Active, s.Count },
	}

	var desired bool
	err := Apply(context.Background(), KindSave, target, func(_ context.Context, d bool) error {
		desired = d
		return nil
	})

	require.NoError(t, err)
	assert.False(t, desired)
	assert.False(t, liked)
	assert.Equal(t, 1, count)
}

func TestApplyAsyncPublishesImmediately(t *testing.T) {
	v := NewValue(ToggleState{Active: false, Count: 1})
	release := make(chan error)

	done := ApplyAsync(context.Background(), KindLike, v, func(context.Context, bool) error {
		return <-release
	})

	assert.Equal(t, ToggleState{Active: true, Count: 2}, v.Load())
	release <- errBackend
	assert.ErrorIs(t, <-done, errBackend)
	assert.Equal(t, ToggleState{Active: false, Count: 1}, v.Load())

	_, open := <-done
	assert.False(t, open)
}

// Two toggles in flight each restore the snapshot they started from. When both fail, the
// second failure restores the first toggle's optimistic state rather than the original.
func TestRapidDoubleToggleBothFailing(t *testing.T) {
	start := ToggleState{Active: false, Count: 5}
	v := NewValue(start)
	first, second := make(chan error), make(chan error)

	done1 := ApplyAsync(context.Background(), KindLike, v, func(context.Context, bool) error { return <-first })
	done2 := ApplyAsync(context.Background(), KindLike, v, func(context.Context, bool) error { return <-second })
	assert.Equal(t, start, v.Load())

	first <- errBackend
	<-done1
	assert.Equal(t, start, v.Load())

	second <- errBackend
	<-done2
	assert.Equal(t, ToggleState{Active: true, Count: 6}, v.Load())
}

func TestRapidDoubleToggleBothSucceeding(t *testing.T) {
	start := ToggleState{Active: false, Count: 5}
	v := NewValue(start)
	var desired []bool
	calls := make(chan bool, 2)

	done1 := ApplyAsync(context.Background(), KindLike, v, func(_ context.Context, d bool) error { calls <- d; return nil })
	<-done1
	done2 := ApplyAsync(context.Background(), KindLike, v, func(_ context.Context, d bool) error { calls <- d; return nil })
	<-done2
	close(calls)
	for d := range calls {
		desired = append(desired, d)
	}

	assert.Equal(t, []bool{true, false}, desired)
	assert.Equal(t, start, v.Load())
}

func TestRapidDoubleToggleFirstFailsSecondSucceeds(t *testing.T) {
	start := ToggleState{Active: true, Count: 3}
	v := NewValue(start)
	first, second := make(chan error), make(chan error)

	done1 := ApplyAsync(context.Background(), KindSave, v, func(context.Context, bool) error { return <-first })
	done2 := ApplyAsync(context.Background(), KindSave, v, func(context.Context, bool) error { return <-second })

	second <- nil
	require.NoError(t, <-done2)
	first <- errBackend
	<-done1

	assert.Equal(t, start, v.Load())
}
