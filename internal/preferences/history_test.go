package preferences

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQueryMovesExistingToFront(t *testing.T) {
	h := AddQuery([]string{"kimchi", "ramen", "tteok"}, "ramen")
	assert.Equal(t, []string{"ramen", "kimchi", "tteok"}, h)
}

func TestAddQueryCapsAtTen(t *testing.T) {
	var h []string
	for i := 0; i < 25; i++ {
		h = AddQuery(h, fmt.Sprintf("q%d", i))
		assert.LessOrEqual(t, len(h), MaxSearchHistory)
	}
	assert.Len(t, h, MaxSearchHistory)
	assert.Equal(t, "q24", h[0])
	assert.Equal(t, "q15", h[MaxSearchHistory-1])
}

func TestAddQueryIgnoresBlank(t *testing.T) {
	h := []string{"a"}
	assert.Equal(t, h, AddQuery(h, "   "))
	assert.Empty(t, AddQuery(nil, ""))
}

func TestAddQueryStripsDelimiter(t *testing.T) {
	h := AddQuery(nil, "salt|||pepper")
	assert.Equal(t, []string{"salt pepper"}, h)
	assert.Equal(t, h, decodeHistory(encodeHistory(h)))
}

func TestAddQueryDoesNotAlias(t *testing.T) {
	orig := []string{"a", "b"}
	_ = AddQuery(orig, "c")
	assert.Equal(t, []string{"a", "b"}, orig)
}

func TestRemoveQuery(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveQuery([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{"a"}, RemoveQuery([]string{"a"}, "zzz"))
}

func TestDecodeHistoryToleratesGarbage(t *testing.T) {
	assert.Equal(t, []string{}, decodeHistory(""))
	assert.Equal(t, []string{"a", "b"}, decodeHistory("a||||||b|||"))
}

func TestSearchHistoryPersists(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	h := NewSearchHistory(store)

	_, err := h.Add(ctx, "bulgogi")
	require.NoError(t, err)
	_, err = h.Add(ctx, "japchae")
	require.NoError(t, err)
	got, err := h.Add(ctx, "bulgogi")
	require.NoError(t, err)
	assert.Equal(t, []string{"bulgogi", "japchae"}, got)

	raw, ok, _ := store.Get(ctx, KeySearchHistory)
	require.True(t, ok)
	assert.Equal(t, "bulgogi|||japchae", raw)

	got, err = NewSearchHistory(store).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bulgogi", "japchae"}, got)

	got, err = h.Remove(ctx, "japchae")
	require.NoError(t, err)
	assert.Equal(t, []string{"bulgogi"}, got)

	require.NoError(t, h.Clear(ctx))
	got, err = h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
