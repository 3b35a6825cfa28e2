package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorResponsePage(t *testing.T) {
	var resp CursorResponse[int]
	require.NoError(t, json.Unmarshal([]byte(`{"content":[1,2],"nextCursor":"abc","hasNext":true}`), &resp))

	page := resp.Page()
	assert.Equal(t, []int{1, 2}, page.Content)
	assert.Equal(t, "abc", page.NextCursor)
	assert.True(t, page.HasMore)
}

func TestCursorResponseWithoutCursorHasNoMore(t *testing.T) {
	var resp CursorResponse[int]
	require.NoError(t, json.Unmarshal([]byte(`{"content":[1],"nextCursor":null,"hasNext":true}`), &resp))

	page := resp.Page()
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestCursorResponseLastPageDropsCursor(t *testing.T) {
	cursor := "stale"
	page := CursorResponse[int]{Content: []int{1}, NextCursor: &cursor}.Page()
	assert.False(t, page.HasMore)
	assert.Empty(t, page.NextCursor)
}

func TestSliceResponsePage(t *testing.T) {
	var resp SliceResponse[string]
	require.NoError(t, json.Unmarshal([]byte(`{"content":["a"],"last":false,"first":true,"number":0,"size":20}`), &resp))

	page := resp.Page()
	assert.Equal(t, []string{"a"}, page.Content)
	assert.True(t, page.HasMore)
	assert.Equal(t, "1", page.NextCursor)

	last := SliceResponse[string]{Number: 3, Last: true}.Page()
	assert.False(t, last.HasMore)
	assert.Empty(t, last.NextCursor)
	assert.NotNil(t, last.Content)
}

func TestPageEncodesEmptyContentAsArray(t *testing.T) {
	data, err := json.Marshal(SliceResponse[int]{Last: true}.Page())
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":[],"hasMore":false}`, string(data))
}
