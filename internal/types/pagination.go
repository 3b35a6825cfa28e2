package types

import "strconv"

// Page is the normalized pagination envelope used by every list endpoint.
type Page[T any] struct {
	Content    []T    `json:"content"`
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// CursorResponse is the backend's cursor-paginated list body.
type CursorResponse[T any] struct {
	Content    []T     `json:"content"`
	NextCursor *string `json:"nextCursor"`
	HasNext    bool    `json:"hasNext"`
}

// Page normalizes the response. A page without a cursor has no successor even if HasNext is set.
func (r CursorResponse[T]) Page() Page[T] {
	var cursor string
	if r.NextCursor != nil {
		cursor = *r.NextCursor
	}
	hasMore := r.HasNext && cursor != ""
	if !hasMore {
		cursor = ""
	}
	return Page[T]{Content: nonNil(r.Content), NextCursor: cursor, HasMore: hasMore}
}

// SliceResponse is a Spring Data Slice body.
type SliceResponse[T any] struct {
	Content []T  `json:"content"`
	Last    bool `json:"last"`
	First   bool `json:"first"`
	Number  int  `json:"number"`
	Size    int  `json:"size"`
}

// Page normalizes the slice. The cursor is the decimal number of the next page.
func (r SliceResponse[T]) Page() Page[T] {
	p := Page[T]{Content: nonNil(r.Content), HasMore: !r.Last}
	if p.HasMore {
		p.NextCursor = strconv.Itoa(r.Number + 1)
	}
	return p
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
