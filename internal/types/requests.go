package types

import "github.com/google/uuid"

// UpdatePreferencesRequest is the body of PUT /api/v1/preferences. Omitted fields are left as is.
type UpdatePreferencesRequest struct {
	Theme           *string `json:"theme"`
	MeasurementUnit *string `json:"measurementUnit"`
	Language        *string `json:"language"`
}

// PreferencesResponse is the effective preference set of a user.
type PreferencesResponse struct {
	Theme           string `json:"theme"`
	MeasurementUnit string `json:"measurementUnit"`
	Language        string `json:"language"`
}

// AddSearchQueryRequest is the body of POST /api/v1/search-history.
type AddSearchQueryRequest struct {
	Query string `json:"query" binding:"required"`
}

// SearchHistoryResponse lists recent searches, newest first.
type SearchHistoryResponse struct {
	Queries []string `json:"queries"`
}

// ToggleResponse reports the state a gateway toggle left the entity in.
type ToggleResponse struct {
	ID     uuid.UUID `json:"id"`
	Kind   string    `json:"kind"`
	Active bool      `json:"active"`
}

// DeepLinkResponse describes a resolved app link.
type DeepLinkResponse struct {
	Kind      string     `json:"kind"`
	ID        *uuid.UUID `json:"id,omitempty"`
	CommentID *uuid.UUID `json:"commentId,omitempty"`
	Hashtag   string     `json:"hashtag,omitempty"`
	WebPath   string     `json:"webPath"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}
