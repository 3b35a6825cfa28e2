package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/types"
)

// ITokenService defines the interface for access token operations
type ITokenService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
}

// IGatewayService defines the interface for forwarding social toggles
type IGatewayService interface {
	Toggle(ctx context.Context, token string, kind ToggleKind, id uuid.UUID, active bool) error
}

// IPreferenceService defines the interface for per-user preferences and search history
type IPreferenceService interface {
	GetPreferences(ctx context.Context, userID string) (*types.PreferencesResponse, error)
	UpdatePreferences(ctx context.Context, userID string, req *types.UpdatePreferencesRequest) (*types.PreferencesResponse, error)
	SearchHistory(ctx context.Context, userID string) ([]string, error)
	AddSearch(ctx context.Context, userID, query string) ([]string, error)
	RemoveSearch(ctx context.Context, userID, query string) ([]string, error)
	ClearSearchHistory(ctx context.Context, userID string) error
}

var (
	_ ITokenService      = (*TokenService)(nil)
	_ IGatewayService    = (*GatewayService)(nil)
	_ IPreferenceService = (*PreferenceService)(nil)
)
