package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cookstemma/edge/internal/service"
	"github.com/cookstemma/edge/internal/types"
)

// MockGatewayService is a mock implementation of the IGatewayService interface
type MockGatewayService struct {
	mock.Mock
}

func (m *MockGatewayService) Toggle(ctx context.Context, token string, kind service.ToggleKind, id uuid.UUID, active bool) error {
	args := m.Called(ctx, token, kind, id, active)
	return args.Error(0)
}

// MockPreferenceService is a mock implementation of the IPreferenceService interface
type MockPreferenceService struct {
	mock.Mock
}

func (m *MockPreferenceService) GetPreferences(ctx context.Context, userID string) (*types.PreferencesResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PreferencesResponse), args.Error(1)
}

func (m *MockPreferenceService) UpdatePreferences(ctx context.Context, userID string, req *types.UpdatePreferencesRequest) (*types.PreferencesResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PreferencesResponse), args.Error(1)
}

func (m *MockPreferenceService) SearchHistory(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	return stringsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPreferenceService) AddSearch(ctx context.Context, userID, query string) ([]string, error) {
	args := m.Called(ctx, userID, query)
	return stringsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPreferenceService) RemoveSearch(ctx context.Context, userID, query string) ([]string, error) {
	args := m.Called(ctx, userID, query)
	return stringsOrNil(args.Get(0)), args.Error(1)
}

func (m *MockPreferenceService) ClearSearchHistory(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func stringsOrNil(v any) []string {
	if v == nil {
		return nil
	}
	return v.([]string)
}
