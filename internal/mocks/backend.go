// Package mocks provides testify mocks for the backend-facing interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/types"
)

// MockBackend is a mock implementation of the backend API client
type MockBackend struct {
	mock.Mock
}

// GetFeed mocks the GetFeed method
func (m *MockBackend) GetFeed(ctx context.Context, cursor string) (types.Page[models.FeedItem], error) {
	args := m.Called(ctx, cursor)
	return args.Get(0).(types.Page[models.FeedItem]), args.Error(1)
}

// GetUser mocks the GetUser method
func (m *MockBackend) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// GetUserRecipes mocks the GetUserRecipes method
func (m *MockBackend) GetUserRecipes(ctx context.Context, id uuid.UUID, cursor string) (types.Page[models.Recipe], error) {
	args := m.Called(ctx, id, cursor)
	return args.Get(0).(types.Page[models.Recipe]), args.Error(1)
}

// GetUserLogs mocks the GetUserLogs method
func (m *MockBackend) GetUserLogs(ctx context.Context, id uuid.UUID, cursor string) (types.Page[models.CookingLog], error) {
	args := m.Called(ctx, id, cursor)
	return args.Get(0).(types.Page[models.CookingLog]), args.Error(1)
}

// SetLogLiked mocks the SetLogLiked method
func (m *MockBackend) SetLogLiked(ctx context.Context, id uuid.UUID, liked bool) error {
	return m.Called(ctx, id, liked).Error(0)
}

// SetLogSaved mocks the SetLogSaved method
func (m *MockBackend) SetLogSaved(ctx context.Context, id uuid.UUID, saved bool) error {
	return m.Called(ctx, id, saved).Error(0)
}

// SetRecipeSaved mocks the SetRecipeSaved method
func (m *MockBackend) SetRecipeSaved(ctx context.Context, id uuid.UUID, saved bool) error {
	return m.Called(ctx, id, saved).Error(0)
}

// SetFollowing mocks the SetFollowing method
func (m *MockBackend) SetFollowing(ctx context.Context, id uuid.UUID, following bool) error {
	return m.Called(ctx, id, following).Error(0)
}
