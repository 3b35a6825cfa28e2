package viewstate

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/optimistic"
	"github.com/cookstemma/edge/internal/types"
)

// ErrProfileNotLoaded is returned by ToggleFollow before Load succeeded.
var ErrProfileNotLoaded = errors.New("profile not loaded")

// ProfileAPI is the backend surface the profile screen needs.
type ProfileAPI interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetFollowing(ctx context.Context, id uuid.UUID, following bool) error
	GetUserRecipes(ctx context.Context, id uuid.UUID, cursor string) (types.Page[models.Recipe], error)
	GetUserLogs(ctx context.Context, id uuid.UUID, cursor string) (types.Page[models.CookingLog], error)
}

// ProfileState is another user's profile with their recipes and logs.
type ProfileState struct {
	api    ProfileAPI
	userID uuid.UUID

	Recipes *Paginator[models.Recipe]
	Logs    *Paginator[models.CookingLog]

	mu     sync.Mutex
	user   *models.User
	errMsg string
}

func NewProfileState(api ProfileAPI, userID uuid.UUID) *ProfileState {
	return &ProfileState{
		api:    api,
		userID: userID,
		Recipes: NewPaginator[models.Recipe](func(ctx context.Context, cursor string) (types.Page[models.Recipe], error) {
			return api.GetUserRecipes(ctx, userID, cursor)
		}, func(r models.Recipe) string { return r.ID.String() }),
		Logs: NewPaginator[models.CookingLog](func(ctx context.Context, cursor string) (types.Page[models.CookingLog], error) {
			return api.GetUserLogs(ctx, userID, cursor)
		}, func(l models.CookingLog) string { return l.ID.String() }),
	}
}

// Load fetches the profile and the first page of recipes and logs. A failed profile fetch skips
// the lists; list failures are recorded on the lists themselves.
func (s *ProfileState) Load(ctx context.Context) error {
	user, err := s.api.GetUser(ctx, s.userID)

	s.mu.Lock()
	if err != nil {
		s.errMsg = types.UserMessage(err)
		s.mu.Unlock()
		return err
	}
	s.user = user
	s.errMsg = ""
	s.mu.Unlock()

	recipesErr := s.Recipes.Refresh(ctx)
	logsErr := s.Logs.Refresh(ctx)
	return errors.Join(recipesErr, logsErr)
}

// User returns a copy of the loaded profile.
func (s *ProfileState) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *ProfileState) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// ToggleFollow follows or unfollows the profile's user, moving FollowerCount with it.
func (s *ProfileState) ToggleFollow(ctx context.Context) error {
	if _, ok := s.User(); !ok {
		return ErrProfileNotLoaded
	}

	target := optimistic.FuncTarget{
		LoadFunc: func() optimistic.ToggleState {
			s.mu.Lock()
			defer s.mu.Unlock()
			return optimistic.ToggleState{Active: s.user.IsFollowing, Count: s.user.FollowerCount}
		},
		StoreFunc: func(st optimistic.ToggleState) {
			s.mu.Lock()
			defer s.mu.Unlock()
			u := *s.user
			u.IsFollowing, u.FollowerCount = st.Active, st.Count
			s.user = &u
		},
	}
	return optimistic.Apply(ctx, optimistic.KindFollow, target, func(ctx context.Context, following bool) error {
		return s.api.SetFollowing(ctx, s.userID, following)
	})
}
