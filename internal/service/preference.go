package service

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/cookstemma/edge/internal/preferences"
	"github.com/cookstemma/edge/internal/types"
)

// PreferenceService serves a user's preferences from the database and their search history
// from redis. Without a redis client, search history is kept in the database too.
type PreferenceService struct {
	db    *gorm.DB
	redis *redis.Client
}

func NewPreferenceService(db *gorm.DB, redisClient *redis.Client) *PreferenceService {
	return &PreferenceService{db: db, redis: redisClient}
}

func (s *PreferenceService) preferences(userID string) *preferences.Preferences {
	return preferences.New(preferences.NewGormStore(s.db, userID))
}

func (s *PreferenceService) history(userID string) *preferences.SearchHistory {
	if s.redis != nil {
		return preferences.NewSearchHistory(preferences.NewRedisStore(s.redis, userID))
	}
	return preferences.NewSearchHistory(preferences.NewGormStore(s.db, userID))
}

func (s *PreferenceService) GetPreferences(ctx context.Context, userID string) (*types.PreferencesResponse, error) {
	snap, err := s.preferences(userID).Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return toPreferencesResponse(snap), nil
}

// UpdatePreferences validates every supplied field before writing any of them.
func (s *PreferenceService) UpdatePreferences(ctx context.Context, userID string, req *types.UpdatePreferencesRequest) (*types.PreferencesResponse, error) {
	var (
		theme preferences.Theme
		unit  preferences.MeasurementUnit
		lang  string
		err   error
	)
	if req.Theme != nil {
		if theme, err = preferences.ParseTheme(*req.Theme); err != nil {
			return nil, err
		}
	}
	if req.MeasurementUnit != nil {
		if unit, err = preferences.ParseMeasurementUnit(*req.MeasurementUnit); err != nil {
			return nil, err
		}
	}
	if req.Language != nil {
		if lang, err = preferences.ParseLanguage(*req.Language); err != nil {
			return nil, err
		}
	}

	prefs := s.preferences(userID)
	if req.Theme != nil {
		if err := prefs.SetTheme(ctx, theme); err != nil {
			return nil, err
		}
	}
	if req.MeasurementUnit != nil {
		if err := prefs.SetMeasurementUnit(ctx, unit); err != nil {
			return nil, err
		}
	}
	if req.Language != nil {
		if err := prefs.SetLanguage(ctx, lang); err != nil {
			return nil, err
		}
	}
	return s.GetPreferences(ctx, userID)
}

func (s *PreferenceService) SearchHistory(ctx context.Context, userID string) ([]string, error) {
	return s.history(userID).List(ctx)
}

func (s *PreferenceService) AddSearch(ctx context.Context, userID, query string) ([]string, error) {
	return s.history(userID).Add(ctx, query)
}

func (s *PreferenceService) RemoveSearch(ctx context.Context, userID, query string) ([]string, error) {
	return s.history(userID).Remove(ctx, query)
}

func (s *PreferenceService) ClearSearchHistory(ctx context.Context, userID string) error {
	return s.history(userID).Clear(ctx)
}

func toPreferencesResponse(snap preferences.Snapshot) *types.PreferencesResponse {
	return &types.PreferencesResponse{
		Theme:           string(snap.Theme),
		MeasurementUnit: string(snap.MeasurementUnit),
		Language:        snap.Language,
	}
}
