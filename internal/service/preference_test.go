package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/preferences"
	"github.com/cookstemma/edge/internal/types"
)

func newPreferenceDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&models.Preference{}))
	return db
}

func ptr(s string) *string { return &s }

func TestPreferenceServiceDefaultsAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(newPreferenceDB(t), nil)

	got, err := svc.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, &types.PreferencesResponse{Theme: "SYSTEM", MeasurementUnit: "ORIGINAL", Language: "en"}, got)

	got, err = svc.UpdatePreferences(ctx, "u1", &types.UpdatePreferencesRequest{Theme: ptr("dark"), Language: ptr("ko")})
	require.NoError(t, err)
	assert.Equal(t, &types.PreferencesResponse{Theme: "DARK", MeasurementUnit: "ORIGINAL", Language: "ko"}, got)

	other, err := svc.GetPreferences(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "SYSTEM", other.Theme)
}

func TestPreferenceServiceRejectsWholeUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewPreferenceService(newPreferenceDB(t), nil)

	_, err := svc.UpdatePreferences(ctx, "u1", &types.UpdatePreferencesRequest{Theme: ptr("DARK"), MeasurementUnit: ptr("cubits")})
	assert.ErrorIs(t, err, preferences.ErrInvalidValue)

	got, err := svc.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "SYSTEM", got.Theme)
}

func TestPreferenceServiceSearchHistory(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	for name, svc := range map[string]*PreferenceService{
		"redis": NewPreferenceService(newPreferenceDB(t), client),
		"gorm":  NewPreferenceService(newPreferenceDB(t), nil),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			_, err := svc.AddSearch(ctx, "u1", "kimchi")
			require.NoError(t, err)
			got, err := svc.AddSearch(ctx, "u1", "bibimbap")
			require.NoError(t, err)
			assert.Equal(t, []string{"bibimbap", "kimchi"}, got)

			got, err = svc.RemoveSearch(ctx, "u1", "kimchi")
			require.NoError(t, err)
			assert.Equal(t, []string{"bibimbap"}, got)

			require.NoError(t, svc.ClearSearchHistory(ctx, "u1"))
			got, err = svc.SearchHistory(ctx, "u1")
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}
