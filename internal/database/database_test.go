package database

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookstemma/edge/config"
	"github.com/cookstemma/edge/internal/models"
	"github.com/cookstemma/edge/internal/testhelpers"
)

func TestRunMigrationsSQLite(t *testing.T) {
	db, err := NewSQLite(":memory:")
	require.NoError(t, err)

	require.NoError(t, RunMigrations(db, "does-not-matter"))
	assert.True(t, db.Migrator().HasTable(&models.Preference{}))

	pref := models.Preference{Namespace: "u1", Key: "theme", Value: "DARK"}
	require.NoError(t, db.Create(&pref).Error)

	var got models.Preference
	require.NoError(t, db.First(&got, "namespace = ? AND key = ?", "u1", "theme").Error)
	assert.Equal(t, "DARK", got.Value)
}

func TestRunMigrationsPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	require.NoError(t, RunMigrations(db, "../../migrations"))
	// Second run is a no-op.
	require.NoError(t, RunMigrations(db, "../../migrations"))
	assert.True(t, db.Migrator().HasTable("preferences"))
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedisClient(&config.Config{RedisURL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()
	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestNewRedisClientUnreachable(t *testing.T) {
	_, err := NewRedisClient(&config.Config{RedisHost: "127.0.0.1", RedisPort: "1"})
	assert.Error(t, err)
}
