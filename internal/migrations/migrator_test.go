package migrations

import (
	"os"
	"testing"

	"github.com/avc-dev/url-alias/internal/config/db"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEmbeddedSchema(t *testing.T) {
	// Act
	source, err := iofs.New(migrationFiles, "schema")
	require.NoError(t, err)
	defer source.Close()

	first, err := source.First()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, _, err := source.ReadUp(first)
	require.NoError(t, err)
	require.NoError(t, up.Close())

	down, _, err := source.ReadDown(first)
	require.NoError(t, err)
	require.NoError(t, down.Close())
}

func TestMigrator_UpDown(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN is not set")
	}

	database, err := db.NewConfig(dsn).Connect(t.Context())
	require.NoError(t, err)
	t.Cleanup(database.Close)

	migrator := NewMigrator(database.DB(), zap.NewNop())

	// Act
	require.NoError(t, migrator.RunUp())
	version, dirty, err := migrator.GetVersion()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// Повторный запуск не должен падать
	require.NoError(t, migrator.RunUp())
}
