package postgres

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL(t *testing.T) {
	assert.Equal(t, "pgx5://app:secret@db:5432/larana?sslmode=disable",
		MigrateURL("postgres://app:secret@db:5432/larana?sslmode=disable"))
	assert.Equal(t, "pgx5://db/larana", MigrateURL("postgresql://db/larana"))
	assert.Equal(t, "pgx5://db/larana", MigrateURL("pgx5://db/larana"))
}

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	assert.Len(t, names, 4)
	assert.Contains(t, names, "migrations/000002_create_orders.up.sql")
}
