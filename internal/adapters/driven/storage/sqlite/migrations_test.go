package sqlite

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Itterum/ts-app/internal/adapters/driven/storage/sqlite/migrations"
)

// migrationsFS returns the embedded migrations, failing if none are present.
func migrationsFS(t *testing.T) fs.FS {
	t.Helper()

	entries, err := fs.ReadDir(migrations.FS, ".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return migrations.FS
}

func TestMigrations_PairedFiles(t *testing.T) {
	fsys := migrationsFS(t)

	for _, name := range []string{"001_entities.up.sql", "001_entities.down.sql"} {
		content, err := fs.ReadFile(fsys, name)
		require.NoError(t, err, name)
		require.NotEmpty(t, content, name)
	}
}
