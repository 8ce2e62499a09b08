package migration

import (
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMigrator(source fstest.MapFS) *Migrator {
	return NewMigrator(nil, slog.New(slog.DiscardHandler), source)
}

func TestLoadMigrations_SortedByVersion(t *testing.T) {
	source := fstest.MapFS{
		"002_create_user_roles.up.sql":   {Data: []byte("CREATE TABLE user_roles ()")},
		"002_create_user_roles.down.sql": {Data: []byte("DROP TABLE user_roles")},
		"001_create_users.up.sql":        {Data: []byte("CREATE TABLE users ()")},
		"001_create_users.down.sql":      {Data: []byte("DROP TABLE users")},
	}

	migrations, err := newTestMigrator(source).loadMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "create_users", migrations[0].Name)
	assert.Equal(t, 2, migrations[1].Version)
	assert.Equal(t, "create_user_roles", migrations[1].Name)
	assert.Equal(t, "CREATE TABLE users ()", migrations[0].UpSQL)
	assert.Equal(t, "DROP TABLE users", migrations[0].DownSQL)
}

func TestLoadMigrations_MissingDownFile(t *testing.T) {
	source := fstest.MapFS{
		"001_create_users.up.sql": {Data: []byte("CREATE TABLE users ()")},
	}

	_, err := newTestMigrator(source).loadMigrations()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_create_users.down.sql")
}

func TestLoadMigrations_RejectsBadFilenames(t *testing.T) {
	tests := []struct {
		name     string
		filename string
	}{
		{name: "no version prefix", filename: "create_users.up.sql"},
		{name: "non-numeric version", filename: "abc_create_users.up.sql"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := fstest.MapFS{
				tt.filename: {Data: []byte("CREATE TABLE users ()")},
			}

			_, err := newTestMigrator(source).loadMigrations()
			assert.Error(t, err)
		})
	}
}

func TestChecksum_Stable(t *testing.T) {
	assert.Equal(t, checksum("CREATE TABLE users ()"), checksum("CREATE TABLE users ()"))
	assert.NotEqual(t, checksum("CREATE TABLE users ()"), checksum("CREATE TABLE users (id UUID)"))
	assert.Len(t, checksum("anything"), 64)
}
