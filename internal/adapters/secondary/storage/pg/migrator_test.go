package pg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMigrationName(t *testing.T) {
	version, name, err := parseMigrationName("0001_create_users.sql")
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
	assert.Equal(t, "create_users", name)

	version, name, err = parseMigrationName("0012_add_positions_index.sql")
	require.NoError(t, err)
	assert.Equal(t, int64(12), version)
	assert.Equal(t, "add_positions_index", name)
}

func TestParseMigrationName_Invalid(t *testing.T) {
	_, _, err := parseMigrationName("noversion.sql")
	require.Error(t, err)

	_, _, err = parseMigrationName("abc_name.sql")
	require.Error(t, err)
}

func TestLoadMigrations(t *testing.T) {
	migrations, err := loadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, int64(1), migrations[0].Version)
	assert.Equal(t, "create_users", migrations[0].Name)
	assert.Contains(t, migrations[0].Content, "CREATE TABLE IF NOT EXISTS users")

	// Миграции отсортированы по версии
	for i := 1; i < len(migrations); i++ {
		assert.Less(t, migrations[i-1].Version, migrations[i].Version)
	}
}
