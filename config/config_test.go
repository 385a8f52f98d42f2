package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret-key")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "HS256", settings.Algorithm)
	assert.Equal(t, 30, settings.AccessTokenExpireMinutes)
	assert.Equal(t, 30*time.Minute, settings.AccessTokenTTL())
	assert.Equal(t, "0.0.0.0:8080", settings.ServerAddr())
	assert.Equal(t, "mysql", settings.DBDriver)
}

func TestLoadRequiresSecretKey(t *testing.T) {
	require.NoError(t, os.Unsetenv("SECRET_KEY"))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsNonHMACAlgorithm(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret-key")
	t.Setenv("JWT_ALGORITHM", "RS256")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAlgorithm(t *testing.T) {
	t.Setenv("SECRET_KEY", "unit-test-secret-key")
	t.Setenv("JWT_ALGORITHM", "bogus")

	_, err := Load()
	assert.Error(t, err)
}

func TestConnectDBSqlite(t *testing.T) {
	settings := &Settings{
		DBDriver: "sqlite",
		DBPath:   "file:configtest?mode=memory&cache=shared",
	}

	db, err := ConnectDB(settings)
	require.NoError(t, err)
	require.NotNil(t, db)

	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("blogs"))
}

func TestConnectDBUnknownDriver(t *testing.T) {
	_, err := ConnectDB(&Settings{DBDriver: "postgres"})
	assert.Error(t, err)
}

func TestConnectDBMysqlRequiresCredentials(t *testing.T) {
	_, err := ConnectDB(&Settings{DBDriver: "mysql"})
	assert.Error(t, err)
}
