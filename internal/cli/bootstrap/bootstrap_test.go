package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyagee/internal/apperr"
	"voyagee/internal/config"
)

func testConfig(t *testing.T, storage string) *config.Config {
	t.Helper()
	return &config.Config{DataDir: t.TempDir(), Storage: storage}
}

func TestOpenAndCleanup(t *testing.T) {
	for _, storage := range []string{config.StorageFiles, config.StorageSQLite} {
		t.Run(storage, func(t *testing.T) {
			app, done, err := Open(testConfig(t, storage))
			require.NoError(t, err)
			require.NotNil(t, app.KV)
			assert.False(t, app.Data.Loaded())
			require.NoError(t, done())
		})
	}
}

func TestRequireUserWithoutSession(t *testing.T) {
	_, _, err := RequireUser(testConfig(t, config.StorageFiles))
	require.Error(t, err)
	assert.True(t, apperr.IsType(err, apperr.NoActiveSession))
}

func TestSessionSurvivesReopen(t *testing.T) {
	cfg := testConfig(t, config.StorageFiles)

	app, done, err := Open(cfg)
	require.NoError(t, err)
	_, err = app.Identity.SignUp("Ana", "ana@x.com", "1234")
	require.NoError(t, err)
	require.NoError(t, done())

	app, done, err = RequireUser(cfg)
	require.NoError(t, err)
	defer done()
	u, err := app.Identity.Current()
	require.NoError(t, err)
	assert.Equal(t, "ana@x.com", u.Email)
	assert.True(t, app.Data.Loaded())
}
