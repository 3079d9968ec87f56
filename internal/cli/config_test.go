package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearClientEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKS_API_URL", "")
	t.Setenv("TASKS_ENV", "")
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taskctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadClientConfig_Fallbacks(t *testing.T) {
	clearClientEnv(t)

	cfg, err := LoadClientConfig(&RootOptions{})
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)

	t.Setenv("TASKS_ENV", "Production")
	cfg, err = LoadClientConfig(&RootOptions{})
	require.NoError(t, err)
	assert.Equal(t, "http://tasks-api:8080/api", cfg.APIURL)

	cfg, err = LoadClientConfig(&RootOptions{Env: EnvDevelopment})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
}

func TestLoadClientConfig_UnknownEnv(t *testing.T) {
	clearClientEnv(t)

	_, err := LoadClientConfig(&RootOptions{Env: "staging"})
	assert.ErrorContains(t, err, `unknown environment "staging"`)
}

func TestLoadClientConfig_Precedence(t *testing.T) {
	clearClientEnv(t)
	path := writeConfig(t, "api_url: http://from-file:9000/api\n")

	cfg, err := LoadClientConfig(&RootOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "http://from-file:9000/api", cfg.APIURL)

	t.Setenv("TASKS_API_URL", "http://from-env:9000/api")
	cfg, err = LoadClientConfig(&RootOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "http://from-env:9000/api", cfg.APIURL)

	cfg, err = LoadClientConfig(&RootOptions{ConfigFile: path, APIURL: "http://from-flag:9000/api"})
	require.NoError(t, err)
	assert.Equal(t, "http://from-flag:9000/api", cfg.APIURL)
}

func TestLoadClientConfig_MissingFile(t *testing.T) {
	clearClientEnv(t)

	_, err := LoadClientConfig(&RootOptions{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
