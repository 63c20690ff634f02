package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInitConfig_DefaultsAreValid(t *testing.T) {
	conf, err := InitConfig("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", conf.Addr)
	assert.Equal(t, ProviderKindHTTP, conf.Provider.Kind)
	assert.Equal(t, 10*time.Second, conf.ProviderTimeout())
}

func TestInitConfig_YAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
addr: 127.0.0.1:9090
provider:
  baseURL: https://stats.internal.example
  retryCount: 0
dashboard:
  latestNotes: 3
  labelLocation: Europe/Berlin
`)

	conf, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", conf.Addr)
	assert.Equal(t, "https://stats.internal.example", conf.Provider.BaseURL)
	assert.Equal(t, 0, conf.Provider.RetryCount)
	assert.Equal(t, "/stats/users", conf.Provider.Paths.Users)
	assert.Equal(t, 3, conf.Dashboard.LatestNotes)

	loc, err := conf.LabelLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestInitConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STATS_PROVIDER_URL", "http://env.example:8000")
	t.Setenv("STATS_PROVIDER_TOKEN", "tok")
	t.Setenv("POSTGRES_DSN", "postgres://u:p@localhost/db?sslmode=disable")

	conf, err := InitConfig("")
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:8000", conf.Provider.BaseURL)
	assert.Equal(t, "tok", conf.Provider.Token)
	assert.Equal(t, "postgres://u:p@localhost/db?sslmode=disable", conf.DB.DSN)
}

func TestInitConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown_kind", "provider:\n  kind: grpc\n"},
		{"postgres_without_dsn", "provider:\n  kind: postgres\n"},
		{"bad_path", "provider:\n  paths:\n    users: stats/users\n"},
		{"bad_location", "dashboard:\n  labelLocation: Mars/Olympus\n"},
		{"zero_timeout", "provider:\n  timeout: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InitConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitConfig_HTTPProviderNeedsBaseURL(t *testing.T) {
	_, err := InitConfig(writeConfig(t, "provider:\n  baseURL: \"\"\n"))
	assert.ErrorContains(t, err, "baseURL")
}
