package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.Addr)
	assert.Empty(t, c.DatabaseDSN)
	assert.Equal(t, 12*time.Hour, c.SessionTTL)
	assert.Equal(t, "session", c.CookieName)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"addr": ":9000",
		"database_dsn": "postgres://file",
		"session_ttl": "30m",
		"cookie_name": "sid"
	}`), 0o600))

	got, err := LoadConfig(
		[]string{"-c", path, "-a", ":9100", "-s", "flag-secret", "-stray"},
		map[string]string{"UC_DATABASE_DSN": "postgres://env", "UC_ADDR": ":9050", "UC_LOG_LEVEL": "debug"},
	)
	require.NoError(t, err)

	want := &Config{
		Addr:        ":9100",
		DatabaseDSN: "postgres://env",
		SecretKey:   "flag-secret",
		SessionTTL:  30 * time.Minute,
		CookieName:  "sid",
		LogLevel:    "debug",
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestLoadConfig_TTLFlag(t *testing.T) {
	got, err := LoadConfig([]string{"-t", "5"}, map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, got.SessionTTL)
}

func TestLoadConfig_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))

	_, err := LoadConfig([]string{"-c", bad}, map[string]string{})
	require.Error(t, err)

	_, err = LoadConfig([]string{"-t", "x"}, map[string]string{})
	require.Error(t, err)

	_, err = LoadConfig(nil, map[string]string{"UC_SESSION_TTL": "forever"})
	require.Error(t, err)
}
