package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestParseJson_OverlaysAllFields(t *testing.T) {
	path := writeTempConfig(t, `{
		"endpoint_addr_http": ":9000",
		"database_dsn": "postgres://u:p@localhost:5432/test",
		"secret_key_access": "acc",
		"secret_key_refresh": "ref",
		"access_token_validity_duration": "10m",
		"refresh_token_validity_duration": "168h",
		"activation_token_validity_duration": "48h",
		"reset_token_validity_duration": "30m",
		"single_session_per_user": true
	}`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cinepass", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":9000", cfg.EndpointAddrHTTP)
	assert.Equal(t, "postgres://u:p@localhost:5432/test", cfg.DatabaseDSN)
	assert.Equal(t, "acc", cfg.SecretKeyAccess)
	assert.Equal(t, "ref", cfg.SecretKeyRefresh)
	assert.Equal(t, 10*time.Minute, cfg.AccessTokenValidityDuration)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenValidityDuration)
	assert.Equal(t, 48*time.Hour, cfg.ActivationTokenValidityDuration)
	assert.Equal(t, 30*time.Minute, cfg.ResetTokenValidityDuration)
	assert.True(t, cfg.SingleSessionPerUser)
}

func TestParseJson_NoFlagLeavesConfigUntouched(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cinepass"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ":8000", cfg.EndpointAddrHTTP)
}

func TestParseJson_InvalidFilePanics(t *testing.T) {
	path := writeTempConfig(t, `{not json`)

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"cinepass", "-c", path}

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Panics(t, func() { parseJson(cfg) })
}
