package config

import (
	"encoding/json"
	"os"

	"github.com/mpetrovs/cinepass/internal/flagx"
	"github.com/mpetrovs/cinepass/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for lifetime fields, which allows parsing both
// string values such as "15m" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP                string         `json:"endpoint_addr_http"`
	DatabaseDSN                     string         `json:"database_dsn"`
	SecretKeyAccess                 string         `json:"secret_key_access"`
	SecretKeyRefresh                string         `json:"secret_key_refresh"`
	AccessTokenValidityDuration     timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration    timex.Duration `json:"refresh_token_validity_duration"`
	ActivationTokenValidityDuration timex.Duration `json:"activation_token_validity_duration"`
	ResetTokenValidityDuration      timex.Duration `json:"reset_token_validity_duration"`
	SingleSessionPerUser            bool           `json:"single_session_per_user"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded.
//
// If the file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKeyAccess = c.SecretKeyAccess
	config.SecretKeyRefresh = c.SecretKeyRefresh
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.ActivationTokenValidityDuration = c.ActivationTokenValidityDuration.Duration
	config.ResetTokenValidityDuration = c.ResetTokenValidityDuration.Duration
	config.SingleSessionPerUser = c.SingleSessionPerUser
}
