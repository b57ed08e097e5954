package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/dmitrijs2005/taskify/internal/flagx"
	"github.com/dmitrijs2005/taskify/internal/timex"
)

// JsonConfig is the DTO for reading JSON config files. It uses
// timex.Duration for the token lifetime, which accepts both "24h" strings
// and integer nanoseconds, and a comma-joined string for origins.
// After unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	Address               string         `json:"address"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	AllowedOrigins        string         `json:"allowed_origins"`
	VerboseErrors         bool           `json:"verbose_errors"`
	LogLevel              string         `json:"log_level"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When neither flag is set,
// nothing is loaded. An unreadable or malformed file panics: a config file
// that was asked for but cannot be used is a startup error.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlag()
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

	if c.Address != "" {
		config.Address = c.Address
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.AllowedOrigins != "" {
		config.AllowedOrigins = strings.Split(c.AllowedOrigins, ",")
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	config.VerboseErrors = config.VerboseErrors || c.VerboseErrors
}
