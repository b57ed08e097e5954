package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays values from TASKIFY_* environment variables onto the
// Config. Unset variables leave the current values untouched.
func parseEnv(config *Config) {
	if err := cleanenv.ReadEnv(config); err != nil {
		panic(err)
	}
}
