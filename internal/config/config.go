package config

import "time"

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

var globalConfig *Config

func Global() *Config {
	return globalConfig
}

func SetGlobal(cfg *Config) {
	globalConfig = cfg
}

type Config struct {
	Env       string `env:"ENV" env-required:"true"`
	HTTP      HTTPConfig
	Storage   StorageConfig
	Challenge ChallengeConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:"localhost"`
	Port            string        `env:"HTTP_PORT" env-default:"8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type StorageConfig struct {
	// Path of the embedded database file holding every collection.
	Path string `env:"STORAGE_PATH" env-default:"focus_app.db"`
}

type ChallengeConfig struct {
	PollInterval time.Duration `env:"CHALLENGE_POLL_INTERVAL" env-default:"2s"`
	ResetGuard   time.Duration `env:"CHALLENGE_RESET_GUARD" env-default:"5s"`
}
