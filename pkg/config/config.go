// Package config loads the CLI's runtime defaults from the environment
// via viper+godotenv, the same loading idiom the rest of the pack uses.
// The solver engine itself (internal/engine) takes its Config from the
// caller's request, never from the environment — only the cmd/scheduler
// entrypoint consults this package.
package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds the CLI's defaults, overridable by flags at the call site.
type Config struct {
	Env string
	Log LogConfig

	DefaultSolver     string
	DefaultMaxSeconds int
	MetricsEnabled    bool
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Env: v.GetString("ENV"),
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		DefaultSolver:     v.GetString("DEFAULT_SOLVER"),
		DefaultMaxSeconds: v.GetInt("DEFAULT_MAX_TIME_SECONDS"),
		MetricsEnabled:    v.GetBool("ENABLE_METRICS"),
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("DEFAULT_SOLVER", "hybrid")
	v.SetDefault("DEFAULT_MAX_TIME_SECONDS", 30)
	v.SetDefault("ENABLE_METRICS", false)
}
