package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jimiolaniyan/gousers/auth"
)

type config struct {
	Addr            string        `env:"USERS_ADDR" envDefault:":8090"`
	APIKey          string        `env:"USERS_API_KEY"`
	APIKeyHash      string        `env:"USERS_API_KEY_HASH"`
	LogLevel        string        `env:"USERS_LOG_LEVEL" envDefault:"info"`
	LogDevelopment  bool          `env:"USERS_LOG_DEVELOPMENT"`
	ShutdownTimeout time.Duration `env:"USERS_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

var errNoAPIKey = errors.New("USERS_API_KEY or USERS_API_KEY_HASH must be set")

// parseConfig reads the configuration from environ, given in os.Environ form.
func parseConfig(environ []string) (config, error) {
	var cfg config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// apiKey prefers the hash when both settings are present.
func (c config) apiKey() (auth.Key, error) {
	switch {
	case c.APIKeyHash != "":
		return auth.NewHashedKey(c.APIKeyHash)
	case c.APIKey != "":
		return auth.NewKey(c.APIKey), nil
	default:
		return auth.Key{}, errNoAPIKey
	}
}

func (c config) logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	if c.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
