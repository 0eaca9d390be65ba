package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"9091"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	ProcessingDelay time.Duration `envconfig:"PROCESSING_DELAY" default:"2s"`
	RedirectDelay   time.Duration `envconfig:"REDIRECT_DELAY" default:"3s"`
	CardCacheSize   int           `envconfig:"CARD_CACHE_SIZE" default:"512"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	SeedCatalog     bool          `envconfig:"SEED_CATALOG" default:"true"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// NewLogger production-логгер с уровнем из конфигурации
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
