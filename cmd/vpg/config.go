package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vpg/boolfn"
	"github.com/katalvlaran/vpg/zielonka"
)

// Config is read from the environment; flags override it.
type Config struct {
	LogLevel  string `env:"VPG_LOG_LEVEL"     envDefault:"warning"`
	NodeSize  int    `env:"VPG_BDD_NODESIZE"  envDefault:"10000"`
	CacheSize int    `env:"VPG_BDD_CACHESIZE" envDefault:"5000"`
	Workers   int    `env:"VPG_WORKERS"       envDefault:"0"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.NodeSize <= 0 || cfg.CacheSize <= 0 {
		return Config{}, fmt.Errorf("parse env: BDD table sizes must be positive, got %d and %d", cfg.NodeSize, cfg.CacheSize)
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("parse env: VPG_WORKERS must not be negative, got %d", cfg.Workers)
	}
	return cfg, nil
}

// bddOptions returns the manager options for games read from files.
func (c Config) bddOptions() []boolfn.Option {
	return []boolfn.Option{boolfn.WithNodeSize(c.NodeSize), boolfn.WithCacheSize(c.CacheSize)}
}

// solverOptions returns the options for every solver call.
func (c Config) solverOptions(log logrus.FieldLogger) []zielonka.Option {
	opts := []zielonka.Option{zielonka.WithLogger(log)}
	if c.Workers > 0 {
		opts = append(opts, zielonka.WithWorkers(c.Workers))
	}
	return opts
}
