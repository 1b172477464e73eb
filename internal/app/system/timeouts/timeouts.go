// Package timeouts holds the deadlines used for I/O outside the request path.
//
// The catalog is read once at startup and served from memory, so only three
// kinds of I/O remain:
//   - Ping: health checks against MongoDB
//   - Load: reading the dataset from its source
//   - Seed: replacing the Mongo copy of the dataset (catalogseed)
package timeouts

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultPing = 2 * time.Second
	DefaultLoad = 10 * time.Second
	DefaultSeed = 60 * time.Second
)

var (
	mu   sync.RWMutex
	ping = DefaultPing
	load = DefaultLoad
	seed = DefaultSeed
)

// Ping returns the health-check timeout.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Load returns the dataset load timeout.
func Load() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return load
}

// Seed returns the timeout for writing the dataset to MongoDB.
func Seed() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return seed
}

// Config holds timeout values. Zero values keep the current setting.
type Config struct {
	Ping time.Duration
	Load time.Duration
	Seed time.Duration
}

// Configure overrides timeouts. Call it at startup before serving.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Load > 0 {
		load = cfg.Load
	}
	if cfg.Seed > 0 {
		seed = cfg.Seed
	}
}

// Reset restores the defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping, load, seed = DefaultPing, DefaultLoad, DefaultSeed
}

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Ping: ping, Load: load, Seed: seed}
}

// Log writes the active configuration at info level.
func Log(logger *zap.Logger) {
	c := Current()
	logger.Info("timeouts configured",
		zap.Duration("ping", c.Ping),
		zap.Duration("load", c.Load),
		zap.Duration("seed", c.Seed))
}
