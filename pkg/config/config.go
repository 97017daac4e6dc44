// Package config handles engine configuration via environment variables.
//
// All variables carry the HILBERT_ prefix. Configuration is loaded with
// LoadFromEnv() and can be validated with Validate() before use.
//
// Environment Variables:
//   - HILBERT_CACHE_ENABLED=true     persist computed bases across runs
//   - HILBERT_CACHE_DIR="./cache"    basis cache directory
//   - HILBERT_STATS_ENABLED=false    print engine statistics after solving
//   - HILBERT_TRACE_ENABLED=false    dump engine state diagnostics
//   - HILBERT_TIMEOUT="30s"          saturation deadline (0 = none)
//
// Example:
//
//	cfg := config.LoadFromEnv()
//	if err := cfg.Validate(); err != nil {
//		log.Fatalf("invalid config: %v", err)
//	}
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all engine configuration loaded from environment variables.
type Config struct {
	// Cache controls the persistent basis cache.
	Cache CacheConfig

	// Stats controls statistics reporting.
	Stats StatsConfig

	// Trace enables diagnostic state dumps. Output is unstructured and
	// not a contract.
	Trace bool

	// Timeout bounds a single Saturate call. Zero means no deadline.
	Timeout time.Duration
}

// CacheConfig controls the persistent basis cache.
type CacheConfig struct {
	Enabled bool
	Dir     string
}

// StatsConfig controls statistics reporting.
type StatsConfig struct {
	Enabled bool
}

// LoadFromEnv creates a Config from HILBERT_* environment variables,
// applying defaults for anything unset.
func LoadFromEnv() *Config {
	return &Config{
		Cache: CacheConfig{
			Enabled: getEnvBool("HILBERT_CACHE_ENABLED", false),
			Dir:     getEnv("HILBERT_CACHE_DIR", "./hilbert-cache"),
		},
		Stats: StatsConfig{
			Enabled: getEnvBool("HILBERT_STATS_ENABLED", false),
		},
		Trace:   getEnvBool("HILBERT_TRACE_ENABLED", false),
		Timeout: getEnvDuration("HILBERT_TIMEOUT", 0),
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Cache.Enabled && c.Cache.Dir == "" {
		return fmt.Errorf("cache enabled but no cache directory provided")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v", c.Timeout)
	}
	return nil
}

// String returns a loggable representation of the Config.
func (c *Config) String() string {
	return fmt.Sprintf("cache=%v dir=%q stats=%v trace=%v timeout=%v",
		c.Cache.Enabled, c.Cache.Dir, c.Stats.Enabled, c.Trace, c.Timeout)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
		// Try parsing as seconds
		if secs, err := strconv.Atoi(val); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultVal
}
