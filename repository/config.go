package repository

import "go.uber.org/zap"

// Config holds configuration shared by every repository created from
// one Provider.
type Config struct {
	// Logger receives debug-level diagnostics.
	// Default: a no-op logger.
	Logger *zap.SugaredLogger

	// DefaultPageSize is the page size GetPaginated falls back to when
	// the caller passes take <= 0.
	// Default: 50
	// Max: 1000
	DefaultPageSize int64

	// Validation enables struct-tag validation of documents before
	// AddOne, AddMany, UpdateOne and ReplaceOneAndGet write them.
	// Individual calls can opt out with WithoutValidation.
	Validation bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPageSize: 50,
	}
}

// validate ensures config values are within acceptable bounds.
func (c *Config) validate() {
	if c.Logger == nil {
		c.Logger = zap.NewNop().Sugar()
	}
	if c.DefaultPageSize < 1 {
		c.DefaultPageSize = 50
	}
	if c.DefaultPageSize > 1000 {
		c.DefaultPageSize = 1000
	}
}
