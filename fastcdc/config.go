package fastcdc

import (
	"fmt"
	"log/slog"

	"github.com/vitalvas/gocdc/xlogger"
)

// NormalizationLevel controls how aggressively Normalized Chunking biases
// cut points toward the average size: level 0 disables normalization
// (degenerating to the strict/loose masks both equal to the average mask),
// higher levels narrow the observed size distribution at the cost of a
// slightly higher average scan length.
type NormalizationLevel uint8

const (
	Level0 NormalizationLevel = iota
	Level1
	Level2
	Level3
)

const maxNormalizationLevel = Level3

// Config is an immutable, validated set of chunking parameters plus the
// derived gear table and masks that drive the cut-point finder. A Config is
// safe to share across goroutines and across any number of Chunker and
// AsyncChunker instances; construct it once with New and reuse it.
type Config struct {
	minSize int
	avgSize int
	maxSize int
	level   NormalizationLevel

	gear   [256]uint64
	maskS  uint64
	maskA  uint64
	maskL  uint64

	bufSize int
	logger  *slog.Logger
}

// Option customizes a Config beyond its required size/level parameters.
type Option func(*configOptions)

type configOptions struct {
	gearSeed uint64
	useSeed  bool
	logger   *slog.Logger
	logLevel string
	bufSize  int
}

// WithGearSeed derives a private gear table for this Config from seed,
// instead of sharing the package-default table.
func WithGearSeed(seed uint64) Option {
	return func(o *configOptions) {
		o.gearSeed = seed
		o.useSeed = true
	}
}

// WithLogger attaches a structured logger used to record non-EOF reader
// errors before they are surfaced as an IoError, overriding the default
// logger built by WithLogLevel/New.
func WithLogger(logger *slog.Logger) Option {
	return func(o *configOptions) {
		o.logger = logger
	}
}

// WithLogLevel sets the level ("debug", "info", "warn", "error") of the
// default logger New builds via xlogger when no WithLogger override is
// given. The default level is "warn", matching the severity of the reader
// errors this logger records.
func WithLogLevel(level string) Option {
	return func(o *configOptions) {
		o.logLevel = level
	}
}

// WithBufferSize sets the internal read-ahead buffer capacity. It must be
// at least maxSize; the default is 4*maxSize.
func WithBufferSize(n int) Option {
	return func(o *configOptions) {
		o.bufSize = n
	}
}

// New validates minSize <= avgSize <= maxSize and level, derives the masks
// and gear table, and returns a ready-to-use Config.
func New(minSize, avgSize, maxSize int, level NormalizationLevel, opts ...Option) (*Config, error) {
	if minSize <= 0 {
		return nil, &ConfigError{Reason: "minSize must be positive"}
	}
	if avgSize < minSize {
		return nil, &ConfigError{Reason: "avgSize must be >= minSize"}
	}
	if maxSize < avgSize {
		return nil, &ConfigError{Reason: "maxSize must be >= avgSize"}
	}
	if level > maxNormalizationLevel {
		return nil, &ConfigError{Reason: fmt.Sprintf("normalization level must be <= %d", maxNormalizationLevel)}
	}

	options := configOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	logger := options.logger
	if logger == nil {
		logLevel := options.logLevel
		if logLevel == "" {
			logLevel = "warn"
		}
		logger = xlogger.New(xlogger.Config{Level: logLevel})
	}

	cfg := &Config{
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		level:   level,
		logger:  logger,
	}

	if options.useSeed {
		cfg.gear = GenerateGearTable(options.gearSeed)
	} else {
		cfg.gear = defaultGearTable
	}

	cfg.maskS, cfg.maskA, cfg.maskL = computeMasks(avgSize, level)

	cfg.bufSize = options.bufSize
	if cfg.bufSize <= 0 {
		cfg.bufSize = 4 * maxSize
	}
	if cfg.bufSize < maxSize {
		return nil, &ConfigError{Reason: "buffer size must be >= maxSize"}
	}

	return cfg, nil
}

// MinSize, AvgSize, and MaxSize report the configured chunk-size bounds.
func (c *Config) MinSize() int { return c.minSize }
func (c *Config) AvgSize() int { return c.avgSize }
func (c *Config) MaxSize() int { return c.maxSize }

// Level reports the configured normalization level.
func (c *Config) Level() NormalizationLevel { return c.level }
