package timescale

import (
	"fmt"
	"maps"
	"os"
	"strconv"
)

// Environment variables read by [ConfigFromEnv].
const (
	EnvVerbosity = "TIMESCALE_VERBOSITY"
	EnvScale     = "TIMESCALE_SCALE"
	EnvHooks     = "TIMESCALE_HOOKS"
)

// Config is the process-wide configuration. It is read once and never
// mutated afterward; an [Engine] copies it at construction.
type Config struct {
	// Verbosity is the log threshold: 0 silent, 1 errors, 2 warnings,
	// 3 debug.
	Verbosity int

	// Scale is the ratio of real seconds waited per virtual second
	// requested. Must be positive. With scale 2, a clock read taken 10
	// real seconds after the anchor reports the anchor plus 5, and a
	// sleep requested for 4 virtual seconds blocks for 8 real seconds.
	Scale float64

	// Hooked is the set of operations that are actively intercepted.
	// Nil means all catalogued operations; empty means none.
	Hooked OperationSet
}

// DefaultConfig returns the configuration used when the environment
// specifies nothing: scale 1, silent, every operation hooked.
func DefaultConfig() Config {
	return Config{
		Verbosity: 0,
		Scale:     1.0,
		Hooked:    nil, // nil set hooks everything
	}
}

// validate rejects configurations the transform cannot work with.
// A zero scale is a configuration error, not a "freeze time" request.
func (c Config) validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("timescale: scale must be positive, got %v", c.Scale)
	}
	return nil
}

// clone returns a copy whose Hooked set is independent of the original,
// so the engine's configuration stays immutable after construction.
func (c Config) clone() Config {
	c.Hooked = maps.Clone(c.Hooked)
	return c
}

// ConfigFromEnv builds a Config from the TIMESCALE_* environment
// variables. Problems are never fatal: an unparsable or non-positive
// scale falls back to 1.0 with a warning, unknown hook tokens are
// warned about and ignored. An absent TIMESCALE_HOOKS hooks every
// operation; a present-but-empty one hooks none.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v, ok := os.LookupEnv(EnvVerbosity); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Verbosity = n
		}
	}

	// The logger needs the verbosity, so it is parsed first and the
	// remaining values can be reported against it.
	logger := newLogger(cfg.Verbosity)

	if v, ok := os.LookupEnv(EnvScale); ok {
		f, err := strconv.ParseFloat(v, 64)
		switch {
		case err != nil:
			logger.Warn().Str("value", v).Msg("unparsable scale, using 1.0")
		case f <= 0:
			logger.Warn().Float64("value", f).Msg("scale must be positive, using 1.0")
		default:
			cfg.Scale = f
		}
	}

	if v, ok := os.LookupEnv(EnvHooks); ok {
		set, unknown := ParseOperations(v)
		for _, token := range unknown {
			logger.Warn().Str("hook", token).Msg("unknown hook name")
		}
		cfg.Hooked = set
	}

	return cfg
}
