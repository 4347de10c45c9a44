package timescale

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger maps the verbosity integer onto a zerolog stderr logger:
// 0 silent, 1 errors, 2 warnings, 3 and up debug.
func newLogger(verbosity int) zerolog.Logger {
	level := zerolog.Disabled
	switch {
	case verbosity >= 3:
		level = zerolog.DebugLevel
	case verbosity == 2:
		level = zerolog.WarnLevel
	case verbosity == 1:
		level = zerolog.ErrorLevel
	}
	return zerolog.New(os.Stderr).Level(level)
}
