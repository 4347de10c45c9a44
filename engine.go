//go:build linux

package timescale

import (
	"sync"

	"github.com/rs/zerolog"
)

// Engine is the interposition-and-scaling engine. All of its operation
// methods are safe for concurrent use: the only mutable state is the
// one-time initialization transition, guarded by sync.Once; the
// configuration, real table and anchors are immutable afterward and
// read without locks.
//
// The zero value is not usable; construct with [New] or use the
// process-wide [Default].
type Engine struct {
	once sync.Once

	// fromEnv defers configuration to the environment at first use.
	fromEnv bool

	cfg     Config
	real    *realTable
	tf      transform
	anch    anchors
	log     zerolog.Logger
	initErr error
}

// New creates an engine with an explicit configuration, for callers who
// inject rather than configure through the environment. The real table
// is resolved and the anchors captured lazily, on the first operation.
func New(cfg Config) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg.clone()}, nil
}

// newEnvEngine defers everything to the first intercepted call.
func newEnvEngine() *Engine {
	return &Engine{fromEnv: true}
}

// ensureInit performs the one-time bootstrap: parse configuration,
// resolve the real table, capture the anchors — in that order, exactly
// once, no matter how many threads race into it. Anchor capture reads
// the clock through the real table, so an intercepted operation invoked
// during initialization cannot recurse back into this layer.
func (e *Engine) ensureInit() {
	e.once.Do(e.init)
}

func (e *Engine) init() {
	if e.fromEnv {
		e.cfg = ConfigFromEnv()
	}
	e.log = newLogger(e.cfg.Verbosity)
	if e.real == nil {
		e.real = resolveRealTable()
	}
	e.tf = transform{scale: e.cfg.Scale}

	a, err := captureAnchors(e.real)
	if err != nil {
		e.initErr = err
		e.log.Error().Err(err).Msg("anchor capture failed")
		return
	}
	e.anch = a

	e.log.Debug().
		Float64("scale", e.cfg.Scale).
		Int("verbosity", e.cfg.Verbosity).
		Msg("timescale initialized")
}

// prologue is the common handler entry: trigger initialization if this
// is the first call of any kind, then log the invocation.
func (e *Engine) prologue(op Operation) {
	e.ensureInit()
	e.log.Debug().Stringer("op", op).Msg("calling")
}

// hooked reports whether op is actively intercepted. Unhooked
// operations forward verbatim.
func (e *Engine) hooked(op Operation) bool {
	return e.cfg.Hooked.Hooked(op)
}

// Scale returns the configured scale factor.
func (e *Engine) Scale() float64 {
	e.ensureInit()
	return e.cfg.Scale
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the process-wide engine, configured from the
// TIMESCALE_* environment variables on its first operation. The
// package-level operation functions delegate to it.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = newEnvEngine()
	})
	return defaultEngine
}

// Init eagerly initializes the process-wide engine, capturing the
// anchors now rather than on the first intercepted call. Optional;
// initialization is otherwise lazy and idempotent.
func Init() {
	Default().ensureInit()
}
