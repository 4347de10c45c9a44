//go:build linux

package timescale

import "golang.org/x/sys/unix"

// anchors are the real clock values captured once at initialization.
// Every virtual-time computation is defined relative to exactly one of
// them, chosen by the operation's clock domain. The wall and monotonic
// clocks are not co-calibrated, so each domain keeps its own anchor;
// mixing them would skew the time base permanently.
type anchors struct {
	walltime  float64 // CLOCK_REALTIME at init, continuous seconds
	monotonic float64 // CLOCK_MONOTONIC at init, continuous seconds

	// CPU accounting anchors, one per tms counter plus the tick value
	// times(2) itself returns. Each counter is scaled relative to its
	// own anchor so CPU time accumulated before initialization is not
	// mis-scaled.
	cpu      unix.Tms
	cpuTicks uintptr
}

// captureAnchors reads the anchors through the real table, never the
// interception layer. The wall and monotonic anchors are required; the
// CPU anchor is skipped when times is unresolved, in which case the
// Times handler reports ErrNotResolved on its own.
func captureAnchors(rt *realTable) (anchors, error) {
	var a anchors

	if rt.clockGettime == nil {
		return a, ErrNotResolved
	}

	var ts unix.Timespec
	if err := rt.clockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return a, err
	}
	a.walltime = timespecSeconds(ts)

	if err := rt.clockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return a, err
	}
	a.monotonic = timespecSeconds(ts)

	if rt.times != nil {
		ticks, err := rt.times(&a.cpu)
		if err != nil {
			return a, err
		}
		a.cpuTicks = ticks
	}

	return a, nil
}
