//go:build linux

package timescale

import (
	"context"
	"time"

	"github.com/clipperhouse/ntime"
	"golang.org/x/sys/unix"
)

// The Go-native surface over the catalogue, for code that deals in
// time.Time and time.Duration rather than kernel structs.

// Now returns the virtual wall-clock time. It reads the real clock
// through the ClockGettime handler, so hooking and scaling apply
// exactly as they do for the syscall surface.
func (e *Engine) Now() (time.Time, error) {
	var ts unix.Timespec
	if err := e.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return time.Time{}, err
	}
	return time.Unix(int64(ts.Sec), int64(ts.Nsec)), nil
}

// Monotonic returns the virtual duration elapsed since the monotonic
// anchor was captured at initialization.
func (e *Engine) Monotonic() (time.Duration, error) {
	var ts unix.Timespec
	if err := e.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}
	virtual := timespecSeconds(ts) - e.anch.monotonic
	return time.Duration(virtual * unitNano), nil
}

// Since returns the virtual time elapsed since t.
func (e *Engine) Since(t time.Time) (time.Duration, error) {
	now, err := e.Now()
	if err != nil {
		return 0, err
	}
	return now.Sub(t), nil
}

// SleepFor blocks for the virtual duration d, through the Nanosleep
// handler. Non-positive durations return immediately.
func (e *Engine) SleepFor(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	req := secondsToTimespec(d.Seconds())
	return e.Nanosleep(&req, nil)
}

// SleepContext blocks for the virtual duration d, or until ctx is
// cancelled, whichever comes first. It returns ctx.Err() when cancelled
// and nil when the full duration elapsed.
func (e *Engine) SleepContext(ctx context.Context, d time.Duration) error {
	e.ensureInit()
	if d <= 0 {
		return ctx.Err()
	}

	start := ntime.Now()
	timer := time.NewTimer(e.realDuration(d))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		e.log.Debug().Dur("blocked", ntime.Now().Sub(start)).Msg("sleep cancelled")
		return ctx.Err()
	case <-timer.C:
		e.log.Debug().Dur("blocked", ntime.Now().Sub(start)).Msg("sleep elapsed")
		return nil
	}
}

// After waits for the virtual duration d to elapse and then sends the
// virtual wall-clock time on the returned channel, like time.After.
func (e *Engine) After(d time.Duration) <-chan time.Time {
	e.ensureInit()
	ch := make(chan time.Time, 1)
	go func() {
		<-time.After(e.realDuration(d))
		now, err := e.Now()
		if err != nil {
			now = time.Time{}
		}
		ch <- now
	}()
	return ch
}

// realDuration scales a virtual duration into the real duration to
// wait, honoring the nanosleep hook flag so an unhooked engine behaves
// identically to the standard library.
func (e *Engine) realDuration(d time.Duration) time.Duration {
	if !e.hooked(OpNanosleep) {
		return d
	}
	return time.Duration(e.tf.durationToReal(float64(d)))
}
