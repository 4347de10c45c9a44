//go:build linux

package timescale

import (
	"context"
	"time"

	"golang.org/x/sys/unix"
)

// Package-level operations, delegating to the process-wide [Default]
// engine. These carry the same signatures as their golang.org/x/sys/unix
// counterparts, so existing call sites only change the import.

// Time calls [Engine.Time] on the default engine.
func Time(t *unix.Time_t) (unix.Time_t, error) {
	return Default().Time(t)
}

// Gettimeofday calls [Engine.Gettimeofday] on the default engine.
func Gettimeofday(tv *unix.Timeval) error {
	return Default().Gettimeofday(tv)
}

// ClockGettime calls [Engine.ClockGettime] on the default engine.
func ClockGettime(clockid int32, ts *unix.Timespec) error {
	return Default().ClockGettime(clockid, ts)
}

// Times calls [Engine.Times] on the default engine.
func Times(tms *unix.Tms) (uintptr, error) {
	return Default().Times(tms)
}

// Sleep calls [Engine.Sleep] on the default engine.
func Sleep(seconds uint) uint {
	return Default().Sleep(seconds)
}

// Usleep calls [Engine.Usleep] on the default engine.
func Usleep(usec uint32) error {
	return Default().Usleep(usec)
}

// Nanosleep calls [Engine.Nanosleep] on the default engine.
func Nanosleep(req, rem *unix.Timespec) error {
	return Default().Nanosleep(req, rem)
}

// FutexWait calls [Engine.FutexWait] on the default engine.
func FutexWait(addr *int32, val int32, timeout *unix.Timespec) error {
	return Default().FutexWait(addr, val, timeout)
}

// Poll calls [Engine.Poll] on the default engine.
func Poll(fds []unix.PollFd, timeout int) (int, error) {
	return Default().Poll(fds, timeout)
}

// Select calls [Engine.Select] on the default engine.
func Select(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timeval) (int, error) {
	return Default().Select(nfd, r, w, ex, timeout)
}

// Pselect calls [Engine.Pselect] on the default engine.
func Pselect(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	return Default().Pselect(nfd, r, w, ex, timeout, sigmask)
}

// ClockNanosleep calls [Engine.ClockNanosleep] on the default engine.
func ClockNanosleep(clockid int32, flags int, req, rem *unix.Timespec) error {
	return Default().ClockNanosleep(clockid, flags, req, rem)
}

// Alarm calls [Engine.Alarm] on the default engine.
func Alarm(seconds uint) (uint, error) {
	return Default().Alarm(seconds)
}

// Getitimer calls [Engine.Getitimer] on the default engine.
func Getitimer(which unix.ItimerWhich) (unix.Itimerval, error) {
	return Default().Getitimer(which)
}

// Setitimer calls [Engine.Setitimer] on the default engine.
func Setitimer(which unix.ItimerWhich, it unix.Itimerval) (unix.Itimerval, error) {
	return Default().Setitimer(which, it)
}

// Now calls [Engine.Now] on the default engine.
func Now() (time.Time, error) {
	return Default().Now()
}

// Since calls [Engine.Since] on the default engine.
func Since(t time.Time) (time.Duration, error) {
	return Default().Since(t)
}

// SleepFor calls [Engine.SleepFor] on the default engine.
func SleepFor(d time.Duration) error {
	return Default().SleepFor(d)
}

// SleepContext calls [Engine.SleepContext] on the default engine.
func SleepContext(ctx context.Context, d time.Duration) error {
	return Default().SleepContext(ctx, d)
}
