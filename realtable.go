//go:build linux

package timescale

import (
	"errors"
	"math"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ErrNotResolved is returned by a handler whose authentic
// implementation is missing from the real table. Handlers check before
// dereferencing; a hole in the table is never a crash.
var ErrNotResolved = errors.New("timescale: real operation not resolved")

// realTable holds one reference per catalogued operation to its
// authentic, unscaled implementation. It is populated once during
// initialization and read-only afterward. Everything internal — anchor
// capture included — calls through this table and can never reenter the
// interception layer.
type realTable struct {
	alarm          func(seconds uint) (uint, error)
	clockGettime   func(clockid int32, ts *unix.Timespec) error
	clockNanosleep func(clockid int32, flags int, req, rem *unix.Timespec) error
	futexWait      func(addr *int32, val int32, timeout *unix.Timespec) error
	getitimer      func(which unix.ItimerWhich) (unix.Itimerval, error)
	gettimeofday   func(tv *unix.Timeval) error
	nanosleep      func(req, rem *unix.Timespec) error
	poll           func(fds []unix.PollFd, timeout int) (int, error)
	pselect        func(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error)
	selectfds      func(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timeval) (int, error)
	setitimer      func(which unix.ItimerWhich, it unix.Itimerval) (unix.Itimerval, error)
	time           func(t *unix.Time_t) (unix.Time_t, error)
	times          func(tms *unix.Tms) (uintptr, error)
	sleep          func(seconds uint) uint
	usleep         func(usec uint32) error
}

// resolveRealTable binds every reference to the host implementation.
func resolveRealTable() *realTable {
	rt := &realTable{
		alarm:          realAlarm,
		clockGettime:   unix.ClockGettime,
		clockNanosleep: unix.ClockNanosleep,
		futexWait:      realFutexWait,
		getitimer:      unix.Getitimer,
		gettimeofday:   unix.Gettimeofday,
		nanosleep:      unix.Nanosleep,
		poll:           unix.Poll,
		pselect:        unix.Pselect,
		selectfds:      unix.Select,
		setitimer:      unix.Setitimer,
		time:           unix.Time,
		times:          unix.Times,
	}
	// sleep and usleep have no syscall of their own; like libc, they
	// are built on the real nanosleep.
	rt.sleep = func(seconds uint) uint {
		return sleepViaNanosleep(rt.nanosleep, float64(seconds))
	}
	rt.usleep = func(usec uint32) error {
		req := secondsToTimespec(float64(usec) / unitMicro)
		return rt.nanosleep(&req, nil)
	}
	return rt
}

// realAlarm arms ITIMER_REAL, which is what alarm(2) is defined as.
// The alarm syscall itself is absent on some architectures. A pending
// previous alarm reports at least one second, like alarm(2).
func realAlarm(seconds uint) (uint, error) {
	it := unix.Itimerval{Value: secondsToTimeval(float64(seconds))}
	prev, err := unix.Setitimer(unix.ItimerReal, it)
	if err != nil {
		return 0, err
	}
	return uint(math.Ceil(timevalSeconds(prev.Value))), nil
}

// futexWaitOp is FUTEX_WAIT from <linux/futex.h>; x/sys/unix exports
// the futex syscall number but not the operation constants.
const futexWaitOp = 0

// realFutexWait performs FUTEX_WAIT directly; x/sys/unix has no futex
// wrapper. A nil timeout blocks until woken.
func realFutexWait(addr *int32, val int32, timeout *unix.Timespec) error {
	_, _, errno := unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWaitOp),
		uintptr(val),
		uintptr(unsafe.Pointer(timeout)),
		0, 0,
	)
	if errno != 0 {
		return errno
	}
	return nil
}

// sleepViaNanosleep blocks for the given real seconds and returns the
// whole unslept seconds if interrupted, matching the sleep(3) contract.
func sleepViaNanosleep(nanosleep func(req, rem *unix.Timespec) error, seconds float64) uint {
	req := secondsToTimespec(seconds)
	var rem unix.Timespec
	if err := nanosleep(&req, &rem); err != nil {
		unslept := timespecSeconds(rem)
		if unslept > 0 {
			return uint(unslept)
		}
	}
	return 0
}
