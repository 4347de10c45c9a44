//go:build linux

package timescale

import "golang.org/x/sys/unix"

// Readiness waits with timeouts. Negative and zero timeouts are
// sentinels ("wait forever", "return immediately") and pass through
// bit-for-bit; nil struct timeouts mean "block indefinitely" and are
// never dereferenced.

// Poll waits for readiness on fds for at most timeout virtual
// milliseconds. A negative timeout waits forever and a zero timeout
// polls; both are forwarded unchanged.
func (e *Engine) Poll(fds []unix.PollFd, timeout int) (int, error) {
	e.prologue(OpPoll)
	if e.real.poll == nil {
		return 0, ErrNotResolved
	}
	if !e.hooked(OpPoll) || timeout <= 0 || e.initErr != nil {
		return e.real.poll(fds, timeout)
	}

	return e.real.poll(fds, int(e.tf.durationToReal(float64(timeout))))
}

// Select waits for readiness for at most the virtual duration in
// timeout. The remaining time the kernel writes back through timeout is
// reported in virtual units. A nil timeout blocks indefinitely and a
// zero timeout polls; both are forwarded unchanged.
func (e *Engine) Select(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timeval) (int, error) {
	e.prologue(OpSelect)
	if e.real.selectfds == nil {
		return 0, ErrNotResolved
	}
	if !e.hooked(OpSelect) || timeout == nil || timevalIsZero(*timeout) || e.initErr != nil {
		return e.real.selectfds(nfd, r, w, ex, timeout)
	}

	scaled := secondsToTimeval(e.tf.durationToReal(timevalSeconds(*timeout)))
	n, err := e.real.selectfds(nfd, r, w, ex, &scaled)
	*timeout = secondsToTimeval(e.tf.durationToVirtual(timevalSeconds(scaled)))
	return n, err
}

// Pselect waits for readiness for at most the virtual duration in
// timeout, with the given signal mask swapped in. Unlike Select the
// timeout is not written back. A nil or zero timeout is forwarded
// unchanged.
func (e *Engine) Pselect(nfd int, r, w, ex *unix.FdSet, timeout *unix.Timespec, sigmask *unix.Sigset_t) (int, error) {
	e.prologue(OpPselect)
	if e.real.pselect == nil {
		return 0, ErrNotResolved
	}
	if !e.hooked(OpPselect) || timeout == nil || timespecIsZero(*timeout) || e.initErr != nil {
		return e.real.pselect(nfd, r, w, ex, timeout, sigmask)
	}

	scaled := secondsToTimespec(e.tf.durationToReal(timespecSeconds(*timeout)))
	return e.real.pselect(nfd, r, w, ex, &scaled, sigmask)
}
