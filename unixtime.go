//go:build linux

package timescale

import "golang.org/x/sys/unix"

// Bridges between the kernel's split time structs and the continuous
// codec. Construction goes through unix.NsecToTimespec/NsecToTimeval so
// the field widths stay correct on every architecture.

func timespecSeconds(ts unix.Timespec) float64 {
	return toSeconds(int64(ts.Sec), int64(ts.Nsec), unitNano)
}

func secondsToTimespec(v float64) unix.Timespec {
	sec, nsec := splitSeconds(v, unitNano)
	return unix.NsecToTimespec(sec*int64(unitNano) + nsec)
}

func timevalSeconds(tv unix.Timeval) float64 {
	return toSeconds(int64(tv.Sec), int64(tv.Usec), unitMicro)
}

func secondsToTimeval(v float64) unix.Timeval {
	sec, usec := splitSeconds(v, unitMicro)
	return unix.NsecToTimeval(sec*int64(unitNano) + usec*1000)
}

func timespecIsZero(ts unix.Timespec) bool {
	return ts.Sec == 0 && ts.Nsec == 0
}

func timevalIsZero(tv unix.Timeval) bool {
	return tv.Sec == 0 && tv.Usec == 0
}
