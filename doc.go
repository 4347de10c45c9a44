// Package timescale makes a process observe a scaled timeline. Clock
// reads, sleeps, bounded waits and interval timers routed through this
// package follow virtual time: with a scale of s, a clock read taken Δ
// real seconds after initialization reports the anchor plus Δ/s, and a
// wait requested for d virtual seconds blocks for d·s real seconds.
//
// Operations carry their operating-system names with signatures
// compatible with golang.org/x/sys/unix, so swapping the import is
// enough to put existing syscall-level code on the virtual timeline.
// A Go-native surface ([Now], [Sleep], [Since]) sits on top.
//
// Configuration comes from the environment on first use:
// TIMESCALE_SCALE (positive float, default 1), TIMESCALE_VERBOSITY
// (0 silent through 3 debug), and TIMESCALE_HOOKS (comma-separated
// operation names; unset means all, empty means none).
package timescale
