package timescale

import "strings"

// Operation identifies one catalogued entry point.
type Operation uint8

const (
	OpAlarm Operation = iota
	OpClockGettime
	OpClockNanosleep
	OpFutexWait
	OpGetitimer
	OpGettimeofday
	OpNanosleep
	OpPoll
	OpPselect
	OpSelect
	OpSetitimer
	OpSleep
	OpTime
	OpTimes
	OpUsleep

	numOperations
)

// opNames are the tokens recognized in TIMESCALE_HOOKS, indexed by Operation.
var opNames = [numOperations]string{
	OpAlarm:          "alarm",
	OpClockGettime:   "clock_gettime",
	OpClockNanosleep: "clock_nanosleep",
	OpFutexWait:      "futex",
	OpGetitimer:      "getitimer",
	OpGettimeofday:   "gettimeofday",
	OpNanosleep:      "nanosleep",
	OpPoll:           "poll",
	OpPselect:        "pselect",
	OpSelect:         "select",
	OpSetitimer:      "setitimer",
	OpSleep:          "sleep",
	OpTime:           "time",
	OpTimes:          "times",
	OpUsleep:         "usleep",
}

func (op Operation) String() string {
	if op >= numOperations {
		return "unknown"
	}
	return opNames[op]
}

// AllOperations returns every catalogued operation.
func AllOperations() []Operation {
	ops := make([]Operation, numOperations)
	for i := range ops {
		ops[i] = Operation(i)
	}
	return ops
}

// ParseOperation returns the operation named by token, if any.
func ParseOperation(token string) (Operation, bool) {
	for op, name := range opNames {
		if token == name {
			return Operation(op), true
		}
	}
	return 0, false
}

// OperationSet is the set of operations that are actively intercepted.
// A nil set means all catalogued operations are hooked; an empty,
// non-nil set means none are.
type OperationSet map[Operation]bool

// Hooked reports whether op is actively intercepted.
func (s OperationSet) Hooked(op Operation) bool {
	if s == nil {
		return true
	}
	return s[op]
}

// AllHooked returns a set containing every catalogued operation.
func AllHooked() OperationSet {
	s := make(OperationSet, numOperations)
	for _, op := range AllOperations() {
		s[op] = true
	}
	return s
}

// ParseOperations parses a comma-separated list of operation names into
// a set. Unrecognized tokens are collected and returned for the caller
// to report; they do not fail the parse. An empty list yields an empty
// (none-hooked) set.
func ParseOperations(list string) (OperationSet, []string) {
	s := make(OperationSet)
	var unknown []string
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		op, ok := ParseOperation(token)
		if !ok {
			unknown = append(unknown, token)
			continue
		}
		s[op] = true
	}
	return s, unknown
}
