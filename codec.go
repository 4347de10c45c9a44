package timescale

import "math"

// Subsecond units for the two split representations the kernel uses.
const (
	unitNano  = 1e9 // Timespec
	unitMicro = 1e6 // Timeval
)

// toSeconds converts a split (seconds, subseconds) value into continuous
// seconds. unit is the subsecond resolution, unitNano or unitMicro.
func toSeconds(sec, sub int64, unit float64) float64 {
	return float64(sec) + float64(sub)/unit
}

// splitSeconds is the inverse of toSeconds. The seconds component
// truncates toward negative infinity, so exact multiples of a second
// round-trip in both directions.
func splitSeconds(v float64, unit float64) (sec, sub int64) {
	s := math.Floor(v)
	return int64(s), int64((v - s) * unit)
}
