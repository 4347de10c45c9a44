package timescale

// transform maps between the real and virtual timelines. Point
// transforms are anchor-relative; duration transforms are plain ratios.
// Durations are scaled on the way in (virtual request becomes a real
// wait) and un-scaled on the way out (real remainder becomes a virtual
// remainder). Sentinel values never reach these functions; handlers
// filter them first.
type transform struct {
	scale float64
}

// pointToVirtual converts an absolute real clock reading into the
// virtual reading for the same instant: anchor + (real - anchor)/scale.
func (t transform) pointToVirtual(anchor, real float64) float64 {
	return anchor + (real-anchor)/t.scale
}

// pointToReal is the inverse of pointToVirtual.
func (t transform) pointToReal(anchor, virtual float64) float64 {
	return anchor + (virtual-anchor)*t.scale
}

// durationToReal converts a caller-requested virtual duration into the
// real duration handed to the underlying blocking primitive.
func (t transform) durationToReal(virtual float64) float64 {
	return virtual * t.scale
}

// durationToVirtual converts a real remaining or elapsed duration into
// the virtual duration reported to the caller.
func (t transform) durationToVirtual(real float64) float64 {
	return real / t.scale
}
