package timescale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransform_PointToVirtual(t *testing.T) {
	t.Parallel()

	// With scale 2 and an anchor of 1000, a real reading 10 seconds
	// after the anchor is virtual time 1005.
	tf := transform{scale: 2.0}
	require.InDelta(t, 1005.0, tf.pointToVirtual(1000, 1010), 1e-9)

	// Scale 1 is the identity.
	tf = transform{scale: 1.0}
	require.InDelta(t, 1010.0, tf.pointToVirtual(1000, 1010), 1e-9)
}

func TestTransform_PointInverse(t *testing.T) {
	t.Parallel()

	tf := transform{scale: 3.5}
	const anchor = 123456.789
	for _, real := range []float64{anchor, anchor + 0.001, anchor + 10, anchor + 86400} {
		virtual := tf.pointToVirtual(anchor, real)
		require.InDelta(t, real, tf.pointToReal(anchor, virtual), 1e-6,
			"pointToReal should invert pointToVirtual")
	}
}

func TestTransform_PointProperty(t *testing.T) {
	t.Parallel()

	// For all s > 0 and elapsed Δ, a read Δ real seconds after the
	// anchor is anchor + Δ/s.
	const anchor = 5000.0
	for _, scale := range []float64{0.1, 0.5, 1, 2, 10, 100} {
		tf := transform{scale: scale}
		for _, delta := range []float64{0, 0.25, 1, 30, 3600} {
			got := tf.pointToVirtual(anchor, anchor+delta)
			require.InDelta(t, anchor+delta/scale, got, 1e-6,
				"scale %v delta %v", scale, delta)
		}
	}
}

func TestTransform_DurationPolarity(t *testing.T) {
	t.Parallel()

	// Outbound multiplies, inbound divides: a sleep requested for 4
	// virtual seconds at scale 0.5 becomes a 2 second real sleep.
	tf := transform{scale: 0.5}
	require.InDelta(t, 2.0, tf.durationToReal(4), 1e-9)
	require.InDelta(t, 4.0, tf.durationToVirtual(2), 1e-9)

	for _, scale := range []float64{0.25, 1, 8} {
		tf := transform{scale: scale}
		for _, d := range []float64{0.001, 1, 59.5} {
			require.InDelta(t, d, tf.durationToVirtual(tf.durationToReal(d)), 1e-9,
				"duration transforms should be inverses at scale %v", scale)
		}
	}
}
