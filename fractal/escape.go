// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package fractal

const (
	// MaxIterations is the iteration limit of the escape-time loop.
	MaxIterations = 255

	// InteriorIntensity is the gray level of points that never escape.
	InteriorIntensity uint8 = 0

	// escapeRadiusSq is |z|² beyond which the orbit diverges.
	escapeRadiusSq = 4.0
)

// EscapeTime iterates z = z² + c from z = 0 for at most limit steps.
// After each step it tests |z|² > 4 and, on the first step that passes,
// returns that step's 0-based index and true. Points still bounded after
// limit steps return (0, false).
func EscapeTime(c complex128, limit int) (int, bool) {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	for i := range limit {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		if zr*zr+zi*zi > escapeRadiusSq {
			return i, true
		}
	}
	return 0, false
}

// Intensity returns the gray level for point c.
func Intensity(c complex128) uint8 {
	k, escaped := EscapeTime(c, MaxIterations)
	if !escaped {
		return InteriorIntensity
	}
	return uint8(MaxIterations - k) //nolint:gosec // k < MaxIterations
}
