// Package helpers provides clamped numeric conversions.
//
// Record fields are 32-bit on the wire while Go code carries time.Duration
// and int. These helpers convert without wrapping around.
package helpers

import (
	"math"
	"time"
)

// ClampInt restricts v to the range [lowerLimit, upperLimit].
func ClampInt(v, lowerLimit, upperLimit int) int {
	if v < lowerLimit {
		return lowerLimit
	}
	if v > upperLimit {
		return upperLimit
	}
	return v
}

// DurationSeconds converts d to whole seconds, truncating fractions.
// Negative durations become 0; durations past math.MaxUint32 seconds
// become math.MaxUint32.
func DurationSeconds(d time.Duration) uint32 {
	s := d / time.Second
	if s < 0 {
		return 0
	}
	if s > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(s) //nolint:gosec // clamped to valid range
}
