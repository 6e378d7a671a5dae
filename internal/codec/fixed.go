// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package codec

import (
	"fmt"
	"math"
)

// DefaultFractionalBits gives the Q16.16 layout used throughout the pipeline.
const DefaultFractionalBits = 16

// MaxFractionalBits is the largest scale whose 2^n still fits a uint32.
const MaxFractionalBits = 31

// scale returns 2^fractionalBits as a float32. Powers of two are exact.
func scale(fractionalBits uint32) float32 {
	return float32(math.Ldexp(1, int(fractionalBits)))
}

// FixedToFloat converts an unsigned fixed-point value with the given number
// of fractional bits to a float. Precision loss for large inputs is accepted.
func FixedToFloat(fixed uint32, fractionalBits uint32) float32 {
	return float32(fixed) / scale(fractionalBits)
}

// FloatToFixed scales value by 2^fractionalBits and rounds to the nearest
// integer, halves away from zero.
//
// Negative inputs fail with ErrUnderflow since the format is unsigned.
// Results above math.MaxUint32 (and NaN) fail with ErrOverflow.
func FloatToFixed(value float32, fractionalBits uint32) (uint32, error) {
	scaled := value * scale(fractionalBits)

	switch {
	case scaled < 0:
		return 0, fmt.Errorf("%w: %g scaled to %g", ErrUnderflow, value, scaled)
	case math.IsNaN(float64(scaled)):
		return 0, fmt.Errorf("%w: NaN is not representable", ErrOverflow)
	case float64(scaled) > math.MaxUint32:
		return 0, fmt.Errorf("%w: %g scaled to %g", ErrOverflow, value, scaled)
	}

	return uint32(math.Round(float64(scaled))), nil
}
