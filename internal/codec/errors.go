// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package codec

import "errors"

var (
	// ErrInsufficientBits is returned when a bit sequence is shorter than
	// the field (or fields) being decoded.
	ErrInsufficientBits = errors.New("insufficient bits")

	// ErrInvalidBitValue is returned when an element that should be a bit
	// is neither 0 nor 1.
	ErrInvalidBitValue = errors.New("invalid bit value")

	// ErrUnderflow is returned when a negative value is converted to the
	// unsigned fixed-point format.
	ErrUnderflow = errors.New("fixed-point underflow")

	// ErrOverflow is returned when a scaled value does not fit in 32 bits.
	ErrOverflow = errors.New("fixed-point overflow")
)
