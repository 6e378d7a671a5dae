// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package codec

import "fmt"

const (
	// BitsPerField is the width of one packed angle field.
	BitsPerField = 8

	// TripletBits is the minimum sample length holding x, y and z.
	TripletBits = 3 * BitsPerField

	// SampleBits is the nominal sample length: three angle fields followed
	// by one reserved field.
	SampleBits = 4 * BitsPerField
)

// BitsToByte packs the first 8 elements of bits into a byte, most
// significant bit first. Elements past the eighth are not inspected.
func BitsToByte(bits []uint32) (uint8, error) {
	if len(bits) < BitsPerField {
		return 0, fmt.Errorf("%w: need %d, got %d", ErrInsufficientBits, BitsPerField, len(bits))
	}

	var b uint8
	for i, bit := range bits[:BitsPerField] {
		if bit > 1 {
			return 0, fmt.Errorf("%w: position %d holds %d", ErrInvalidBitValue, i, bit)
		}
		b |= uint8(bit) << (BitsPerField - 1 - i)
	}
	return b, nil
}

// BitsToTriplet decodes the x, y and z fields of a packed sample.
// The reserved field after bit 24 is ignored.
func BitsToTriplet(bits []uint32) (x, y, z uint8, err error) {
	if len(bits) < TripletBits {
		return 0, 0, 0, fmt.Errorf("%w: need %d, got %d", ErrInsufficientBits, TripletBits, len(bits))
	}

	if x, err = BitsToByte(bits[0:8]); err != nil {
		return 0, 0, 0, fmt.Errorf("x field: %w", err)
	}
	if y, err = BitsToByte(bits[8:16]); err != nil {
		return 0, 0, 0, fmt.Errorf("y field: %w", err)
	}
	if z, err = BitsToByte(bits[16:24]); err != nil {
		return 0, 0, 0, fmt.Errorf("z field: %w", err)
	}
	return x, y, z, nil
}

// ByteToBits unpacks b into 8 bits, most significant first. It is the
// inverse of BitsToByte.
func ByteToBits(b uint8) []uint32 {
	bits := make([]uint32, BitsPerField)
	for i := range bits {
		bits[i] = uint32(b>>(BitsPerField-1-i)) & 1
	}
	return bits
}
