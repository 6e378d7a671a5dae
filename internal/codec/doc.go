// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package codec converts packed orientation samples between their three
// representations: MSB-first bit sequences, unsigned fixed-point integers
// and floating-point angles.
//
// Fixed-point values are plain uint32s with a caller-supplied number of
// fractional bits (16 by default, i.e. Q16.16). The format has no sign bit,
// so negative floats are rejected with ErrUnderflow rather than wrapped.
package codec
