package imu

import (
	"fmt"

	"github.com/relabs-tech/inertial_pipeline/internal/codec"
)

// RawSample is one packed orientation reading: x, y and z bit fields
// (8 bits each, MSB first) followed by a reserved 8-bit field.
type RawSample []uint32

// Valid reports whether the sample is long enough and holds only bits.
// Only the three angle fields are checked.
func (s RawSample) Valid() bool {
	if len(s) < codec.TripletBits {
		return false
	}
	for _, b := range s[:codec.TripletBits] {
		if b > 1 {
			return false
		}
	}
	return true
}

// FixedTriplet holds the x, y, z angles (roll, pitch, yaw) as unsigned
// fixed-point values.
type FixedTriplet struct {
	X, Y, Z        uint32
	FractionalBits uint32
}

// Float converts every component back to a float.
func (t FixedTriplet) Float() FloatTriplet {
	return FloatTriplet{
		X: codec.FixedToFloat(t.X, t.FractionalBits),
		Y: codec.FixedToFloat(t.Y, t.FractionalBits),
		Z: codec.FixedToFloat(t.Z, t.FractionalBits),
	}
}

// Decode unpacks the three angle fields of s and quantizes each one,
// read as whole degrees, to fixed point with the given fractional bits.
func Decode(s RawSample, fractionalBits uint32) (FixedTriplet, error) {
	x, y, z, err := codec.BitsToTriplet(s)
	if err != nil {
		return FixedTriplet{}, err
	}

	t := FixedTriplet{FractionalBits: fractionalBits}
	for _, f := range []struct {
		name string
		in   uint8
		out  *uint32
	}{
		{"x", x, &t.X},
		{"y", y, &t.Y},
		{"z", z, &t.Z},
	} {
		if *f.out, err = codec.FloatToFixed(float32(f.in), fractionalBits); err != nil {
			return FixedTriplet{}, fmt.Errorf("%s angle: %w", f.name, err)
		}
	}
	return t, nil
}

// FloatTriplet holds the x, y, z angles in degrees.
type FloatTriplet struct {
	X, Y, Z float32
}

// SampleSource supplies raw samples to the pipeline.
// Push may be called from any goroutine; TryPop has a single consumer and
// returns false once the source is exhausted. There is no explicit close.
type SampleSource interface {
	Push(RawSample)
	TryPop() (RawSample, bool)
}
