package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedToFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fixed uint32
		bits  uint32
		want  float32
		delta float64
	}{
		{"pi", 205887, 16, math.Pi, 1e-5},
		{"zero", 0, 16, 0, 0},
		{"small", 7, 16, 0.0001, 1e-5},
		{"one lsb", 1, 16, 1.0 / 65536, 1e-7},
		{"max", math.MaxUint32, 16, float32(math.MaxUint32) / 65536, 1e-5},
		{"no fraction", 42, 0, 42, 0},
		{"q8", 0x180, 8, 1.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, FixedToFloat(tt.fixed, tt.bits), tt.delta)
		})
	}
}

func TestFloatToFixed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float32
		bits  uint32
		want  uint32
	}{
		{"pi", math.Pi, 16, 205887},
		{"zero", 0, 16, 0},
		{"small value", 0.0001, 16, 7},
		{"whole degrees", 241, 16, 241 << 16},
		{"half rounds away from zero", 2.5, 0, 3},
		{"below half rounds down", 2.25, 0, 2},
		{"largest byte at q24", 255, 24, 255 << 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FloatToFixed(tt.value, tt.bits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatToFixedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float32
		bits  uint32
		want  error
	}{
		{"negative pi", -math.Pi, 16, ErrUnderflow},
		{"tiny negative", -0.5, 0, ErrUnderflow},
		{"negative infinity", float32(math.Inf(-1)), 16, ErrUnderflow},
		{"too large", 1e10, 16, ErrOverflow},
		{"byte does not fit q25", 255, 25, ErrOverflow},
		{"positive infinity", float32(math.Inf(1)), 16, ErrOverflow},
		{"nan", float32(math.NaN()), 16, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := FloatToFixed(tt.value, tt.bits)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFixedRoundTrip(t *testing.T) {
	t.Parallel()

	step := 1.0 / 65536
	for _, v := range []float32{0, 0.0001, 1, math.Pi, 90.5, 178, 255} {
		fixed, err := FloatToFixed(v, DefaultFractionalBits)
		require.NoError(t, err)
		assert.InDelta(t, v, FixedToFloat(fixed, DefaultFractionalBits), step, "value %v", v)
	}
}
