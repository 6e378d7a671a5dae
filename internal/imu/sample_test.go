package imu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relabs-tech/inertial_pipeline/internal/codec"
)

var reference = RawSample{
	1, 0, 1, 1, 0, 0, 1, 0,
	0, 0, 0, 0, 1, 0, 1, 1,
	1, 1, 1, 1, 0, 0, 0, 1,
	1, 1, 1, 0, 1, 0, 0, 0,
}

func TestDecode(t *testing.T) {
	t.Parallel()

	got, err := Decode(reference, codec.DefaultFractionalBits)
	require.NoError(t, err)

	want := FixedTriplet{X: 178 << 16, Y: 11 << 16, Z: 241 << 16, FractionalBits: 16}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, FloatTriplet{X: 178, Y: 11, Z: 241}, got.Float())
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	t.Run("short sample", func(t *testing.T) {
		t.Parallel()
		_, err := Decode(reference[:20], 16)
		assert.ErrorIs(t, err, codec.ErrInsufficientBits)
	})

	t.Run("bad bit", func(t *testing.T) {
		t.Parallel()
		bad := append(RawSample(nil), reference...)
		bad[9] = 4
		_, err := Decode(bad, 16)
		assert.ErrorIs(t, err, codec.ErrInvalidBitValue)
	})

	t.Run("angle does not fit scale", func(t *testing.T) {
		t.Parallel()
		// 178 << 25 exceeds 32 bits.
		_, err := Decode(reference, 25)
		assert.ErrorIs(t, err, codec.ErrOverflow)
		assert.Contains(t, err.Error(), "x angle")
	})
}

func TestRawSampleValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reference.Valid())
	assert.True(t, reference[:codec.TripletBits].Valid())
	assert.False(t, reference[:codec.TripletBits-1].Valid())

	bad := append(RawSample(nil), reference...)
	bad[0] = 2
	assert.False(t, bad.Valid())

	reserved := append(RawSample(nil), reference...)
	reserved[31] = 2
	assert.True(t, reserved.Valid())
}
