package source

import (
	"fmt"
	"math"

	"github.com/relabs-tech/inertial_pipeline/internal/codec"
	"github.com/relabs-tech/inertial_pipeline/internal/imu"
	"github.com/relabs-tech/inertial_pipeline/internal/orientation"
)

// Encode packs a pose into a raw sample. Each angle is rounded to whole
// degrees and must lie in [0, 255]. The reserved field is left zero.
func Encode(p orientation.Pose) (imu.RawSample, error) {
	s := make(imu.RawSample, 0, codec.SampleBits)
	for _, a := range []float64{p.Roll, p.Pitch, p.Yaw} {
		deg := math.Round(a)
		if deg < 0 || deg > math.MaxUint8 {
			return nil, fmt.Errorf("angle %.2f does not fit a packed field", a)
		}
		s = append(s, codec.ByteToBits(uint8(deg))...)
	}
	return append(s, codec.ByteToBits(0)...), nil
}

// Generate draws n poses from src and encodes each one.
func Generate(src orientation.Source, n int) ([]imu.RawSample, error) {
	samples := make([]imu.RawSample, 0, n)
	for i := 0; i < n; i++ {
		p, err := src.Next()
		if err != nil {
			return nil, fmt.Errorf("mock sample %d: %w", i, err)
		}
		s, err := Encode(p)
		if err != nil {
			return nil, fmt.Errorf("mock sample %d: %w", i, err)
		}
		samples = append(samples, s)
	}
	return samples, nil
}
