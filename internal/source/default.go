package source

import "github.com/relabs-tech/inertial_pipeline/internal/imu"

// DefaultSamples returns the built-in data set used when no samples file,
// serial port or mock generator is configured. A fresh copy is returned on
// every call.
func DefaultSamples() []imu.RawSample {
	return []imu.RawSample{
		{
			1, 0, 1, 1, 0, 0, 1, 0, // x: 178
			0, 0, 0, 0, 1, 0, 1, 1, // y: 11
			1, 1, 1, 1, 0, 0, 0, 1, // z: 241
			1, 1, 1, 0, 1, 0, 0, 0, // reserved
		},
		{
			0, 1, 0, 1, 0, 1, 0, 1, // x: 85
			1, 0, 1, 0, 1, 0, 1, 0, // y: 170
			0, 0, 1, 1, 1, 1, 0, 0, // z: 60
			1, 1, 1, 0, 1, 0, 0, 0,
		},
		{
			0, 0, 0, 1, 1, 1, 1, 0, // x: 30
			0, 0, 1, 0, 1, 1, 0, 1, // y: 45
			0, 1, 0, 1, 1, 0, 1, 0, // z: 90
			0, 0, 0, 0, 0, 0, 0, 0,
		},
	}
}
