// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package orientation

import (
	"math"
)

type mockSource struct {
	step float64
	t    float64
}

// NewMockSource creates a mock orientation source that generates smooth
// changing values. Each call to Next advances the curve by step seconds.
// All angles stay within [0, 255] so they fit one packed sample field.
func NewMockSource(step float64) Source {
	return &mockSource{step: step}
}

func (m *mockSource) Next() (Pose, error) {
	elapsed := m.t
	m.t += m.step

	return Pose{
		Roll:  90 + 20*math.Sin(elapsed),
		Pitch: 45 + 15*math.Cos(elapsed*0.7),
		Yaw:   math.Mod(elapsed*30, 255),
	}, nil
}
