package orientation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/relabs-tech/inertial_pipeline/internal/imu"
)

// Pose is the canonical representation of orientation for the app.
// All angles are in degrees.
type Pose struct {
	Roll  float64 `json:"roll"`
	Pitch float64 `json:"pitch"`
	Yaw   float64 `json:"yaw"`
}

// Source is anything that can provide poses over time.
type Source interface {
	Next() (Pose, error)
}

// Reconstruct turns a decoded angle triplet (x=roll, y=pitch, z=yaw) into
// a Pose. With normalize set, the angles are composed into a single
// rotation and re-extracted, which yields roll and yaw in [-180, 180] and
// pitch in [-90, 90]. Otherwise the angles are passed through unchanged.
func Reconstruct(t imu.FloatTriplet, normalize bool) Pose {
	p := Pose{Roll: float64(t.X), Pitch: float64(t.Y), Yaw: float64(t.Z)}
	if !normalize {
		return p
	}
	return FromRotation(p.Rotation())
}

// Rotation composes the pose as yaw about Z, then pitch about Y, then
// roll about X.
func (p Pose) Rotation() r3.Rotation {
	rx := r3.NewRotation(deg2rad(p.Roll), r3.Vec{X: 1})
	ry := r3.NewRotation(deg2rad(p.Pitch), r3.Vec{Y: 1})
	rz := r3.NewRotation(deg2rad(p.Yaw), r3.Vec{Z: 1})

	q := quat.Mul(quat.Mul(quat.Number(rz), quat.Number(ry)), quat.Number(rx))
	return r3.Rotation(q)
}

// FromRotation extracts ZYX Euler angles from a rotation.
func FromRotation(r r3.Rotation) Pose {
	q := quat.Number(r)
	if n := quat.Abs(q); n != 0 && n != 1 {
		q = quat.Scale(1/n, q)
	}
	w, x, y, z := q.Real, q.Imag, q.Jmag, q.Kmag

	roll := math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))

	// Clamp so rounding near gimbal lock does not push asin out of range.
	sinp := math.Max(-1, math.Min(1, 2*(w*y-z*x)))
	pitch := math.Asin(sinp)

	yaw := math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))

	return Pose{
		Roll:  rad2deg(roll),
		Pitch: rad2deg(pitch),
		Yaw:   rad2deg(yaw),
	}
}

func deg2rad(d float64) float64 { return d * math.Pi / 180.0 }
func rad2deg(r float64) float64 { return r * 180.0 / math.Pi }
