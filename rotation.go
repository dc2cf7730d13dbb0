package cubedojo

import (
	"fmt"
	"math"

	"github.com/westphae/quaternion"
)

// Vec3 is a point or direction on the integer cube lattice.
// Piece positions always have coordinates in {-1, 0, 1}.
type Vec3 struct {
	X, Y, Z int
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) int {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v x o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Zeros returns how many coordinates of v are zero.
func (v Vec3) Zeros() int {
	n := 0
	for _, c := range [3]int{v.X, v.Y, v.Z} {
		if c == 0 {
			n++
		}
	}
	return n
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%d, %d, %d)", v.X, v.Y, v.Z)
}

// Orientation is a rotation of a piece away from the template pose.
//
// It wraps a unit quaternion whose components are snapped after every
// composition to the values that occur in the 24 cube symmetries, and
// sign-normalised so that equal rotations compare equal with ==.
type Orientation struct {
	q quaternion.Quaternion
}

// Identity is the orientation of every piece in the template solved state.
var Identity = Orientation{q: quaternion.Quaternion{W: 1}}

var snapValues = []float64{0, 0.5, math.Sqrt2 / 2, 1}

func snapComponent(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign, v = -1, -v
	}
	best := snapValues[0]
	for _, s := range snapValues[1:] {
		if math.Abs(v-s) < math.Abs(v-best) {
			best = s
		}
	}
	if best == 0 {
		return 0
	}
	return sign * best
}

// newOrientation renormalises q, snaps it to the lattice of cube
// symmetries and picks the representative whose first nonzero component
// is positive.
func newOrientation(q quaternion.Quaternion) Orientation {
	q = quaternion.Unit(q)
	q = quaternion.Quaternion{
		W: snapComponent(q.W),
		X: snapComponent(q.X),
		Y: snapComponent(q.Y),
		Z: snapComponent(q.Z),
	}
	for _, c := range [4]float64{q.W, q.X, q.Y, q.Z} {
		if c == 0 {
			continue
		}
		if c < 0 {
			q = quaternion.Quaternion{W: -q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
		}
		break
	}
	return Orientation{q: q}
}

// axisAngle returns the orientation for a rotation of angle radians about
// the lattice axis. Positive angles are counter-clockwise looking down the
// axis towards the origin.
func axisAngle(axis Vec3, angle float64) Orientation {
	s := math.Sin(angle / 2)
	return newOrientation(quaternion.Quaternion{
		W: math.Cos(angle / 2),
		X: float64(axis.X) * s,
		Y: float64(axis.Y) * s,
		Z: float64(axis.Z) * s,
	})
}

// Then returns the orientation reached by applying o first and then r.
func (o Orientation) Then(r Orientation) Orientation {
	return newOrientation(quaternion.Prod(r.q, o.q))
}

// Inverse returns the rotation undoing o.
func (o Orientation) Inverse() Orientation {
	return newOrientation(quaternion.Conj(o.q))
}

// Quaternion returns the underlying unit quaternion.
func (o Orientation) Quaternion() quaternion.Quaternion {
	return o.q
}

// IsZero reports whether o is the unset value rather than a rotation.
func (o Orientation) IsZero() bool {
	return o.q == quaternion.Quaternion{}
}

// Apply rotates the direction (x, y, z) by o.
func (o Orientation) Apply(x, y, z float64) (float64, float64, float64) {
	w, qx, qy, qz := o.q.W, o.q.X, o.q.Y, o.q.Z
	return (1-2*(qy*qy+qz*qz))*x + 2*(qx*qy-w*qz)*y + 2*(qx*qz+w*qy)*z,
		2*(qx*qy+w*qz)*x + (1-2*(qx*qx+qz*qz))*y + 2*(qy*qz-w*qx)*z,
		2*(qx*qz-w*qy)*x + 2*(qy*qz+w*qx)*y + (1-2*(qx*qx+qy*qy))*z
}

// Rotate rotates a lattice vector by o and snaps the result back onto
// the lattice.
func (o Orientation) Rotate(v Vec3) Vec3 {
	x, y, z := o.Apply(float64(v.X), float64(v.Y), float64(v.Z))
	return Vec3{
		X: int(math.Round(x)),
		Y: int(math.Round(y)),
		Z: int(math.Round(z)),
	}
}

func (o Orientation) String() string {
	return fmt.Sprintf("q(%.3f, %.3f, %.3f, %.3f)", o.q.W, o.q.X, o.q.Y, o.q.Z)
}
