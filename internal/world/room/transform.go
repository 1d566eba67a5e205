package room

import "math"

// Vec2 is a pair of floats, used for sizes and offsets on the ground plane.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec2i is a grid cell coordinate.
type Vec2i struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Vec3 is a point in room space. Y is up, the floor grid runs along +X and -Z.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Quat is a unit quaternion rotation.
type Quat struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
	W float64 `json:"w"`
}

// Identity is the rotation that does nothing.
var Identity = Quat{W: 1}

// Yaw returns a rotation of deg degrees about the up axis.
func Yaw(deg float64) Quat {
	half := deg * math.Pi / 360
	return Quat{Y: math.Sin(half), W: math.Cos(half)}
}

// Mul returns the rotation q followed by r, applied in local space (q * r).
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := cross(u, v).scale(2)
	return v.Add(t.scale(q.W)).Add(cross(u, t))
}

// YawDegrees returns the rotation about the up axis in [0, 360).
// Only meaningful for yaw-only rotations, which is all the generator produces.
func (q Quat) YawDegrees() float64 {
	deg := 2 * math.Atan2(q.Y, q.W) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Snap float noise so 359.9999999 reads as 0.
	if 360-deg < 1e-9 {
		deg = 0
	}
	return deg
}

// Transform anchors a room in the world.
type Transform struct {
	Position Vec3
	Rotation Quat
}

// NewTransform builds an anchor at pos rotated yaw degrees about the up axis.
func NewTransform(pos Vec3, yaw float64) Transform {
	return Transform{Position: pos, Rotation: Yaw(yaw)}
}

// TransformPoint maps a room-local point into world space.
func (t Transform) TransformPoint(local Vec3) Vec3 {
	return t.rotation().Rotate(local).Add(t.Position)
}

// rotation treats the zero Quat as identity so a zero Transform is usable.
func (t Transform) rotation() Quat {
	if t.Rotation == (Quat{}) {
		return Identity
	}
	return t.Rotation
}
