// SPDX-License-Identifier: GPL-2.0-or-later

// Package vec holds the small value types the sampling routines return:
// 2d and 3d points and unit quaternions. All components are float32.
package vec

import (
	"github.com/chewxy/math32"
)

// Vec2 is a 2d point or direction.
type Vec2 struct {
	X, Y float32
}

// SqrLength returns the squared length of the vector.
func (v *Vec2) SqrLength() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the length of the vector.
func (v *Vec2) Length() float32 {
	return math32.Sqrt(v.SqrLength())
}

// Vec3 is a 3d point or direction.
type Vec3 struct {
	X, Y, Z float32
}

// SqrLength returns the squared length of the vector.
func (v *Vec3) SqrLength() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the length of the vector.
func (v *Vec3) Length() float32 {
	return math32.Sqrt(v.SqrLength())
}

// Scale returns the vector multiplied by the skalar s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{
		X: v.X * s,
		Y: v.Y * s,
		Z: v.Z * s,
	}
}

// Normalize returns the normalized vector
func (v *Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Add returns a + b
func Add(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X + b.X,
		Y: a.Y + b.Y,
		Z: a.Z + b.Z,
	}
}

// Sub returns a - b
func Sub(a, b Vec3) Vec3 {
	return Vec3{
		X: a.X - b.X,
		Y: a.Y - b.Y,
		Z: a.Z - b.Z,
	}
}

// Dot returns a dot b
func Dot(a Vec3, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Quat is a rotation as a quaternion with components in x,y,z,w order.
type Quat struct {
	X, Y, Z, W float32
}

// SqrLength returns the squared length of the quaternion.
func (q *Quat) SqrLength() float32 {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Length returns the length of the quaternion.
func (q *Quat) Length() float32 {
	return math32.Sqrt(q.SqrLength())
}
