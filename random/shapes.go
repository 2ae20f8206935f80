// SPDX-License-Identifier: GPL-2.0-or-later

package random

import (
	gmath "math"

	"github.com/chewxy/math32"

	"github.com/minavoii/unity-random/math/vec"
)

const tau = 2 * gmath.Pi

func sin32(x float32) float32 {
	return float32(gmath.Sin(float64(x)))
}

func cos32(x float32) float32 {
	return float32(gmath.Cos(float64(x)))
}

// InsideUnitCircle returns a random point inside or on the circle with
// radius 1. Candidates are drawn from [-1,1]x[-1,1] and redrawn until one
// lands inside, about 1.27 attempts on average.
func (g *Generator) InsideUnitCircle() vec.Vec2 {
	for {
		p := vec.Vec2{
			X: g.rangeFloat(-1, 1),
			Y: g.rangeFloat(-1, 1),
		}
		if p.SqrLength() <= 1 {
			return vec.Vec2{
				X: precision(p.X, 7),
				Y: precision(p.Y, 7),
			}
		}
	}
}

// sphereCandidate draws points from [-1,1]^3 until one lands inside the
// unit sphere. No intermediate state is visible between attempts.
func (g *Generator) sphereCandidate() vec.Vec3 {
	for {
		p := vec.Vec3{
			X: g.rangeFloat(-1, 1),
			Y: g.rangeFloat(-1, 1),
			Z: g.rangeFloat(-1, 1),
		}
		if p.SqrLength() <= 1 {
			return p
		}
	}
}

// InsideUnitSphere returns a random point inside or on the sphere with
// radius 1.
func (g *Generator) InsideUnitSphere() vec.Vec3 {
	p := g.sphereCandidate()
	return vec.Vec3{
		X: precision(p.X, 7),
		Y: precision(p.Y, 7),
		Z: precision(p.Z, 7),
	}
}

// OnUnitSphere returns a random point on the surface of the sphere with
// radius 1.
func (g *Generator) OnUnitSphere() vec.Vec3 {
	return unitOrFallback(g.sphereCandidate())
}

// unitOrFallback scales p to length 1. The zero-length input falls back to
// the +Z unit vector; no drawn candidate reaches it in practice.
func unitOrFallback(p vec.Vec3) vec.Vec3 {
	l := p.Length()
	if l == 0 {
		return vec.Vec3{Z: 1}
	}
	return vec.Vec3{
		X: precision(p.X/l, 7),
		Y: precision(p.Y/l, 7),
		Z: precision(p.Z/l, 7),
	}
}

// Rotation returns a random rotation as a normalized quaternion, each
// component starting uniform in [-1,1]. The distribution is not uniform
// over the rotation group; see RotationUniform for the uniform variant.
func (g *Generator) Rotation() vec.Quat {
	x := g.rangeFloat(-1, 1)
	y := g.rangeFloat(-1, 1)
	z := g.rangeFloat(-1, 1)
	w := g.rangeFloat(-1, 1)
	mag := math32.Sqrt(x*x + y*y + z*z + w*w)
	if w < 0 {
		mag = -mag
	}
	return vec.Quat{
		X: precision(x/mag, 7),
		Y: precision(y/mag, 7),
		Z: precision(z/mag, 7),
		W: precision(w/mag, 7),
	}
}

// RotationUniform returns a random rotation uniformly distributed over the
// rotation group, built from two angles and two radii on the Hopf
// fibration of the quaternion sphere. A naive angle sampling would favor
// some orientations; this costs one fewer draw than Rotation and slightly
// more math. The sign flip keeps the result in the w >= 0 half, which
// represents the same rotation.
func (g *Generator) RotationUniform() vec.Quat {
	u1 := g.rangeFloat(0, 1)
	u2 := g.rangeFloat(0, tau)
	u3 := g.rangeFloat(0, tau)
	outer := math32.Sqrt(u1)
	inner := math32.Sqrt(1 - u1)
	x := inner * sin32(u2)
	y := inner * cos32(u2)
	z := outer * sin32(u3)
	w := outer * cos32(u3)
	if w < 0 {
		x, y, z, w = -x, -y, -z, -w
	}
	return vec.Quat{
		X: precision(x, 7),
		Y: precision(y, 7),
		Z: precision(z, 7),
		W: precision(w, 7),
	}
}
