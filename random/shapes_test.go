// SPDX-License-Identifier: GPL-2.0-or-later

package random

import (
	"testing"

	"github.com/minavoii/unity-random/math/vec"
)

func TestInsideUnitCircleVectors(t *testing.T) {
	want := map[int32][3]vec.Vec2{
		0: {
			{X: -0.1682793, Y: -0.1681648},
			{X: -0.3472139, Y: -0.5330141},
			{X: 0.3899362, Y: -0.2997533},
		},
		1: {
			{X: -0.3619677, Y: 0.07908762},
			{X: -0.1888548, Y: -0.5695789},
			{X: 0.4862165, Y: -0.1122268},
		},
	}
	g := New()
	for seed, points := range want {
		g.InitState(seed)
		for i, p := range points {
			got := g.InsideUnitCircle()
			if !within(got.X, p.X) || !within(got.Y, p.Y) {
				t.Errorf("seed %d InsideUnitCircle draw %d = %v want %v", seed, i, got, p)
			}
		}
	}
}

func TestInsideUnitCircleContainment(t *testing.T) {
	g := NewSeeded(2023)
	for i := 0; i < 500; i++ {
		p := g.InsideUnitCircle()
		// the seven digit output rounding can nudge a boundary point a
		// hair over 1
		if p.SqrLength() > 1+normEpsilon {
			t.Fatalf("InsideUnitCircle() = %v with squared length %v", p, p.SqrLength())
		}
	}
}

func TestInsideUnitSphereVectors(t *testing.T) {
	want := map[int32][2]vec.Vec3{
		0: {
			{X: -0.1682793, Y: -0.1681648, Z: -0.3472139},
			{X: -0.5330141, Y: 0.3899362, Z: -0.2997533},
		},
		358118: {
			{X: 0.7771156, Y: -0.3996466, Z: 0.3158636},
			{X: -0.3709866, Y: 0.2267066, Z: 0.329515},
		},
	}
	g := New()
	for seed, points := range want {
		g.InitState(seed)
		for i, p := range points {
			got := g.InsideUnitSphere()
			if !within(got.X, p.X) || !within(got.Y, p.Y) || !within(got.Z, p.Z) {
				t.Errorf("seed %d InsideUnitSphere draw %d = %v want %v", seed, i, got, p)
			}
		}
	}
}

func TestInsideUnitSphereContainment(t *testing.T) {
	g := NewSeeded(2024)
	for i := 0; i < 500; i++ {
		p := g.InsideUnitSphere()
		if p.SqrLength() > 1+normEpsilon {
			t.Fatalf("InsideUnitSphere() = %v with squared length %v", p, p.SqrLength())
		}
	}
}

func TestOnUnitSphereVectors(t *testing.T) {
	want := map[int32][2]vec.Vec3{
		0: {
			{X: -0.3998105, Y: -0.3995386, Z: -0.8249366},
			{X: -0.7349253, Y: 0.5376481, Z: -0.413303},
		},
		30029247: {
			{X: 0.2271935, Y: -0.02589703, Z: -0.9735052},
			{X: 0.3852439, Y: 0.8407538, Z: 0.380421},
		},
	}
	g := New()
	for seed, points := range want {
		g.InitState(seed)
		for i, p := range points {
			got := g.OnUnitSphere()
			if !within(got.X, p.X) || !within(got.Y, p.Y) || !within(got.Z, p.Z) {
				t.Errorf("seed %d OnUnitSphere draw %d = %v want %v", seed, i, got, p)
			}
		}
	}
}

// The seven digit output rounding moves each component on its own, so
// aggregate length checks get a little more slack than single values.
const normEpsilon = 1e-6

func TestOnUnitSphereLength(t *testing.T) {
	g := NewSeeded(2025)
	for i := 0; i < 500; i++ {
		p := g.OnUnitSphere()
		if l := p.Length(); l < 1-normEpsilon || l > 1+normEpsilon {
			t.Fatalf("OnUnitSphere() = %v with length %v", p, l)
		}
	}
}

func TestUnitFallback(t *testing.T) {
	got := unitOrFallback(vec.Vec3{})
	if got != (vec.Vec3{Z: 1}) {
		t.Errorf("unitOrFallback(zero) = %v want the +Z unit vector", got)
	}
	got = unitOrFallback(vec.Vec3{X: 3})
	if got != (vec.Vec3{X: 1}) {
		t.Errorf("unitOrFallback({3,0,0}) = %v want {1,0,0}", got)
	}
}

func TestRotationVectors(t *testing.T) {
	want := map[int32][2]vec.Quat{
		0: {
			{X: 0.2477755, Y: 0.247607, Z: 0.5112399, W: 0.7848133},
			{X: -0.6736925, Y: 0.5178836, Z: 0.5271574, W: 0.006337939},
		},
		1: {
			{X: -0.8337072, Y: -0.4575983, Z: -0.3019655, W: 0.06597752},
			{X: -0.1505792, Y: -0.4541412, Z: -0.6607996, W: 0.5782954},
		},
	}
	g := New()
	for seed, quats := range want {
		g.InitState(seed)
		for i, q := range quats {
			got := g.Rotation()
			if !within(got.X, q.X) || !within(got.Y, q.Y) ||
				!within(got.Z, q.Z) || !within(got.W, q.W) {
				t.Errorf("seed %d Rotation draw %d = %v want %v", seed, i, got, q)
			}
		}
	}
}

func TestRotationUniformVectors(t *testing.T) {
	want := map[int32][2]vec.Quat{
		0: {
			{X: -0.3852562, Y: 0.6600888, Z: -0.572001, W: 0.297784},
			{X: 0.8236853, Y: 0.2967314, Z: -0.3907058, W: 0.2843273},
		},
		719188662: {
			{X: -0.4896397, Y: 0.1808263, Z: 0.228898, W: 0.8216815},
			{X: 0.2193511, Y: -0.09431711, Z: 0.9477759, W: 0.2114479},
		},
	}
	g := New()
	for seed, quats := range want {
		g.InitState(seed)
		for i, q := range quats {
			got := g.RotationUniform()
			if !within(got.X, q.X) || !within(got.Y, q.Y) ||
				!within(got.Z, q.Z) || !within(got.W, q.W) {
				t.Errorf("seed %d RotationUniform draw %d = %v want %v", seed, i, got, q)
			}
		}
	}
}

func TestRotationNormality(t *testing.T) {
	g := NewSeeded(2026)
	for i := 0; i < 200; i++ {
		q := g.Rotation()
		if s := q.SqrLength(); s < 1-normEpsilon || s > 1+normEpsilon {
			t.Fatalf("Rotation() = %v with squared length %v", q, s)
		}
		u := g.RotationUniform()
		if s := u.SqrLength(); s < 1-normEpsilon || s > 1+normEpsilon {
			t.Fatalf("RotationUniform() = %v with squared length %v", u, s)
		}
		if u.W < 0 {
			t.Fatalf("RotationUniform() = %v with negative w", u)
		}
	}
}
