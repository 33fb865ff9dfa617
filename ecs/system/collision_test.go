package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func body(x, y, vx, vy float64) Circle {
	return Circle{Pos: cp.Vector{X: x, Y: y}, Vel: cp.Vector{X: vx, Y: vy}, R: 5}
}

func TestSweep(t *testing.T) {
	cases := []struct {
		name       string
		self       Circle
		other      Circle
		hit        bool
		wantT      float64
		wantNormal cp.Vector
	}{
		{"head_on_mid_tick", body(0, 0, 1, 0), body(11, 0, -1, 0), true, 0.5, cp.Vector{X: 1}},
		{"touching_now", body(0, 0, 1, 0), body(10, 0, -1, 0), true, 0, cp.Vector{X: 1}},
		{"already_overlapping", body(0, 0, 1, 0), body(8, 0, -1, 0), false, 0, cp.Vector{}},
		{"too_far", body(0, 0, 1, 0), body(30, 0, -1, 0), false, 0, cp.Vector{}},
		{"parallel", body(0, 0, 3, 1), body(11, 0, 3, 1), false, 0, cp.Vector{}},
		{"miss", body(0, 0, 1, 0), body(0, 20, -1, 0), false, 0, cp.Vector{}},
		{"receding", body(0, 0, -1, 0), body(11, 0, 1, 0), false, 0, cp.Vector{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			contact, ok := Sweep(c.self, c.other)
			require.Equal(t, c.hit, ok)
			if !ok {
				return
			}
			require.InDelta(t, c.wantT, contact.T, eps)
			require.GreaterOrEqual(t, contact.T, 0.0)
			require.LessOrEqual(t, contact.T, 1.0)
			require.InDelta(t, c.wantNormal.X, contact.Normal.X, eps)
			require.InDelta(t, c.wantNormal.Y, contact.Normal.Y, eps)
			require.InDelta(t, c.self.R+c.other.R, contact.Mag, eps)
		})
	}
}

func TestSweepDistanceIsSelfTravel(t *testing.T) {
	contact, ok := Sweep(body(0, 0, 4, 0), body(14, 0, 0, 0))
	require.True(t, ok)
	require.InDelta(t, 1.0, contact.T, eps)
	require.InDelta(t, 4.0, contact.Distance, eps)
}

func TestOverlap(t *testing.T) {
	depth, normal, ok := Overlap(body(0, 0, 0, 0), body(8, 0, 0, 0))
	require.True(t, ok)
	require.InDelta(t, 2.0, depth, eps)
	require.InDelta(t, -1.0, normal.X, eps)

	_, _, ok = Overlap(body(0, 0, 0, 0), body(10, 0, 0, 0))
	require.False(t, ok, "touching is not overlapping")

	depth, normal, ok = Overlap(body(3, 3, 0, 0), body(3, 3, 0, 0))
	require.True(t, ok)
	require.InDelta(t, 10.0, depth, eps)
	require.Equal(t, cp.Vector{}, normal)
}

func TestReflect(t *testing.T) {
	cases := []struct {
		name   string
		a, b   cp.Vector
		normal cp.Vector
		wantA  cp.Vector
		wantB  cp.Vector
	}{
		{"head_on", cp.Vector{X: 1}, cp.Vector{X: -1}, cp.Vector{X: 1}, cp.Vector{X: -0.8}, cp.Vector{X: 0.8}},
		{"keeps_tangential", cp.Vector{X: 1, Y: 2}, cp.Vector{X: -1, Y: -3}, cp.Vector{X: 1}, cp.Vector{X: -0.8, Y: 2}, cp.Vector{X: 0.8, Y: -3}},
		{"vertical_normal", cp.Vector{X: 5, Y: 2}, cp.Vector{}, cp.Vector{Y: 1}, cp.Vector{X: 5}, cp.Vector{Y: 1.6}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := Circle{Vel: c.a}
			b := Circle{Vel: c.b}
			Reflect(&a, &b, c.normal, 0.8)
			require.InDelta(t, c.wantA.X, a.Vel.X, eps)
			require.InDelta(t, c.wantA.Y, a.Vel.Y, eps)
			require.InDelta(t, c.wantB.X, b.Vel.X, eps)
			require.InDelta(t, c.wantB.Y, b.Vel.Y, eps)
		})
	}
}

func TestReflectNormalSpeedLaw(t *testing.T) {
	normal := cp.Vector{X: 3, Y: 4}.Normalize()
	a := Circle{Vel: cp.Vector{X: 2, Y: -1}}
	b := Circle{Vel: cp.Vector{X: -3, Y: 0.5}}
	an, bn := a.Vel.Dot(normal), b.Vel.Dot(normal)

	Reflect(&a, &b, normal, 0.8)
	require.InDelta(t, 0.8*bn, a.Vel.Dot(normal), eps)
	require.InDelta(t, 0.8*an, b.Vel.Dot(normal), eps)
}

func TestGravity(t *testing.T) {
	cases := []struct {
		name string
		pos  cp.Vector
		want cp.Vector
	}{
		{"right", cp.Vector{X: 10}, cp.Vector{X: -1}},
		{"far_same_pull", cp.Vector{X: 10000}, cp.Vector{X: -1}},
		{"diagonal", cp.Vector{X: -3, Y: -4}, cp.Vector{X: 0.6, Y: 0.8}},
		{"origin", cp.Vector{}, cp.Vector{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := Circle{Pos: c.pos}
			Gravity(&b, 1)
			require.InDelta(t, c.want.X, b.Vel.X, eps)
			require.InDelta(t, c.want.Y, b.Vel.Y, eps)
			require.False(t, math.IsNaN(b.Vel.X) || math.IsNaN(b.Vel.Y))
		})
	}
}
