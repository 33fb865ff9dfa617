package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/common"
)

// parallelTolerance bounds |dv|² below which two bodies are treated as
// moving in parallel.
const parallelTolerance = 1e-4

// Contact describes the first touch of two swept circles within one tick.
type Contact struct {
	// T is the time of impact in [0, 1].
	T float64
	// Mag is the distance between centers at T.
	Mag float64
	// Distance is how far self travels to reach its position at T.
	Distance float64
	// Normal points from self toward other at T.
	Normal cp.Vector
}

// Sweep finds the earliest t in [0, 1] at which self and other touch when
// both move by their velocity.
func Sweep(self, other Circle) (Contact, bool) {
	d := other.Pos.Sub(self.Pos)
	dv := other.Vel.Sub(self.Vel)
	r := self.R + other.R

	a := dv.LengthSq()
	b := 2 * d.Dot(dv)
	c := d.LengthSq() - r*r

	if math.Abs(a) < parallelTolerance {
		return Contact{}, false
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return Contact{}, false
	}
	t := (-b - math.Sqrt(disc)) / (2 * a)
	if t < 0 || t > 1 {
		return Contact{}, false
	}

	rel := d.Add(dv.Mult(t))
	return Contact{
		T:        t,
		Mag:      rel.Length(),
		Distance: self.Vel.Mult(t).Length(),
		Normal:   common.Unit(rel),
	}, true
}

// Overlap reports how far self has to move along normal to stop
// overlapping other. Coincident centers give a zero normal.
func Overlap(self, other Circle) (depth float64, normal cp.Vector, ok bool) {
	offset := self.Pos.Sub(other.Pos)
	dist := offset.Length()
	r := self.R + other.R
	if dist >= r {
		return 0, cp.Vector{}, false
	}
	return r - dist, common.Unit(offset), true
}

// Reflect swaps the normal velocity components of a and b and scales them by
// loss. Tangential components are kept.
func Reflect(a, b *Circle, normal cp.Vector, loss float64) {
	tangent := cp.Vector{X: -normal.Y, Y: normal.X}

	an, at := a.Vel.Dot(normal), a.Vel.Dot(tangent)
	bn, bt := b.Vel.Dot(normal), b.Vel.Dot(tangent)

	a.Vel = normal.Mult(bn * loss).Add(tangent.Mult(at))
	b.Vel = normal.Mult(an * loss).Add(tangent.Mult(bt))
}

// Gravity pulls c toward the origin with constant magnitude g. A body at the
// origin gets no pull.
func Gravity(c *Circle, g float64) {
	c.Vel = c.Vel.Add(common.Unit(c.Pos.Neg()).Mult(g))
}
