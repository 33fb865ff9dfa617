package common

import "github.com/jakecoffman/cp"

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Unit returns v scaled to length 1, or the zero vector when v has no
// length.
func Unit(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / l, Y: v.Y / l}
}
