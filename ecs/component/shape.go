package component

import "image/color"

// Shape is a drawable payload handed to the renderer.
type Shape interface {
	isShape()
}

// Circle is the only shape the sandbox draws.
type Circle struct {
	Radius float64
	Color  color.NRGBA
	X      float64
	Y      float64
}

func (Circle) isShape() {}
