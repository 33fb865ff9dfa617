package render

import "github.com/milk9111/swarm/ecs"

// Project maps a world point into screen pixels for frame f. The origin sits
// at the center of the canvas, y grows upward, and the camera pans and zooms
// around it.
func Project(f ecs.Frame, x, y float64) (float64, float64) {
	zoom := f.View.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	sx := (x-f.View.X)*zoom + f.Width/2
	sy := -(y-f.View.Y)*zoom + f.Height/2
	return sx, sy
}

// Scale maps a world length into screen pixels.
func Scale(f ecs.Frame, l float64) float64 {
	if f.View.Zoom <= 0 {
		return l
	}
	return l * f.View.Zoom
}
