package system

import (
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// RegisterQueries binds the centroid and population queries into w.
func RegisterQueries(w *ecs.World) {
	w.RegisterQuery(component.QueryCentroid, Centroid)
	w.RegisterQuery(component.QueryPopulation, Population)
}

// Centroid returns the mean particle position, or the origin when there are
// no particles.
func Centroid(w *ecs.World, _ []component.Value) (component.Value, error) {
	var sx, sy float64
	n := 0
	w.Each(func(_ ecs.Entity, b ecs.Bundle) bool {
		if !ecs.FitsBundle(b, ParticleSchema) {
			return true
		}
		pos, _ := b[ecs.SlotPosition].(component.Vec2)
		x, y, _ := pos.Floats()
		sx += x
		sy += y
		n++
		return true
	})
	if n == 0 {
		return component.NewVec2(0, 0), nil
	}
	return component.NewVec2(sx/float64(n), sy/float64(n)), nil
}

// Population counts the entities carrying the full particle layout.
func Population(w *ecs.World, _ []component.Value) (component.Value, error) {
	n := 0
	w.Each(func(_ ecs.Entity, b ecs.Bundle) bool {
		if ecs.FitsBundle(b, ParticleSchema) {
			n++
		}
		return true
	})
	return component.Int(n), nil
}
