package system

import (
	"errors"
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// SelfTag marks the entity whose physics behavior is running.
const SelfTag = "SELF"

// PhysicsHandleName is the registered name of the physics behavior.
const PhysicsHandleName = "PHYS"

// ParticleSchema is the bundle layout of a simulated body.
var ParticleSchema = component.Schema{
	component.T(component.KindName),
	component.FloatVec2,
	component.FloatVec2,
	component.T(component.KindGraphics),
	component.T(component.KindBehavior),
}

// Circle is the typed view of a particle bundle.
type Circle struct {
	Pos   cp.Vector
	Vel   cp.Vector
	R     float64
	Color color.NRGBA
}

// CircleFromBundle reads position, velocity and shape from their slots.
// Anything missing or of the wrong kind reads as zero and is reported in the
// returned error; the view is usable either way.
func CircleFromBundle(b ecs.Bundle) (Circle, error) {
	var (
		c    Circle
		errs []error
	)

	if pos, err := floatVec2At(b, ecs.SlotPosition); err != nil {
		errs = append(errs, err)
	} else {
		c.Pos = pos
	}
	if vel, err := floatVec2At(b, ecs.SlotVelocity); err != nil {
		errs = append(errs, err)
	} else {
		c.Vel = vel
	}

	c.Color = color.NRGBA{A: 0xff}
	g, ok := b.Slot(ecs.SlotGraphics).(component.Graphics)
	if !ok {
		errs = append(errs, slotError(b, ecs.SlotGraphics, component.KindGraphics))
	} else if shape, ok := g.Shape.(component.Circle); ok {
		c.R = shape.Radius
		c.Color = shape.Color
	} else {
		errs = append(errs, slotError(b, ecs.SlotGraphics, component.KindGraphics))
	}

	return c, errors.Join(errs...)
}

func floatVec2At(b ecs.Bundle, slot int) (cp.Vector, error) {
	v, ok := b.Slot(slot).(component.Vec2)
	if !ok {
		return cp.Vector{}, slotError(b, slot, component.KindVec2)
	}
	x, y, ok := v.Floats()
	if !ok {
		return cp.Vector{X: x, Y: y}, slotError(b, slot, component.KindVec2)
	}
	return cp.Vector{X: x, Y: y}, nil
}

func slotError(b ecs.Bundle, slot int, want component.Kind) error {
	return &component.BundleError{Slot: slot, Want: want, Got: component.KindOf(b.Slot(slot))}
}

// Bundle serializes the view. The tag is always replaced and the behavior
// slot always gets the handle passed in.
func (c Circle) Bundle(tag string, handle component.Behavior) ecs.Bundle {
	return ecs.Bundle{
		component.Name(tag),
		component.NewVec2(c.Pos.X, c.Pos.Y),
		component.NewVec2(c.Vel.X, c.Vel.Y),
		component.Graphics{Shape: component.Circle{Radius: c.R, Color: c.Color, X: c.Pos.X, Y: c.Pos.Y}},
		handle,
	}
}

// Speed is the length of the velocity, in units per tick.
func (c Circle) Speed() float64 {
	return c.Vel.Length()
}

// PhysicsHandle builds a physics behavior handle.
func PhysicsHandle(p component.PhysicsParams) component.Behavior {
	return component.Behavior{ID: component.BehaviorPhysics, Name: PhysicsHandleName, Physics: p}
}

// Particle builds a fresh particle bundle with an empty tag.
func Particle(c Circle, p component.PhysicsParams) ecs.Bundle {
	return c.Bundle("", PhysicsHandle(p))
}
