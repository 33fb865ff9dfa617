package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// PhysicsSystem implements the per-entity physics behavior: constant pull
// toward the origin, swept collision against every other particle, an
// inelastic bounce, and a few passes of overlap separation.
//
// Entities are updated one at a time in store order and see whatever the
// entities before them already wrote this tick.
type PhysicsSystem struct {
	defaults component.PhysicsParams
	strict   bool
	log      *zap.Logger
}

type PhysicsOption func(*PhysicsSystem)

// WithStrictBundles makes malformed particle bundles skip the tick instead of
// running with zero defaults.
func WithStrictBundles(strict bool) PhysicsOption {
	return func(ps *PhysicsSystem) {
		ps.strict = strict
	}
}

func WithPhysicsLogger(log *zap.Logger) PhysicsOption {
	return func(ps *PhysicsSystem) {
		if log != nil {
			ps.log = log
		}
	}
}

func NewPhysicsSystem(defaults component.PhysicsParams, opts ...PhysicsOption) *PhysicsSystem {
	ps := &PhysicsSystem{defaults: defaults, log: zap.NewNop()}
	for _, opt := range opts {
		opt(ps)
	}
	return ps
}

// Register binds the physics behavior into w.
func (ps *PhysicsSystem) Register(w *ecs.World) {
	w.RegisterBehavior(component.BehaviorPhysics, ps.Step)
}

// Defaults returns the parameters attached to every rewritten bundle.
func (ps *PhysicsSystem) Defaults() component.PhysicsParams {
	return ps.defaults
}

// SetDefaults changes the parameters attached from the next write-back on.
func (ps *PhysicsSystem) SetDefaults(p component.PhysicsParams) {
	ps.defaults = p
}

// Handle returns a fresh physics handle carrying the defaults.
func (ps *PhysicsSystem) Handle() component.Behavior {
	return PhysicsHandle(ps.defaults)
}

// Step runs one physics update for e using the parameters in h.
func (ps *PhysicsSystem) Step(w *ecs.World, e ecs.Entity, h component.Behavior) error {
	original, ok := w.Bundle(e)
	if !ok {
		return component.ErrEntityNotAlive
	}

	params := h.Physics
	params.Bounds = component.BoundsFor(w.CanvasSize())

	marked := original.WithTag(SelfTag)
	if err := w.SetBundle(e, marked); err != nil {
		return err
	}

	self, err := CircleFromBundle(marked)
	if err != nil {
		if ps.strict {
			_ = w.SetBundle(e, original)
			return fmt.Errorf("physics: entity %s: %w", e, err)
		}
		ps.log.Debug("physics: defaulting malformed bundle", zap.Stringer("entity", e), zap.Error(err))
	}

	ps.simulate(w, &self, params)
	return w.SetBundle(e, self.Bundle("", ps.Handle()))
}

func (ps *PhysicsSystem) simulate(w *ecs.World, self *Circle, params component.PhysicsParams) {
	Gravity(self, params.Gravity)

	if other, contact, ok := nearestContact(w, *self); ok {
		b, _ := w.Bundle(other)
		neighbor, err := CircleFromBundle(b)
		if err != nil {
			ps.log.Debug("physics: defaulting malformed neighbor", zap.Stringer("entity", other), zap.Error(err))
		}
		Reflect(self, &neighbor, contact.Normal, params.Restitution)
		if err := w.SetBundle(other, neighbor.Bundle("", ps.Handle())); err != nil {
			ps.log.Warn("physics: write neighbor", zap.Stringer("entity", other), zap.Error(err))
		}
	} else {
		self.Pos = self.Pos.Add(self.Vel)
	}

	for i := 0; i < params.SeparationPasses; i++ {
		separate(w, self)
	}
}

// nearestContact returns the particle self reaches first, measured by how far
// self travels before touching it.
func nearestContact(w *ecs.World, self Circle) (ecs.Entity, Contact, bool) {
	var (
		best    Contact
		bestEnt ecs.Entity
		found   bool
	)
	reach := self.Speed() + self.R*2

	w.Each(func(e ecs.Entity, b ecs.Bundle) bool {
		if !isNeighbor(b) {
			return true
		}
		other, _ := CircleFromBundle(b)
		if self.Pos.Distance(other.Pos) > reach {
			return true
		}
		contact, ok := Sweep(self, other)
		if !ok {
			return true
		}
		if !found || contact.Distance < best.Distance {
			best, bestEnt, found = contact, e, true
		}
		return true
	})
	return bestEnt, best, found
}

// separate pushes self out of every particle it currently overlaps, in store
// order.
func separate(w *ecs.World, self *Circle) {
	w.Each(func(_ ecs.Entity, b ecs.Bundle) bool {
		if !isNeighbor(b) {
			return true
		}
		other, _ := CircleFromBundle(b)
		if depth, normal, ok := Overlap(*self, other); ok {
			self.Pos = self.Pos.Add(normal.Mult(depth))
		}
		return true
	})
}

func isNeighbor(b ecs.Bundle) bool {
	if tag, _ := b.Tag(); tag == SelfTag {
		return false
	}
	return ecs.FitsBundle(b, ParticleSchema)
}
