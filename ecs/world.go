package ecs

import (
	"go.uber.org/zap"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs/component"
)

// System runs once per tick over the entities matching its schema.
type System interface {
	Name() string
	Schema() component.Schema
	Update(w *World, matched []Entity)
}

// View is the camera the renderer draws through.
type View struct {
	X    float64
	Y    float64
	Zoom float64
}

// World owns entities, their bundles, and system order.
type World struct {
	entities entityStore
	bundles  SparseSet[Bundle]
	order    []Entity
	systems  []System

	events EventQueue
	keys   KeyState
	view   View

	width  float64
	height float64

	behaviors map[component.BehaviorID]BehaviorFunc
	queries   map[component.QueryID]QueryFunc

	log *zap.Logger
}

// NewWorld creates an empty world sized to the default canvas.
func NewWorld() *World {
	return &World{
		width:     common.CanvasWidth,
		height:    common.CanvasHeight,
		view:      View{Zoom: 1},
		behaviors: make(map[component.BehaviorID]BehaviorFunc),
		queries:   make(map[component.QueryID]QueryFunc),
		log:       zap.NewNop(),
	}
}

// AddEntity appends a bundle to the store. No uniqueness check is made; a
// bundle without a tag at slot 0 gets an empty one.
func (w *World) AddEntity(b Bundle) Entity {
	e := w.entities.create()
	w.bundles.Set(e.id(), withIdentity(b))
	w.order = append(w.order, e)
	return e
}

// RemoveEntity removes every entity tagged tag, keeping the order of the
// rest, and returns how many were removed.
func (w *World) RemoveEntity(tag string) int {
	removed := 0
	kept := w.order[:0]
	for _, e := range w.order {
		b, _ := w.bundles.Get(e.id())
		if t, ok := b.Tag(); ok && t == tag {
			w.bundles.Remove(e.id())
			w.entities.destroy(e)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clear(w.order[len(kept):])
	w.order = kept
	return removed
}

// DestroyEntity removes a single entity by handle.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	w.bundles.Remove(e.id())
	for i, o := range w.order {
		if o == e {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// Bundle returns the bundle stored for e. The slice is shared with the store;
// use SetBundle to publish changes.
func (w *World) Bundle(e Entity) (Bundle, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	return w.bundles.Get(e.id())
}

// SetBundle replaces the bundle of a live entity.
func (w *World) SetBundle(e Entity, b Bundle) error {
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.bundles.Set(e.id(), withIdentity(b))
	return nil
}

// Entities returns a copy of the entity list in store order.
func (w *World) Entities() []Entity {
	out := make([]Entity, len(w.order))
	copy(out, w.order)
	return out
}

// Len returns the population.
func (w *World) Len() int {
	return len(w.order)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// RemoveSystem removes every system named name.
func (w *World) RemoveSystem(name string) bool {
	removed := false
	kept := w.systems[:0]
	for _, s := range w.systems {
		if s.Name() == name {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	clear(w.systems[len(kept):])
	w.systems = kept
	return removed
}

// Systems returns a copy of the system list in update order.
func (w *World) Systems() []System {
	systems := make([]System, 0, len(w.systems))
	return append(systems, w.systems...)
}

// Events returns the input event queue.
func (w *World) Events() *EventQueue {
	return &w.events
}

// Keys returns the key state fed by the event queue.
func (w *World) Keys() *KeyState {
	return &w.keys
}

func (w *World) View() View {
	return w.view
}

func (w *World) SetView(v View) {
	if v.Zoom <= 0 {
		v.Zoom = 1
	}
	w.view = v
}

// CanvasSize returns the drawing surface size in world units.
func (w *World) CanvasSize() (float64, float64) {
	return w.width, w.height
}

func (w *World) SetCanvasSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
}

func (w *World) Logger() *zap.Logger {
	return w.log
}

func (w *World) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	w.log = log
}
