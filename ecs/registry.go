package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/swarm/ecs/component"
)

var (
	ErrUnknownBehavior = errors.New("ecs: unknown behavior")
	ErrUnknownQuery    = errors.New("ecs: unknown query")
)

// BehaviorFunc updates entity e in place. h is the handle found in the
// entity's bundle.
type BehaviorFunc func(w *World, e Entity, h component.Behavior) error

// QueryFunc answers a query handle.
type QueryFunc func(w *World, input []component.Value) (component.Value, error)

// RegisterBehavior binds id to fn, replacing any earlier binding.
func (w *World) RegisterBehavior(id component.BehaviorID, fn BehaviorFunc) {
	if fn == nil {
		delete(w.behaviors, id)
		return
	}
	if w.behaviors == nil {
		w.behaviors = make(map[component.BehaviorID]BehaviorFunc)
	}
	w.behaviors[id] = fn
}

// RegisterQuery binds id to fn, replacing any earlier binding.
func (w *World) RegisterQuery(id component.QueryID, fn QueryFunc) {
	if fn == nil {
		delete(w.queries, id)
		return
	}
	if w.queries == nil {
		w.queries = make(map[component.QueryID]QueryFunc)
	}
	w.queries[id] = fn
}

// Invoke dispatches a behavior handle for e.
func (w *World) Invoke(e Entity, h component.Behavior) error {
	fn, ok := w.behaviors[h.ID]
	if !ok {
		return fmt.Errorf("%w: %q (id %d)", ErrUnknownBehavior, h.Name, h.ID)
	}
	return fn(w, e, h)
}

// Ask dispatches a query handle.
func (w *World) Ask(q component.Query, input ...component.Value) (component.Value, error) {
	fn, ok := w.queries[q.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %q (id %d)", ErrUnknownQuery, q.Name, q.ID)
	}
	return fn(w, input)
}
