package ecs

import "github.com/milk9111/swarm/ecs/component"

// With returns, in store order, every entity whose bundle matches schema on
// the shorter of the two sequences. An empty schema matches every entity and
// components past the common prefix are never inspected.
func (w *World) With(schema component.Schema) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.order))
	for _, e := range w.order {
		b, ok := w.bundles.Get(e.id())
		if !ok {
			continue
		}
		if MatchBundle(b, schema) {
			out = append(out, e)
		}
	}
	return out
}

// Each calls fn for every entity in store order until fn returns false. fn
// may replace bundles with SetBundle but must not add or remove entities.
func (w *World) Each(fn func(e Entity, b Bundle) bool) {
	if w == nil {
		return
	}
	for _, e := range w.order {
		b, ok := w.bundles.Get(e.id())
		if !ok {
			continue
		}
		if !fn(e, b) {
			return
		}
	}
}

// Tagged returns the entities whose identity tag equals tag.
func (w *World) Tagged(tag string) []Entity {
	var out []Entity
	w.Each(func(e Entity, b Bundle) bool {
		if t, ok := b.Tag(); ok && t == tag {
			out = append(out, e)
		}
		return true
	})
	return out
}
