package ecs

import "github.com/milk9111/swarm/ecs/component"

// Bundle is the ordered component list of one entity. Slot 0 holds the
// identity tag.
type Bundle []component.Value

// Conventional particle slots.
const (
	SlotTag = iota
	SlotPosition
	SlotVelocity
	SlotGraphics
	SlotBehavior
)

// Tag returns the identity tag at slot 0.
func (b Bundle) Tag() (string, bool) {
	if len(b) == 0 {
		return "", false
	}
	name, ok := b[SlotTag].(component.Name)
	return string(name), ok
}

// Slot returns the value at i, or nil when the bundle is shorter.
func (b Bundle) Slot(i int) component.Value {
	if i < 0 || i >= len(b) {
		return nil
	}
	return b[i]
}

// Clone copies the slot list. Nested lists and maps are shared.
func (b Bundle) Clone() Bundle {
	if b == nil {
		return nil
	}
	out := make(Bundle, len(b))
	copy(out, b)
	return out
}

// WithTag returns a copy of b whose slot 0 is tag.
func (b Bundle) WithTag(tag string) Bundle {
	out := withIdentity(b)
	out[SlotTag] = component.Name(tag)
	return out
}

// withIdentity guarantees a Name at slot 0, prepending an empty one when the
// bundle has none.
func withIdentity(b Bundle) Bundle {
	if _, ok := b.Tag(); ok {
		return b.Clone()
	}
	out := make(Bundle, 0, len(b)+1)
	out = append(out, component.Name(""))
	return append(out, b...)
}

// FitsBundle reports whether b holds every slot of schema with a matching
// value. Unlike MatchBundle, a shorter bundle never fits.
func FitsBundle(b Bundle, schema component.Schema) bool {
	return len(b) >= len(schema) && MatchBundle(b, schema)
}

// MatchBundle reports whether b matches schema on their common prefix.
func MatchBundle(b Bundle, schema component.Schema) bool {
	n := min(len(b), len(schema))
	for i := 0; i < n; i++ {
		if !component.Matches(b[i], schema[i]) {
			return false
		}
	}
	return true
}
