package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/ecs/component"
)

func tagged(tag string, rest ...component.Value) Bundle {
	return append(Bundle{component.Name(tag)}, rest...)
}

func tags(w *World) []string {
	var out []string
	w.Each(func(_ Entity, b Bundle) bool {
		tag, _ := b.Tag()
		out = append(out, tag)
		return true
	})
	return out
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.AddEntity(tagged("e")))
			}
			if w.Len() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.Len())
			}
			if c.destroyIndex >= 0 {
				e := ents[c.destroyIndex]
				if !w.DestroyEntity(e) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(e) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(e) {
					t.Fatalf("DestroyEntity should return false for a dead entity")
				}
				if _, ok := w.Bundle(e); ok {
					t.Fatalf("dead entity should have no bundle")
				}
				if err := w.SetBundle(e, tagged("x")); err != component.ErrEntityNotAlive {
					t.Fatalf("SetBundle on dead entity: got %v", err)
				}
			}
		})
	}
}

func TestWorldRecyclesIDsWithNewGeneration(t *testing.T) {
	w := NewWorld()
	a := w.AddEntity(tagged("a"))
	require.True(t, w.DestroyEntity(a))

	b := w.AddEntity(tagged("b"))
	require.Equal(t, a.id(), b.id())
	require.NotEqual(t, a, b)
	require.False(t, w.IsAlive(a))
	require.True(t, w.IsAlive(b))
}

func TestAddEntityPrependsIdentity(t *testing.T) {
	w := NewWorld()
	e := w.AddEntity(Bundle{component.Float(1)})
	b, ok := w.Bundle(e)
	require.True(t, ok)
	require.Len(t, b, 2)
	tag, ok := b.Tag()
	require.True(t, ok)
	require.Empty(t, tag)
}

func TestRemoveEntityByTag(t *testing.T) {
	cases := []struct {
		name    string
		initial []string
		remove  string
		removed int
		want    []string
	}{
		{"middle", []string{"a", "b", "c"}, "b", 1, []string{"a", "c"}},
		{"duplicates", []string{"x", "a", "x", "b", "x"}, "x", 3, []string{"a", "b"}},
		{"absent", []string{"a", "b"}, "z", 0, []string{"a", "b"}},
		{"all", []string{"a", "a"}, "a", 2, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			for _, tag := range c.initial {
				w.AddEntity(tagged(tag))
			}
			require.Equal(t, c.removed, w.RemoveEntity(c.remove))
			require.Equal(t, c.want, tags(w))
			require.Equal(t, len(c.want), w.Len())
		})
	}
}

func TestWithPrefixMatching(t *testing.T) {
	w := NewWorld()
	full := w.AddEntity(tagged("full", component.NewVec2(1, 2), component.Float(3)))
	short := w.AddEntity(tagged("short"))
	wrong := w.AddEntity(tagged("wrong", component.Str("nope")))

	cases := []struct {
		name   string
		schema component.Schema
		want   []Entity
	}{
		{"empty_schema_matches_all", nil, []Entity{full, short, wrong}},
		{"name_only", component.Schema{component.T(component.KindName)}, []Entity{full, short, wrong}},
		{
			"name_vec2",
			component.Schema{component.T(component.KindName), component.FloatVec2},
			[]Entity{full, short},
		},
		{
			"longer_schema_than_bundle",
			component.Schema{component.T(component.KindName), component.FloatVec2, component.T(component.KindFloat), component.T(component.KindBool)},
			[]Entity{full, short},
		},
		{"first_slot_mismatch", component.Schema{component.T(component.KindFloat)}, []Entity{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, w.With(c.schema))
		})
	}
}

func TestTagged(t *testing.T) {
	w := NewWorld()
	a := w.AddEntity(tagged("camera"))
	w.AddEntity(tagged(""))
	require.Equal(t, []Entity{a}, w.Tagged("camera"))
}

type namedSystem struct {
	name  string
	calls int
}

func (s *namedSystem) Name() string             { return s.name }
func (s *namedSystem) Schema() component.Schema { return nil }
func (s *namedSystem) Update(*World, []Entity)  { s.calls++ }

func TestSystems(t *testing.T) {
	w := NewWorld()
	a := &namedSystem{name: "a"}
	b := &namedSystem{name: "b"}
	w.AddSystem(a)
	w.AddSystem(b)
	w.AddSystem(nil)
	require.Len(t, w.Systems(), 2)

	require.True(t, w.RemoveSystem("a"))
	require.False(t, w.RemoveSystem("a"))
	require.Equal(t, []System{b}, w.Systems())
}

func TestRegistryDispatch(t *testing.T) {
	w := NewWorld()
	e := w.AddEntity(tagged("x"))

	err := w.Invoke(e, component.Behavior{ID: component.BehaviorPhysics, Name: "PHYS"})
	require.ErrorIs(t, err, ErrUnknownBehavior)

	var got Entity
	w.RegisterBehavior(component.BehaviorPhysics, func(_ *World, e Entity, _ component.Behavior) error {
		got = e
		return nil
	})
	require.NoError(t, w.Invoke(e, component.Behavior{ID: component.BehaviorPhysics}))
	require.Equal(t, e, got)

	_, err = w.Ask(component.Query{ID: component.QueryPopulation})
	require.ErrorIs(t, err, ErrUnknownQuery)

	w.RegisterQuery(component.QueryPopulation, func(w *World, _ []component.Value) (component.Value, error) {
		return component.Int(w.Len()), nil
	})
	v, err := w.Ask(component.Query{ID: component.QueryPopulation})
	require.NoError(t, err)
	require.Equal(t, component.Int(1), v)

	w.RegisterQuery(component.QueryPopulation, nil)
	_, err = w.Ask(component.Query{ID: component.QueryPopulation})
	require.ErrorIs(t, err, ErrUnknownQuery)
}

func TestKeyState(t *testing.T) {
	var k KeyState

	k.Apply([]Event{{Type: EventKeyDown, Key: KeyW}, {Type: EventKeyTap, Key: KeyE}})
	require.True(t, k.Pressed(KeyW))
	require.True(t, k.Pressed(KeyE))

	k.Apply(nil)
	require.True(t, k.Pressed(KeyW), "held keys persist")
	require.False(t, k.Pressed(KeyE), "taps last one tick")

	k.Apply([]Event{{Type: EventKeyUp, Key: KeyW}})
	require.False(t, k.Pressed(KeyW))
}

func TestEventQueueDrain(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventKeyTap, Key: KeyA})
	q.Push(Event{Type: EventKeyTap, Key: KeyD})
	require.Equal(t, 2, q.Len())

	events := q.Drain()
	require.Equal(t, []Event{{Type: EventKeyTap, Key: KeyA}, {Type: EventKeyTap, Key: KeyD}}, events)
	require.Zero(t, q.Len())
	require.Nil(t, q.Drain())
}

func TestSetView(t *testing.T) {
	w := NewWorld()
	w.SetView(View{X: 1, Y: 2, Zoom: 0})
	require.Equal(t, View{X: 1, Y: 2, Zoom: 1}, w.View())
}

func TestFitsBundle(t *testing.T) {
	schema := component.Schema{component.T(component.KindName), component.FloatVec2}
	cases := []struct {
		name    string
		bundle  Bundle
		matches bool
		fits    bool
	}{
		{"full", tagged("a", component.NewVec2(1, 2)), true, true},
		{"longer", tagged("a", component.NewVec2(1, 2), component.Float(3)), true, true},
		{"short", tagged("a"), true, false},
		{"wrong_kind", tagged("a", component.Float(1)), false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.matches, MatchBundle(c.bundle, schema))
			require.Equal(t, c.fits, FitsBundle(c.bundle, schema))
		})
	}
}
