package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/prefabs"
)

func TestCameraKeys(t *testing.T) {
	spec := prefabs.CameraSpec{PanStep: 10, ZoomStep: 1, MinZoom: 1, MaxZoom: 3}

	cases := []struct {
		name  string
		start ecs.View
		keys  []string
		want  ecs.View
	}{
		{"up", ecs.View{Zoom: 1}, []string{ecs.KeyW}, ecs.View{Y: 10, Zoom: 1}},
		{"down", ecs.View{Zoom: 1}, []string{ecs.KeyS}, ecs.View{Y: -10, Zoom: 1}},
		{"left", ecs.View{Zoom: 1}, []string{ecs.KeyA}, ecs.View{X: -10, Zoom: 1}},
		{"right", ecs.View{Zoom: 1}, []string{ecs.KeyD}, ecs.View{X: 10, Zoom: 1}},
		{"diagonal", ecs.View{Zoom: 1}, []string{ecs.KeyW, ecs.KeyD}, ecs.View{X: 10, Y: 10, Zoom: 1}},
		{"zoom_in", ecs.View{Zoom: 1}, []string{ecs.KeySpace}, ecs.View{Zoom: 2}},
		{"zoom_in_clamped", ecs.View{Zoom: 3}, []string{ecs.KeySpace}, ecs.View{Zoom: 3}},
		{"zoom_out", ecs.View{Zoom: 3}, []string{ecs.KeyQ}, ecs.View{Zoom: 2}},
		{"zoom_out_clamped", ecs.View{Zoom: 1}, []string{ecs.KeyQ}, ecs.View{Zoom: 1}},
		{"recenter", ecs.View{X: 500, Y: 500, Zoom: 2}, []string{ecs.KeyE}, ecs.View{X: 20, Y: 30, Zoom: 2}},
		{"reset", ecs.View{X: 500, Y: -40, Zoom: 3}, []string{ecs.KeyY}, ecs.View{Zoom: 1}},
		{"idle", ecs.View{X: 5, Y: 6, Zoom: 2}, nil, ecs.View{X: 5, Y: 6, Zoom: 2}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			RegisterQueries(w)
			cam := CameraBundle()
			cam[1] = component.NewVec2(c.start.X, c.start.Y)
			cam[2] = component.Float(c.start.Zoom)
			e := w.AddEntity(cam)
			w.AddEntity(Particle(body(10, 20, 0, 0), component.DefaultPhysics()))
			w.AddEntity(Particle(body(30, 40, 0, 0), component.DefaultPhysics()))

			for _, k := range c.keys {
				w.Events().Push(ecs.Event{Type: ecs.EventKeyTap, Key: k})
			}
			w.Keys().Apply(w.Events().Drain())

			cs := NewCameraSystem(spec)
			matched := w.With(cs.Schema())
			require.Equal(t, []ecs.Entity{e}, matched)
			cs.Update(w, matched)

			require.Equal(t, c.want, w.View())
			b, _ := w.Bundle(e)
			x, y, ok := b[1].(component.Vec2).Floats()
			require.True(t, ok)
			require.Equal(t, c.want.X, x)
			require.Equal(t, c.want.Y, y)
			require.Equal(t, component.Float(c.want.Zoom), b[2])
		})
	}
}

func TestQueries(t *testing.T) {
	w := ecs.NewWorld()
	RegisterQueries(w)
	w.AddEntity(CameraBundle())

	v, err := w.Ask(component.Query{ID: component.QueryCentroid})
	require.NoError(t, err)
	require.Equal(t, component.NewVec2(0, 0), v)

	w.AddEntity(Particle(body(-10, 4, 0, 0), component.DefaultPhysics()))
	w.AddEntity(Particle(body(30, 8, 0, 0), component.DefaultPhysics()))

	v, err = w.Ask(component.Query{ID: component.QueryCentroid})
	require.NoError(t, err)
	require.Equal(t, component.NewVec2(10, 6), v)

	v, err = w.Ask(component.Query{ID: component.QueryPopulation})
	require.NoError(t, err)
	require.Equal(t, component.Int(2), v)
}

func TestQueriesIgnoreShortBundles(t *testing.T) {
	w := ecs.NewWorld()
	RegisterQueries(w)
	w.AddEntity(ecs.Bundle{component.Name("marker")})
	w.AddEntity(ecs.Bundle{component.Name("half"), component.NewVec2(100, 100)})
	w.AddEntity(Particle(body(4, -2, 0, 0), component.DefaultPhysics()))

	var v component.Value
	var err error
	require.NotPanics(t, func() {
		v, err = Centroid(w, nil)
	})
	require.NoError(t, err)
	require.Equal(t, component.NewVec2(4, -2), v)

	v, err = Population(w, nil)
	require.NoError(t, err)
	require.Equal(t, component.Int(1), v)
}

func TestCameraSkipsShortBundles(t *testing.T) {
	w := ecs.NewWorld()
	RegisterQueries(w)
	short := w.AddEntity(ecs.Bundle{component.Name("marker"), component.NewVec2(1, 1)})
	w.Events().Push(ecs.Event{Type: ecs.EventKeyTap, Key: ecs.KeyW})
	w.Keys().Apply(w.Events().Drain())

	cs := NewCameraSystem(prefabs.CameraSpec{PanStep: 10, ZoomStep: 1, MinZoom: 1, MaxZoom: 3})
	matched := w.With(cs.Schema())
	require.Equal(t, []ecs.Entity{short}, matched)
	require.NotPanics(t, func() { cs.Update(w, matched) })
	require.Equal(t, ecs.View{Zoom: 1}, w.View())
}
