package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/prefabs"
)

// CameraTag tags the camera entity.
const CameraTag = "camera"

// CameraSchema is the bundle layout of the camera entity: tag, pan, zoom and
// the query used to recenter.
var CameraSchema = component.Schema{
	component.T(component.KindName),
	component.FloatVec2,
	component.T(component.KindFloat),
	component.T(component.KindQuery),
}

// CameraBundle builds the camera entity, centered on the origin at zoom 1.
func CameraBundle() ecs.Bundle {
	return ecs.Bundle{
		component.Name(CameraTag),
		component.NewVec2(0, 0),
		component.Float(1),
		component.Query{ID: component.QueryCentroid, Name: "CENTROID"},
	}
}

// CameraSystem moves the camera from held keys and publishes it as the
// world's view.
type CameraSystem struct {
	spec prefabs.CameraSpec
}

func NewCameraSystem(spec prefabs.CameraSpec) *CameraSystem {
	return &CameraSystem{spec: spec}
}

func (cs *CameraSystem) Name() string {
	return "Camera"
}

func (cs *CameraSystem) Schema() component.Schema {
	return CameraSchema
}

// SetSpec swaps the key steps and zoom limits.
func (cs *CameraSystem) SetSpec(spec prefabs.CameraSpec) {
	cs.spec = spec
}

func (cs *CameraSystem) Update(w *ecs.World, matched []ecs.Entity) {
	keys := w.Keys()
	for _, e := range matched {
		b, ok := w.Bundle(e)
		if !ok || !ecs.FitsBundle(b, CameraSchema) {
			continue
		}
		pan, _ := b[1].(component.Vec2)
		x, y, _ := pan.Floats()
		z, _ := b[2].(component.Float)
		zoom := float64(z)
		q, _ := b[3].(component.Query)

		if keys.Pressed(ecs.KeyS) {
			y -= cs.spec.PanStep
		}
		if keys.Pressed(ecs.KeyW) {
			y += cs.spec.PanStep
		}
		if keys.Pressed(ecs.KeyA) {
			x -= cs.spec.PanStep
		}
		if keys.Pressed(ecs.KeyD) {
			x += cs.spec.PanStep
		}
		if keys.Pressed(ecs.KeySpace) {
			zoom += cs.spec.ZoomStep
		}
		if keys.Pressed(ecs.KeyQ) {
			zoom -= cs.spec.ZoomStep
		}
		if keys.Pressed(ecs.KeyE) {
			if v, err := w.Ask(q); err != nil {
				w.Logger().Warn("camera: recenter query failed", zap.Error(err))
			} else if c, ok := v.(component.Vec2); ok {
				if cx, cy, ok := c.Floats(); ok {
					x, y = cx, cy
				}
			}
		}
		if keys.Pressed(ecs.KeyY) {
			x, y, zoom = 0, 0, cs.spec.MinZoom
		}
		zoom = common.Clamp(zoom, cs.spec.MinZoom, cs.spec.MaxZoom)

		_ = w.SetBundle(e, ecs.Bundle{b[0], component.NewVec2(x, y), component.Float(zoom), q})
		w.SetView(ecs.View{X: x, Y: y, Zoom: zoom})
	}
}
