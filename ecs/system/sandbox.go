package system

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/prefabs"
)

// Sandbox is a world wired for the particle simulation: physics behavior,
// queries, the camera, and the bootstrap that spawns the population on the
// first tick.
type Sandbox struct {
	World   *ecs.World
	Physics *PhysicsSystem
	Camera  *CameraSystem
}

func NewSandbox(spec prefabs.SimulationSpec, log *zap.Logger) (*Sandbox, error) {
	if log == nil {
		log = zap.NewNop()
	}
	spawner, err := NewSpawner(spec.Spawn)
	if err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}

	w := ecs.NewWorld()
	w.SetLogger(log)
	w.SetCanvasSize(float64(spec.Window.Width), float64(spec.Window.Height))

	ps := NewPhysicsSystem(spec.PhysicsParams(),
		WithStrictBundles(spec.Physics.StrictBundles),
		WithPhysicsLogger(log),
	)
	ps.Register(w)
	RegisterQueries(w)

	cam := NewCameraSystem(spec.Camera)
	w.AddEntity(CameraBundle())

	w.AddSystem(NewBootstrapSystem(spec.Spawn.Count, spawner, ps, log))
	w.AddSystem(cam)

	return &Sandbox{World: w, Physics: ps, Camera: cam}, nil
}

// Apply takes the tunable parts of a reloaded spec. Physics defaults reach
// each body on its next write-back; spawn and window settings are ignored.
func (s *Sandbox) Apply(spec prefabs.SimulationSpec) {
	s.Physics.SetDefaults(spec.PhysicsParams())
	s.Physics.strict = spec.Physics.StrictBundles
	s.Camera.SetSpec(spec.Camera)
}
