package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// BootstrapName is the name the bootstrap system registers under.
const BootstrapName = "Start"

// BootstrapSystem spawns the initial population on its first update and then
// unregisters itself.
type BootstrapSystem struct {
	count   int
	spawner Spawner
	physics *PhysicsSystem
	log     *zap.Logger
}

func NewBootstrapSystem(count int, spawner Spawner, physics *PhysicsSystem, log *zap.Logger) *BootstrapSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &BootstrapSystem{count: count, spawner: spawner, physics: physics, log: log}
}

func (bs *BootstrapSystem) Name() string {
	return BootstrapName
}

// Schema is empty so the system runs regardless of what the store holds.
func (bs *BootstrapSystem) Schema() component.Schema {
	return nil
}

func (bs *BootstrapSystem) Update(w *ecs.World, _ []ecs.Entity) {
	defer w.RemoveSystem(bs.Name())

	spawned := 0
	for i := 0; i < bs.count; i++ {
		c, err := bs.spawner.Spawn(i, bs.count)
		if err != nil {
			bs.log.Error("bootstrap: spawn failed", zap.Int("index", i), zap.Error(err))
			return
		}
		w.AddEntity(Particle(c, bs.physics.Defaults()))
		spawned++
	}
	bs.log.Info("bootstrap: population spawned", zap.Int("count", spawned))
}
