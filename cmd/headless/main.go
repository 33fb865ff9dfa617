// Command headless runs the simulation without a window and logs population
// stats, optionally under a profiler.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/logging"
	"github.com/milk9111/swarm/prefabs"
)

// statsRenderer logs a summary every n frames instead of drawing.
type statsRenderer struct {
	world *ecs.World
	every uint64
	log   *zap.Logger
}

func (r *statsRenderer) Present(f ecs.Frame) error {
	if r.every == 0 || f.Tick%r.every != 0 {
		return nil
	}
	fields := []zap.Field{zap.Uint64("tick", f.Tick), zap.Int("shapes", len(f.Shapes))}
	if v, err := r.world.Ask(component.Query{ID: component.QueryPopulation, Name: "POPULATION"}); err == nil {
		fields = append(fields, zap.Int64("population", int64(v.(component.Int))))
	}
	if v, err := r.world.Ask(component.Query{ID: component.QueryCentroid, Name: "CENTROID"}); err == nil {
		if x, y, ok := v.(component.Vec2).Floats(); ok {
			fields = append(fields, zap.Float64("centroid_x", x), zap.Float64("centroid_y", y))
		}
	}
	r.log.Info("frame", fields...)
	return nil
}

func main() {
	configPath := flag.String("config", "", "simulation spec (YAML); defaults to the embedded swarm.yaml")
	ticks := flag.Int("ticks", 300, "ticks to run; 0 runs until interrupted")
	every := flag.Uint64("every", 30, "log stats every n ticks")
	prof := flag.String("profile", "", "write a cpu or mem profile to the current directory")
	flag.Parse()

	spec, err := prefabs.LoadSimulationSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(spec.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		logger.Fatal("unknown profile mode", zap.String("profile", *prof))
	}

	sb, err := system.NewSandbox(spec, logger)
	if err != nil {
		logger.Fatal("setup failed", zap.Error(err))
	}
	loop := ecs.NewLoop(sb.World, &statsRenderer{world: sb.World, every: *every, log: logger},
		ecs.WithTPS(spec.Loop.TPS),
		ecs.WithWarnFPS(spec.Loop.WarnFPS),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.RunN(ctx, *ticks)
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("loop stopped", zap.Error(err))
		return
	}
	logger.Info("done", zap.Uint64("ticks", loop.Ticks()))
}
