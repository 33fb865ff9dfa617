// Command swarm-term runs the simulation in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/render"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/logging"
	"github.com/milk9111/swarm/prefabs"
)

func main() {
	configPath := flag.String("config", "", "simulation spec (YAML); defaults to the embedded swarm.yaml")
	flag.Parse()

	spec, err := prefabs.LoadSimulationSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	// stderr would draw over the screen; only errors get through.
	spec.Log.Level = "error"
	logger, err := logging.New(spec.Log.Level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	sb, err := system.NewSandbox(spec, logger)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	loop := ecs.NewLoop(sb.World, render.NewTerminal(screen),
		ecs.WithTPS(spec.Loop.TPS),
		ecs.WithWarnFPS(spec.Loop.WarnFPS),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(ctx)
	})
	g.Go(func() error {
		return render.PollInput(ctx, screen, sb.World.Events())
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, render.ErrQuit) && !errors.Is(err, context.Canceled) {
		logger.Error("stopped", zap.Error(err))
	}
}
