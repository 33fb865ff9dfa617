package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/swarm/logging"
	"github.com/milk9111/swarm/prefabs"
)

func main() {
	configPath := flag.String("config", "", "simulation spec (YAML); defaults to the embedded swarm.yaml")
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	flag.Parse()

	spec, err := prefabs.LoadSimulationSpec(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	level := spec.Log.Level
	if *debug {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ebiten.SetTPS(spec.Loop.TPS)
	ebiten.SetWindowSize(spec.Window.Width, spec.Window.Height)
	ebiten.SetWindowTitle(spec.Window.Title)

	game, err := NewGame(spec, *configPath, *debug, logger)
	if err != nil {
		logger.Fatal("setup failed", zap.Error(err))
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
