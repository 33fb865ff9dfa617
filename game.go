package main

import (
	"fmt"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/render"
	"github.com/milk9111/swarm/ecs/system"
	"github.com/milk9111/swarm/prefabs"
)

var keyNames = map[ebiten.Key]string{
	ebiten.KeyW:     ecs.KeyW,
	ebiten.KeyA:     ecs.KeyA,
	ebiten.KeyS:     ecs.KeyS,
	ebiten.KeyD:     ecs.KeyD,
	ebiten.KeyQ:     ecs.KeyQ,
	ebiten.KeyE:     ecs.KeyE,
	ebiten.KeyY:     ecs.KeyY,
	ebiten.KeySpace: ecs.KeySpace,
}

type Game struct {
	sandbox *system.Sandbox
	loop    *ecs.Loop
	screen  *render.Screen
	watcher *prefabs.Watcher
	ui      *ebitenui.UI
	log     *zap.Logger

	configPath string
	width      int
	height     int
	debug      bool
	paused     bool
}

func NewGame(spec prefabs.SimulationSpec, configPath string, debug bool, log *zap.Logger) (*Game, error) {
	sb, err := system.NewSandbox(spec, log)
	if err != nil {
		return nil, err
	}
	screen := render.NewScreen()
	g := &Game{
		sandbox: sb,
		loop: ecs.NewLoop(sb.World, screen,
			ecs.WithTPS(spec.Loop.TPS),
			ecs.WithWarnFPS(spec.Loop.WarnFPS),
		),
		screen:     screen,
		log:        log,
		configPath: configPath,
		width:      spec.Window.Width,
		height:     spec.Window.Height,
		debug:      debug,
	}
	g.ui = NewPauseUI(g)
	g.watch()
	return g, nil
}

// watch follows the config file, or the on-disk prefabs directory when the
// embedded spec is in use. Hot reload is best effort.
func (g *Game) watch() {
	path := g.configPath
	if path == "" {
		if _, err := os.Stat("prefabs"); err != nil {
			return
		}
		path = "prefabs"
	}
	w, err := prefabs.NewWatcher(path)
	if err != nil {
		g.log.Warn("hot reload disabled", zap.String("path", path), zap.Error(err))
		return
	}
	g.watcher = w
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	g.reload()

	if g.paused {
		g.ui.Update()
		return nil
	}

	events := g.sandbox.World.Events()
	for key, name := range keyNames {
		if inpututil.IsKeyJustPressed(key) {
			events.Push(ecs.Event{Type: ecs.EventKeyDown, Key: name})
		}
		if inpututil.IsKeyJustReleased(key) {
			events.Push(ecs.Event{Type: ecs.EventKeyUp, Key: name})
		}
	}

	_, err := g.loop.Tick()
	return err
}

func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			spec, err := prefabs.LoadSimulationSpec(g.configPath)
			if err != nil {
				g.log.Warn("reload failed", zap.String("path", path), zap.Error(err))
				continue
			}
			g.sandbox.Apply(spec)
			g.log.Info("spec reloaded", zap.String("path", path))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.Warn("watch error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)

	if g.debug {
		f := g.screen.Frame()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Tick: %d    Bodies: %d    FPS: %.2f    Zoom: %.0f",
			f.Tick, len(f.Shapes), ebiten.ActualFPS(), f.View.Zoom))
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
