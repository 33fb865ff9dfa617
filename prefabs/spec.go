package prefabs

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/ecs/component"
)

// DefaultSpecName is the embedded simulation spec.
const DefaultSpecName = "swarm.yaml"

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

type SimulationSpec struct {
	Name    string      `yaml:"name"`
	Window  WindowSpec  `yaml:"window"`
	Loop    LoopSpec    `yaml:"loop"`
	Spawn   SpawnSpec   `yaml:"spawn"`
	Physics PhysicsSpec `yaml:"physics"`
	Camera  CameraSpec  `yaml:"camera"`
	Log     LogSpec     `yaml:"log"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type LoopSpec struct {
	TPS     int     `yaml:"tps"`
	WarnFPS float64 `yaml:"warn_fps"`
}

type SpawnSpec struct {
	Count    int     `yaml:"count"`
	Extent   float64 `yaml:"extent"`
	MaxSpeed float64 `yaml:"max_speed"`
	Radius   float64 `yaml:"radius"`
	// Seed makes spawning reproducible; empty means time seeded.
	Seed string `yaml:"seed"`
	// Script names a tengo script under prefabs/scripts that places each
	// body instead of the uniform random spawner.
	Script string `yaml:"script"`
}

type PhysicsSpec struct {
	Gravity          float64 `yaml:"gravity"`
	Restitution      float64 `yaml:"restitution"`
	SeparationPasses int     `yaml:"separation_passes"`
	StrictBundles    bool    `yaml:"strict_bundles"`
}

type CameraSpec struct {
	PanStep  float64 `yaml:"pan_step"`
	ZoomStep float64 `yaml:"zoom_step"`
	MinZoom  float64 `yaml:"min_zoom"`
	MaxZoom  float64 `yaml:"max_zoom"`
}

type LogSpec struct {
	Level string `yaml:"level"`
}

// DefaultSimulationSpec matches the embedded swarm.yaml.
func DefaultSimulationSpec() SimulationSpec {
	p := component.DefaultPhysics()
	return SimulationSpec{
		Name:   "swarm",
		Window: WindowSpec{Title: "Physics", Width: common.CanvasWidth, Height: common.CanvasHeight},
		Loop:   LoopSpec{TPS: common.TicksPerSecond, WarnFPS: common.WarnFPS},
		Spawn:  SpawnSpec{Count: common.SpawnCount, Extent: 10000, MaxSpeed: 20, Radius: 5},
		Physics: PhysicsSpec{
			Gravity:          p.Gravity,
			Restitution:      p.Restitution,
			SeparationPasses: p.SeparationPasses,
		},
		Camera: CameraSpec{PanStep: 10, ZoomStep: 1, MinZoom: 1, MaxZoom: 10},
		Log:    LogSpec{Level: "info"},
	}
}

// LoadSimulationSpec reads the spec at path, or the default spec when path
// is empty. Fields the file leaves out keep their defaults.
func LoadSimulationSpec(path string) (SimulationSpec, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		path = DefaultSpecName
		data, err = Load(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return SimulationSpec{}, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	return ParseSimulationSpec(data)
}

// ParseSimulationSpec decodes YAML over the defaults and validates it.
func ParseSimulationSpec(data []byte) (SimulationSpec, error) {
	spec := DefaultSimulationSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return SimulationSpec{}, fmt.Errorf("prefabs: unmarshal simulation spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return SimulationSpec{}, err
	}
	return spec, nil
}

func (s SimulationSpec) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Loop.TPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.tps %d", s.Loop.TPS))
	}
	if s.Spawn.Count < 0 {
		errs = append(errs, fmt.Errorf("spawn.count %d", s.Spawn.Count))
	}
	if s.Spawn.Radius < 0 || s.Spawn.Extent < 0 || s.Spawn.MaxSpeed < 0 {
		errs = append(errs, errors.New("spawn radius, extent and max_speed must not be negative"))
	}
	if s.Physics.Restitution < 0 || s.Physics.Restitution > 1 {
		errs = append(errs, fmt.Errorf("physics.restitution %g outside [0, 1]", s.Physics.Restitution))
	}
	if s.Physics.SeparationPasses < 0 {
		errs = append(errs, fmt.Errorf("physics.separation_passes %d", s.Physics.SeparationPasses))
	}
	if s.Camera.MinZoom <= 0 || s.Camera.MaxZoom < s.Camera.MinZoom {
		errs = append(errs, fmt.Errorf("camera zoom range [%g, %g]", s.Camera.MinZoom, s.Camera.MaxZoom))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSpec, errors.Join(errs...))
}

// PhysicsParams converts the physics section into handle parameters.
func (s SimulationSpec) PhysicsParams() component.PhysicsParams {
	return component.PhysicsParams{
		Gravity:          s.Physics.Gravity,
		Restitution:      s.Physics.Restitution,
		SeparationPasses: s.Physics.SeparationPasses,
		Bounds:           component.BoundsFor(float64(s.Window.Width), float64(s.Window.Height)),
	}
}
