package system

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/swarm/common"
	"github.com/milk9111/swarm/prefabs"
)

// Spawner places the index-th of count new bodies.
type Spawner interface {
	Spawn(index, count int) (Circle, error)
}

// NewRNG returns a generator seeded from seed, or from the clock when seed
// is empty.
func NewRNG(seed string) *rand.Rand {
	var s uint64
	if seed == "" {
		s = uint64(time.Now().UnixNano())
	} else {
		s = xxhash.Sum64String(seed)
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// NewSpawner picks the scripted spawner when spec names a script.
func NewSpawner(spec prefabs.SpawnSpec) (Spawner, error) {
	rng := NewRNG(spec.Seed)
	if spec.Script == "" {
		return NewRandomSpawner(rng, spec), nil
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("spawn: load script %s: %w", spec.Script, err)
	}
	return NewScriptSpawner(src, rng, spec.Radius)
}

// RandomSpawner scatters bodies uniformly over a square of half-width
// Extent, each with a non-negative random velocity and a random color.
type RandomSpawner struct {
	rng      *rand.Rand
	extent   float64
	maxSpeed float64
	radius   float64
}

func NewRandomSpawner(rng *rand.Rand, spec prefabs.SpawnSpec) *RandomSpawner {
	return &RandomSpawner{rng: rng, extent: spec.Extent, maxSpeed: spec.MaxSpeed, radius: spec.Radius}
}

func (s *RandomSpawner) Spawn(_, _ int) (Circle, error) {
	return Circle{
		Pos:   cp.Vector{X: s.signed() * s.extent, Y: s.signed() * s.extent},
		Vel:   cp.Vector{X: s.rng.Float64() * s.maxSpeed, Y: s.rng.Float64() * s.maxSpeed},
		R:     s.radius,
		Color: color.NRGBA{R: uint8(s.rng.IntN(256)), G: uint8(s.rng.IntN(256)), B: uint8(s.rng.IntN(256)), A: 0xff},
	}, nil
}

func (s *RandomSpawner) signed() float64 {
	v := s.rng.Float64()
	if s.rng.Float64() > 0.5 {
		return -v
	}
	return v
}

// ScriptSpawner runs a tengo script once per body. The script sees index,
// count and rnd() (uniform in [0, 1)) and sets x, y, vx, vy and optionally
// radius, red, green, blue (0..1).
type ScriptSpawner struct {
	compiled *tengo.Compiled
	radius   float64
}

func NewScriptSpawner(src []byte, rng *rand.Rand, radius float64) (*ScriptSpawner, error) {
	script := tengo.NewScript(src)
	_ = script.Add("index", 0)
	_ = script.Add("count", 1)
	_ = script.Add("rnd", &tengo.UserFunction{Name: "rnd", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: rng.Float64()}, nil
	}})
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn: compile script: %w", err)
	}
	return &ScriptSpawner{compiled: compiled, radius: radius}, nil
}

func (s *ScriptSpawner) Spawn(index, count int) (c Circle, err error) {
	// tengo reports some runtime faults, integer division by zero among
	// them, by panicking.
	defer func() {
		if r := recover(); r != nil {
			c, err = Circle{}, fmt.Errorf("spawn: script index %d: %v", index, r)
		}
	}()

	if err := s.compiled.Set("index", index); err != nil {
		return Circle{}, err
	}
	if err := s.compiled.Set("count", count); err != nil {
		return Circle{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return Circle{}, fmt.Errorf("spawn: script index %d: %w", index, err)
	}

	c = Circle{
		Pos: cp.Vector{X: s.float("x", 0), Y: s.float("y", 0)},
		Vel: cp.Vector{X: s.float("vx", 0), Y: s.float("vy", 0)},
		R:   s.float("radius", s.radius),
		Color: color.NRGBA{
			R: channel(s.float("red", 1)),
			G: channel(s.float("green", 1)),
			B: channel(s.float("blue", 1)),
			A: 0xff,
		},
	}
	return c, nil
}

func (s *ScriptSpawner) float(name string, fallback float64) float64 {
	if !s.compiled.IsDefined(name) {
		return fallback
	}
	return s.compiled.Get(name).Float()
}

func channel(v float64) uint8 {
	return uint8(common.Clamp(v, 0, 1) * 255)
}
