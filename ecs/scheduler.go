package ecs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/swarm/ecs/component"
)

// Frame is everything a renderer needs for one tick.
type Frame struct {
	Tick   uint64
	Shapes []component.Shape
	View   View
	Width  float64
	Height float64
}

// Renderer consumes one frame per tick.
type Renderer interface {
	Present(f Frame) error
}

// Clock is the time source of the loop.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Loop drives a world at a fixed cadence.
type Loop struct {
	world    *World
	renderer Renderer
	clock    Clock
	log      *zap.Logger

	tickDuration time.Duration
	warnFPS      float64

	tick  uint64
	start time.Time
}

type LoopOption func(*Loop)

// WithTPS sets the target tick rate.
func WithTPS(tps int) LoopOption {
	return func(l *Loop) {
		if tps > 0 {
			l.tickDuration = time.Second / time.Duration(tps)
		}
	}
}

// WithWarnFPS sets the achievable rate below which a slow tick is logged.
func WithWarnFPS(fps float64) LoopOption {
	return func(l *Loop) {
		l.warnFPS = fps
	}
}

func WithClock(c Clock) LoopOption {
	return func(l *Loop) {
		if c != nil {
			l.clock = c
		}
	}
}

// NewLoop creates a loop at 30 ticks per second. r may be nil.
func NewLoop(w *World, r Renderer, opts ...LoopOption) *Loop {
	l := &Loop{
		world:        w,
		renderer:     r,
		clock:        systemClock{},
		log:          w.Logger(),
		tickDuration: time.Second / 30,
		warnFPS:      60,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Ticks returns the number of completed ticks.
func (l *Loop) Ticks() uint64 {
	return l.tick
}

// TickDuration returns the fixed tick length.
func (l *Loop) TickDuration() time.Duration {
	return l.tickDuration
}

// Tick runs one pass: systems, then every entity's components, then the
// render handoff. It does not wait for the tick deadline.
func (l *Loop) Tick() (Frame, error) {
	w := l.world
	l.start = l.clock.Now()

	w.keys.Apply(w.events.Drain())

	for _, s := range w.Systems() {
		s.Update(w, w.With(s.Schema()))
	}

	shapes := make([]component.Shape, 0, w.Len())
	for _, e := range w.Entities() {
		b, ok := w.Bundle(e)
		if !ok {
			continue
		}
		for _, v := range b {
			switch c := v.(type) {
			case component.Graphics:
				if c.Shape != nil {
					shapes = append(shapes, c.Shape)
				}
			case component.Behavior:
				if err := w.Invoke(e, c); err != nil {
					l.log.Warn("behavior failed",
						zap.Stringer("entity", e),
						zap.String("behavior", c.Name),
						zap.Error(err))
				}
			}
		}
	}

	l.tick++
	width, height := w.CanvasSize()
	frame := Frame{Tick: l.tick, Shapes: shapes, View: w.View(), Width: width, Height: height}
	if l.renderer != nil {
		if err := l.renderer.Present(frame); err != nil {
			return frame, err
		}
	}

	took := l.clock.Now().Sub(l.start)
	if took > 0 {
		maxFPS := 1 / took.Seconds()
		if maxFPS < l.warnFPS {
			l.log.Warn("slow tick",
				zap.Uint64("tick", l.tick),
				zap.Duration("took", took),
				zap.Float64("max_fps", maxFPS))
		}
	}
	return frame, nil
}

// Run ticks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	return l.RunN(ctx, 0)
}

// RunN ticks n times, or forever when n <= 0, sleeping until each tick's
// deadline.
func (l *Loop) RunN(ctx context.Context, n int) error {
	for i := 0; n <= 0 || i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := l.Tick(); err != nil {
			return err
		}
		if err := l.wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) wait(ctx context.Context) error {
	remaining := l.start.Add(l.tickDuration).Sub(l.clock.Now())
	if remaining <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.clock.After(remaining):
		return nil
	}
}
