package render

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// Screen hands frames from the loop to ebiten's Draw.
type Screen struct {
	mu    sync.Mutex
	frame ecs.Frame
}

func NewScreen() *Screen {
	return &Screen{}
}

// Present keeps f as the frame drawn next.
func (s *Screen) Present(f ecs.Frame) error {
	s.mu.Lock()
	s.frame = f
	s.mu.Unlock()
	return nil
}

// Frame returns the last presented frame.
func (s *Screen) Frame() ecs.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frame
}

func (s *Screen) Draw(dst *ebiten.Image) {
	dst.Fill(color.Black)

	f := s.Frame()
	for _, shape := range f.Shapes {
		c, ok := shape.(component.Circle)
		if !ok {
			continue
		}
		x, y := Project(f, c.X, c.Y)
		vector.FillCircle(dst, float32(x), float32(y), float32(Scale(f, c.Radius)), c.Color, true)
	}
}
