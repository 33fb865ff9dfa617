package render

import (
	"context"
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/swarm/ecs"
	"github.com/milk9111/swarm/ecs/component"
)

// ErrQuit is returned by PollInput when the user asks to leave.
var ErrQuit = errors.New("render: quit")

const glyph = '●'

// Terminal draws frames as colored glyphs on a tcell screen, one cell per
// body center.
type Terminal struct {
	screen tcell.Screen
}

func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Present(f ecs.Frame) error {
	cols, rows := t.screen.Size()
	t.screen.Clear()
	if cols <= 0 || rows <= 0 || f.Width <= 0 || f.Height <= 0 {
		t.screen.Show()
		return nil
	}

	for _, shape := range f.Shapes {
		c, ok := shape.(component.Circle)
		if !ok {
			continue
		}
		x, y := Project(f, c.X, c.Y)
		cx := int(x / f.Width * float64(cols))
		cy := int(y / f.Height * float64(rows))
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.Color.R), int32(c.Color.G), int32(c.Color.B)))
		t.screen.SetContent(cx, cy, glyph, nil, style)
	}
	t.screen.Show()
	return nil
}

// PollInput forwards key presses to q as taps until ctx is done, the screen
// is finalized, or Esc / Ctrl-C is pressed.
func PollInput(ctx context.Context, screen tcell.Screen, q *ecs.EventQueue) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
			return ErrQuit
		}
		if name, ok := keyName(key); ok {
			q.Push(ecs.Event{Type: ecs.EventKeyTap, Key: name})
		}
	}
}

func keyName(ev *tcell.EventKey) (string, bool) {
	if ev.Key() != tcell.KeyRune {
		return "", false
	}
	r := unicode.ToUpper(ev.Rune())
	switch r {
	case ' ':
		return ecs.KeySpace, true
	case 'W', 'A', 'S', 'D', 'Q', 'E', 'Y', 'P':
		return string(r), true
	}
	return "", false
}
