package ecs

import "sync"

// Key names understood by the camera and the drivers.
const (
	KeyW     = "W"
	KeyA     = "A"
	KeyS     = "S"
	KeyD     = "D"
	KeyQ     = "Q"
	KeyE     = "E"
	KeyY     = "Y"
	KeyP     = "P"
	KeySpace = "Space"
)

// KeyState answers pressed/not-pressed per named key.
type KeyState struct {
	mu   sync.RWMutex
	held map[string]bool
	taps map[string]bool
}

// Apply clears last tick's taps and folds events into the state.
func (k *KeyState) Apply(events []Event) {
	k.mu.Lock()
	defer k.mu.Unlock()
	clear(k.taps)
	if k.held == nil {
		k.held = make(map[string]bool)
	}
	if k.taps == nil {
		k.taps = make(map[string]bool)
	}
	for _, evt := range events {
		switch evt.Type {
		case EventKeyDown:
			k.held[evt.Key] = true
		case EventKeyUp:
			delete(k.held, evt.Key)
		case EventKeyTap:
			k.taps[evt.Key] = true
		}
	}
}

// Pressed reports whether key is held or was tapped this tick.
func (k *KeyState) Pressed(key string) bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.held[key] || k.taps[key]
}
