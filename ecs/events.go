package ecs

import "sync"

// EventType identifies input event kinds.
type EventType string

const (
	// EventKeyDown marks a key as held until the matching EventKeyUp.
	EventKeyDown EventType = "key_down"
	EventKeyUp   EventType = "key_up"
	// EventKeyTap marks a key as pressed for exactly one tick. Terminals
	// report presses without releases.
	EventKeyTap EventType = "key_tap"
)

// Event is an input event payload. Key holds the key name.
type Event struct {
	Type EventType
	Key  string
}

// EventQueue is a FIFO queue shared between an input producer and the
// simulation goroutine.
type EventQueue struct {
	mu    sync.Mutex
	items []Event
}

// Push adds an event. Safe for concurrent use.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, evt)
	q.mu.Unlock()
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
