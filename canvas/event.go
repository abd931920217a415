package canvas

import "fmt"

// Event is a discrete input event delivered to an InputHandler.
type Event interface {
	isEvent()
}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

// Key is a named key code. Only the keys the demos react to are named.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyF1
	KeyF2
	KeyF5
	KeyH
	KeyQ
	KeyR
)

var keyNames = map[Key]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyEnter:   "enter",
	KeySpace:   "space",
	KeyF1:      "f1",
	KeyF2:      "f2",
	KeyF5:      "f5",
	KeyH:       "h",
	KeyQ:       "q",
	KeyR:       "r",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// MouseMoved carries the cursor position in surface pixels.
type MouseMoved struct {
	X, Y int
}

type MousePressed struct {
	Button MouseButton
}

type MouseReleased struct {
	Button MouseButton
}

type KeyPressed struct {
	Key Key
}

type KeyReleased struct {
	Key Key
}

func (MouseMoved) isEvent()    {}
func (MousePressed) isEvent()  {}
func (MouseReleased) isEvent() {}
func (KeyPressed) isEvent()    {}
func (KeyReleased) isEvent()   {}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil || evt == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
