package canvas

import "errors"

// ErrQuit is returned by ProcessCommands to ask the window to close cleanly.
var ErrQuit = errors.New("canvas: quit requested")

// Info describes the drawing surface in pixels.
type Info struct {
	Width  int
	Height int
}

// FrameRenderer repaints the whole buffer once per frame.
type FrameRenderer interface {
	Render(img *Image)
}

// InputHandler applies one input event to in-memory state and reports
// whether the event was consumed.
type InputHandler interface {
	HandleInput(info Info, e Event) bool
}

// CommandProcessor runs once per tick, before the frame is drawn.
type CommandProcessor interface {
	ProcessCommands() error
}

// App is everything a window needs from a demo.
type App interface {
	FrameRenderer
	InputHandler
	CommandProcessor
}

// MouseState tracks the cursor and the left button.
type MouseState struct {
	X       int
	Y       int
	Pressed bool
}

// HandleInput updates the mouse from e. Non-mouse events are not consumed.
func (m *MouseState) HandleInput(info Info, e Event) bool {
	switch ev := e.(type) {
	case MouseMoved:
		m.X = clamp(ev.X, 0, info.Width-1)
		m.Y = clamp(ev.Y, 0, info.Height-1)
		return true
	case MousePressed:
		if ev.Button == MouseLeft {
			m.Pressed = true
		}
		return true
	case MouseReleased:
		if ev.Button == MouseLeft {
			m.Pressed = false
		}
		return true
	}
	return false
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
