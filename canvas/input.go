package canvas

// InputSnapshot is the raw input observed by the window during one tick.
type InputSnapshot struct {
	CursorX int
	CursorY int

	ButtonsPressed  []MouseButton
	ButtonsReleased []MouseButton
	KeysPressed     []Key
	KeysReleased    []Key
}

// Collector turns per-tick snapshots into an ordered event stream: cursor
// movement first, then button edges, then key edges.
type Collector struct {
	seen  bool
	lastX int
	lastY int
}

// Collect pushes the events implied by s onto q.
func (c *Collector) Collect(s InputSnapshot, q *EventQueue) {
	if !c.seen || s.CursorX != c.lastX || s.CursorY != c.lastY {
		q.Push(MouseMoved{X: s.CursorX, Y: s.CursorY})
		c.seen = true
		c.lastX = s.CursorX
		c.lastY = s.CursorY
	}

	for _, b := range s.ButtonsPressed {
		q.Push(MousePressed{Button: b})
	}
	for _, b := range s.ButtonsReleased {
		q.Push(MouseReleased{Button: b})
	}

	for _, k := range s.KeysPressed {
		if k == KeyUnknown {
			continue
		}
		q.Push(KeyPressed{Key: k})
	}
	for _, k := range s.KeysReleased {
		if k == KeyUnknown {
			continue
		}
		q.Push(KeyReleased{Key: k})
	}
}

// Dispatch drains q into h in order and returns how many events h consumed.
func Dispatch(q *EventQueue, info Info, h InputHandler) int {
	consumed := 0
	for _, e := range q.Drain() {
		if h.HandleInput(info, e) {
			consumed++
		}
	}
	return consumed
}
