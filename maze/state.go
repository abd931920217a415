package maze

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/milk9111/mazes/canvas"
	"github.com/milk9111/mazes/grid"
	"github.com/milk9111/mazes/prefabs"
)

type Command int

const (
	CommandNone Command = iota
	CommandExit
	CommandRefresh
	CommandCopy
	CommandToggleHelp
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "none"
	case CommandExit:
		return "exit"
	case CommandRefresh:
		return "refresh"
	case CommandCopy:
		return "copy"
	case CommandToggleHelp:
		return "toggle-help"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

var keyCommands = map[canvas.Key]Command{
	canvas.KeyEscape: CommandExit,
	canvas.KeyF5:     CommandRefresh,
	canvas.KeyF2:     CommandCopy,
	canvas.KeyH:      CommandToggleHelp,
}

const helpText = "Esc  quit\nF5   new maze\nF2   copy as text\nH    toggle help"

// State is the mazes demo: the grid plus the input it has seen.
type State struct {
	Grid     *grid.Grid[Cell]
	Mouse    canvas.MouseState
	ID       uuid.UUID
	ShowHelp bool

	spec prefabs.MazeSpec
	rng  grid.Rand
	next Command
	copy func([]byte) error
}

// NewState generates the first maze from spec.
func NewState(spec *prefabs.MazeSpec, rng grid.Rand) (*State, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	s := &State{
		ShowHelp: spec.ShowHelp,
		spec:     *spec,
		rng:      rng,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetClipboard installs the sink used by the copy command.
func (s *State) SetClipboard(fn func([]byte) error) {
	s.copy = fn
}

// Spec returns the configuration currently in effect.
func (s *State) Spec() prefabs.MazeSpec {
	return s.spec
}

// Pending returns the command waiting for the next ProcessCommands.
func (s *State) Pending() Command {
	return s.next
}

// Regenerate replaces the grid with a fresh maze of the configured size.
func (s *State) Regenerate() error {
	g, err := Generate(s.spec.Width, s.spec.Height, s.rng)
	if err != nil {
		return err
	}
	s.Grid = g
	s.ID = uuid.New()
	logGenerated(s.ID, g)
	return nil
}

// ApplySpec takes new colors, margins and edge thickness from spec. Grid size
// and scale are fixed for the life of the window.
func (s *State) ApplySpec(spec *prefabs.MazeSpec) error {
	next := *spec
	next.Width = s.spec.Width
	next.Height = s.spec.Height
	next.Scale = s.spec.Scale
	if err := next.Validate(); err != nil {
		return err
	}
	s.spec = next
	return nil
}

// PixelSize returns the surface size needed to draw the grid.
func (s *State) PixelSize() (int, int) {
	return s.spec.Width * s.spec.Scale, s.spec.Height * s.spec.Scale
}

// HandleInput forwards mouse events and records at most one pending key
// command until it is processed.
func (s *State) HandleInput(info canvas.Info, e canvas.Event) bool {
	handledMouse := s.Mouse.HandleInput(info, e)

	handledKey := false
	if s.next == CommandNone {
		if ev, ok := e.(canvas.KeyReleased); ok {
			s.next = keyCommands[ev.Key]
			handledKey = s.next != CommandNone
		}
	}

	return handledMouse || handledKey
}

// ProcessCommands runs the pending command. An exit request is reported as
// canvas.ErrQuit.
func (s *State) ProcessCommands() error {
	cmd := s.next
	s.next = CommandNone

	switch cmd {
	case CommandExit:
		return canvas.ErrQuit
	case CommandRefresh:
		return s.Regenerate()
	case CommandCopy:
		if s.copy == nil {
			log.Printf("mazes: clipboard unavailable")
			return nil
		}
		if err := s.copy([]byte(s.Text())); err != nil {
			log.Printf("mazes: copy maze %s: %v", s.ID, err)
		}
	case CommandToggleHelp:
		s.ShowHelp = !s.ShowHelp
	}
	return nil
}

// HelpText returns the key bindings while help is shown, otherwise "".
func (s *State) HelpText() string {
	if !s.ShowHelp {
		return ""
	}
	return helpText
}

// Text renders the maze as one line per row, preceded by its ID.
func (s *State) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "maze %s\n", s.ID)
	for _, row := range s.Grid.Rows() {
		for _, cell := range row {
			b.WriteRune(cell.Kind.Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
