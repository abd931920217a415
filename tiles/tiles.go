package tiles

import (
	"github.com/milk9111/mazes/canvas"
	"github.com/milk9111/mazes/common"
	"github.com/milk9111/mazes/prefabs"
)

// State is the checkerboard demo. The mouse X picks the tile size, the
// mouse Y scrolls the pattern, and holding the left button swaps palettes.
type State struct {
	Mouse canvas.MouseState

	spec prefabs.TilesSpec
	quit bool
}

func NewState(spec *prefabs.TilesSpec) (*State, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &State{spec: *spec}, nil
}

// Spec returns the configuration currently in effect.
func (s *State) Spec() prefabs.TilesSpec {
	return s.spec
}

// ApplySpec takes new colors and tile limits from spec. The surface size is
// fixed for the life of the window.
func (s *State) ApplySpec(spec *prefabs.TilesSpec) error {
	next := *spec
	next.Width = s.spec.Width
	next.Height = s.spec.Height
	if err := next.Validate(); err != nil {
		return err
	}
	s.spec = next
	return nil
}

func (s *State) HandleInput(info canvas.Info, e canvas.Event) bool {
	if s.Mouse.HandleInput(info, e) {
		return true
	}
	if ev, ok := e.(canvas.KeyReleased); ok && ev.Key == canvas.KeyEscape {
		s.quit = true
		return true
	}
	return false
}

func (s *State) ProcessCommands() error {
	if s.quit {
		return canvas.ErrQuit
	}
	return nil
}

// TileSize is the tile edge in pixels for the current mouse X.
func (s *State) TileSize() int {
	t := float32(s.Mouse.X) / float32(max(1, s.spec.Width-1))
	return common.LerpInt(s.spec.MinTile, s.spec.MaxTile, t)
}

// Palette returns the two tile colors for the current button state.
func (s *State) Palette() (canvas.Color, canvas.Color) {
	c := s.spec.Colors
	if s.Mouse.Pressed {
		return c.PressedLight.Color, c.PressedDark.Color
	}
	return c.Light.Color, c.Dark.Color
}

// TileColor is the color of pixel (x, y) for the current state.
func (s *State) TileColor(x, y int) canvas.Color {
	tile := s.TileSize()
	light, dark := s.Palette()
	if (x/tile+(y+s.Mouse.Y)/tile)%2 == 0 {
		return light
	}
	return dark
}

// Render paints the board one tile at a time.
func (s *State) Render(img *canvas.Image) {
	tile := s.TileSize()
	light, dark := s.Palette()
	w, h := img.Width(), img.Height()

	shift := s.Mouse.Y % tile
	parity := s.Mouse.Y / tile
	for row, y0 := 0, -shift; y0 < h; row, y0 = row+1, y0+tile {
		for col, x0 := 0, 0; x0 < w; col, x0 = col+1, x0+tile {
			c := light
			if (row+col+parity)%2 == 1 {
				c = dark
			}
			img.FillRect(x0, y0, x0+tile, y0+tile, c)
		}
	}
}
