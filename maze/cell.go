package maze

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/milk9111/mazes/grid"
)

type Kind int

const (
	Empty Kind = iota
	Start
	End
	Path
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Start:
		return "start"
	case End:
		return "end"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Rune is the character used for k in the text export.
func (k Kind) Rune() rune {
	switch k {
	case Start:
		return 'S'
	case End:
		return 'E'
	case Path:
		return '.'
	default:
		return '#'
	}
}

// Cell is one maze square. LeftEdge and BottomEdge mark wall segments that
// are drawn when the neighbouring cell carries the same mark.
type Cell struct {
	Kind       Kind
	LeftEdge   bool
	BottomEdge bool
}

// Generate builds a width x height maze: inner cells are path, the last
// column and row are empty, walls run along the outer border, and a start and
// an end are placed on two distinct boundary cells.
func Generate(width, height int, rng grid.Rand) (*grid.Grid[Cell], error) {
	g, err := grid.NewFunc(width, height, func(c grid.Coord) Cell {
		kind := Empty
		if c.X != width-1 && c.Y != height-1 {
			kind = Path
		}
		return Cell{
			Kind:       kind,
			BottomEdge: c.Y == 0 || c.Y == height-1,
			LeftEdge:   c.X == 0 || c.X == width-1,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("maze: generate: %w", err)
	}

	start, end, err := g.PickBoundaryPair(rng)
	if err != nil {
		return nil, fmt.Errorf("maze: place start/end: %w", err)
	}
	g.AtPtr(start).Kind = Start
	g.AtPtr(end).Kind = End
	return g, nil
}

// Find returns the first coordinate holding kind k.
func Find(g *grid.Grid[Cell], k Kind) (grid.Coord, bool) {
	for c, cell := range g.All() {
		if cell.Kind == k {
			return c, true
		}
	}
	return grid.Coord{}, false
}

func logGenerated(id uuid.UUID, g *grid.Grid[Cell]) {
	start, _ := Find(g, Start)
	end, _ := Find(g, End)
	log.Printf("mazes: generated maze %s (%dx%d) start=%s end=%s", id, g.Width(), g.Height(), start, end)
}
