package grid

import (
	"errors"
	"fmt"
)

var ErrNotEnoughBoundary = errors.New("grid: fewer than two boundary cells")

// Rand is the random source used for placement. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// IsBoundary reports whether c lies on the outer edge of g.
func (g *Grid[T]) IsBoundary(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return c.X == 0 || c.X == g.width-1 || c.Y == 0 || c.Y == g.height-1
}

// BoundaryCoords lists every boundary cell once, clockwise from (0, 0).
func (g *Grid[T]) BoundaryCoords() []Coord {
	w, h := g.width, g.height
	out := make([]Coord, 0, boundaryCount(w, h))
	for x := range w {
		out = append(out, Coord{X: x, Y: 0})
	}
	if h > 1 {
		for y := 1; y < h; y++ {
			out = append(out, Coord{X: w - 1, Y: y})
		}
		for x := w - 2; x >= 0; x-- {
			out = append(out, Coord{X: x, Y: h - 1})
		}
	}
	if w > 1 {
		for y := h - 2; y >= 1; y-- {
			out = append(out, Coord{X: 0, Y: y})
		}
	}
	return out
}

func boundaryCount(w, h int) int {
	if w <= 2 || h <= 2 {
		return w * h
	}
	return 2*w + 2*h - 4
}

// PickBoundaryPair picks two distinct boundary cells uniformly at random. It
// samples the boundary set directly, so it always finishes in two draws.
func (g *Grid[T]) PickBoundaryPair(rng Rand) (Coord, Coord, error) {
	ring := g.BoundaryCoords()
	n := len(ring)
	if n < 2 {
		return Coord{}, Coord{}, fmt.Errorf("%w: %dx%d grid", ErrNotEnoughBoundary, g.width, g.height)
	}

	i := rng.IntN(n)
	j := rng.IntN(n - 1)
	if j >= i {
		j++
	}
	return ring[i], ring[j], nil
}
