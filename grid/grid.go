package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
)

var (
	ErrInvalidDimension = errors.New("grid: invalid dimension")
	ErrOutOfBounds      = errors.New("grid: coordinate out of bounds")
)

// Coord addresses a cell by column (X) and row (Y).
type Coord struct {
	X int
	Y int
}

// Index returns the row-major offset of c in a grid of the given width.
func (c Coord) Index(width int) int {
	return c.Y*width + c.X
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// BoundsError reports an access outside the grid. It matches ErrOutOfBounds.
type BoundsError struct {
	Coord  Coord
	Width  int
	Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: coordinate %s out of bounds for %dx%d grid", e.Coord, e.Width, e.Height)
}

func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// Cloner is implemented by cell types that carry their own identity. Fill
// values that implement it are cloned per cell instead of copied.
type Cloner[T any] interface {
	Clone() T
}

// Grid is a fixed-size, row-major 2D container.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// New creates a width x height grid with every cell equal to initial.
func New[T any](width, height int, initial T) (*Grid[T], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	g.Fill(initial)
	return g, nil
}

// NewFunc creates a grid whose cells are produced by fn, called once per
// coordinate in row-major order.
func NewFunc[T any](width, height int, fn func(c Coord) T) (*Grid[T], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	g := &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
	for i := range g.cells {
		g.cells[i] = fn(Coord{X: i % width, Y: i / width})
	}
	return g, nil
}

func checkDimensions(width, height int) error {
	if width < 1 || height < 1 || width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

func (g *Grid[T]) Width() int {
	return g.width
}

func (g *Grid[T]) Height() int {
	return g.height
}

// Size returns the number of cells.
func (g *Grid[T]) Size() int {
	return len(g.cells)
}

// InBounds reports whether c addresses a cell of g.
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.width && c.Y < g.height
}

func (g *Grid[T]) boundsError(c Coord) *BoundsError {
	return &BoundsError{Coord: c, Width: g.width, Height: g.height}
}

// Get returns the cell at c.
func (g *Grid[T]) Get(c Coord) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, g.boundsError(c)
	}
	return g.cells[c.Index(g.width)], nil
}

// Ptr returns a pointer to the cell at c. Writes through it mutate the grid.
func (g *Grid[T]) Ptr(c Coord) (*T, error) {
	if !g.InBounds(c) {
		return nil, g.boundsError(c)
	}
	return &g.cells[c.Index(g.width)], nil
}

// Set stores v at c.
func (g *Grid[T]) Set(c Coord, v T) error {
	p, err := g.Ptr(c)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// At is Get for callers that have already validated c. It panics with a
// *BoundsError on out-of-range access.
func (g *Grid[T]) At(c Coord) T {
	return *g.AtPtr(c)
}

// AtPtr is Ptr with the same panic contract as At.
func (g *Grid[T]) AtPtr(c Coord) *T {
	if !g.InBounds(c) {
		panic(g.boundsError(c))
	}
	return &g.cells[c.Index(g.width)]
}

// Rows yields a copy of each row, top to bottom. Mutating a yielded row does
// not affect the grid.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := range g.height {
			if !yield(y, slices.Clone(g.row(y))) {
				return
			}
		}
	}
}

// RowsMut yields each row as a view into the grid's storage, top to bottom.
func (g *Grid[T]) RowsMut() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := range g.height {
			if !yield(y, g.row(y)) {
				return
			}
		}
	}
}

func (g *Grid[T]) row(y int) []T {
	start := y * g.width
	return g.cells[start : start+g.width : start+g.width]
}

// All yields every cell with its coordinate in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, v := range g.cells {
			if !yield(Coord{X: i % g.width, Y: i / g.width}, v) {
				return
			}
		}
	}
}

// Fill overwrites every cell with v, keeping the dimensions.
func (g *Grid[T]) Fill(v T) {
	if cl, ok := any(v).(Cloner[T]); ok {
		for i := range g.cells {
			g.cells[i] = cl.Clone()
		}
		return
	}
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns an independent copy of g.
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		width:  g.width,
		height: g.height,
		cells:  make([]T, len(g.cells)),
	}
	for i, v := range g.cells {
		if cl, ok := any(v).(Cloner[T]); ok {
			out.cells[i] = cl.Clone()
			continue
		}
		out.cells[i] = v
	}
	return out
}
