package grid

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBoundaryCoords(t *testing.T) {
	cases := []struct {
		name   string
		width  int
		height int
		count  int
	}{
		{"one_by_one", 1, 1, 1},
		{"row", 5, 1, 5},
		{"column", 1, 4, 4},
		{"two_by_two", 2, 2, 4},
		{"two_by_five", 2, 5, 10},
		{"three_by_three", 3, 3, 8},
		{"ten_by_ten", 10, 10, 36},
		{"wide", 7, 4, 18},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := New(c.width, c.height, 0)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			ring := g.BoundaryCoords()
			if len(ring) != c.count {
				t.Fatalf("expected %d boundary cells, got %d", c.count, len(ring))
			}
			seen := make(map[Coord]struct{}, len(ring))
			for _, p := range ring {
				if !g.IsBoundary(p) {
					t.Fatalf("%s is not on the boundary", p)
				}
				if _, dup := seen[p]; dup {
					t.Fatalf("%s listed twice", p)
				}
				seen[p] = struct{}{}
			}
			for p := range g.All() {
				_, listed := seen[p]
				if g.IsBoundary(p) != listed {
					t.Fatalf("%s: boundary=%v listed=%v", p, g.IsBoundary(p), listed)
				}
			}
		})
	}
}

func TestBoundaryCoordsClockwise(t *testing.T) {
	g, err := New(3, 3, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []Coord{
		{0, 0}, {1, 0}, {2, 0},
		{2, 1}, {2, 2},
		{1, 2}, {0, 2},
		{0, 1},
	}
	if diff := cmp.Diff(want, g.BoundaryCoords()); diff != "" {
		t.Fatalf("ring order mismatch (-want +got):\n%s", diff)
	}
}

func TestPickBoundaryPair(t *testing.T) {
	g, err := New(10, 10, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewPCG(1, 2))

	hits := make(map[Coord]int)
	for i := 0; i < 10000; i++ {
		start, end, err := g.PickBoundaryPair(rng)
		if err != nil {
			t.Fatalf("PickBoundaryPair: %v", err)
		}
		for _, p := range []Coord{start, end} {
			if !(p.X == 0 || p.X == 9 || p.Y == 0 || p.Y == 9) {
				t.Fatalf("iteration %d: %s is not a boundary cell", i, p)
			}
		}
		if start == end {
			t.Fatalf("iteration %d: duplicate pair %s", i, start)
		}
		hits[start]++
		hits[end]++
	}

	if len(hits) != 36 {
		t.Fatalf("expected all 36 boundary cells to be picked at least once, got %d", len(hits))
	}
}

func TestPickBoundaryPairSmallGrids(t *testing.T) {
	one, err := New(1, 1, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, err := one.PickBoundaryPair(rand.New(rand.NewPCG(3, 4))); !errors.Is(err, ErrNotEnoughBoundary) {
		t.Fatalf("expected ErrNotEnoughBoundary, got %v", err)
	}

	pair, err := New(2, 1, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		a, b, err := pair.PickBoundaryPair(rng)
		if err != nil {
			t.Fatalf("PickBoundaryPair: %v", err)
		}
		if a == b {
			t.Fatalf("expected distinct cells, got %s twice", a)
		}
		if a.Y != 0 || b.Y != 0 || a.X+b.X != 1 {
			t.Fatalf("unexpected pair %s %s", a, b)
		}
	}
}

type fixedRand []int

func (f *fixedRand) IntN(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestPickBoundaryPairSkipsFirstPick(t *testing.T) {
	g, err := New(3, 3, 0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := fixedRand{2, 2}
	start, end, err := g.PickBoundaryPair(&rng)
	if err != nil {
		t.Fatalf("PickBoundaryPair: %v", err)
	}
	if start != (Coord{X: 2, Y: 0}) || end != (Coord{X: 2, Y: 1}) {
		t.Fatalf("expected (2, 0) and (2, 1), got %s and %s", start, end)
	}
}
