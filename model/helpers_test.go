package model

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zyedidia/generic/mapset"

	"github.com/sheikhrachel/lifelattice/rules"
)

// seedOf converts rows of 'O' (alive) and '.' (dead) into a seed matrix.
func seedOf(rows ...string) [][]bool {
	seed := make([][]bool, len(rows))
	for y, row := range rows {
		seed[y] = make([]bool, len(row))
		for x, ch := range row {
			seed[y][x] = ch == 'O'
		}
	}
	return seed
}

// randomSeed returns a deterministic w×h soup with the given density.
func randomSeed(w, h int, density float64, seed int64) [][]bool {
	rng := rand.New(rand.NewSource(seed))
	grid := make([][]bool, h)
	for y := range grid {
		grid[y] = make([]bool, w)
		for x := range grid[y] {
			grid[y][x] = rng.Float64() < density
		}
	}
	return grid
}

// mustLattice builds a lattice or fails the test.
func mustLattice(t *testing.T, seed [][]bool, rule string) *Lattice {
	t.Helper()
	l, err := New(seed, rule)
	require.NoError(t, err)
	require.NoError(t, l.Verify())
	return l
}

func liveSet(l *Lattice) mapset.Set[Point] {
	set := mapset.New[Point]()
	for _, p := range l.LiveCells() {
		set.Put(p)
	}
	return set
}

func setOf(points ...Point) mapset.Set[Point] {
	set := mapset.New[Point]()
	for _, p := range points {
		set.Put(p)
	}
	return set
}

// requireSameCells fails unless both sets hold exactly the same points.
func requireSameCells(t *testing.T, want, got mapset.Set[Point]) {
	t.Helper()
	require.Equal(t, want.Size(), got.Size(), "population differs")
	want.Each(func(p Point) {
		require.True(t, got.Has(p), "expected %v to be alive", p)
	})
}

// referenceStep advances an unbounded set of live cells by one generation
// using a plain neighbor count over the whole plane.
func referenceStep(rule rules.Rule, live mapset.Set[Point]) mapset.Set[Point] {
	counts := map[Point]int{}
	live.Each(func(p Point) {
		for _, d := range Directions {
			dx, dy := d.Offset()
			counts[Point{X: p.X + dx, Y: p.Y + dy}]++
		}
	})
	next := mapset.New[Point]()
	live.Each(func(p Point) {
		if rule.Apply(counts[p], true) {
			next.Put(p)
		}
	})
	for p, n := range counts {
		if !live.Has(p) && rule.Apply(n, false) {
			next.Put(p)
		}
	}
	return next
}
