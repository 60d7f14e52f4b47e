package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sheikhrachel/lifelattice/rules"
)

// StepSuite groups generation stepping tests.
type StepSuite struct {
	suite.Suite
}

// TestLonelyCellDies: a single cell has no neighbors and dies of underpopulation.
func (s *StepSuite) TestLonelyCellDies() {
	l := mustLattice(s.T(), seedOf("O"), "")
	l.Step()
	s.Equal(0, l.Population())
	s.Equal(1, l.Generation())
	s.Require().NoError(l.Verify())
}

// TestBlinkerPeriodTwo: the blinker flips orientation every step.
func (s *StepSuite) TestBlinkerPeriodTwo() {
	l := mustLattice(s.T(), seedOf(
		".O.",
		".O.",
		".O.",
	), "")
	vertical := setOf(Point{0, -1}, Point{0, 0}, Point{0, 1})
	horizontal := setOf(Point{-1, 0}, Point{0, 0}, Point{1, 0})

	l.Step()
	requireSameCells(s.T(), horizontal, liveSet(l))
	s.Require().NoError(l.Verify())

	l.Step()
	requireSameCells(s.T(), vertical, liveSet(l))
	s.Require().NoError(l.Verify())
	s.Equal(2, l.Generation())
}

// TestPlusBecomesRing: the plus pattern loses its center and gains its corners.
func (s *StepSuite) TestPlusBecomesRing() {
	l := mustLattice(s.T(), seedOf(
		".O.",
		"OOO",
		".O.",
	), "")
	l.Step()
	ring := setOf(
		Point{-1, -1}, Point{0, -1}, Point{1, -1},
		Point{-1, 0}, Point{1, 0},
		Point{-1, 1}, Point{0, 1}, Point{1, 1},
	)
	requireSameCells(s.T(), ring, liveSet(l))
}

// TestBlockIsStill: a still life keeps its cells and never triggers growth.
func (s *StepSuite) TestBlockIsStill() {
	l := mustLattice(s.T(), seedOf(
		"OO",
		"OO",
	), "")
	before := liveSet(l)
	l.StepN(10)
	requireSameCells(s.T(), before, liveSet(l))
	cols, rows := l.Size()
	s.Equal(2, cols)
	s.Equal(2, rows)
}

// TestGliderTravels: a glider moves one cell southeast every four generations
// and the lattice grows to follow it.
func (s *StepSuite) TestGliderTravels() {
	l := mustLattice(s.T(), seedOf(
		".O.",
		"..O",
		"OOO",
	), "")
	start := l.LiveCells()

	for lap := 1; lap <= 5; lap++ {
		l.StepN(4)
		s.Require().NoError(l.Verify())
		shifted := make([]Point, len(start))
		for i, p := range start {
			shifted[i] = Point{X: p.X + lap, Y: p.Y + lap}
		}
		requireSameCells(s.T(), setOf(shifted...), liveSet(l))
	}
	s.Equal(20, l.Generation())

	b := l.Bounds()
	s.GreaterOrEqual(b.MaxX, 6)
	s.GreaterOrEqual(b.MaxY, 6)
	s.Equal(-1, b.MinX, "nothing should grow westward")
	s.Equal(-1, b.MinY, "nothing should grow northward")
}

// TestMatchesReference runs soups under rules whose growth lookahead is exact
// and compares every generation against an unbounded reference simulation.
func (s *StepSuite) TestMatchesReference() {
	for _, text := range []string{"B3/S23", "B36/S23", "B3/S012345678", "B1/S1"} {
		rule := rules.MustParse(text)
		for seed := int64(1); seed <= 3; seed++ {
			l := mustLattice(s.T(), randomSeed(7, 5, 0.45, seed), text)
			want := liveSet(l)
			generations := 30
			if rule.MinimumBirthCount() == 1 {
				generations = 8
			}
			for gen := 1; gen <= generations; gen++ {
				l.Step()
				want = referenceStep(rule, want)
				requireSameCells(s.T(), want, liveSet(l))
			}
			s.Require().NoError(l.Verify(), "%s seed %d", text, seed)
		}
	}
}

// TestCoordinatesNeverChange: cells keep the coordinates assigned at creation.
func (s *StepSuite) TestCoordinatesNeverChange() {
	l := mustLattice(s.T(), randomSeed(6, 6, 0.5, 11), "B2/S")
	type record struct{ x, y int }
	seen := make([]record, 0)
	for range 12 {
		for i := range l.cells {
			if i < len(seen) {
				s.Require().Equal(seen[i], record{l.cells[i].x, l.cells[i].y}, "cell %d moved", i)
				continue
			}
			seen = append(seen, record{l.cells[i].x, l.cells[i].y})
		}
		l.Step()
		s.Require().NoError(l.Verify())
	}
}

func TestStepSuite(t *testing.T) {
	suite.Run(t, new(StepSuite))
}

// TestStep_OnlyNeighborCountMatters places the same number of live neighbors
// in different positions around the center and expects the same fate.
func TestStep_OnlyNeighborCountMatters(t *testing.T) {
	cases := []struct {
		name   string
		center bool
		want   bool
		seeds  [][]string
	}{
		{
			name: "dead with three is born",
			want: true,
			seeds: [][]string{
				{"OOO", "...", "..."},
				{"O..", "...", "O.O"},
				{".O.", "O..", "..O"},
				{"...", "O.O", ".O."},
			},
		},
		{
			name:   "live with two survives",
			center: true,
			want:   true,
			seeds: [][]string{
				{"OO.", "...", "..."},
				{"O..", "...", "..O"},
				{"...", "O.O", "..."},
				{"...", "...", ".OO"},
			},
		},
		{
			name: "dead with two stays dead",
			seeds: [][]string{
				{"OO.", "...", "..."},
				{"..O", "O..", "..."},
				{"...", "...", "O.O"},
			},
		},
		{
			name:   "live with four dies",
			center: true,
			seeds: [][]string{
				{"OOO", "O..", "..."},
				{"O.O", "...", "O.O"},
				{".O.", "O.O", ".O."},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, rows := range tc.seeds {
				seed := seedOf(rows...)
				seed[1][1] = tc.center
				l := mustLattice(t, seed, rules.Conway)
				l.Step()
				require.Equal(t, tc.want, l.Alive(0, 0), "seed %v", rows)
			}
		})
	}
}

func TestCommitQueue_FIFO(t *testing.T) {
	pool := NewQueuePool()
	q := pool.Get(3)
	for i := range 3 {
		q.Push(pending{cell: handle(i), alive: i%2 == 0})
	}
	require.Equal(t, 3, q.Len())
	require.Equal(t, handle(0), q.Pop().cell)
	q.Push(pending{cell: 3})
	require.Equal(t, handle(1), q.Pop().cell)
	require.Equal(t, handle(2), q.Pop().cell)
	require.Equal(t, handle(3), q.Pop().cell)
	require.Equal(t, 0, q.Len())
	pool.Put(q)

	q = pool.Get(8)
	require.Equal(t, 0, q.Len())
	require.Len(t, q.buf, 8)
}
