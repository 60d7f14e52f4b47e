package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifelattice/rules"
)

// maxLookahead is the largest minimum birth count MaybeExpand will react to
const maxLookahead = 3

// Expand adds one row or column of dead cells on the given side of the lattice
func (l *Lattice) Expand(d Direction) error {
	switch d {
	case North:
		l.addTopRow()
	case South:
		l.addBottomRow()
	case West:
		l.addLeftColumn()
	case East:
		l.addRightColumn()
	default:
		return errors.Wrapf(ErrInvalidDirection, "[Expand] direction: %v", d)
	}
	return nil
}

// addTopRow walks the top row eastward. The new cell west of each fresh cell
// is the one created on the previous iteration, reachable as i's northwest.
func (l *Lattice) addTopRow() {
	for i := l.topLeft; i != nilHandle; i = l.cells[i].links[East] {
		below := l.cells[i]
		c := l.newCell(false, below.x, below.y-1)
		l.link(c, South, i)
		l.link(c, SouthWest, below.links[West])
		l.link(c, West, below.links[NorthWest])
		l.link(c, SouthEast, below.links[East])
	}
	l.rows++
	l.topLeft = l.cells[l.topLeft].links[North]
}

// addBottomRow walks the bottom row westward from the bottom-right anchor
func (l *Lattice) addBottomRow() {
	for i := l.bottomRight; i != nilHandle; i = l.cells[i].links[West] {
		above := l.cells[i]
		c := l.newCell(false, above.x, above.y+1)
		l.link(c, North, i)
		l.link(c, NorthEast, above.links[East])
		l.link(c, East, above.links[SouthEast])
		l.link(c, NorthWest, above.links[West])
	}
	l.rows++
	l.bottomRight = l.cells[l.bottomRight].links[South]
}

// addLeftColumn walks the left column southward from the top-left anchor
func (l *Lattice) addLeftColumn() {
	for j := l.topLeft; j != nilHandle; j = l.cells[j].links[South] {
		right := l.cells[j]
		c := l.newCell(false, right.x-1, right.y)
		l.link(c, East, j)
		l.link(c, SouthEast, right.links[South])
		l.link(c, North, right.links[NorthWest])
		l.link(c, NorthEast, right.links[North])
	}
	l.columns++
	l.topLeft = l.cells[l.topLeft].links[West]
}

// addRightColumn walks the right column northward from the bottom-right anchor
func (l *Lattice) addRightColumn() {
	for j := l.bottomRight; j != nilHandle; j = l.cells[j].links[North] {
		left := l.cells[j]
		c := l.newCell(false, left.x+1, left.y)
		l.link(c, West, j)
		l.link(c, NorthWest, left.links[North])
		l.link(c, South, left.links[SouthEast])
		l.link(c, SouthWest, left.links[South])
	}
	l.columns++
	l.bottomRight = l.cells[l.bottomRight].links[East]
}

// edge describes one side of the lattice for the expansion scan
type edge struct {
	grow  Direction
	start handle
	walk  Direction // direction of travel along the edge
	back  Direction
}

/*
MaybeExpand grows each edge by one row or column when a live cell on it could
seed a birth just outside the lattice on the next step. It returns the number
of edges expanded.

Rules that never birth, birth on zero neighbors or need more than three live
neighbors to birth are never expanded for. Growth is capped at one row or
column per edge per call.
*/
func (l *Lattice) MaybeExpand() int {
	m := l.rule.MinimumBirthCount()
	if m == rules.NeverBorn || m == 0 || m > maxLookahead {
		return 0
	}

	// All four edges are scanned before any of them grows.
	edges := []edge{
		{grow: North, start: l.topLeft, walk: East, back: West},
		{grow: South, start: l.bottomRight, walk: West, back: East},
		{grow: West, start: l.topLeft, walk: South, back: North},
		{grow: East, start: l.bottomRight, walk: North, back: South},
	}
	grown := make([]Direction, 0, len(edges))
	for _, e := range edges {
		if l.edgeCanBirth(e, m) {
			grown = append(grown, e.grow)
		}
	}
	for _, d := range grown {
		// Expand only rejects diagonal directions
		_ = l.Expand(d)
	}
	return len(grown)
}

// edgeCanBirth scans e for the first live cell whose along-edge neighbors satisfy the lookahead for m
func (l *Lattice) edgeCanBirth(e edge, m int) bool {
	for h := e.start; h != nilHandle; h = l.cells[h].links[e.walk] {
		if !l.cells[h].alive {
			continue
		}
		ahead := l.isAlive(l.neighbor(h, e.walk))
		behind := l.isAlive(l.neighbor(h, e.back))
		switch {
		case m == 1:
			return true
		case m == 2 && (ahead || behind):
			return true
		case m == maxLookahead && ahead && behind:
			return true
		}
	}
	return false
}
