package model

import (
	"github.com/pkg/errors"
	"github.com/zyedidia/generic/mapset"
)

/*
Verify checks the lattice topology:

  - every link is symmetric and points at the cell one step away in its direction
  - a link is absent exactly when the cell sits on that edge of the lattice
  - rows*columns cells are reachable from the top-left anchor via east/south
    and from the bottom-right anchor via west/north

It is intended for tests and debugging; it walks the whole lattice.
*/
func (l *Lattice) Verify() error {
	b := l.Bounds()
	if b.Width() != l.columns || b.Height() != l.rows {
		return errors.Wrapf(ErrUnreachable, "[Verify] anchors span %dx%d, lattice is %dx%d",
			b.Width(), b.Height(), l.columns, l.rows)
	}

	for i := range l.cells {
		h := handle(i)
		c := &l.cells[i]
		for _, d := range Directions {
			dx, dy := d.Offset()
			n := c.links[d]
			if n == nilHandle {
				if b.Contains(c.x+dx, c.y+dy) {
					return errors.Wrapf(ErrBrokenLink, "[Verify] cell (%d,%d) missing %v link", c.x, c.y, d)
				}
				continue
			}
			other := &l.cells[n]
			if other.links[d.Opposite()] != h {
				return errors.Wrapf(ErrBrokenLink, "[Verify] cell (%d,%d) %v link is not mirrored", c.x, c.y, d)
			}
			if other.x != c.x+dx || other.y != c.y+dy {
				return errors.Wrapf(ErrBrokenLink, "[Verify] cell (%d,%d) %v link reaches (%d,%d)",
					c.x, c.y, d, other.x, other.y)
			}
		}
	}

	want := l.rows * l.columns
	if len(l.cells) != want {
		return errors.Wrapf(ErrUnreachable, "[Verify] arena holds %d cells, want %d", len(l.cells), want)
	}
	if got := l.sweep(l.topLeft, East, South); got != want {
		return errors.Wrapf(ErrUnreachable, "[Verify] %d of %d cells reachable from top-left anchor", got, want)
	}
	if got := l.sweep(l.bottomRight, West, North); got != want {
		return errors.Wrapf(ErrUnreachable, "[Verify] %d of %d cells reachable from bottom-right anchor", got, want)
	}
	return nil
}

// sweep counts the distinct cells visited walking rows along `along` and advancing rows along `across`
func (l *Lattice) sweep(anchor handle, along, across Direction) int {
	visited := mapset.New[handle]()
	for rowHeader := anchor; rowHeader != nilHandle; rowHeader = l.cells[rowHeader].links[across] {
		for h := rowHeader; h != nilHandle; h = l.cells[h].links[along] {
			if visited.Has(h) {
				return -1
			}
			visited.Put(h)
		}
	}
	return visited.Size()
}
