package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifelattice/rules"
)

// handle addresses a cell in the lattice arena
type handle int32

const nilHandle handle = -1

// cell is a lattice node. Its coordinates are fixed at creation.
type cell struct {
	alive bool
	x, y  int
	links [8]handle
}

// Point is a cell coordinate relative to the center of the initial seed
type Point struct {
	X, Y int
}

// Bounds is an inclusive coordinate rectangle
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the number of columns covered by b
func (b Bounds) Width() int { return b.MaxX - b.MinX + 1 }

// Height returns the number of rows covered by b
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

// Contains reports whether (x, y) lies inside b
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

/*
Lattice is an unbounded grid of cells linked to their eight neighbors.

Every link is symmetric: if a cell's East neighbor is b, b's West neighbor is
that cell, and likewise for all eight directions. The lattice only grows; cells
are never removed. A Lattice is not safe for concurrent use.
*/
type Lattice struct {
	cells   []cell
	rows    int
	columns int

	topLeft     handle
	bottomRight handle

	rule       rules.Rule
	generation int
}

// New builds a lattice from a row-major seed matrix and rule text. Empty rule text selects Conway's rule.
func New(seed [][]bool, ruleText string) (*Lattice, error) {
	rule := rules.Default()
	if ruleText != "" {
		var err error
		if rule, err = rules.Parse(ruleText); err != nil {
			return nil, errors.Wrap(err, "[New] failed to parse rule")
		}
	}
	return NewWithRule(seed, rule)
}

// NewWithRule builds a lattice from a row-major seed matrix using an already parsed rule
func NewWithRule(seed [][]bool, rule rules.Rule) (*Lattice, error) {
	if len(seed) == 0 || len(seed[0]) == 0 {
		return nil, errors.Wrapf(ErrEmptySeed, "[NewWithRule] seed has %d rows", len(seed))
	}
	rows, columns := len(seed), len(seed[0])
	for r, row := range seed {
		if len(row) != columns {
			return nil, errors.Wrapf(ErrNonRectangular, "[NewWithRule] row %d has %d columns, want %d", r, len(row), columns)
		}
	}

	l := &Lattice{
		cells:   make([]cell, 0, rows*columns),
		rows:    rows,
		columns: columns,
		rule:    rule,
	}

	// Arena indices follow row-major order during the initial build, so the
	// already-built west and north rows are addressable directly.
	for row := range rows {
		for col := range columns {
			h := l.newCell(seed[row][col], col-columns/2, row-rows/2)
			if col > 0 {
				l.link(h, West, h-1)
			}
			if row > 0 {
				north := h - handle(columns)
				l.link(h, North, north)
				if col > 0 {
					l.link(h, NorthWest, north-1)
				}
				if col < columns-1 {
					l.link(h, NorthEast, north+1)
				}
			}
		}
	}
	l.topLeft = 0
	l.bottomRight = handle(len(l.cells) - 1)
	return l, nil
}

func (l *Lattice) newCell(alive bool, x, y int) handle {
	l.cells = append(l.cells, cell{
		alive: alive,
		x:     x,
		y:     y,
		links: [8]handle{nilHandle, nilHandle, nilHandle, nilHandle, nilHandle, nilHandle, nilHandle, nilHandle},
	})
	return handle(len(l.cells) - 1)
}

// link points a at b in direction d and back-fills b's opposite slot. A nil b only clears a's slot.
func (l *Lattice) link(a handle, d Direction, b handle) {
	l.cells[a].links[d] = b
	if b != nilHandle {
		l.cells[b].links[d.Opposite()] = a
	}
}

// neighbor follows direction d from h
func (l *Lattice) neighbor(h handle, d Direction) handle {
	if h == nilHandle {
		return nilHandle
	}
	return l.cells[h].links[d]
}

func (l *Lattice) isAlive(h handle) bool {
	return h != nilHandle && l.cells[h].alive
}

// liveNeighbors counts the present, live cells among h's eight links
func (l *Lattice) liveNeighbors(h handle) int {
	count := 0
	for _, n := range l.cells[h].links {
		if n != nilHandle && l.cells[n].alive {
			count++
		}
	}
	return count
}

// Size returns the lattice dimensions
func (l *Lattice) Size() (columns, rows int) {
	return l.columns, l.rows
}

// Generation returns the number of completed steps
func (l *Lattice) Generation() int {
	return l.generation
}

// Rule returns the rule shared by every cell
func (l *Lattice) Rule() rules.Rule {
	return l.rule
}

// RuleString returns the canonical B<digits>/S<digits> form of the rule
func (l *Lattice) RuleString() string {
	return l.rule.String()
}

// Bounds returns the coordinate range spanned by the anchors
func (l *Lattice) Bounds() Bounds {
	tl, br := l.cells[l.topLeft], l.cells[l.bottomRight]
	return Bounds{MinX: tl.x, MinY: tl.y, MaxX: br.x, MaxY: br.y}
}

// Alive reports whether the cell at (x, y) is alive. Coordinates outside the lattice are dead.
func (l *Lattice) Alive(x, y int) bool {
	h := l.find(x, y)
	return l.isAlive(h)
}

// find walks from the top-left anchor to (x, y)
func (l *Lattice) find(x, y int) handle {
	if !l.Bounds().Contains(x, y) {
		return nilHandle
	}
	h := l.topLeft
	for range y - l.cells[h].y {
		h = l.cells[h].links[South]
	}
	for range x - l.cells[h].x {
		h = l.cells[h].links[East]
	}
	return h
}

// Each calls fn for every cell in row-major order
func (l *Lattice) Each(fn func(x, y int, alive bool)) {
	for rowHeader := l.topLeft; rowHeader != nilHandle; rowHeader = l.cells[rowHeader].links[South] {
		for h := rowHeader; h != nilHandle; h = l.cells[h].links[East] {
			c := &l.cells[h]
			fn(c.x, c.y, c.alive)
		}
	}
}

// Population returns the number of live cells
func (l *Lattice) Population() (count int) {
	for i := range l.cells {
		if l.cells[i].alive {
			count++
		}
	}
	return
}

// LiveCells returns the coordinates of every live cell in row-major order
func (l *Lattice) LiveCells() []Point {
	var live []Point
	l.Each(func(x, y int, alive bool) {
		if alive {
			live = append(live, Point{X: x, Y: y})
		}
	})
	return live
}

// LiveBounds returns the bounding box of live cells. ok is false when nothing is alive.
func (l *Lattice) LiveBounds() (b Bounds, ok bool) {
	for i := range l.cells {
		c := &l.cells[i]
		if !c.alive {
			continue
		}
		if !ok {
			b = Bounds{MinX: c.x, MinY: c.y, MaxX: c.x, MaxY: c.y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, c.x)
		b.MaxX = max(b.MaxX, c.x)
		b.MinY = min(b.MinY, c.y)
		b.MaxY = max(b.MaxY, c.y)
	}
	return
}

// Hash returns an MD5 digest of the live cell coordinates. Growth with dead cells does not change it.
func (l *Lattice) Hash() string {
	h := md5.New()
	var buf [16]byte
	l.Each(func(x, y int, alive bool) {
		if !alive {
			return
		}
		binary.LittleEndian.PutUint64(buf[:8], uint64(int64(x)))
		binary.LittleEndian.PutUint64(buf[8:], uint64(int64(y)))
		h.Write(buf[:])
	})
	return fmt.Sprintf("%x", h.Sum(nil))
}
