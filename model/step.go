package model

// commitMargin is added to the row width to get the commit delay
const commitMargin = 2

/*
Step advances the lattice by one generation.

Cells are visited row-major and their next state is computed from the current
state of their neighbors. A computed state is held in a queue and only written
back once columns+2 later states are queued. The furthest neighbor read behind
the cursor is the northwest one, columns+1 positions back, so no cell is ever
evaluated against a neighbor that already holds its next state. The update is
synchronous while only keeping one row of pending writes.
*/
func (l *Lattice) Step() {
	l.MaybeExpand()

	delay := l.columns + commitMargin
	q := queues.Get(delay)
	defer queues.Put(q)

	for rowHeader := l.topLeft; rowHeader != nilHandle; rowHeader = l.cells[rowHeader].links[South] {
		for h := rowHeader; h != nilHandle; h = l.cells[h].links[East] {
			q.Push(pending{cell: h, alive: l.rule.Apply(l.liveNeighbors(h), l.cells[h].alive)})
			if q.Len() >= delay {
				l.commit(q.Pop())
			}
		}
	}
	for q.Len() > 0 {
		l.commit(q.Pop())
	}

	l.generation++
}

func (l *Lattice) commit(p pending) {
	l.cells[p.cell].alive = p.alive
}

// StepN advances the lattice by n generations
func (l *Lattice) StepN(n int) {
	for range n {
		l.Step()
	}
}
