package model

import "sync"

// pending is a computed next state waiting to be written back
type pending struct {
	cell  handle
	alive bool
}

// commitQueue is a fixed-capacity FIFO ring of pending commits
type commitQueue struct {
	buf  []pending
	head int
	n    int
}

// Reset empties the queue and sizes it to hold capacity entries
func (q *commitQueue) Reset(capacity int) {
	if cap(q.buf) < capacity {
		q.buf = make([]pending, capacity)
	}
	q.buf = q.buf[:capacity]
	q.head = 0
	q.n = 0
}

// Len returns the number of queued commits
func (q *commitQueue) Len() int { return q.n }

// Push appends p. The caller keeps Len below the capacity.
func (q *commitQueue) Push(p pending) {
	q.buf[(q.head+q.n)%len(q.buf)] = p
	q.n++
}

// Pop removes and returns the oldest commit
func (q *commitQueue) Pop() pending {
	p := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return p
}

// QueuePool recycles commit queues between steps
type QueuePool struct {
	pool sync.Pool
}

// NewQueuePool returns an empty pool
func NewQueuePool() *QueuePool {
	return &QueuePool{
		pool: sync.Pool{
			New: func() interface{} {
				return &commitQueue{}
			},
		},
	}
}

// Get retrieves a queue from the pool, resized to capacity
func (p *QueuePool) Get(capacity int) *commitQueue {
	q := p.pool.Get().(*commitQueue)
	q.Reset(capacity)
	return q
}

// Put returns a queue to the pool
func (p *QueuePool) Put(q *commitQueue) {
	q.Reset(0)
	p.pool.Put(q)
}

var queues = NewQueuePool()
