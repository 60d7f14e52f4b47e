package model

import "github.com/pkg/errors"

var (
	// ErrEmptySeed is returned when the seed matrix has no rows or no columns
	ErrEmptySeed = errors.New("empty seed matrix")
	// ErrNonRectangular is returned when seed rows differ in length
	ErrNonRectangular = errors.New("seed rows must all have the same length")
	// ErrInvalidDirection is returned by Expand for diagonal or unknown directions
	ErrInvalidDirection = errors.New("lattice can only grow north, south, east or west")
	// ErrBrokenLink is reported by Verify when an adjacency is asymmetric or misplaced
	ErrBrokenLink = errors.New("broken adjacency")
	// ErrUnreachable is reported by Verify when anchors do not span the lattice
	ErrUnreachable = errors.New("cell unreachable from anchors")
)
