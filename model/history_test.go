package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_StillLifeIsStagnant(t *testing.T) {
	l := mustLattice(t, seedOf(
		"OO",
		"OO",
	), "")
	var h History
	for range 2 {
		h.Record(l)
		l.Step()
	}
	assert.False(t, h.IsStagnant(l), "needs three recorded states")

	h.Record(l)
	l.Step()
	assert.True(t, h.IsStagnant(l))
}

func TestHistory_OscillatorIsStagnant(t *testing.T) {
	l := mustLattice(t, seedOf(
		".O.",
		".O.",
		".O.",
	), "")
	var h History
	for range 3 {
		h.Record(l)
		l.Step()
	}
	assert.True(t, h.IsStagnant(l), "period two repeats within three generations")
}

func TestHistory_GliderIsNotStagnant(t *testing.T) {
	l := mustLattice(t, seedOf(
		".O.",
		"..O",
		"OOO",
	), "")
	var h History
	for range 8 {
		h.Record(l)
		l.Step()
		assert.False(t, h.IsStagnant(l), "generation %d", l.Generation())
	}
	assert.Len(t, h.hashes, historySize)

	h.Reset()
	assert.False(t, h.IsStagnant(l))
}
