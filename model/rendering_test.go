package model

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRenderer_Display(t *testing.T) {
	l := mustLattice(t, seedOf(
		"O.",
		".O",
	), "")
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}

	// a 4x3 window centered on the origin covers x -2..1, y -1..1
	require.NoError(t, r.Display(l, Viewport{Width: 4, Height: 3}))
	want := strings.Join([]string{
		"  " + gridPosBlock + "    ",
		"    " + gridPosBlock + "  ",
		"        ",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestTerminalRenderer_EmptyViewport(t *testing.T) {
	l := mustLattice(t, seedOf("O"), "")
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	require.NoError(t, r.Display(l, Viewport{}))
	assert.Empty(t, buf.String())

	require.NoError(t, r.Clear())
	assert.Equal(t, ansiClear, buf.String())
}

func TestViewport_Bounds(t *testing.T) {
	v := Viewport{CenterX: 10, CenterY: -4, Width: 5, Height: 2}
	assert.Equal(t, Bounds{MinX: 8, MinY: -5, MaxX: 12, MaxY: -4}, v.Bounds())
}
