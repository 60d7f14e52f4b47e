package model

import (
	"bufio"
	"io"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\033[H\033[2J"
)

// Viewport is a window of cells centered on a coordinate
type Viewport struct {
	CenterX, CenterY int
	Width, Height    int
}

// Bounds returns the coordinate rectangle covered by v
func (v Viewport) Bounds() Bounds {
	minX := v.CenterX - v.Width/2
	minY := v.CenterY - v.Height/2
	return Bounds{MinX: minX, MinY: minY, MaxX: minX + v.Width - 1, MaxY: minY + v.Height - 1}
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

// Display renders the part of the lattice inside v. Cells outside the lattice are drawn dead.
func (r *TerminalRenderer) Display(l *Lattice, v Viewport) error {
	if v.Width <= 0 || v.Height <= 0 {
		return nil
	}
	view := v.Bounds()
	frame := make([][]bool, v.Height)
	for i := range frame {
		frame[i] = make([]bool, v.Width)
	}
	l.Each(func(x, y int, alive bool) {
		if alive && view.Contains(x, y) {
			frame[y-view.MinY][x-view.MinX] = true
		}
	})

	w := bufio.NewWriter(r.Out)
	for _, row := range frame {
		for _, alive := range row {
			if alive {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	return w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}
