package main

import (
	"image/color"
	"time"

	"github.com/sheikhrachel/lifelattice/model"
	"github.com/sheikhrachel/lifelattice/rle"
)

// canvasSize is the logical side length of the square canvas in pixels
const canvasSize = 400

const (
	defaultDelay = 600 * time.Millisecond
	maxDelay     = 2 * time.Second
	delayStep    = 100 * time.Millisecond
)

const gliderPattern = "x = 3, y = 3\nbo$2bo$3o!"

// zoomLevels are the selectable pixel magnifications
var zoomLevels = [...]int{1, 2, 4, 5, 8}

// loadPattern reads the pattern at path, or a glider when path is empty
func loadPattern(path string) (*model.Lattice, error) {
	var (
		p   *rle.Pattern
		err error
	)
	if path == "" {
		p, err = rle.DecodeString(gliderPattern)
	} else {
		p, err = rle.Load(path)
	}
	if err != nil {
		return nil, err
	}
	return p.Lattice()
}

// controls holds the user-adjustable playback state
type controls struct {
	running bool
	delay   time.Duration
	zoom    int // index into zoomLevels
}

func newControls(delay time.Duration, zoom int) controls {
	c := controls{delay: defaultDelay}
	c.setDelay(delay)
	c.setZoom(zoom)
	return c
}

func (c *controls) toggle() { c.running = !c.running }

// faster shortens the delay between generations
func (c *controls) faster() { c.setDelay(c.delay - delayStep) }

// slower lengthens the delay between generations
func (c *controls) slower() { c.setDelay(c.delay + delayStep) }

func (c *controls) setDelay(d time.Duration) {
	c.delay = min(max(d, 0), maxDelay)
}

// setZoom selects a zoom level by index; out-of-range indexes are ignored
func (c *controls) setZoom(i int) {
	if i >= 0 && i < len(zoomLevels) {
		c.zoom = i
	}
}

// magnification returns the current pixels per cell
func (c *controls) magnification() int { return zoomLevels[c.zoom] }

// viewCells returns how many cells fit along one side of the canvas
func (c *controls) viewCells() int { return canvasSize / c.magnification() }

// pacer decides when the next generation is due
type pacer struct {
	last time.Time
	now  func() time.Time
}

func newPacer() *pacer { return &pacer{now: time.Now} }

// due reports whether at least delay has passed since the last generation
func (p *pacer) due(delay time.Duration) bool {
	now := p.now()
	if p.last.IsZero() || now.Sub(p.last) >= delay {
		p.last = now
		return true
	}
	return false
}

// paintFrame writes an n×n RGBA view of the lattice centered on the origin into buf
func paintFrame(buf []byte, l *model.Lattice, n int, on, off color.Color) {
	view := model.Viewport{Width: n, Height: n}.Bounds()
	cells := make([]uint8, n*n)
	l.Each(func(x, y int, alive bool) {
		if alive && view.Contains(x, y) {
			cells[(y-view.MinY)*n+(x-view.MinX)] = 1
		}
	})
	fillBinaryRGBA(buf, cells, on, off)
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
