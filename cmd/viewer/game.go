//go:build ebiten

package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/lifelattice/model"
)

var zoomKeys = [len(zoomLevels)]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5}

// Game adapts a lattice to the ebiten.Game interface.
type Game struct {
	lattice  *model.Lattice
	controls controls
	pacer    *pacer
	tickOnce bool

	img *ebiten.Image
	buf []byte

	onColor  color.Color
	offColor color.Color
}

// NewGame constructs a Game for the provided lattice.
func NewGame(l *model.Lattice, c controls) *Game {
	return &Game{
		lattice:  l,
		controls: c,
		pacer:    newPacer(),
		onColor:  color.Black,
		offColor: color.White,
	}
}

// Update handles input and advances the lattice when a generation is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.controls.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.controls.faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.controls.slower()
	}
	for i, k := range zoomKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.controls.setZoom(i)
		}
	}

	if (g.controls.running && g.pacer.due(g.controls.delay)) || g.tickOnce {
		g.lattice.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the cells around the origin and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	n := g.controls.viewCells()
	if g.img == nil || g.img.Bounds().Dx() != n {
		g.img = ebiten.NewImage(n, n)
		g.buf = make([]byte, 4*n*n)
	}
	paintFrame(g.buf, g.lattice, n, g.onColor, g.offColor)
	g.img.WritePixels(g.buf)

	op := &ebiten.DrawImageOptions{}
	scale := float64(g.controls.magnification())
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(g.img, op)

	state := "stopped"
	if g.controls.running {
		state = "running"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  %s  %s  delay %v  %dx",
		g.lattice.Generation(), g.lattice.RuleString(), state, g.controls.delay, g.controls.magnification()))
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return canvasSize, canvasSize
}
