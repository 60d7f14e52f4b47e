//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	delay := flag.Duration("delay", defaultDelay, "delay between generations")
	zoom := flag.Int("zoom", 0, "initial zoom level index (0-4 for 1x, 2x, 4x, 5x, 8x)")
	flag.Parse()

	lattice, err := loadPattern(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	game := NewGame(lattice, newControls(*delay, *zoom))

	ebiten.SetWindowTitle("Conway's Game of Life - " + lattice.RuleString())
	ebiten.SetWindowSize(canvasSize, canvasSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
