package rle_test

import (
	"fmt"

	"github.com/sheikhrachel/lifelattice/rle"
)

// ExampleDecodeString decodes a glider and steps it once.
func ExampleDecodeString() {
	p, err := rle.DecodeString("#N Glider\nx = 3, y = 3\nbo$2bo$3o!")
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	l, err := p.Lattice()
	if err != nil {
		fmt.Println("lattice:", err)
		return
	}

	fmt.Println(p.Width, p.Height, l.RuleString(), l.Population())
	l.Step()
	fmt.Println(l.Generation(), l.Population(), l.LiveCells())

	// Output:
	// 3 3 B3/S23 5
	// 1 5 [{-1 0} {1 0} {0 1} {1 1} {0 2}]
}
