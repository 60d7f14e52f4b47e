package rules

// Conway is the text of Conway's standard rule: birth on 3, survival on 2 or 3
const Conway = "B3/S23"

var conway = MustParse(Conway)

// Default returns Conway's rule
func Default() Rule {
	return conway
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return conway.Apply(neighbors, alive)
}
