package rules

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// NeverBorn is returned by MinimumBirthCount when no neighbor count births a cell
const NeverBorn = -1

// maxNeighbors is the largest live-neighbor count a cell can have
const maxNeighbors = 8

// ErrInvalidRule is returned when rule text matches neither accepted notation
var ErrInvalidRule = errors.New("invalid rule")

var (
	bsPattern     = regexp.MustCompile(`(?i)^B([0-8]*)/S([0-8]*)$`)
	legacyPattern = regexp.MustCompile(`^([0-8]*)/([0-8]*)$`)
)

// Rule is a birth/survival policy indexed by live-neighbor count
type Rule struct {
	born     [maxNeighbors + 1]bool
	survives [maxNeighbors + 1]bool
}

/*
Parse builds a Rule from either notation:

	B<digits>/S<digits>   born digits first, survival digits second
	<digits>/<digits>     survival digits first, born digits second (legacy)

Digits are 0-8, in any order. The B/S form is case-insensitive.
*/
func Parse(text string) (Rule, error) {
	var r Rule
	text = strings.TrimSpace(text)

	if m := bsPattern.FindStringSubmatch(text); m != nil {
		fill(&r.born, m[1])
		fill(&r.survives, m[2])
		return r, nil
	}
	if m := legacyPattern.FindStringSubmatch(text); m != nil {
		fill(&r.survives, m[1])
		fill(&r.born, m[2])
		return r, nil
	}
	return Rule{}, errors.Wrapf(ErrInvalidRule, "[Parse] unrecognised rule text: %q", text)
}

// MustParse is like Parse but panics on malformed text
func MustParse(text string) Rule {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

func fill(table *[maxNeighbors + 1]bool, digits string) {
	for _, ch := range digits {
		table[ch-'0'] = true
	}
}

// Apply returns the next state of a cell with the given live-neighbor count
func (r Rule) Apply(liveNeighbors int, alive bool) bool {
	if liveNeighbors < 0 || liveNeighbors > maxNeighbors {
		return false
	}
	if alive {
		return r.survives[liveNeighbors]
	}
	return r.born[liveNeighbors]
}

// Born reports whether a dead cell with n live neighbors comes to life
func (r Rule) Born(n int) bool {
	return n >= 0 && n <= maxNeighbors && r.born[n]
}

// Survives reports whether a live cell with n live neighbors stays alive
func (r Rule) Survives(n int) bool {
	return n >= 0 && n <= maxNeighbors && r.survives[n]
}

// MinimumBirthCount returns the smallest neighbor count that births a cell, or NeverBorn
func (r Rule) MinimumBirthCount() int {
	for i, b := range r.born {
		if b {
			return i
		}
	}
	return NeverBorn
}

// String returns the canonical B<digits>/S<digits> form with ascending digits
func (r Rule) String() string {
	var b, s strings.Builder
	b.WriteByte('B')
	s.WriteByte('S')
	for i := range maxNeighbors + 1 {
		if r.born[i] {
			b.WriteByte(byte('0' + i))
		}
		if r.survives[i] {
			s.WriteByte(byte('0' + i))
		}
	}
	return b.String() + "/" + s.String()
}
