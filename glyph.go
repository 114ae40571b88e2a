package rainclock

import "math/rand"

// glyphSource produces pseudo-random glyphs from a fixed character set.
type glyphSource struct {
	set []rune
	rng *rand.Rand
}

func (g *glyphSource) next() rune {
	return g.set[g.rng.Intn(len(g.set))]
}
