package domino_test

import (
	"testing"

	"github.com/katalvlaran/kata/domino"
)

// fullSet returns every tile over pips 0..top.
func fullSet(top int) []domino.Tile {
	var set []domino.Tile
	for a := 0; a <= top; a++ {
		for b := a; b <= top; b++ {
			set = append(set, domino.Tile{a, b})
		}
	}

	return set
}

// BenchmarkArrange_DoubleFour searches the 15-tile 0..4 set, where every pip
// has even degree and a row exists.
func BenchmarkArrange_DoubleFour(b *testing.B) {
	set := fullSet(4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = domino.Arrange(set)
	}
}

// BenchmarkFeasible_DoubleSix runs the degree test on the 28-tile set.
func BenchmarkFeasible_DoubleSix(b *testing.B) {
	set := fullSet(6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = domino.Feasible(set)
	}
}
