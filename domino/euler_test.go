package domino_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/kata/domino"
)

func TestFeasible(t *testing.T) {
	cases := []struct {
		name  string
		tiles []domino.Tile
		want  bool
	}{
		{"empty", nil, true},
		{"lone double", []domino.Tile{{3, 3}}, true},
		{"two separate doubles", []domino.Tile{{3, 3}, {4, 4}}, false},
		{"closed loop", []domino.Tile{{0, 1}, {1, 2}, {2, 0}}, true},
		{"star with three arms", []domino.Tile{{0, 1}, {0, 2}, {0, 3}}, false},
		{"double on a path", []domino.Tile{{0, 1}, {1, 1}, {1, 2}}, true},
		{"parallel tiles", []domino.Tile{{0, 1}, {0, 1}, {0, 1}}, true},
		{"large pips", []domino.Tile{{100, 7}, {7, 42}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, domino.Feasible(tc.tiles))
			assert.Equal(t, tc.want, domino.CanMakeRow(tc.tiles))
		})
	}
}
