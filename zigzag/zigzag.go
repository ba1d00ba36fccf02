// SPDX-License-Identifier: MIT
// Package: kata/zigzag
//
// zigzag.go — Order and Matrix.
//
// Contract:
//   • n ≥ 1 (else ErrInvalidSize).
//   • Every value in [0, n²) appears exactly once.
//
// Complexity:
//   • Time: O(n²). Space: O(n²) for the output.

package zigzag

import (
	"errors"
	"fmt"
)

const minSize = 1

// ErrInvalidSize is returned for a dimension below 1.
var ErrInvalidSize = errors.New("zigzag: size must be at least 1")

// Cell is a (row, col) coordinate.
type Cell [2]int

// Order returns the n² cells of an n×n grid in zig-zag visiting order.
func Order(n int) ([]Cell, error) {
	if n < minSize {
		return nil, fmt.Errorf("zigzag: Order(%d): %w", n, ErrInvalidSize)
	}

	cells := make([]Cell, 0, n*n)
	for d := 0; d <= 2*(n-1); d++ {
		// rows on diagonal d that fall inside the grid
		top, bottom := max(0, d-(n-1)), min(d, n-1)
		if d%2 == 1 {
			for r := top; r <= bottom; r++ {
				cells = append(cells, Cell{r, d - r})
			}
		} else {
			for r := bottom; r >= top; r-- {
				cells = append(cells, Cell{r, d - r})
			}
		}
	}

	return cells, nil
}

// Matrix returns the n×n grid whose cells hold their position in the
// zig-zag walk.
func Matrix(n int) ([][]int, error) {
	cells, err := Order(n)
	if err != nil {
		return nil, err
	}

	grid := make([][]int, n)
	for r := range grid {
		grid[r] = make([]int, n)
	}
	for step, c := range cells {
		grid[c[0]][c[1]] = step
	}

	return grid, nil
}
