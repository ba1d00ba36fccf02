// SPDX-License-Identifier: MIT
// Package: kata/domino
//
// row.go — backtracking search for a domino row.
//
// Contract:
//   • Every tile is tried as the head of the row; the second orientation of a
//     head is tried only when the first one fails (doubles have one).
//   • The row is extended with any unused tile carrying the open pip; a tile
//     is marked on placement and unmarked when its branch fails.
//   • First complete row wins; the search stops immediately.
//
// Complexity:
//   • Time: O(T!·T) worst case (no memoization).
//   • Space: O(T) for the used flags, the row and the recursion stack.

package domino

import "fmt"

// rowWalker holds the state of one Arrange call.
type rowWalker struct {
	tiles      []Tile  // input, read-only
	used       []bool  // used[i] is true while tiles[i] sits in row
	row        []Tile  // tentative oriented row
	opts       Options // search options
	placements int     // diagnostic counter
}

// CanMakeRow reports whether tiles can be laid out in a single row using
// every tile exactly once. Empty input yields true. Input with negative
// pips is outside the contract and yields false.
func CanMakeRow(tiles []Tile) bool {
	res, err := Arrange(tiles)
	if err != nil {
		return false
	}

	return res.Found()
}

// Arrange searches for an oriented row made of every tile in tiles.
// On success Result.Row holds the row; when no row exists Result.Row is nil
// and the error is nil. Errors come from validation, the context or the
// OnPlace hook; in those cases the partial Result is returned alongside.
func Arrange(tiles []Tile, opts ...Option) (*Result, error) {
	// 1. Validate input
	if err := Validate(tiles); err != nil {
		return nil, err
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. The empty set is the empty row
	if len(tiles) == 0 {
		return &Result{Row: []Tile{}}, nil
	}

	w := &rowWalker{
		tiles: tiles,
		used:  make([]bool, len(tiles)),
		row:   make([]Tile, 0, len(tiles)),
		opts:  o,
	}

	// 4. Try every head tile in each orientation
	for i, t := range tiles {
		heads := []Tile{t, t.Flip()}
		if t.IsDouble() {
			heads = heads[:1]
		}
		for _, head := range heads {
			ok, err := w.try(i, head)
			if err != nil {
				return w.result(false), err
			}
			if ok {
				return w.result(true), nil
			}
		}
	}

	return w.result(false), nil
}

// try lays tiles[i] as oriented at the end of the row and extends from its
// open pip. On failure the placement is undone.
func (w *rowWalker) try(i int, oriented Tile) (bool, error) {
	w.used[i] = true
	w.row = append(w.row, oriented)
	w.placements++

	if w.opts.OnPlace != nil {
		if err := w.opts.OnPlace(len(w.row)-1, oriented); err != nil {
			return false, fmt.Errorf("domino: OnPlace hook at depth %d: %w", len(w.row)-1, err)
		}
	}

	ok, err := w.extend(oriented[1])
	if err != nil || ok {
		return ok, err
	}

	// undo
	w.row = w.row[:len(w.row)-1]
	w.used[i] = false

	return false, nil
}

// extend grows the row from the open pip until every tile is placed or no
// candidate remains.
func (w *rowWalker) extend(open int) (bool, error) {
	if len(w.row) == len(w.tiles) {
		return true, nil
	}

	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}

	for i, t := range w.tiles {
		if w.used[i] || !t.Has(open) {
			continue
		}
		oriented := t
		if t[0] != open {
			oriented = t.Flip()
		}
		ok, err := w.try(i, oriented)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

// result snapshots the walker state.
func (w *rowWalker) result(found bool) *Result {
	res := &Result{Placements: w.placements}
	if found {
		res.Row = append([]Tile(nil), w.row...)
	}

	return res
}
