// SPDX-License-Identifier: MIT
// Package: kata/domino
//
// types.go — Tile, search options, result and sentinel errors.

package domino

import (
	"context"
	"errors"
	"fmt"
)

// ErrNegativePip is returned when a tile carries a pip value below zero.
var ErrNegativePip = errors.New("domino: negative pip value")

// Tile is a domino: two pip values with no meaningful order.
// Tile{1, 3} and Tile{3, 1} denote the same tile.
type Tile [2]int

// Has reports whether either end of t shows pip v.
func (t Tile) Has(v int) bool {
	return t[0] == v || t[1] == v
}

// Other returns the pip on the opposite end when v is the matched end.
// For a value t does not carry the result is meaningless; check Has first.
func (t Tile) Other(v int) int {
	if t[0] == v {
		return t[1]
	}

	return t[0]
}

// Flip returns t with its ends swapped.
func (t Tile) Flip() Tile {
	return Tile{t[1], t[0]}
}

// IsDouble reports whether both ends carry the same pip.
func (t Tile) IsDouble() bool {
	return t[0] == t[1]
}

// String renders t as "[a|b]".
func (t Tile) String() string {
	return fmt.Sprintf("[%d|%d]", t[0], t[1])
}

// Validate checks that every pip in tiles is non-negative.
// The returned error wraps ErrNegativePip and names the first offending tile.
func Validate(tiles []Tile) error {
	for i, t := range tiles {
		if t[0] < 0 || t[1] < 0 {
			return fmt.Errorf("domino: tile %d %s: %w", i, t, ErrNegativePip)
		}
	}

	return nil
}

// Option configures optional behavior of Arrange.
type Option func(*Options)

// Options holds configurable parameters for the row search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is polled once per extension step.
	Ctx context.Context

	// OnPlace, if non-nil, is invoked each time a tile is laid at position
	// depth of the tentative row. Returning an error aborts the search.
	OnPlace func(depth int, t Tile) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnPlace: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPlace returns an Option that installs fn as the placement hook.
func WithOnPlace(fn func(depth int, t Tile) error) Option {
	return func(o *Options) {
		o.OnPlace = fn
	}
}

// Result captures the outcome of a row search.
type Result struct {
	// Row is an oriented arrangement of every input tile: Row[i][1] equals
	// Row[i+1][0]. It is nil when no row exists and empty for empty input.
	Row []Tile

	// Placements counts every tentative placement, including the ones later
	// undone by backtracking.
	Placements int
}

// Found reports whether the search produced a row.
func (r *Result) Found() bool {
	return r != nil && r.Row != nil
}
