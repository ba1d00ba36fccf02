// SPDX-License-Identifier: MIT
// Package: kata/compass
//
// compass.go — Point table, nearest-point and lookup.

package compass

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

const (
	// Count is the number of points on the rose.
	Count = 32

	// Step is the angular distance between two neighbouring points, in degrees.
	Step = 360.0 / Count

	pointsPerQuadrant = Count / 4
	byInfix           = "b"
)

var (
	// ErrUnknownPoint is returned by Lookup for an abbreviation not on the rose.
	ErrUnknownPoint = errors.New("compass: unknown point")

	// ErrNonFinite is returned by Nearest for a NaN or infinite bearing.
	ErrNonFinite = errors.New("compass: azimuth is not finite")
)

// cardinals in clockwise order from north.
var cardinals = [4]string{"N", "E", "S", "W"}

// Point is one compass point: its abbreviation and bearing in degrees
// clockwise from north.
type Point struct {
	Abbreviation string  `yaml:"abbreviation"`
	Azimuth      float64 `yaml:"azimuth"`
}

// Points returns all 32 points in increasing azimuth, starting at N (0°).
// Each call returns a fresh slice.
func Points() []Point {
	points := make([]Point, 0, Count)
	for q := range cardinals {
		for i, name := range quadrantNames(cardinals[q], cardinals[(q+1)%len(cardinals)]) {
			points = append(points, Point{
				Abbreviation: name,
				Azimuth:      float64(q*pointsPerQuadrant+i) * Step,
			})
		}
	}

	return points
}

// quadrantNames lists the eight points from cardinal from (inclusive) to
// cardinal to (exclusive), clockwise.
func quadrantNames(from, to string) [pointsPerQuadrant]string {
	// N and S lead the intercardinal name.
	mid := from + to
	if from == "E" || from == "W" {
		mid = to + from
	}

	return [pointsPerQuadrant]string{
		from,
		from + byInfix + to,
		from + mid,
		mid + byInfix + from,
		mid,
		mid + byInfix + to,
		to + mid,
		to + byInfix + from,
	}
}

// Nearest returns the point whose sector contains azimuth. Sectors are
// centred on each point and Step wide; bearings are taken modulo 360, so
// negative and over-turned values wrap. NaN and ±Inf have no sector and
// yield the zero Point with ErrNonFinite.
func Nearest(azimuth float64) (Point, error) {
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		return Point{}, fmt.Errorf("compass: Nearest(%v): %w", azimuth, ErrNonFinite)
	}

	a := math.Mod(azimuth, 360)
	if a < 0 {
		a += 360
	}
	idx := int(math.Floor(a/Step+0.5)) % Count

	return Points()[idx], nil
}

// Lookup finds a point by its exact abbreviation, e.g. "NEbE".
func Lookup(abbr string) (Point, error) {
	p, ok := lo.Find(Points(), func(p Point) bool { return p.Abbreviation == abbr })
	if !ok {
		return Point{}, fmt.Errorf("compass: Lookup(%q): %w", abbr, ErrUnknownPoint)
	}

	return p, nil
}

// Abbreviations returns the 32 abbreviations in azimuth order.
func Abbreviations() []string {
	return lo.Map(Points(), func(p Point, _ int) string { return p.Abbreviation })
}
