// Package compass builds the 32-point compass rose.
//
// Points are generated, not tabulated: each quadrant between two adjacent
// cardinals (N→E, E→S, S→W, W→N) yields eight names from three tiers
//
//	cardinal       N
//	intercardinal  NE, plus the half-winds NNE and ENE
//	by-points      NbE, NEbN, NEbE, EbN
//
// Intercardinals always put N or S first (NE, SE, SW, NW). Half-winds lead
// with the nearer cardinal, so N and S precede the secondary direction
// (NNE, SSW) while E and W follow it (ENE, WNW).
//
// Azimuths start at 0° and grow by Step (11.25°).
package compass
