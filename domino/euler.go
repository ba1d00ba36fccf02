// SPDX-License-Identifier: MIT
// Package: kata/domino
//
// euler.go — Euler-path characterization of a domino row.
//
// A row of tiles is a trail through the multigraph whose vertices are pip
// values and whose edges are tiles. Such a trail covering every edge exists
// iff the non-isolated vertices form one connected component and the number
// of odd-degree vertices is 0 or 2.

package domino

import "github.com/samber/lo"

// Feasible reports whether tiles can form a row, using vertex degrees and
// connectivity of the pip multigraph instead of a search.
// It agrees with CanMakeRow on every input with non-negative pips.
func Feasible(tiles []Tile) bool {
	if len(tiles) == 0 {
		return true
	}

	// 1. Degrees: a double is a self-loop and adds 2 to its pip.
	degree := make(map[int]int)
	for _, t := range tiles {
		degree[t[0]]++
		degree[t[1]]++
	}

	// 2. Connectivity via union-find with path halving and union by rank.
	ds := newDisjointSet(lo.Keys(degree))
	for _, t := range tiles {
		ds.union(t[0], t[1])
	}
	root := ds.find(tiles[0][0])
	for pip := range degree {
		if ds.find(pip) != root {
			return false
		}
	}

	// 3. At most two open ends.
	odd := lo.CountBy(lo.Values(degree), func(d int) bool { return d%2 == 1 })

	return odd == 0 || odd == 2
}

// disjointSet is a union-find forest over pip values.
type disjointSet struct {
	parent map[int]int
	rank   map[int]int
}

func newDisjointSet(pips []int) *disjointSet {
	ds := &disjointSet{
		parent: make(map[int]int, len(pips)),
		rank:   make(map[int]int, len(pips)),
	}
	for _, p := range pips {
		ds.parent[p] = p
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

func (ds *disjointSet) union(u, v int) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}
}
