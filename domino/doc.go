// Package domino decides whether a set of domino tiles can be laid out in a
// single row where every pair of neighbouring tiles shares a pip value.
//
// What:
//
//   - Arrange: exhaustive depth-first search over tile orderings with
//     try/undo backtracking. Every tile is tried as the first tile of the row,
//     in both orientations, and the row is extended with any unused tile
//     carrying the currently open pip. Returns the first oriented row found.
//   - CanMakeRow: boolean wrapper around Arrange.
//   - Feasible: the Euler-path characterization of the same question. The
//     tiles are edges of a multigraph over pip values (doubles are
//     self-loops); a row exists iff that graph is connected and has zero or
//     two vertices of odd degree. Arrange and Feasible always agree.
//
// Why:
//
//   - Arrange is the reference search; it produces a witness row and can be
//     cancelled or observed through options.
//   - Feasible answers in O(T α(T)) and is used to cross-check the search.
//
// Key Types:
//
//   - Tile:    unordered pair of pips, [a,b] and [b,a] are the same tile
//   - Option:  functional options for Arrange (WithContext, WithOnPlace)
//   - Result:  oriented Row plus the Placements diagnostic
//
// Complexity:
//
//   - Arrange:  Time O(T!·T) worst case, Memory O(T)
//   - Feasible: Time O(T α(T)), Memory O(P) (P = distinct pip values)
//
// Edge cases:
//
//   - A single tile always makes a row.
//   - The empty set makes the empty row (true).
//   - The caller's slice is never mutated.
//
// Errors:
//
//   - ErrNegativePip            a tile carries a negative pip value
//   - context.Canceled          search cancelled via WithContext
//   - hook errors               propagated from WithOnPlace, wrapped
package domino
