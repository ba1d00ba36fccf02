// Package kata is a small collection of self-contained algorithmic
// exercises, each in its own subpackage:
//
//	compass/ — the 32-point compass rose with azimuths, nearest-point lookup
//	braces/  — shell-style brace expansion as a lazy, de-duplicated iter.Seq
//	zigzag/  — the JPEG-style zig-zag traversal matrix
//	domino/  — can a set of domino tiles be laid in one row? (backtracking
//	           search, plus the Euler-path degree test as a cross-check)
//	ranges/  — "0-2,5,7-9" range notation for increasing integer lists
//
// Every function is pure: no shared state, no I/O, safe to call from any
// number of goroutines. cmd/kata exposes the packages on the command line.
//
//	go get github.com/katalvlaran/kata
package kata
