// Package zigzag builds the zig-zag traversal matrix used for JPEG-style
// coefficient ordering.
//
// The sweep walks the anti-diagonals d = row+col of an n×n grid in order.
// Odd diagonals run down-left (row ascending), even diagonals run up-right
// (row descending), so the walk starts at (0,0) and ends at (n-1,n-1):
//
//	n=4:   0  1  5  6
//	       2  4  7 12
//	       3  8 11 13
//	       9 10 14 15
//
// Order returns the walk as coordinates; Matrix stores each cell's step.
package zigzag
