// Package ranges formats sorted integer lists in range notation and parses
// the notation back.
//
// Maximal runs of consecutive integers of length three or more collapse to
// "start-end"; shorter runs are listed member by member:
//
//	[0 1 2 5 7 8 9]  →  "0-2,5,7-9"
//	[1 2 4 5]        →  "1,2,4,5"
//	[-6 -5 -4 -3]    →  "-6--3"
package ranges
