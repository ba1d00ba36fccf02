// SPDX-License-Identifier: MIT
// Package: kata/braces
//
// expand.go — lazy breadth-first brace expansion with de-duplication.
//
// Determinism:
//   • For a fixed input the yield order is stable (FIFO over rewrites), but
//     callers must not depend on it.
// Complexity:
//   • Time and memory grow with the number of distinct intermediate strings;
//     every intermediate is enqueued at most once.

package braces

import (
	"errors"
	"fmt"
	"iter"
	"regexp"
	"slices"
	"strings"
)

const separator = ","

// ErrUnbalanced indicates braces that do not nest properly.
var ErrUnbalanced = errors.New("braces: unbalanced braces")

// innermost matches a group whose body contains no further braces.
var innermost = regexp.MustCompile(`\{[^{}]*\}`)

// Expand returns a sequence of every distinct expansion of s.
// A string without groups expands to itself.
func Expand(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		queue := []string{s}
		seen := map[string]struct{}{s: {}}

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]

			loc := innermost.FindStringIndex(cur)
			if loc == nil {
				if !yield(cur) {
					return
				}
				continue
			}

			head, body, tail := cur[:loc[0]], cur[loc[0]+1:loc[1]-1], cur[loc[1]:]
			for _, alt := range strings.Split(body, separator) {
				next := head + alt + tail
				if _, dup := seen[next]; dup {
					continue
				}
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
}

// Validate checks that every '{' in s is closed by a later '}' and no '}'
// appears without an open group. The error wraps ErrUnbalanced and carries
// the byte offset of the first offending brace.
func Validate(s string) error {
	var open []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			open = append(open, i)
		case '}':
			if len(open) == 0 {
				return fmt.Errorf("braces: stray '}' at offset %d: %w", i, ErrUnbalanced)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return fmt.Errorf("braces: unclosed '{' at offset %d: %w", open[0], ErrUnbalanced)
	}

	return nil
}

// ExpandAll validates s and returns all distinct expansions sorted ascending.
func ExpandAll(s string) ([]string, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}

	return slices.Sorted(Expand(s)), nil
}
