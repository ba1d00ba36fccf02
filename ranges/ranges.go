// SPDX-License-Identifier: MIT
// Package: kata/ranges
//
// ranges.go — Extract, Validate and Parse.
//
// Contract:
//   • Extract does not validate; out-of-order input is grouped as given.
//   • Parse accepts exactly what Extract produces for increasing input.

package ranges

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	separator = ","
	minSpan   = 3       // shortest run written as start-end
	maxParsed = 1 << 20 // most integers Parse will expand to
)

var (
	// ErrNotIncreasing indicates a sequence, or a parsed range, that is not
	// strictly increasing.
	ErrNotIncreasing = errors.New("ranges: sequence is not strictly increasing")

	// ErrSyntax indicates a token that is neither "n" nor "a-b".
	ErrSyntax = errors.New("ranges: invalid range notation")

	// ErrTooLarge indicates notation that expands to more than maxParsed
	// integers.
	ErrTooLarge = errors.New("ranges: notation expands to too many integers")
)

// token matches "n" or "a-b"; both bounds may be negative.
var token = regexp.MustCompile(`^(-?\d+)(?:-(-?\d+))?$`)

// run is a maximal block of consecutive integers [first, last].
type run struct {
	first, last int
}

// String renders r in range notation.
func (r run) String() string {
	if r.last-r.first+1 >= minSpan {
		return strconv.Itoa(r.first) + "-" + strconv.Itoa(r.last)
	}
	// short runs hold one or two members
	if r.last == r.first {
		return strconv.Itoa(r.first)
	}

	return strconv.Itoa(r.first) + separator + strconv.Itoa(r.last)
}

// runs splits nums into maximal blocks where each element is its
// predecessor plus one.
func runs(nums []int) []run {
	var out []run
	for i, v := range nums {
		if i > 0 && nums[i-1] != math.MaxInt && v == nums[i-1]+1 {
			out[len(out)-1].last = v
			continue
		}
		out = append(out, run{first: v, last: v})
	}

	return out
}

// Extract renders nums in range notation. Empty input yields "".
func Extract(nums []int) string {
	return strings.Join(lo.Map(runs(nums), func(r run, _ int) string { return r.String() }), separator)
}

// Validate reports whether nums is strictly increasing.
// The error wraps ErrNotIncreasing and names the first offending index.
func Validate(nums []int) error {
	for i := 1; i < len(nums); i++ {
		if nums[i] <= nums[i-1] {
			return fmt.Errorf("ranges: index %d (%d after %d): %w", i, nums[i], nums[i-1], ErrNotIncreasing)
		}
	}

	return nil
}

// Parse expands range notation back to the integer list. Whitespace around
// tokens is ignored; the empty string yields an empty list. The result must
// be strictly increasing and hold at most 1<<20 integers.
func Parse(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}

	var out []int
	for i, tok := range strings.Split(s, separator) {
		tok = strings.TrimSpace(tok)
		m := token.FindStringSubmatch(tok)
		if m == nil {
			return nil, fmt.Errorf("ranges: token %d %q: %w", i, tok, ErrSyntax)
		}

		first, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("ranges: token %d %q: %w", i, tok, ErrSyntax)
		}
		last := first
		if m[2] != "" {
			if last, err = strconv.Atoi(m[2]); err != nil {
				return nil, fmt.Errorf("ranges: token %d %q: %w", i, tok, ErrSyntax)
			}
			if last <= first {
				return nil, fmt.Errorf("ranges: token %d %q: %w", i, tok, ErrNotIncreasing)
			}
		}
		// span is last-first in unsigned arithmetic; MinInt..MaxInt fits
		if span := uint64(last) - uint64(first); span >= maxParsed || uint64(len(out))+span >= maxParsed {
			return nil, fmt.Errorf("ranges: token %d %q: %w", i, tok, ErrTooLarge)
		}
		for v := first; ; v++ {
			out = append(out, v)
			if v == last {
				break
			}
		}
	}

	if err := Validate(out); err != nil {
		return nil, err
	}

	return out, nil
}
