package braces_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kata/braces"
)

// collect drains seq and fails on a repeated element.
func collect(t *testing.T, s string) []string {
	t.Helper()
	var out []string
	seen := make(map[string]bool)
	for v := range braces.Expand(s) {
		assert.False(t, seen[v], "duplicate expansion %q", v)
		seen[v] = true
		out = append(out, v)
	}

	return out
}

func TestExpand_WorkedExamples(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "no braces",
			in:   "nothing to do",
			want: []string{"nothing to do"},
		},
		{
			name: "two groups",
			in:   "~/{Downloads,Pictures}/*.{jpg,gif,png}",
			want: []string{
				"~/Downloads/*.jpg",
				"~/Downloads/*.gif",
				"~/Downloads/*.png",
				"~/Pictures/*.jpg",
				"~/Pictures/*.gif",
				"~/Pictures/*.png",
			},
		},
		{
			name: "nested with duplicates",
			in:   "It{{em,alic}iz,erat}e{d,}, please.",
			want: []string{
				"Itemized, please.",
				"Itemize, please.",
				"Italicized, please.",
				"Italicize, please.",
				"Iterated, please.",
				"Iterate, please.",
			},
		},
		{
			name: "thumbs",
			in:   "thumbs {up,down}",
			want: []string{"thumbs up", "thumbs down"},
		},
		{
			name: "repeated alternatives",
			in:   "{a,a,b}",
			want: []string{"a", "b"},
		},
		{
			name: "empty group",
			in:   "x{}y",
			want: []string{"xy"},
		},
		{
			name: "empty string",
			in:   "",
			want: []string{""},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, collect(t, tc.in))
		})
	}
}

func TestExpand_StrayBracesStayLiteral(t *testing.T) {
	assert.ElementsMatch(t, []string{"{a,b"}, collect(t, "{a,b"))
	assert.ElementsMatch(t, []string{"a}", "b}"}, collect(t, "{a,b}}"))
	assert.ElementsMatch(t, []string{"{a", "{b"}, collect(t, "{{a,b}"))
}

func TestExpand_EarlyBreak(t *testing.T) {
	var got []string
	for v := range braces.Expand("{a,b,c}{1,2,3}") {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Len(t, got, 2)
}

func TestExpand_Reusable(t *testing.T) {
	seq := braces.Expand("{x,y}")
	first := slices.Sorted(seq)
	second := slices.Sorted(seq)
	assert.Equal(t, []string{"x", "y"}, first)
	assert.Equal(t, first, second)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, braces.Validate("plain"))
	assert.NoError(t, braces.Validate("It{{em,alic}iz,erat}e{d,}"))
	assert.ErrorIs(t, braces.Validate("{a,b"), braces.ErrUnbalanced)
	assert.ErrorIs(t, braces.Validate("a}"), braces.ErrUnbalanced)
	assert.ErrorIs(t, braces.Validate("}{"), braces.ErrUnbalanced)
	assert.ErrorContains(t, braces.Validate("ab{c"), "offset 2")
}

func TestExpandAll(t *testing.T) {
	got, err := braces.ExpandAll("~/{Downloads,Pictures}/*.{jpg,gif,png}")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"~/Downloads/*.gif",
		"~/Downloads/*.jpg",
		"~/Downloads/*.png",
		"~/Pictures/*.gif",
		"~/Pictures/*.jpg",
		"~/Pictures/*.png",
	}, got)

	_, err = braces.ExpandAll("{open")
	assert.ErrorIs(t, err, braces.ErrUnbalanced)
}
