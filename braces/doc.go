// Package braces implements shell-style brace expansion.
//
// A group "{a,b,c}" stands for each of its comma-separated alternatives at
// that position, so "~/{Downloads,Pictures}/*.{jpg,gif,png}" names six paths.
// Groups nest: "It{{em,alic}iz,erat}e{d,}" expands the innermost group first.
//
// Expand yields results lazily through an iter.Seq; every distinct string
// is produced exactly once, in no particular order. ExpandAll is the eager,
// sorted variant and rejects malformed input first.
//
// Expansion rule: repeatedly pick the leftmost group whose body holds no
// braces, and replace it by each alternative. A string without such a group
// is final. Braces that never close a group stay in the output literally;
// Validate reports them as ErrUnbalanced for callers that want strictness.
package braces
