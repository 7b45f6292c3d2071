package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two subtrees.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Order: tag, then text data, then attributes (count, then entries in
// store order), then children (count, then recursively). Parent links
// do not participate, so detached copies of the same subtree compare
// equal.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.tag, b.tag); c != 0 {
		return c
	}
	if c := strings.Compare(a.data, b.data); c != 0 {
		return c
	}
	if c := compareAttrs(&a.attrs, &b.attrs); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.children), len(b.children)); c != 0 {
		return c
	}
	for i := range a.children {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports structural equality: same tags, same attribute
// entries in the same order, same text and same child order,
// recursively.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareAttrs(a, b *Attrs) int {
	if c := cmp.Compare(a.Len(), b.Len()); c != 0 {
		return c
	}
	for i := range a.keys {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := strings.Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return 0
}
