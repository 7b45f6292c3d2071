// Package xmltree models XML documents as mutable node trees.
//
// The root package provides the construction entry points and tree
// matching. The model itself lives in the ir package, building in
// parse, and rendering in encode.
package xmltree

import (
	"io"
	"strings"

	"github.com/xmltree-format/xmltree/ir"
	"github.com/xmltree-format/xmltree/parse"
)

// Parse builds a tree from a complete in-memory document.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

// ParseString builds a tree from a complete document held in a string.
func ParseString(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseReader(strings.NewReader(s), opts...)
}

// ParseReader builds a tree from an already-opened byte stream.
func ParseReader(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseReader(r, opts...)
}
