package parse

import (
	"github.com/xmltree-format/xmltree/ir"
	"github.com/xmltree-format/xmltree/token"
)

type parseOpts struct {
	strict    bool
	trim      bool
	positions map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

// ParseStrict controls the scanner's strictness. Strict scanning
// rejects malformed XML, including mismatched end tags; it is the
// default.
func ParseStrict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// ParseTrim controls dropping of whitespace-only character data
// between elements (default true). Without it, any indented input
// with child elements fails the children/data exclusivity check.
func ParseTrim(v bool) ParseOption {
	return func(o *parseOpts) { o.trim = v }
}

// ParsePositions records, per created node, the byte offset of the
// element-start event it came from.
func ParsePositions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
