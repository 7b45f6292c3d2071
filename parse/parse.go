// Package parse builds ir trees from XML text.
//
// Building is two-phase: the scanner's events are first buffered
// verbatim as tokens, then a single commit pass replays the buffer
// into linked ir.Node values. A build that fails in either phase
// yields no tree at all.
package parse

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xmltree-format/xmltree/ir"
	"github.com/xmltree-format/xmltree/token"
)

// Parse builds a tree from a complete in-memory document.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader builds a tree from an already-opened byte stream,
// reading it to the end.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{strict: true, trim: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := scan(r, pOpts)
	if err != nil {
		return nil, err
	}
	return commit(toks, pOpts)
}

// commit replays a completed token buffer into a tree. The open
// element chain is carried by each node's parent link, so ending an
// element is one step up; the end tag itself is not cross-checked
// against the open element (strict scanning already rejects
// mismatches before commit runs).
func commit(toks []token.Token, opts *parseOpts) (*ir.Node, error) {
	var root, cur *ir.Node
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case token.TStart:
			n := ir.New(t.Tag)
			if opts.positions != nil {
				opts.positions[n] = t.Pos
			}
			switch {
			case root == nil:
				root = n
			case cur == nil:
				return nil, fmt.Errorf("%w: second root element %q %s", ErrParse, t.Tag, t.Pos)
			default:
				if _, err := cur.AppendChild(n); err != nil {
					return nil, fmt.Errorf("%w: %s: %w", ErrParse, t.Pos, err)
				}
			}
			cur = n
		case token.TAttr:
			if cur == nil {
				return nil, fmt.Errorf("%w: attribute %q outside element %s", errInternal, t.Key, t.Pos)
			}
			cur.SetAttr(t.Key, t.Value)
		case token.TData:
			if cur == nil {
				return nil, fmt.Errorf("%w: character data outside element %s", ErrParse, t.Pos)
			}
			if err := cur.SetData(t.Value); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrParse, t.Pos, err)
			}
		case token.TEnd:
			if cur == nil {
				return nil, fmt.Errorf("%w: end tag %q without open element %s", ErrParse, t.Tag, t.Pos)
			}
			cur = cur.Parent()
		default:
			return nil, fmt.Errorf("%w: unexpected token %s", errInternal, t.Info())
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
