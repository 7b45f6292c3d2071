// Package ir provides the in-memory representation of an XML document
// as a mutable node tree.
//
// # Overview
//
// A document is a tree of Node values. Each node carries a tag, an
// ordered attribute store, and either text data or an ordered list of
// owned children. Parent links are non-owning back-references used for
// upward traversal only.
//
// # Invariants
//
// The package maintains two structural invariants under arbitrary
// mutation:
//
//   - A node holds non-empty children or non-empty text data, never
//     both. Mutations that would break this fail with ErrInvalidState.
//   - A node appears in at most one parent's child list, and its
//     parent link always names that parent. AppendChild and
//     InsertChild are moves; the caller must not attach one node
//     under two parents.
//
// A node with neither data nor children is a leaf and encodes as a
// self-closing element.
//
// # Creating Trees
//
// Use New plus the chaining helpers for tree literals:
//
//	root := ir.New("root").MustAppend(
//	    ir.New("node1").WithData("text").SetAttr("key", "value"),
//	    ir.New("node2").MustAppend(ir.New("grandson")),
//	)
//
// # Errors
//
// Data-driven failures are reported as errors wrapping the package
// sentinels ErrAttrNotFound, ErrNodeNotFound and ErrInvalidState;
// match them with errors.Is. Precondition violations (empty tag or
// attribute key, out-of-range insert position) are programmer errors
// and panic.
//
// # Related Packages
//
//   - github.com/xmltree-format/xmltree/parse - build trees from XML text
//   - github.com/xmltree-format/xmltree/encode - render trees to text
package ir
