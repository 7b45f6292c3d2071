package ir

import (
	"fmt"
	"slices"
)

// Node is one element in an XML document tree. A node owns its
// attribute store and its ordered children; the parent link is a
// non-owning back-reference used only for upward traversal.
//
// A node holds non-empty children or non-empty text data, never both.
// All mutations go through methods so the exclusivity invariant and
// the parent/child links cannot be broken from outside.
type Node struct {
	tag      string
	data     string
	attrs    Attrs
	parent   *Node
	children []*Node
}

// New creates an unparented node with the given tag. The tag must be
// non-empty; an empty tag is a programmer error and panics.
func New(tag string) *Node {
	if tag == "" {
		panic("ir: empty tag")
	}
	return &Node{tag: tag}
}

func (n *Node) Tag() string {
	return n.tag
}

func (n *Node) SetTag(tag string) {
	if tag == "" {
		panic("ir: empty tag")
	}
	n.tag = tag
}

// Data returns the node's text data, "" when absent.
func (n *Node) Data() string {
	return n.data
}

// SetData replaces the node's text data. Setting "" clears it. A node
// with children cannot carry data.
func (n *Node) SetData(v string) error {
	if len(n.children) != 0 {
		return fmt.Errorf("%w: set data on %q with %d children",
			ErrInvalidState, n.tag, len(n.children))
	}
	n.data = v
	return nil
}

// WithData sets the text data and returns the node for chaining in
// tree literals. It panics where SetData would error.
func (n *Node) WithData(v string) *Node {
	if err := n.SetData(v); err != nil {
		panic(err)
	}
	return n
}

func (n *Node) Attrs() *Attrs {
	return &n.attrs
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Children returns the node's children in order. The returned slice
// is a read view; mutate through AppendChild, InsertChild and
// RemoveChild only.
func (n *Node) Children() []*Node {
	return n.children
}

// AppendChild moves child to the end of n's children and re-parents
// it. It returns n for chaining. A node with text data cannot take
// children.
func (n *Node) AppendChild(child *Node) (*Node, error) {
	return n.InsertChild(child, len(n.children))
}

// InsertChild moves child into n's children at position at, shifting
// later children one slot. at == 0 inserts at the front. A position
// outside [0, len] is a programmer error and panics.
func (n *Node) InsertChild(child *Node, at int) (*Node, error) {
	if at < 0 || at > len(n.children) {
		panic(fmt.Sprintf("ir: insert position %d outside [0,%d]", at, len(n.children)))
	}
	if n.data != "" {
		return nil, fmt.Errorf("%w: insert child %q under %q with text data",
			ErrInvalidState, child.tag, n.tag)
	}
	child.parent = n
	n.children = slices.Insert(n.children, at, child)
	return n, nil
}

// RemoveChild detaches the direct child identical to target,
// preserving the order of the remainder, and returns n. The detached
// subtree keeps target as its unparented root.
func (n *Node) RemoveChild(target *Node) (*Node, error) {
	for i := range n.children {
		if n.children[i] != target {
			continue
		}
		n.children = append(n.children[:i], n.children[i+1:]...)
		target.parent = nil
		return n, nil
	}
	return nil, fmt.Errorf("%w: %q is not a child of %q",
		ErrNodeNotFound, target.tag, n.tag)
}

// MustAppend appends children in order, panicking where AppendChild
// would error. It returns n for chaining in tree literals.
func (n *Node) MustAppend(children ...*Node) *Node {
	for _, child := range children {
		if _, err := n.AppendChild(child); err != nil {
			panic(err)
		}
	}
	return n
}

// SetAttr sets an attribute and returns n for chaining. The key must
// be non-empty.
func (n *Node) SetAttr(key, value string) *Node {
	n.attrs.Set(key, value)
	return n
}

func (n *Node) RemoveAttr(key string) {
	n.attrs.Remove(key)
}

// ChildrenByTag returns the direct children tagged tag, in document
// order. Like Attrs.Get, an empty result is an error so callers can
// use it as a lookup.
func (n *Node) ChildrenByTag(tag string) ([]*Node, error) {
	var res []*Node
	for _, child := range n.children {
		if child.tag == tag {
			res = append(res, child)
		}
	}
	if res == nil {
		return nil, fmt.Errorf("%w: no child %q under %q", ErrNodeNotFound, tag, n.tag)
	}
	return res, nil
}

func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Visit walks the subtree rooted at n. f is called before and after
// each node's children; returning false from the pre call skips the
// children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, child := range n.children {
			if err := child.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// Clone returns a deep copy of the subtree rooted at n. The copy is
// an unparented root.
func (n *Node) Clone() *Node {
	res := &Node{}
	n.cloneTo(res)
	res.parent = nil
	return res
}

func (n *Node) cloneTo(dst *Node) {
	dst.tag = n.tag
	dst.data = n.data
	n.attrs.cloneTo(&dst.attrs)
	dst.children = make([]*Node, len(n.children))
	for i, child := range n.children {
		dstChild := &Node{}
		child.cloneTo(dstChild)
		dstChild.parent = dst
		dst.children[i] = dstChild
	}
}
