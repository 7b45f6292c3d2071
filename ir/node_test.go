package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tags(nodes []*Node) []string {
	res := make([]string, len(nodes))
	for i, n := range nodes {
		res[i] = n.Tag()
	}
	return res
}

func TestAppendChildOrder(t *testing.T) {
	root := New("root")
	for _, tag := range []string{"a", "b", "c"} {
		child := New(tag)
		got, err := root.AppendChild(child)
		if err != nil {
			t.Fatalf("AppendChild(%q) error: %v", tag, err)
		}
		if got != root {
			t.Errorf("AppendChild returned %v, want receiver", got)
		}
		kids := root.Children()
		if kids[len(kids)-1] != child {
			t.Errorf("appended %q is not last child", tag)
		}
		if child.Parent() != root {
			t.Errorf("child %q parent not set", tag)
		}
	}
	if d := cmp.Diff([]string{"a", "b", "c"}, tags(root.Children())); d != "" {
		t.Errorf("children order (-want +got):\n%s", d)
	}
}

func TestInsertChild(t *testing.T) {
	tests := []struct {
		name string
		at   int
		want []string
	}{
		{"front", 0, []string{"new", "a", "b", "c"}},
		{"middle", 1, []string{"a", "new", "b", "c"}},
		{"end", 3, []string{"a", "b", "c", "new"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New("root").MustAppend(New("a"), New("b"), New("c"))
			n := New("new")
			if _, err := root.InsertChild(n, tt.at); err != nil {
				t.Fatalf("InsertChild error: %v", err)
			}
			if root.Children()[tt.at] != n {
				t.Errorf("children[%d] is not the inserted node", tt.at)
			}
			if d := cmp.Diff(tt.want, tags(root.Children())); d != "" {
				t.Errorf("children order (-want +got):\n%s", d)
			}
		})
	}
}

func TestInsertChildOutOfRangePanics(t *testing.T) {
	root := New("root").MustAppend(New("a"))
	defer func() {
		if recover() == nil {
			t.Error("InsertChild out of range did not panic")
		}
	}()
	root.InsertChild(New("b"), 3)
}

func TestRemoveChild(t *testing.T) {
	root := New("root")
	a, b, c := New("a"), New("b"), New("c")
	root.MustAppend(a, b, c)

	if _, err := root.RemoveChild(b); err != nil {
		t.Fatalf("RemoveChild error: %v", err)
	}
	if d := cmp.Diff([]string{"a", "c"}, tags(root.Children())); d != "" {
		t.Errorf("children after remove (-want +got):\n%s", d)
	}
	if b.Parent() != nil {
		t.Error("removed child still has a parent")
	}

	// identity, not tag, decides membership
	stranger := New("a")
	if _, err := root.RemoveChild(stranger); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("RemoveChild(stranger) error = %v, want ErrNodeNotFound", err)
	}
	if _, err := root.RemoveChild(b); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("RemoveChild twice error = %v, want ErrNodeNotFound", err)
	}
}

func TestDataChildrenExclusive(t *testing.T) {
	withChild := New("root").MustAppend(New("a"))
	if err := withChild.SetData("text"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SetData on node with children error = %v, want ErrInvalidState", err)
	}

	withData := New("root").WithData("text")
	if _, err := withData.AppendChild(New("a")); !errors.Is(err, ErrInvalidState) {
		t.Errorf("AppendChild on node with data error = %v, want ErrInvalidState", err)
	}
	if _, err := withData.InsertChild(New("a"), 0); !errors.Is(err, ErrInvalidState) {
		t.Errorf("InsertChild on node with data error = %v, want ErrInvalidState", err)
	}

	// clearing data re-enables children
	if err := withData.SetData(""); err != nil {
		t.Fatalf("SetData(\"\") error: %v", err)
	}
	if _, err := withData.AppendChild(New("a")); err != nil {
		t.Errorf("AppendChild after clearing data error: %v", err)
	}
}

func TestSetDataReplaces(t *testing.T) {
	n := New("a").WithData("old")
	if err := n.SetData("new"); err != nil {
		t.Fatalf("SetData error: %v", err)
	}
	if n.Data() != "new" {
		t.Errorf("Data() = %q, want %q", n.Data(), "new")
	}
}

func TestChildrenByTag(t *testing.T) {
	root := New("root").MustAppend(
		New("node").WithData("first"),
		New("other"),
		New("node").WithData("second"),
	)
	res, err := root.ChildrenByTag("node")
	if err != nil {
		t.Fatalf("ChildrenByTag error: %v", err)
	}
	if len(res) != 2 || res[0].Data() != "first" || res[1].Data() != "second" {
		t.Errorf("ChildrenByTag returned wrong nodes: %v", tags(res))
	}
	if _, err := root.ChildrenByTag("missing"); !errors.Is(err, ErrNodeNotFound) {
		t.Errorf("ChildrenByTag(missing) error = %v, want ErrNodeNotFound", err)
	}
}

func TestParentAndRoot(t *testing.T) {
	root := New("root")
	mid := New("mid")
	leaf := New("leaf")
	root.MustAppend(mid)
	mid.MustAppend(leaf)

	if !root.IsRoot() {
		t.Error("root.IsRoot() = false")
	}
	if leaf.IsRoot() {
		t.Error("leaf.IsRoot() = true")
	}
	if leaf.Root() != root {
		t.Error("leaf.Root() is not root")
	}
	if leaf.Parent() != mid || mid.Parent() != root {
		t.Error("parent chain broken")
	}
}

func TestSetAttrDelegation(t *testing.T) {
	n := New("a").SetAttr("k", "v").SetAttr("k2", "v2")
	if n.Attrs().Len() != 2 {
		t.Errorf("Attrs().Len() = %d, want 2", n.Attrs().Len())
	}
	n.RemoveAttr("k")
	if n.Attrs().Has("k") {
		t.Error("RemoveAttr left key behind")
	}
}

func TestClone(t *testing.T) {
	root := New("root").MustAppend(
		New("node1").WithData("text").SetAttr("key", "value"),
		New("node2").MustAppend(New("grandson")),
	)
	dup := root.Clone()
	if !Equal(root, dup) {
		t.Error("clone is not structurally equal to original")
	}
	if dup.Parent() != nil {
		t.Error("clone has a parent")
	}
	// mutations do not leak between the trees
	dup.Children()[0].SetAttr("key", "other")
	if v, _ := root.Children()[0].Attrs().Get("key"); v != "value" {
		t.Errorf("original attr changed to %q", v)
	}
}

func TestVisit(t *testing.T) {
	root := New("root").MustAppend(
		New("a").MustAppend(New("aa")),
		New("b"),
	)
	var pre, post []string
	err := root.Visit(func(n *Node, isPost bool) (bool, error) {
		if isPost {
			post = append(post, n.Tag())
		} else {
			pre = append(pre, n.Tag())
		}
		return true, nil
	})
	if err != nil {
		t.Fatalf("Visit error: %v", err)
	}
	if d := cmp.Diff([]string{"root", "a", "aa", "b"}, pre); d != "" {
		t.Errorf("pre order (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"aa", "a", "b", "root"}, post); d != "" {
		t.Errorf("post order (-want +got):\n%s", d)
	}
}
