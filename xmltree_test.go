package xmltree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xmltree-format/xmltree/encode"
	"github.com/xmltree-format/xmltree/ir"
)

func buildScenario() *ir.Node {
	return ir.New("root").MustAppend(
		ir.New("node1").WithData("text").SetAttr("key", "value"),
		ir.New("node2").MustAppend(ir.New("grandson")),
	)
}

func TestRoundTrip(t *testing.T) {
	trees := []*ir.Node{
		ir.New("leaf"),
		buildScenario(),
		ir.New("a").SetAttr("z", "1").SetAttr("a", "2").MustAppend(
			ir.New("b").WithData("text with spaces"),
			ir.New("b"),
			ir.New("c").MustAppend(ir.New("d").MustAppend(ir.New("e"))),
		),
	}
	for _, tree := range trees {
		t.Run(tree.Tag(), func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(tree, buf); err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			back, err := Parse(buf.Bytes())
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			if !ir.Equal(tree, back) {
				t.Errorf("round trip not isomorphic:\n%s", buf.String())
			}
		})
	}
}

func TestParseString(t *testing.T) {
	root, err := ParseString(`<root><node/><node/></root>`)
	if err != nil {
		t.Fatalf("ParseString error: %v", err)
	}
	both, err := root.ChildrenByTag("node")
	if err != nil {
		t.Fatalf("ChildrenByTag error: %v", err)
	}
	if len(both) != 2 {
		t.Errorf("ChildrenByTag returned %d nodes, want 2", len(both))
	}
	if both[0] != root.Children()[0] || both[1] != root.Children()[1] {
		t.Error("ChildrenByTag order is not document order")
	}
}

func TestParseReader(t *testing.T) {
	root, err := ParseReader(strings.NewReader(`<a/>`))
	if err != nil {
		t.Fatalf("ParseReader error: %v", err)
	}
	if root.Tag() != "a" {
		t.Errorf("Tag() = %q, want %q", root.Tag(), "a")
	}
}
