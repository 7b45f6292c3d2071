package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/xmltree-format/xmltree/format"
	"github.com/xmltree-format/xmltree/ir"
)

type EncState struct {
	depth, indent int

	format format.Format

	Color func(ColorAttr, string) string
}

// Encode renders the subtree rooted at node to w. The default output
// is indented XML; EncodeFormat routes to the JSON or YAML mapping
// instead.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 4}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.XMLFormat:
		return encode(node, w, es)
	case format.JSONFormat:
		return encodeJSON(node, w)
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

// encode is the recursive XML renderer. Attribute values and text
// data are written verbatim: no character escaping is performed, the
// document is assumed well-formed on the way in.
func encode(node *ir.Node, w io.Writer, es *EncState) error {
	ind := strings.Repeat(" ", es.indent*es.depth)
	open := ind + applyColor(es, SepColor, "<") + applyColor(es, TagColor, node.Tag())
	if err := writeString(w, open); err != nil {
		return err
	}
	for k, v := range node.Attrs().All() {
		attr := " " + applyColor(es, AttrKeyColor, k) +
			applyColor(es, SepColor, "=") +
			`"` + applyColor(es, ValueColor, v) + `"`
		if err := writeString(w, attr); err != nil {
			return err
		}
	}
	children := node.Children()
	if len(children) == 0 && node.Data() == "" {
		return writeString(w, applyColor(es, SepColor, "/>")+"\n")
	}
	if err := writeString(w, applyColor(es, SepColor, ">")); err != nil {
		return err
	}
	if node.Data() != "" {
		if err := writeString(w, applyColor(es, TextColor, node.Data())); err != nil {
			return err
		}
	}
	if len(children) != 0 {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		for _, child := range children {
			if err := encode(child, w, es); err != nil {
				es.depth--
				return err
			}
		}
		es.depth--
		if err := writeString(w, ind); err != nil {
			return err
		}
	}
	closing := applyColor(es, SepColor, "</") +
		applyColor(es, TagColor, node.Tag()) +
		applyColor(es, SepColor, ">")
	return writeString(w, closing+"\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}
