package encode

import (
	"encoding/json"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/xmltree-format/xmltree/ir"
)

// value is the generic mapping of a node used for the JSON and YAML
// output formats. Attributes stay an ordered list of pairs so output
// is deterministic in store order, like the XML renderer.
type value struct {
	Tag      string   `json:"tag" yaml:"tag"`
	Attrs    []attr   `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Data     string   `json:"data,omitempty" yaml:"data,omitempty"`
	Children []*value `json:"children,omitempty" yaml:"children,omitempty"`
}

type attr struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func toValue(n *ir.Node) *value {
	v := &value{
		Tag:  n.Tag(),
		Data: n.Data(),
	}
	for key, val := range n.Attrs().All() {
		v.Attrs = append(v.Attrs, attr{Key: key, Value: val})
	}
	for _, child := range n.Children() {
		v.Children = append(v.Children, toValue(child))
	}
	return v
}

func encodeJSON(node *ir.Node, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toValue(node))
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toValue(node))
	if err != nil {
		return err
	}
	return writeString(w, string(d))
}
