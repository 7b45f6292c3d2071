// Package encode renders ir trees to text.
//
// # Usage
//
//	// Render to indented XML
//	node := ir.New("root").MustAppend(ir.New("leaf"))
//	err := encode.Encode(node, os.Stdout)
//
//	// Render with options
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeIndent(2),
//	    encode.EncodeColors(encode.NewColors()))
//
//	// Render the generic JSON/YAML mapping
//	err := encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/xmltree-format/xmltree/ir - tree representation
//   - github.com/xmltree-format/xmltree/parse - parse text to trees
package encode
