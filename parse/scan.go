package parse

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/xmltree-format/xmltree/debug"
	"github.com/xmltree-format/xmltree/token"
)

// scan is the buffer phase: it drains the scanner into an in-order
// token buffer without creating any nodes. If the scanner fails
// mid-document the buffer is simply discarded by the caller, so a
// failed build never leaves a partially linked tree behind.
func scan(r io.Reader, opts *parseOpts) ([]token.Token, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = opts.strict
	var toks []token.Token
	for {
		pos := token.Pos(dec.InputOffset())
		t, err := dec.Token()
		if err == io.EOF {
			return toks, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParse, pos, err)
		}
		n := len(toks)
		switch t := t.(type) {
		case xml.StartElement:
			toks = append(toks, token.Token{Type: token.TStart, Pos: pos, Tag: t.Name.Local})
			for _, a := range t.Attr {
				toks = append(toks, token.Token{
					Type:  token.TAttr,
					Pos:   pos,
					Key:   attrKey(a.Name),
					Value: a.Value,
				})
			}
		case xml.EndElement:
			toks = append(toks, token.Token{Type: token.TEnd, Pos: pos, Tag: t.Name.Local})
		case xml.CharData:
			v := string(t)
			if opts.trim {
				if strings.TrimSpace(v) == "" {
					continue
				}
			}
			toks = append(toks, token.Token{Type: token.TData, Pos: pos, Value: v})
		default:
			// ProcInst, Comment and Directive carry no tree content.
		}
		if debug.Parse() {
			for i := n; i < len(toks); i++ {
				debug.Logf("scan: %s\n", toks[i].Info())
			}
		}
	}
}

// attrKey keeps namespace prefixes out of the model: namespace
// resolution is not performed, attribute keys are local names. The
// one exception is xmlns declarations, which the scanner reports with
// the "xmlns" space.
func attrKey(name xml.Name) string {
	if name.Space == "xmlns" {
		return "xmlns:" + name.Local
	}
	return name.Local
}
