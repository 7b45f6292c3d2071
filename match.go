package xmltree

import (
	"github.com/xmltree-format/xmltree/debug"
	"github.com/xmltree-format/xmltree/ir"
)

type MatchConfig struct {
	Exact bool
}

type MatchOpt func(*MatchConfig)

// MatchExact requires the document to carry exactly the pattern's
// attributes and children rather than a superset.
func MatchExact(v bool) MatchOpt {
	return func(c *MatchConfig) { c.Exact = v }
}

// Match reports whether pattern describes doc. Tags must be equal and
// the pattern's text data, if any, must equal the document's. By
// default the pattern's attributes are a subset of the document's and
// the pattern's children must match a subsequence of the document's
// children in order; MatchExact tightens both to full equality.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return match(doc, pattern, cfg)
}

func match(doc, pattern *ir.Node, cfg *MatchConfig) bool {
	if debug.Match() {
		debug.Logf("match %q against pattern %q\n", doc.Tag(), pattern.Tag())
	}
	if cfg.Exact {
		return ir.Equal(doc, pattern)
	}
	if doc.Tag() != pattern.Tag() {
		return false
	}
	if pattern.Data() != "" && doc.Data() != pattern.Data() {
		return false
	}
	if !matchAttrs(doc, pattern) {
		return false
	}
	return matchChildren(doc, pattern, cfg)
}

func matchAttrs(doc, pattern *ir.Node) bool {
	for key, want := range pattern.Attrs().All() {
		got, err := doc.Attrs().Get(key)
		if err != nil {
			return false
		}
		if got != want {
			return false
		}
	}
	return true
}

// matchChildren matches the pattern's children against an in-order
// subsequence of the document's children.
func matchChildren(doc, pattern *ir.Node, cfg *MatchConfig) bool {
	docKids := doc.Children()
	i := 0
	for _, want := range pattern.Children() {
		found := false
		for ; i < len(docKids); i++ {
			if match(docKids[i], want, cfg) {
				found = true
				i++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
