package snapshot

import (
	"sort"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// StyleResolver resolves the effective value of visual properties for a node
// in the live tree. Implementations return only the properties they can
// resolve; absent keys are treated as defaults.
type StyleResolver interface {
	Resolve(n *html.Node, properties []string) map[string]string
}

// CascadeResolver computes effective styles by cascading the preview
// stylesheet over a node and its ancestors: matching rules ordered by
// specificity, inline style attributes winning over everything.
type CascadeResolver struct {
	rules []cascadeRule
}

type cascadeRule struct {
	selector    compoundChain
	specificity int
	order       int
	decls       []*css.Declaration
}

// compoundChain is a descendant-combinator chain of simple selectors; the
// last element must match the node itself, earlier ones its ancestors.
type compoundChain []simpleSelector

type simpleSelector struct {
	tag     string
	id      string
	classes []string
}

// NewCascadeResolver parses stylesheet text into a matchable rule set.
// Selectors using pseudo-classes, attribute selectors or non-descendant
// combinators are ignored; the preview stylesheet avoids them.
func NewCascadeResolver(stylesheet string) (*CascadeResolver, error) {
	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return nil, err
	}
	r := &CascadeResolver{}
	order := 0
	var collect func(rules []*css.Rule)
	collect = func(rules []*css.Rule) {
		for _, rule := range rules {
			if rule.Kind == css.AtRule {
				collect(rule.Rules)
				continue
			}
			for _, sel := range rule.Selectors {
				chain, ok := parseSelector(sel)
				if !ok {
					continue
				}
				r.rules = append(r.rules, cascadeRule{
					selector:    chain,
					specificity: chain.specificity(),
					order:       order,
					decls:       rule.Declarations,
				})
				order++
			}
		}
	}
	collect(sheet.Rules)

	sort.SliceStable(r.rules, func(i, j int) bool {
		if r.rules[i].specificity != r.rules[j].specificity {
			return r.rules[i].specificity < r.rules[j].specificity
		}
		return r.rules[i].order < r.rules[j].order
	})
	return r, nil
}

// Resolve returns the effective values of the requested properties for n.
func (r *CascadeResolver) Resolve(n *html.Node, properties []string) map[string]string {
	wanted := make(map[string]struct{}, len(properties))
	for _, p := range properties {
		wanted[p] = struct{}{}
	}

	out := map[string]string{}
	for _, rule := range r.rules {
		if !rule.selector.matches(n) {
			continue
		}
		for _, d := range rule.decls {
			if _, ok := wanted[d.Property]; ok {
				out[d.Property] = d.Value
			}
		}
	}

	// Inline style has the highest precedence. The parser only yields a
	// value for declarations terminated by ";", and style attributes
	// routinely omit the final one, so it is appended before parsing.
	if inline := attrValue(n, "style"); inline != "" {
		inline = strings.TrimSuffix(strings.TrimSpace(inline), ";") + ";"
		if decls, err := parser.ParseDeclarations(inline); err == nil {
			for _, d := range decls {
				if d.Value == "" {
					continue
				}
				if _, ok := wanted[d.Property]; ok {
					out[d.Property] = d.Value
				}
			}
		}
	}

	// SVG paint carried as plain attributes on the live node.
	for _, p := range properties {
		if _, have := out[p]; have {
			continue
		}
		switch p {
		case "stroke", "fill", "stroke-width", "stroke-linecap", "stroke-linejoin", "width", "height":
			if v := attrValue(n, p); v != "" {
				out[p] = v
			}
		}
	}
	return out
}

func parseSelector(sel string) (compoundChain, bool) {
	sel = strings.TrimSpace(sel)
	if sel == "" || strings.ContainsAny(sel, ":>+~[") {
		return nil, false
	}
	var chain compoundChain
	for _, part := range strings.Fields(sel) {
		chain = append(chain, parseSimple(part))
	}
	return chain, len(chain) > 0
}

func parseSimple(part string) simpleSelector {
	var s simpleSelector
	kind := byte(0) // 0 tag, '#' id, '.' class
	var buf strings.Builder
	flush := func() {
		token := buf.String()
		buf.Reset()
		switch kind {
		case '#':
			s.id = token
		case '.':
			if token != "" {
				s.classes = append(s.classes, token)
			}
		default:
			s.tag = token
		}
	}
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '#', '.':
			flush()
			kind = part[i]
		default:
			buf.WriteByte(part[i])
		}
	}
	flush()
	if s.tag == "*" {
		s.tag = ""
	}
	return s
}

func (c compoundChain) specificity() int {
	score := 0
	for _, s := range c {
		score += 100*boolInt(s.id != "") + 10*len(s.classes) + boolInt(s.tag != "")
	}
	return score
}

func (c compoundChain) matches(n *html.Node) bool {
	if len(c) == 0 {
		return false
	}
	if !c[len(c)-1].matchesNode(n) {
		return false
	}
	// Remaining parts must match ancestors in order, nearest last.
	idx := len(c) - 2
	for anc := n.Parent; anc != nil && idx >= 0; anc = anc.Parent {
		if anc.Type == html.ElementNode && c[idx].matchesNode(anc) {
			idx--
		}
	}
	return idx < 0
}

func (s simpleSelector) matchesNode(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if s.tag != "" && !strings.EqualFold(s.tag, n.Data) {
		return false
	}
	if s.id != "" && attrValue(n, "id") != s.id {
		return false
	}
	if len(s.classes) > 0 {
		have := map[string]struct{}{}
		for _, cls := range strings.Fields(attrValue(n, "class")) {
			have[cls] = struct{}{}
		}
		for _, cls := range s.classes {
			if _, ok := have[cls]; !ok {
				return false
			}
		}
	}
	return true
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
