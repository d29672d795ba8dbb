// Package snapshot captures a self-contained clone of the rendered resume
// preview. The clone mirrors the live visual tree with every relevant
// effective style baked in as an inline override, so it survives
// serialization without a style engine behind it.
package snapshot

import (
	"bytes"
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrPreviewUnavailable signals that the export root is missing from the
// visual tree. Callers surface it as a "view the preview first" condition.
var ErrPreviewUnavailable = errors.New("resume preview is not available")

// PreviewRootID identifies the export root inside the preview document.
const PreviewRootID = "resume-preview"

// Engine walks a live visual tree and produces portable clones. Style
// resolution is delegated to a StyleResolver so the algorithm stays
// independent of any particular rendering engine.
type Engine struct {
	resolver StyleResolver
}

func New(resolver StyleResolver) *Engine {
	return &Engine{resolver: resolver}
}

// Capture locates the export root in doc, deep-clones it, strips interactive
// chrome, and inlines every effective style that differs from its no-op
// default. The returned node is detached from doc.
func (e *Engine) Capture(doc *html.Node) (*html.Node, error) {
	root := findByID(doc, PreviewRootID)
	if root == nil {
		return nil, ErrPreviewUnavailable
	}

	clone := cloneTree(root)

	// The clone is a structural copy, so live node and clone can be walked
	// in lockstep while the resolver reads from the live side.
	e.applyStyles(root, clone)
	stripInteractive(clone)

	return clone, nil
}

// CaptureMarkup returns the serialized outer markup of the captured clone,
// the payload the styled HTML encoder consumes.
func (e *Engine) CaptureMarkup(doc *html.Node) (string, error) {
	clone, err := e.Capture(doc)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, clone); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (e *Engine) applyStyles(live, clone *html.Node) {
	if live.Type == html.ElementNode {
		e.inlineNodeStyle(live, clone)
		if isSVGNode(live) {
			e.decorateSVG(live, clone)
		}
	}
	lc, cc := live.FirstChild, clone.FirstChild
	for lc != nil && cc != nil {
		e.applyStyles(lc, cc)
		lc, cc = lc.NextSibling, cc.NextSibling
	}
}

// inlineNodeStyle resolves the allow-listed properties for the live node and
// writes the surviving values onto the clone's style attribute.
func (e *Engine) inlineNodeStyle(live, clone *html.Node) {
	resolved := e.resolver.Resolve(live, propertyNames())
	if len(resolved) == 0 {
		return
	}

	var decls []string
	for _, prop := range propertyTable {
		value, ok := resolved[prop.name]
		if !ok {
			continue
		}
		if prop.applies != nil && !prop.applies(live.Data) {
			continue
		}
		normalized, keep := prop.normalize(value)
		if !keep {
			continue
		}
		decls = append(decls, prop.name+": "+normalized)
	}
	if len(decls) == 0 {
		return
	}

	existing := getAttr(clone, "style")
	merged := strings.Join(decls, "; ")
	if existing != "" {
		merged = strings.TrimSuffix(strings.TrimSpace(existing), ";") + "; " + merged
	}
	setAttr(clone, "style", merged)
}

// stripInteractive removes UI chrome from the clone: buttons, elements with
// role="button", and anything flagged print-excluded.
func stripInteractive(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if isInteractive(c) {
			n.RemoveChild(c)
			continue
		}
		stripInteractive(c)
	}
}

func isInteractive(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if n.DataAtom == atom.Button {
		return true
	}
	if strings.EqualFold(getAttr(n, "role"), "button") {
		return true
	}
	if _, ok := lookupAttr(n, "data-print-exclude"); ok {
		return true
	}
	for _, cls := range strings.Fields(getAttr(n, "class")) {
		if cls == "no-print" {
			return true
		}
	}
	return false
}

func cloneTree(n *html.Node) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		clone.AppendChild(cloneTree(c))
	}
	return clone
}

func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode && getAttr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func getAttr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func setAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}
