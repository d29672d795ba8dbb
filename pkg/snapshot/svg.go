package snapshot

import (
	"strings"

	"golang.org/x/net/html"
)

var svgTags = map[string]struct{}{
	"svg": {}, "path": {}, "circle": {}, "rect": {}, "line": {},
	"polyline": {}, "polygon": {}, "ellipse": {}, "g": {},
}

func isSVGNode(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if n.Namespace == "svg" {
		return true
	}
	_, ok := svgTags[strings.ToLower(n.Data)]
	return ok
}

// decorateSVG copies resolved geometry and paint onto the clone as plain
// attributes. Some downstream renderers of the exported file honor attributes
// over style, so attributes are set even where the inlined style would be
// enough. The viewBox is never touched.
func (e *Engine) decorateSVG(live, clone *html.Node) {
	resolved := e.resolver.Resolve(live, []string{
		"width", "height", "stroke", "fill",
		"stroke-width", "stroke-linecap", "stroke-linejoin",
	})

	if strings.ToLower(live.Data) == "svg" {
		for _, dim := range []string{"width", "height"} {
			v := strings.TrimSpace(resolved[dim])
			if v == "" || v == "auto" || v == "0" || v == "0px" {
				continue
			}
			setAttr(clone, dim, strings.TrimSuffix(v, "px"))
			appendStyle(clone, dim+": "+v)
		}
	}

	for _, paint := range []string{"stroke", "fill"} {
		v := strings.TrimSpace(resolved[paint])
		if v == "" || v == "none" {
			continue
		}
		if hex, ok := normalizeColor(v); ok {
			setAttr(clone, paint, hex)
		}
	}

	for _, verbatim := range []string{"stroke-width", "stroke-linecap", "stroke-linejoin"} {
		if v := strings.TrimSpace(resolved[verbatim]); v != "" {
			setAttr(clone, verbatim, v)
		}
	}
}

func appendStyle(n *html.Node, decl string) {
	existing := strings.TrimSpace(getAttr(n, "style"))
	if existing == "" {
		setAttr(n, "style", decl)
		return
	}
	setAttr(n, "style", strings.TrimSuffix(existing, ";")+"; "+decl)
}
