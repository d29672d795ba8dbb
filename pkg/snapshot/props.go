package snapshot

import "strings"

// property is one entry of the static style allow-list: a resolved-style
// name, an optional tag applicability predicate, and a normalizer that either
// rewrites the value or rejects it.
type property struct {
	name      string
	applies   func(tag string) bool
	normalize func(value string) (string, bool)
}

// noopSentinels are resolved values that match intrinsic defaults; inlining
// them would only clobber defaults with redundant overrides. The set is
// empirically tuned against the preview stylesheet, not exhaustive.
var noopSentinels = map[string]struct{}{
	"":                 {},
	"none":             {},
	"normal":           {},
	"auto":             {},
	"0":                {},
	"0px":              {},
	"transparent":      {},
	"rgba(0, 0, 0, 0)": {},
	"initial":          {},
}

func isSentinel(v string) bool {
	_, ok := noopSentinels[strings.ToLower(strings.TrimSpace(v))]
	return ok
}

// keepValue passes any non-sentinel value through unchanged.
func keepValue(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if isSentinel(v) {
		return "", false
	}
	return v, true
}

// keepColor normalizes any color notation to hex and drops sentinels and
// fully transparent colors.
func keepColor(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if isSentinel(v) {
		return "", false
	}
	hex, ok := normalizeColor(v)
	if !ok {
		return "", false
	}
	return hex, true
}

var listTags = map[string]struct{}{"ul": {}, "ol": {}, "li": {}}

func appliesToLists(tag string) bool {
	_, ok := listTags[strings.ToLower(tag)]
	return ok
}

// propertyTable is the fixed allow-list of resolved styles carried onto the
// clone. Display keywords (flex, grid) are deliberately absent: the styled
// HTML shell defines utility classes for them instead, since they are not
// value-like overrides the way colors and lengths are.
var propertyTable = []property{
	// color and background
	{name: "color", normalize: keepColor},
	{name: "background-color", normalize: keepColor},
	{name: "background-image", normalize: keepValue},

	// typography
	{name: "font-family", normalize: keepValue},
	{name: "font-size", normalize: keepValue},
	{name: "font-weight", normalize: keepValue},
	{name: "font-style", normalize: keepValue},
	{name: "line-height", normalize: keepValue},
	{name: "letter-spacing", normalize: keepValue},
	{name: "text-align", normalize: keepValue},
	{name: "text-transform", normalize: keepValue},
	{name: "text-decoration", normalize: keepValue},
	{name: "white-space", normalize: keepValue},
	{name: "word-break", normalize: keepValue},
	{name: "overflow-wrap", normalize: keepValue},
	{name: "vertical-align", normalize: keepValue},

	// box model
	{name: "margin-top", normalize: keepValue},
	{name: "margin-right", normalize: keepValue},
	{name: "margin-bottom", normalize: keepValue},
	{name: "margin-left", normalize: keepValue},
	{name: "padding-top", normalize: keepValue},
	{name: "padding-right", normalize: keepValue},
	{name: "padding-bottom", normalize: keepValue},
	{name: "padding-left", normalize: keepValue},
	{name: "width", normalize: keepValue},
	{name: "height", normalize: keepValue},
	{name: "min-width", normalize: keepValue},
	{name: "min-height", normalize: keepValue},
	{name: "max-width", normalize: keepValue},
	{name: "max-height", normalize: keepValue},
	{name: "box-sizing", normalize: keepValue},
	{name: "overflow", normalize: keepValue},
	{name: "opacity", normalize: keepValue},

	// borders
	{name: "border-top-width", normalize: keepValue},
	{name: "border-right-width", normalize: keepValue},
	{name: "border-bottom-width", normalize: keepValue},
	{name: "border-left-width", normalize: keepValue},
	{name: "border-top-style", normalize: keepValue},
	{name: "border-right-style", normalize: keepValue},
	{name: "border-bottom-style", normalize: keepValue},
	{name: "border-left-style", normalize: keepValue},
	{name: "border-top-color", normalize: keepColor},
	{name: "border-right-color", normalize: keepColor},
	{name: "border-bottom-color", normalize: keepColor},
	{name: "border-left-color", normalize: keepColor},
	{name: "border-radius", normalize: keepValue},

	// layout
	{name: "position", normalize: keepValue},
	{name: "top", normalize: keepValue},
	{name: "right", normalize: keepValue},
	{name: "bottom", normalize: keepValue},
	{name: "left", normalize: keepValue},
	{name: "z-index", normalize: keepValue},

	// flex and grid
	{name: "flex-direction", normalize: keepValue},
	{name: "flex-wrap", normalize: keepValue},
	{name: "flex-grow", normalize: keepValue},
	{name: "flex-shrink", normalize: keepValue},
	{name: "flex-basis", normalize: keepValue},
	{name: "justify-content", normalize: keepValue},
	{name: "align-items", normalize: keepValue},
	{name: "align-content", normalize: keepValue},
	{name: "gap", normalize: keepValue},
	{name: "grid-template-columns", normalize: keepValue},
	{name: "grid-template-rows", normalize: keepValue},

	// lists
	{name: "list-style-type", applies: appliesToLists, normalize: keepValue},
	{name: "list-style-position", applies: appliesToLists, normalize: keepValue},
}

var propNames []string

func propertyNames() []string {
	if propNames == nil {
		propNames = make([]string, len(propertyTable))
		for i, p := range propertyTable {
			propNames[i] = p.name
		}
	}
	return propNames
}
