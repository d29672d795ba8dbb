package snapshot

import (
	"fmt"
	"strconv"
	"strings"
)

// namedColors covers the names the preview stylesheet actually uses. Unknown
// names pass through unchanged rather than being rejected.
var namedColors = map[string]string{
	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"green":     "#008000",
	"blue":      "#0000ff",
	"gray":      "#808080",
	"grey":      "#808080",
	"silver":    "#c0c0c0",
	"navy":      "#000080",
	"teal":      "#008080",
	"orange":    "#ffa500",
	"gold":      "#ffd700",
	"slategray": "#708090",
}

// normalizeColor converts a resolved color value to lowercase #rrggbb hex.
// Fully transparent colors are rejected; values that cannot be parsed are
// kept verbatim so an unusual notation never loses information.
func normalizeColor(v string) (string, bool) {
	v = strings.TrimSpace(strings.ToLower(v))
	switch {
	case v == "transparent":
		return "", false
	case strings.HasPrefix(v, "#"):
		return expandHex(v), true
	case strings.HasPrefix(v, "rgb(") || strings.HasPrefix(v, "rgba("):
		return rgbToHex(v)
	}
	if hex, ok := namedColors[v]; ok {
		return hex, true
	}
	return v, true
}

func expandHex(v string) string {
	if len(v) == 4 { // #abc
		return fmt.Sprintf("#%c%c%c%c%c%c", v[1], v[1], v[2], v[2], v[3], v[3])
	}
	return v
}

func rgbToHex(v string) (string, bool) {
	open := strings.IndexByte(v, '(')
	close := strings.IndexByte(v, ')')
	if open < 0 || close < open {
		return v, true
	}
	parts := strings.Split(v[open+1:close], ",")
	if len(parts) < 3 {
		return v, true
	}
	var rgb [3]int
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return v, true
		}
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		rgb[i] = n
	}
	if len(parts) >= 4 {
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err == nil && alpha == 0 {
			return "", false
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), true
}
