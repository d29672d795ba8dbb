package encoder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingSnapshot is returned when the styled HTML export is requested
// without a capturable preview.
var ErrMissingSnapshot = errors.New("styled html export requires a style snapshot")

// htmlShellStyle is the minimal print-safe style block wrapped around the
// snapshot markup. The snapshot carries its effective styles inline, but
// layout keywords (flex, grid) are not inlined as values, so the utility
// classes used by the preview template still need rule definitions here.
const htmlShellStyle = `@page { size: A4; margin: 0; }
html, body { margin: 0; padding: 0; background: #ffffff; }
* { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.flex { display: flex; }
.flex-col { display: flex; flex-direction: column; }
.grid { display: grid; }
.items-center { align-items: center; }
.justify-between { justify-content: space-between; }
.hidden { display: none; }`

// WrapStyledHTML wraps serialized snapshot markup in a complete standalone
// document shell. The snapshot must come from the style-snapshot engine; a
// missing snapshot is a terminal error for the export attempt.
func WrapStyledHTML(title, snapshotMarkup string) (string, error) {
	if strings.TrimSpace(snapshotMarkup) == "" {
		return "", ErrMissingSnapshot
	}
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", EscapeHTML(title))
	fmt.Fprintf(&b, "<style>\n%s\n</style>\n", htmlShellStyle)
	b.WriteString("</head>\n<body>\n")
	b.WriteString(snapshotMarkup)
	b.WriteString("\n</body>\n</html>\n")
	return b.String(), nil
}
