package encoder

import (
	"regexp"
	"strings"
)

// latexEscapes maps every LaTeX control character to its safe replacement.
// All other characters, including Unicode, pass through verbatim.
var latexEscapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
}

// EscapeLaTeX neutralizes LaTeX control characters character by character.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := latexEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// latexURLReplacer guards the URL argument of \href. Characters that would
// end the group or start a comment are percent-encoded or escaped; hyperref
// accepts the \% form inside its URL argument. Replacement is single-pass,
// so emitted sequences are not rescanned.
var latexURLReplacer = strings.NewReplacer(
	`\`, "%5C",
	"{", "%7B",
	"}", "%7D",
	"%", `\%`,
	"#", `\#`,
)

// EscapeLaTeXURL makes a raw URL safe to use as the first argument of \href.
func EscapeLaTeXURL(url string) string {
	return latexURLReplacer.Replace(url)
}

var (
	unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	underscoreRuns      = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename replaces every character outside [A-Za-z0-9_-] with an
// underscore and collapses runs of underscores into one.
func SanitizeFilename(name string) string {
	s := unsafeFilenameChars.ReplaceAllString(name, "_")
	return underscoreRuns.ReplaceAllString(s, "_")
}

// htmlReplacer covers the characters significant in markup text nodes and
// attribute values. Escaped output is safe to splice into generated HTML.
var htmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// EscapeHTML neutralizes markup-significant characters for the styled HTML
// output.
func EscapeHTML(text string) string {
	return htmlReplacer.Replace(text)
}
