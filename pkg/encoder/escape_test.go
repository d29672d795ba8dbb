package encoder

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeLaTeX(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"100% & more", `100\% \& more`},
		{"a_b^c", `a\_b\textasciicircum{}c`},
		{`\cmd{x}`, `\textbackslash{}cmd\{x\}`},
		{"$5 #1 ~ok", `\$5 \#1 \textasciitilde{}ok`},
		{"naïve – café", "naïve – café"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, EscapeLaTeX(tc.in))
	}
}

func TestEscapeLaTeX_Totality(t *testing.T) {
	specials := `\{}$&%#^_~`
	out := EscapeLaTeX(specials)
	// Every special must be escaped: no brace/underscore/etc. may survive
	// outside an escape sequence. Strip known escapes and check the rest.
	stripped := out
	for _, esc := range []string{
		`\textbackslash{}`, `\textasciicircum{}`, `\textasciitilde{}`,
		`\{`, `\}`, `\$`, `\&`, `\%`, `\#`, `\_`,
	} {
		stripped = strings.ReplaceAll(stripped, esc, "")
	}
	assert.Empty(t, stripped)
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"John_Doe_Resume", "John_Doe_Resume"},
		{"John Doe Resume", "John_Doe_Resume"},
		{"a/b\\c:d", "a_b_c_d"},
		{"weird***name", "weird_name"},
		{"émile zola", "_mile_zola"},
		{"already__collapsed___here", "already_collapsed_here"},
	}
	for _, tc := range cases {
		got := SanitizeFilename(tc.in)
		assert.Equal(t, tc.want, got)
		assert.Regexp(t, `^[A-Za-z0-9_-]*$`, got)
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;&amp;&#34;x&#34;&#39;", EscapeHTML(`<script>&"x"'`))
	assert.Equal(t, "safe", EscapeHTML("safe"))
}
