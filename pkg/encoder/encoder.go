// Package encoder converts a canonical resume document into the text-based
// export formats. Every encoder is a pure function over the model: no shared
// state, identical section ordering (Summary, Experience, Education, Skills,
// Certifications, Links) and identical conditional-omission rules. Absent or
// whitespace-only optional fields produce no output fragment at all.
package encoder

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Media types reported to the save sink, one per artifact.
const (
	MediaTypeLaTeX    = "application/x-tex"
	MediaTypeDocx     = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MediaTypeHTML     = "text/html; charset=utf-8"
	MediaTypeMarkdown = "text/markdown; charset=utf-8"
	MediaTypeText     = "text/plain; charset=utf-8"
	MediaTypeJSON     = "application/json"
	MediaTypePDF      = "application/pdf"
)

// linkLabel shortens a URL to its eTLD+1 for tidy display, falling back to
// the hostname and finally the raw value.
func linkLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}

// joinNonEmpty joins the trimmed, non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, sep)
}
