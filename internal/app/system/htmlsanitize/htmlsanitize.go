// Package htmlsanitize cleans user-supplied text before it is stored.
//
// Names and descriptions are plain text. Any markup is stripped with
// bluemonday's strict policy and the surviving entities are decoded back, so
// "R&D <b>plan</b>" is stored as "R&D plan".
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// PlainText strips all HTML from s and trims surrounding whitespace.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
