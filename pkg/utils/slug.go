package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugCollapse = regexp.MustCompile(`-+`)
)

// Slugify turns a title into a URL-safe slug: lowercase, punctuation stripped,
// whitespace runs collapsed to single hyphens.
func Slugify(s string) string {
	out := strings.ToLower(strings.TrimSpace(s))
	out = slugStrip.ReplaceAllString(out, "")
	out = slugSpaces.ReplaceAllString(out, "-")
	out = slugCollapse.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
