package job

import (
	"regexp"
	"strings"
)

var (
	slugStrip = regexp.MustCompile(`[^a-z0-9]+`)
	slugTrim  = regexp.MustCompile(`(^-|-$)+`)
)

// Slugify normalizes s into a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to a single dash, leading and
// trailing dashes removed.
func Slugify(s string) string {
	out := strings.ToLower(s)
	out = slugStrip.ReplaceAllString(out, "-")
	return slugTrim.ReplaceAllString(out, "")
}
