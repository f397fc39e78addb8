package portfolio

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s, collapses every run of characters outside [a-z0-9]
// into one hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	return strings.Trim(nonSlugRun.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// slugFor derives a slug from title, falling back to prefix-<unix ms> when the
// title yields nothing.
func slugFor(title, prefix string, now time.Time) string {
	if slug := Slugify(title); slug != "" {
		return slug
	}
	return prefix + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
