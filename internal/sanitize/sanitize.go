package sanitize

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
)

var htmlPolicy = bluemonday.UGCPolicy()

// Slug derives a URL-safe identifier from a meal title: lowercased, with
// runs of non-alphanumeric characters collapsed to single hyphens.
// Titles that produce an empty slug (empty or all-symbol input) fall back
// to a generated token so the caller always gets a usable identifier.
func Slug(title string) string {
	s := slug.Make(title)
	if s == "" {
		return fmt.Sprintf("meal-%s", uuid.New().String()[:8])
	}
	return s
}

// HTML neutralizes markup capable of script execution while keeping plain
// text, safe formatting, and newline characters intact. Sanitizing
// already-sanitized text yields the same text.
func HTML(text string) string {
	return htmlPolicy.Sanitize(text)
}
