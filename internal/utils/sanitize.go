package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText strips all HTML from user-supplied free text (bios, descriptions,
// titles) before it is persisted.
func CleanText(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
