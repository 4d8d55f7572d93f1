package sintagrab

import (
	"regexp"
	"strings"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Normalize collapses every run of whitespace (including newlines) into a
// single space and trims the result. It is applied as the final step of
// every field extractor; normalizing already-normalized text is a no-op.
func Normalize(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
