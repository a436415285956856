package markup

import "strings"

// PlainText reduces an HTML fragment to a single line of text for the
// text/plain part of an email. Tags are removed and every whitespace run,
// newlines included, becomes one space. Entities are left encoded.
func PlainText(fragment string) string {
	s := tagRegex.ReplaceAllString(fragment, "")
	s = whitespaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
