package markup

import (
	"html"
	"strings"
	"unicode"
	"unicode/utf8"
)

// HeadingMaxLen is the length, in characters, below which any line is rendered as a heading.
// The length is taken after inline formatting, so markers that expand into tags count.
const HeadingMaxLen = 100

// Block is the wrapper chosen for a single report line.
type Block int

const (
	// Heading wraps the line in <h3>.
	Heading Block = iota
	// Headline wraps the line in <div class="headline">.
	Headline
	// Paragraph wraps the line in <p>.
	Paragraph
)

// textEscaper escapes the characters that would otherwise be read as markup in element content.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Convert turns raw report text into an HTML fragment, one block per non-blank line.
// It never fails: markers it does not recognise are kept as text and
// overlapping markers are converted on a best-effort basis.
func Convert(raw string) string {
	lines := strings.Split(raw, "\n")
	blocks := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		body := Inline(line)
		// measure the formatted line without the entity escaping added by Inline
		kind := Classify(html.UnescapeString(body))
		if kind == Heading {
			body = headingMarkerRegex.ReplaceAllString(body, "")
		}
		blocks = append(blocks, wrap(kind, body))
	}

	return strings.Join(blocks, "\n")
}

// Inline escapes a single line and applies the inline passes in order:
// bold, italic, code, then links.
func Inline(line string) string {
	s := textEscaper.Replace(line)
	s = boldRegex.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRegex.ReplaceAllString(s, "<em>$1</em>")
	s = codeRegex.ReplaceAllString(s, "<code>$1</code>")
	s = linkRegex.ReplaceAllStringFunc(s, func(m string) string {
		parts := linkRegex.FindStringSubmatch(m)
		href := strings.ReplaceAll(parts[2], `"`, "&quot;")
		return `<a href="` + href + `">` + parts[1] + `</a>`
	})
	return s
}

// Classify picks the block wrapper for a trimmed, non-blank line that has
// already been through the inline and link passes.
// Checks run in priority order, so every line shorter than HeadingMaxLen is a
// Heading even when it starts with a list marker.
func Classify(line string) Block {
	switch {
	case isUpper(line), strings.HasPrefix(line, "#"), utf8.RuneCountInString(line) < HeadingMaxLen:
		return Heading
	case listMarkerRegex.MatchString(line):
		return Headline
	default:
		return Paragraph
	}
}

func wrap(kind Block, body string) string {
	switch kind {
	case Heading:
		return "<h3>" + body + "</h3>"
	case Headline:
		return `<div class="headline">` + body + "</div>"
	default:
		return "<p>" + body + "</p>"
	}
}

// isUpper reports whether s has at least one letter and no lower-case letters.
func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
