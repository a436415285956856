package markup

import "regexp"

// Pre-compiled expressions for the report dialect. Inline markers are matched
// lazily so "**a** and **b**" yields two bold spans. Link targets may not
// contain angle brackets, which keeps every generated tag intact.
var (
	boldRegex   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRegex = regexp.MustCompile(`\*(.+?)\*`)
	codeRegex   = regexp.MustCompile("`(.+?)`")
	linkRegex   = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s<>]+)\)`)

	headingMarkerRegex = regexp.MustCompile(`^#+\s*`)
	listMarkerRegex    = regexp.MustCompile(`^(?:[1-5]\.|-|•)`)

	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)
