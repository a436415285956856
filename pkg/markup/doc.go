// Package markup converts the plain-text reports returned by research models
// into HTML fragments for email, and reduces those fragments back to plain text.
//
// The dialect is deliberately small:
//
//   - **bold**, *italic* and `code` spans
//   - [label](url) links
//   - "#" headings, numbered lines "1." to "5." and "-" or "•" bullets
//
// Convert works line by line. Blank lines are dropped, the text is HTML-escaped,
// inline spans and links are substituted, and the line is wrapped as a heading
// (<h3>), a headline (<div class="headline">) or a paragraph (<p>). A line is a
// heading when it is all capitals, starts with "#", or is shorter than
// HeadingMaxLen characters. Short sentences therefore render as headings; the
// report templates are styled around that.
//
// Substitution is textual, not a parser: nested or overlapping markers produce a
// best-effort result.
//
// PlainText strips tags and collapses whitespace:
//
//	html := markup.Convert(report)
//	text := markup.PlainText(html)
package markup
