package blockconv

import "regexp"

var (
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")
	boldPattern     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern   = regexp.MustCompile(`\*([^*\s][^*]*)\*`)
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// FormatInline applies span-level markdown formatting to a single line of
// text: `code`, **bold**, *italic*, and [text](url). Each form is rewritten
// independently and they can co-occur; unmatched syntax is left as literal
// text. Bold runs before italic so a double asterisk is never consumed as two
// emphasis markers.
func FormatInline(text string) string {
	text = codeSpanPattern.ReplaceAllString(text, "<code>$1</code>")
	text = boldPattern.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicPattern.ReplaceAllString(text, "<em>$1</em>")
	text = linkPattern.ReplaceAllString(text, `<a href="$2">$1</a>`)
	return text
}
