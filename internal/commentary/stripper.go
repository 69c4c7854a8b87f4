// Package commentary removes the conversational wrapper text a generative
// assistant tends to add around the content it was actually asked for.
package commentary

import (
	"regexp"
	"strings"
)

// preamblePrefixes are sentence openers that mark a line as assistant
// preamble. Matching is a case-insensitive prefix check.
var preamblePrefixes = []string{
	"sure",
	"here is",
	"here's",
	"i'll",
	"i will",
	"i've",
	"certainly",
	"okay",
	"of course",
	"absolutely",
	"great",
	"below is",
	"this is the",
	"as requested",
	"i'd be happy",
	"no problem",
}

// postamblePrefixes mark trailing sign-off lines. The vocabulary is disjoint
// from the preamble set so a closing phrase never swallows leading content.
var postamblePrefixes = []string{
	"let me know",
	"would you like",
	"i hope",
	"hope this helps",
	"feel free",
	"if you need",
	"if you'd like",
	"is there anything",
	"happy to",
	"don't hesitate",
}

var headingPattern = regexp.MustCompile(`^#{1,6}\s`)

// Strip trims assistant preamble and postamble from text, returning the
// inclusive range of real content with surrounding whitespace removed. Input
// that carries no wrapper text comes back unchanged apart from outer
// whitespace. When the wrapper consumes everything the result is empty.
func Strip(text string) string {
	lines := strings.Split(text, "\n")

	start := 0
	for start < len(lines) {
		line := strings.TrimSpace(lines[start])
		if isContentStart(line) {
			break
		}
		if line == "" || isDivider(line) || matchesAny(line, preamblePrefixes) {
			start++
			continue
		}
		// A plain paragraph that is not preamble counts as content even
		// without a heading.
		break
	}

	end := len(lines) - 1
	for end >= start {
		line := strings.TrimSpace(lines[end])
		if line == "" || isDivider(line) || matchesAny(line, postamblePrefixes) {
			end--
			continue
		}
		break
	}

	if end < start {
		return ""
	}

	return strings.TrimSpace(strings.Join(lines[start:end+1], "\n"))
}

// isContentStart reports whether the line unambiguously begins real content:
// a markdown heading or a raw Gutenberg block comment.
func isContentStart(line string) bool {
	if headingPattern.MatchString(line) {
		return true
	}
	return strings.HasPrefix(line, "<!-- wp:")
}

func isDivider(line string) bool {
	switch {
	case strings.HasPrefix(line, "---"):
	case strings.HasPrefix(line, "***"):
	case strings.HasPrefix(line, "___"):
	default:
		return false
	}
	return strings.Trim(line, "-*_ ") == ""
}

func matchesAny(line string, prefixes []string) bool {
	lowered := strings.ToLower(line)
	for _, prefix := range prefixes {
		if strings.HasPrefix(lowered, prefix) {
			return true
		}
	}
	return false
}
