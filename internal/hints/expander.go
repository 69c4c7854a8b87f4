package hints

import (
	"regexp"
	"strings"
)

// Hint kinds recognised by the expander. The close markers end and
// end-product are not kinds; they terminate an open region.
const (
	kindClickToTweet   = "click-to-tweet"
	kindProTip         = "protip"
	kindDiscount       = "discount"
	kindFAQ            = "faq"
	kindKeyTakeaways   = "key-takeaways"
	kindJumpLinks      = "jump-links"
	kindDataLab        = "data-lab"
	kindProductRoundup = "product-roundup"
	kindCTA            = "cta"

	markerEnd        = "end"
	markerEndProduct = "end-product"
)

var hintMarkerPattern = regexp.MustCompile(`^<!--\s*@([a-z][a-z0-9-]*)((?:\s[^>]*?)?)\s*-->$`)

// Expand performs a single forward scan over text, replacing each recognised
// hint region with its generated block fragment. Lines outside hint regions
// pass through unchanged, as do markers whose name is not in the vocabulary.
func Expand(text string) string {
	e := &expander{}
	for _, line := range strings.Split(text, "\n") {
		e.scan(line)
	}
	e.closeInput()
	return strings.Join(e.out, "\n")
}

// expander holds the scan state: at most one hint is open at a time, carrying
// the raw marker line (for attribute extraction) and the buffered body lines.
type expander struct {
	out      []string
	kind     string
	attrLine string
	buffer   []string
}

func (e *expander) scan(line string) {
	trimmed := strings.TrimSpace(line)

	if e.kind == "" {
		name, ok := markerName(trimmed)
		if !ok {
			e.out = append(e.out, line)
			return
		}
		switch name {
		case kindCTA:
			// Self-closing: resolved immediately, no buffering.
			e.out = append(e.out, generateCTA(parseAttrs(trimmed)))
		case kindClickToTweet, kindProTip, kindDiscount, kindFAQ,
			kindKeyTakeaways, kindJumpLinks, kindDataLab, kindProductRoundup:
			e.kind = name
			e.attrLine = trimmed
			e.buffer = nil
		default:
			// Unknown marker names (including stray close markers) pass through.
			e.out = append(e.out, line)
		}
		return
	}

	if e.kind == kindProductRoundup {
		// Inside a roundup everything is body, including cta and other
		// sub-section markers; only end-product closes the region.
		if name, ok := markerName(trimmed); ok && name == markerEndProduct {
			e.flush()
			return
		}
		e.buffer = append(e.buffer, trimmed)
		return
	}

	if name, ok := markerName(trimmed); ok && name == markerEnd {
		e.flush()
		return
	}
	e.buffer = append(e.buffer, trimmed)
}

// flush runs the generator for the open kind over the buffered lines and
// resets the scan state.
func (e *expander) flush() {
	attrs := parseAttrs(e.attrLine)

	var fragment string
	switch e.kind {
	case kindClickToTweet:
		fragment = generateClickToTweet(e.buffer)
	case kindProTip:
		fragment = generateProTip(e.buffer)
	case kindDiscount:
		fragment = generateDiscount(e.buffer)
	case kindFAQ:
		fragment = generateFAQ(e.buffer)
	case kindKeyTakeaways:
		fragment = generateKeyTakeaways(e.buffer)
	case kindJumpLinks:
		fragment = generateJumpLinks(e.buffer, attrs)
	case kindDataLab:
		fragment = generateDataLab(e.buffer, attrs)
	case kindProductRoundup:
		fragment = generateProductRoundup(e.buffer, attrs)
	}

	if fragment != "" {
		e.out = append(e.out, fragment)
	}
	e.reset()
}

// closeInput handles a hint left open at end of input: the buffered body is
// flushed back as plain unmodified text so author content is never lost, but
// the dangling marker line itself is dropped.
func (e *expander) closeInput() {
	if e.kind == "" {
		return
	}
	e.out = append(e.out, e.buffer...)
	e.reset()
}

func (e *expander) reset() {
	e.kind = ""
	e.attrLine = ""
	e.buffer = nil
}

// markerName extracts the @name of a hint marker line. The second return is
// false for anything that is not a whole-line hint comment.
func markerName(line string) (string, bool) {
	m := hintMarkerPattern.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}
