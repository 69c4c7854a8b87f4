package blockconv

import (
	"regexp"
	"strings"
)

// mode identifies the converter's single active buffering construct. Exactly
// one mode is live at a time; transition helpers zero the buffers of the mode
// being left so stale state cannot leak between constructs.
type mode int

const (
	modeNone mode = iota
	modeCode
	modeList
	modeTable
	modeQuote
	modePassthrough
	modeShortcode
)

var (
	headingPattern       = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	headingClassPattern  = regexp.MustCompile(`\s*\{\.([A-Za-z0-9_-]+)\}\s*$`)
	imagePattern         = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)]+)\)$`)
	orderedItemPattern   = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	unorderedItemPattern = regexp.MustCompile(`^[-*]\s+(.*)$`)
	shortcodeOpenPattern = regexp.MustCompile(`^\[([a-zA-Z0-9_-]+)(\s[^\]]*)?\]`)
	tableSeparatorCell   = regexp.MustCompile(`^:?-+:?$`)
	blockCommentPattern  = regexp.MustCompile(`<!--.*?-->`)
)

// Convert turns markdown into Gutenberg block markup. The scan is strictly
// forward with one bounded lookahead (shortcode close detection); input that
// is already block markup passes through untouched.
func Convert(text string) string {
	c := &converter{}
	lines := strings.Split(text, "\n")
	for i := 0; i < len(lines); i++ {
		c.dispatch(lines[i], lines[i+1:])
	}
	c.closeInput()
	return strings.TrimSpace(strings.Join(c.fragments, "\n\n"))
}

type converter struct {
	fragments []string
	mode      mode

	listOrdered bool
	listItems   []string

	tableHeader []string
	tableRows   [][]string

	quoteLines []string
	codeLines  []string

	rawLines []string
	rawDepth int

	shortcodeTag   string
	shortcodeLines []string
}

func (c *converter) dispatch(line string, rest []string) {
	// Buffering modes that consume raw lines come first so their content is
	// never re-interpreted as markdown.
	switch c.mode {
	case modePassthrough:
		c.rawLines = append(c.rawLines, line)
		c.rawDepth += blockCommentDelta(line)
		if c.rawDepth <= 0 {
			c.emit(strings.Join(c.rawLines, "\n"))
			c.reset()
		}
		return
	case modeCode:
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			c.emit(codeFragment(c.codeLines))
			c.reset()
			return
		}
		c.codeLines = append(c.codeLines, line)
		return
	case modeShortcode:
		c.shortcodeLines = append(c.shortcodeLines, strings.TrimSpace(line))
		if strings.Contains(line, "[/"+c.shortcodeTag+"]") {
			c.emit(shortcodeFragment(c.shortcodeLines))
			c.reset()
		}
		return
	}

	trimmed := strings.TrimSpace(line)

	// Raw block markup passes through unchanged. Self-closing blocks are a
	// single-line fragment; everything else opens depth-tracked buffering.
	if strings.HasPrefix(trimmed, "<!-- wp:") {
		c.flushAll()
		if strings.HasSuffix(trimmed, "/-->") {
			c.emit(trimmed)
			return
		}
		depth := blockCommentDelta(trimmed)
		if depth <= 0 {
			c.emit(trimmed)
			return
		}
		c.mode = modePassthrough
		c.rawLines = []string{trimmed}
		c.rawDepth = depth
		return
	}

	if strings.HasPrefix(trimmed, "```") {
		c.flushAll()
		c.mode = modeCode
		c.codeLines = nil
		return
	}

	if m := shortcodeOpenPattern.FindStringSubmatch(trimmed); m != nil {
		closing := "[/" + m[1] + "]"
		if strings.Contains(trimmed[len(m[0]):], closing) {
			c.flushAll()
			c.emit(shortcodeFragment([]string{trimmed}))
			return
		}
		if linesContain(rest, closing) {
			c.flushAll()
			c.mode = modeShortcode
			c.shortcodeTag = m[1]
			c.shortcodeLines = []string{trimmed}
			return
		}
		// No closing tag anywhere: treat the line as plain text below.
	}

	if strings.HasPrefix(trimmed, "|") {
		cells := splitTableRow(trimmed)
		if c.mode == modeTable {
			if !isSeparatorRow(cells) {
				c.tableRows = append(c.tableRows, cells)
			}
			return
		}
		c.flushAll()
		c.mode = modeTable
		c.tableHeader = cells
		c.tableRows = nil
		return
	}

	if trimmed == ">" || strings.HasPrefix(trimmed, "> ") {
		content := strings.TrimSpace(strings.TrimPrefix(trimmed, ">"))
		if c.mode != modeQuote {
			c.flushAll()
			c.mode = modeQuote
			c.quoteLines = nil
		}
		c.quoteLines = append(c.quoteLines, content)
		return
	}

	if trimmed == "" {
		// Blank lines only terminate lists; tables and quotes survive until
		// the next non-matching line.
		if c.mode == modeList {
			c.flushList()
		}
		return
	}

	if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
		c.flushAll()
		level := len(m[1])
		if level == 1 {
			// The document title travels in its own field, not the body.
			return
		}
		text := m[2]
		className := ""
		if cm := headingClassPattern.FindStringSubmatch(text); cm != nil {
			className = cm[1]
			text = headingClassPattern.ReplaceAllString(text, "")
		}
		c.emit(headingFragment(level, strings.TrimSpace(text), className))
		return
	}

	if m := imagePattern.FindStringSubmatch(trimmed); m != nil {
		c.flushAll()
		c.emit(imageFragment(m[2], m[1]))
		return
	}

	if m := unorderedItemPattern.FindStringSubmatch(trimmed); m != nil {
		c.appendListItem(m[1], false)
		return
	}
	if m := orderedItemPattern.FindStringSubmatch(trimmed); m != nil {
		c.appendListItem(m[1], true)
		return
	}

	c.flushAll()
	c.emit(paragraphFragment(trimmed))
}

// appendListItem continues the open list when the item type matches and
// starts a fresh list otherwise, so switching between ordered and unordered
// produces two separate fragments.
func (c *converter) appendListItem(item string, ordered bool) {
	if c.mode == modeList && c.listOrdered == ordered {
		c.listItems = append(c.listItems, item)
		return
	}
	c.flushAll()
	c.mode = modeList
	c.listOrdered = ordered
	c.listItems = []string{item}
}

// flushAll closes any buffered quote, list, and table, in that fixed order.
// Called whenever a new block-level construct is about to begin and once at
// end of input.
func (c *converter) flushAll() {
	c.flushQuote()
	c.flushList()
	c.flushTable()
}

func (c *converter) flushQuote() {
	if c.mode != modeQuote {
		return
	}
	c.emit(quoteFragment(c.quoteLines))
	c.reset()
}

func (c *converter) flushList() {
	if c.mode != modeList {
		return
	}
	c.emit(listFragment(c.listItems, c.listOrdered))
	c.reset()
}

func (c *converter) flushTable() {
	if c.mode != modeTable {
		return
	}
	c.emit(tableFragment(c.tableHeader, c.tableRows))
	c.reset()
}

// closeInput flushes whatever is still buffered when the input runs out so no
// construct loses content to a missing terminator.
func (c *converter) closeInput() {
	switch c.mode {
	case modeCode:
		c.emit(codeFragment(c.codeLines))
		c.reset()
	case modeShortcode:
		c.emit(shortcodeFragment(c.shortcodeLines))
		c.reset()
	case modePassthrough:
		c.emit(strings.Join(c.rawLines, "\n"))
		c.reset()
	}
	c.flushAll()
}

func (c *converter) emit(fragment string) {
	c.fragments = append(c.fragments, fragment)
}

// reset returns the converter to modeNone and clears every per-mode buffer.
func (c *converter) reset() {
	c.mode = modeNone
	c.listItems = nil
	c.tableHeader = nil
	c.tableRows = nil
	c.quoteLines = nil
	c.codeLines = nil
	c.rawLines = nil
	c.rawDepth = 0
	c.shortcodeTag = ""
	c.shortcodeLines = nil
}

// blockCommentDelta reports net block nesting introduced by a line: +1 for
// each opening wp: comment that is not self-closing, -1 for each closing
// comment.
func blockCommentDelta(line string) int {
	delta := 0
	for _, comment := range blockCommentPattern.FindAllString(line, -1) {
		inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(comment, "<!--"), "-->"))
		switch {
		case strings.HasPrefix(inner, "/wp:"):
			delta--
		case strings.HasPrefix(inner, "wp:") && !strings.HasSuffix(inner, "/"):
			delta++
		}
	}
	return delta
}

func linesContain(lines []string, needle string) bool {
	for _, line := range lines {
		if strings.Contains(line, needle) {
			return true
		}
	}
	return false
}

func splitTableRow(line string) []string {
	trimmed := strings.Trim(line, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}

func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		if !tableSeparatorCell.MatchString(cell) {
			return false
		}
	}
	return true
}
