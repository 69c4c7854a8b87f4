package blockconv

import (
	"fmt"
	"html"
	"strings"
)

// Fragment builders emit one self-contained Gutenberg block each. Layout
// matters: WordPress expects the comment delimiters on their own lines with
// the rendered HTML between them, so every builder follows that shape.

func paragraphFragment(text string) string {
	return fmt.Sprintf("<!-- wp:paragraph -->\n<p>%s</p>\n<!-- /wp:paragraph -->", FormatInline(text))
}

func headingFragment(level int, text, className string) string {
	attrs := headingAttrs(level, className)
	classes := "wp-block-heading"
	if className != "" {
		classes += " " + className
	}
	return fmt.Sprintf("<!-- wp:heading%s -->\n<h%d class=%q>%s</h%d>\n<!-- /wp:heading -->",
		attrs, level, classes, FormatInline(text), level)
}

// headingAttrs serialises the heading attribute object, omitting defaults so
// clean markdown round-trips without attribute noise. Level 2 is Gutenberg's
// default heading level.
func headingAttrs(level int, className string) string {
	parts := []string{}
	if level != 2 {
		parts = append(parts, fmt.Sprintf(`"level":%d`, level))
	}
	if className != "" {
		parts = append(parts, fmt.Sprintf(`"className":%q`, className))
	}
	if len(parts) == 0 {
		return ""
	}
	return " {" + strings.Join(parts, ",") + "}"
}

func imageFragment(src, alt string) string {
	return fmt.Sprintf("<!-- wp:image -->\n<figure class=\"wp-block-image\"><img src=%q alt=%q/></figure>\n<!-- /wp:image -->",
		html.EscapeString(src), html.EscapeString(alt))
}

func codeFragment(lines []string) string {
	escaped := html.EscapeString(strings.Join(lines, "\n"))
	return fmt.Sprintf("<!-- wp:code -->\n<pre class=\"wp-block-code\"><code>%s</code></pre>\n<!-- /wp:code -->", escaped)
}

func quoteFragment(lines []string) string {
	formatted := make([]string, 0, len(lines))
	for _, line := range lines {
		formatted = append(formatted, FormatInline(line))
	}
	return fmt.Sprintf("<!-- wp:quote -->\n<blockquote class=\"wp-block-quote\"><p>%s</p></blockquote>\n<!-- /wp:quote -->",
		strings.Join(formatted, "<br>"))
}

func listFragment(items []string, ordered bool) string {
	tag := "ul"
	attrs := ""
	if ordered {
		tag = "ol"
		attrs = ` {"ordered":true}`
	}

	var inner strings.Builder
	for _, item := range items {
		inner.WriteString("<!-- wp:list-item -->\n")
		inner.WriteString(fmt.Sprintf("<li>%s</li>\n", FormatInline(item)))
		inner.WriteString("<!-- /wp:list-item -->")
	}

	return fmt.Sprintf("<!-- wp:list%s -->\n<%s class=\"wp-block-list\">%s</%s>\n<!-- /wp:list -->",
		attrs, tag, inner.String(), tag)
}

func tableFragment(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("<!-- wp:table -->\n<figure class=\"wp-block-table\"><table class=\"has-fixed-layout\">")

	if len(header) > 0 {
		b.WriteString("<thead><tr>")
		for _, cell := range header {
			b.WriteString("<th>" + FormatInline(cell) + "</th>")
		}
		b.WriteString("</tr></thead>")
	}

	b.WriteString("<tbody>")
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + FormatInline(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table></figure>\n<!-- /wp:table -->")

	return b.String()
}

func shortcodeFragment(lines []string) string {
	return fmt.Sprintf("<!-- wp:shortcode -->\n%s\n<!-- /wp:shortcode -->", strings.Join(lines, "\n"))
}
