package hints

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-gutenberg/internal/blockconv"
	"github.com/goliatone/go-gutenberg/internal/identity"
)

// Product roundup sub-sections. These markers live inside a product-roundup
// region and are scanned independently of the outer hint vocabulary.
const (
	sectionAccolade = "accolade"
	sectionImage    = "image"
	sectionStats    = "stats"
	sectionDiscount = "discount"
)

var inlineSectionPattern = regexp.MustCompile(`^<!--\s*@([a-z-]+)\s*-->(.*?)<!--\s*@end-([a-z-]+)\s*-->$`)

// roundupSections is the parse result of a product-roundup body. A nil/empty
// field means the sub-section was absent and is omitted from the composite.
type roundupSections struct {
	accolade    []string
	image       []string
	stats       []string
	discount    []string
	cta         map[string]string
	description []string
}

// generateProductRoundup assembles one composite fragment from the roundup
// body: name heading, accolade, loose description, sideloaded image, stats
// accordion, CTA button, and discount box, in that order. Absent sub-sections
// are simply left out.
func generateProductRoundup(buffer []string, attrs map[string]string) string {
	sections := scanRoundupSections(buffer)

	name := attrs["name"]
	token := identity.ProductToken(attrs["id"])
	anchor := "product-" + token

	parts := []string{
		fmt.Sprintf("<!-- wp:heading {\"level\":3,\"className\":\"product-roundup__name\",\"anchor\":%q} -->\n<h3 class=\"wp-block-heading product-roundup__name\" id=%q>%s</h3>\n<!-- /wp:heading -->",
			anchor, anchor, name),
	}

	if len(sections.accolade) > 0 {
		parts = append(parts, fmt.Sprintf("<!-- wp:paragraph {\"className\":\"product-roundup__accolade\"} -->\n<p class=\"product-roundup__accolade\">%s %s</p>\n<!-- /wp:paragraph -->",
			accoladeGlyph, blockconv.FormatInline(strings.Join(sections.accolade, " "))))
	}

	if len(sections.description) > 0 {
		parts = append(parts, fmt.Sprintf("<!-- wp:paragraph -->\n<p>%s</p>\n<!-- /wp:paragraph -->",
			blockconv.FormatInline(strings.Join(sections.description, " "))))
	}

	if src := strings.TrimSpace(strings.Join(sections.image, "")); src != "" {
		parts = append(parts, fmt.Sprintf("<!-- wp:image {\"className\":\"product-roundup__image\"} -->\n<figure class=\"wp-block-image product-roundup__image\"><img src=%q alt=%q/></figure>\n<!-- /wp:image -->",
			src, name))
	}

	if items := bulletItems(sections.stats); len(items) > 0 {
		var inner strings.Builder
		for _, item := range items {
			inner.WriteString(fmt.Sprintf("<!-- wp:list-item -->\n<li>%s</li>\n<!-- /wp:list-item -->", blockconv.FormatInline(item)))
		}
		parts = append(parts, fmt.Sprintf(`<!-- wp:details {"className":"product-roundup__stats"} -->
<details class="wp-block-details product-roundup__stats"><summary>%s</summary><!-- wp:list -->
<ul class="wp-block-list">%s</ul>
<!-- /wp:list --></details>
<!-- /wp:details -->`, statsSummary, inner.String()))
	}

	if sections.cta != nil {
		parts = append(parts, generateCTA(sections.cta))
	}

	if len(sections.discount) > 0 {
		parts = append(parts, generateDiscount(sections.discount))
	}

	return fmt.Sprintf("<!-- wp:group {\"className\":\"product-roundup\"} -->\n<div class=\"wp-block-group product-roundup\">%s</div>\n<!-- /wp:group -->",
		strings.Join(parts, "\n"))
}

// scanRoundupSections walks the buffered body once. Sub-sections may appear
// either as a single-line inline pair or as a multi-line open/close pair; a
// cta marker is always a single self-closing line. Lines outside any
// sub-section accumulate as loose description text.
func scanRoundupSections(buffer []string) roundupSections {
	sections := roundupSections{}
	open := ""

	appendTo := func(section string, lines ...string) {
		switch section {
		case sectionAccolade:
			sections.accolade = append(sections.accolade, lines...)
		case sectionImage:
			sections.image = append(sections.image, lines...)
		case sectionStats:
			sections.stats = append(sections.stats, lines...)
		case sectionDiscount:
			sections.discount = append(sections.discount, lines...)
		}
	}

	for _, line := range buffer {
		if open != "" {
			if name, ok := markerName(line); ok && name == "end-"+open {
				open = ""
				continue
			}
			appendTo(open, line)
			continue
		}

		if m := inlineSectionPattern.FindStringSubmatch(line); m != nil && m[1] == m[3] && isRoundupSection(m[1]) {
			appendTo(m[1], strings.TrimSpace(m[2]))
			continue
		}

		if name, ok := markerName(line); ok {
			switch {
			case name == kindCTA:
				sections.cta = parseAttrs(line)
			case isRoundupSection(name):
				open = name
			}
			// Unknown markers inside a roundup are dropped rather than
			// rendered as description text.
			continue
		}

		if strings.TrimSpace(line) != "" {
			sections.description = append(sections.description, line)
		}
	}

	return sections
}

func isRoundupSection(name string) bool {
	switch name {
	case sectionAccolade, sectionImage, sectionStats, sectionDiscount:
		return true
	}
	return false
}
