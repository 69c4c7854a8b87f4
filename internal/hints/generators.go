package hints

import (
	"encoding/json"
	"fmt"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-gutenberg/internal/blockconv"
	"github.com/goliatone/go-gutenberg/internal/identity"
)

// generateClickToTweet emits a self-closing block carrying the first
// non-blank buffered line as the tweet text. JSON marshalling handles the
// quote escaping the block grammar requires.
func generateClickToTweet(buffer []string) string {
	tweet := firstNonBlank(buffer)
	return fmt.Sprintf("<!-- wp:content-kit/click-to-tweet {\"tweet\":%s} /-->", jsonString(tweet))
}

func generateProTip(buffer []string) string {
	body := blockconv.FormatInline(joinedParagraph(buffer))
	return fmt.Sprintf(`<!-- wp:group {"className":"protip-box"} -->
<div class="wp-block-group protip-box"><!-- wp:paragraph {"className":"protip-box__label"} -->
<p class="protip-box__label">%s</p>
<!-- /wp:paragraph --><!-- wp:paragraph {"className":"protip-box__body"} -->
<p class="protip-box__body">%s</p>
<!-- /wp:paragraph --></div>
<!-- /wp:group -->`, proTipLabel, body)
}

func generateDiscount(buffer []string) string {
	body := blockconv.FormatInline(joinedParagraph(buffer))
	return fmt.Sprintf(`<!-- wp:group {"className":"discount-box"} -->
<div class="wp-block-group discount-box"><!-- wp:group {"className":"discount-box__inner"} -->
<div class="wp-block-group discount-box__inner"><!-- wp:paragraph {"className":"discount-box__label"} -->
<p class="discount-box__label">%s</p>
<!-- /wp:paragraph --><!-- wp:paragraph {"className":"discount-box__body"} -->
<p class="discount-box__body">%s</p>
<!-- /wp:paragraph --></div>
<!-- /wp:group --></div>
<!-- /wp:group -->`, discountLabel, body)
}

// generateCTA emits a button fragment from a self-closing cta marker. The
// sponsored attribute adds the matching rel hint to the link.
func generateCTA(attrs map[string]string) string {
	url := attrs["url"]
	text := attrs["text"]
	if text == "" {
		text = defaultCTAButtonText
	}
	rel := "nofollow"
	if attrs["sponsored"] == "true" {
		rel = "nofollow sponsored"
	}
	return fmt.Sprintf(`<!-- wp:buttons -->
<div class="wp-block-buttons"><!-- wp:button {"className":"content-kit-cta"} -->
<div class="wp-block-button content-kit-cta"><a class="wp-block-button__link wp-element-button" href=%q rel=%q>%s</a></div>
<!-- /wp:button --></div>
<!-- /wp:buttons -->`, url, rel, text)
}

func generateKeyTakeaways(buffer []string) string {
	items := bulletItems(buffer)
	var inner strings.Builder
	for i, item := range items {
		anchor := takeawayAnchorPool[i%len(takeawayAnchorPool)]
		inner.WriteString(fmt.Sprintf("<!-- wp:list-item {\"anchor\":%q} -->\n<li id=%q>%s</li>\n<!-- /wp:list-item -->",
			anchor, anchor, blockconv.FormatInline(item)))
	}
	return fmt.Sprintf(`<!-- wp:details {"className":"key-takeaways"} -->
<details class="wp-block-details key-takeaways"><summary>Key Takeaways</summary><!-- wp:list {"className":"key-takeaways__list"} -->
<ul class="wp-block-list key-takeaways__list">%s</ul>
<!-- /wp:list --></details>
<!-- /wp:details -->`, inner.String())
}

// generateJumpLinks builds an anchor list. The **bold** lead before an
// em-dash becomes the link text; the slugified lead is the anchor target.
// Items without an em-dash render as bold-only links.
func generateJumpLinks(buffer []string, attrs map[string]string) string {
	title := attrs["title"]
	if title == "" {
		title = defaultJumpTitle
	}

	var inner strings.Builder
	for _, item := range bulletItems(buffer) {
		lead, description := splitJumpItem(item)
		anchor := anchorSlug(lead)
		inner.WriteString("<!-- wp:list-item -->\n<li>")
		inner.WriteString(fmt.Sprintf("<a href=\"#%s\"><strong>%s</strong></a>", anchor, lead))
		if description != "" {
			inner.WriteString(" — " + blockconv.FormatInline(description))
		}
		inner.WriteString("</li>\n<!-- /wp:list-item -->")
	}

	return fmt.Sprintf(`<!-- wp:group {"className":"jump-links"} -->
<div class="wp-block-group jump-links"><!-- wp:heading {"level":3,"className":"jump-links__title"} -->
<h3 class="wp-block-heading jump-links__title">%s</h3>
<!-- /wp:heading --><!-- wp:list {"className":"jump-links__list"} -->
<ul class="wp-block-list jump-links__list">%s</ul>
<!-- /wp:list --></div>
<!-- /wp:group -->`, title, inner.String())
}

// splitJumpItem separates a jump-links bullet into its bold lead and trailing
// description. The lead keeps only the text inside the leading ** pair.
func splitJumpItem(item string) (lead, description string) {
	lead = item
	if idx := strings.Index(item, "—"); idx >= 0 {
		lead = strings.TrimSpace(item[:idx])
		description = strings.TrimSpace(item[idx+len("—"):])
	}
	lead = strings.TrimSpace(strings.Trim(lead, "*"))
	return lead, description
}

func anchorSlug(text string) string {
	normalized, err := slug.Normalize(text)
	if err != nil || normalized == "" {
		return identity.Token()
	}
	return normalized
}

// generateDataLab emits a self-closing block whose attributes carry the
// title, the comma-separated column header string, and the buffered rows
// joined with escaped newlines.
func generateDataLab(buffer []string, attrs map[string]string) string {
	rows := nonBlank(buffer)
	return fmt.Sprintf("<!-- wp:content-kit/data-lab {\"title\":%s,\"columns\":%s,\"rows\":%s} /-->",
		jsonString(attrs["title"]), jsonString(attrs["columns"]), jsonString(strings.Join(rows, "\n")))
}

type faqQuestion struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Visible bool   `json:"visible"`
}

// generateFAQ parses the buffered lines as question/answer pairs and emits a
// single block carrying both the machine-readable question list and a
// parallel HTML rendering. Two input syntaxes are supported; when a block
// contains any ## heading line the whole block is parsed as heading syntax
// and legacy bold markers are treated as prose.
func generateFAQ(buffer []string) string {
	var questions []faqQuestion
	if usesHeadingSyntax(buffer) {
		questions = parseHeadingFAQ(buffer)
	} else {
		questions = parseLegacyFAQ(buffer)
	}
	if len(questions) == 0 {
		return ""
	}

	payload, err := json.Marshal(questions)
	if err != nil {
		return ""
	}

	var rendered strings.Builder
	for _, q := range questions {
		rendered.WriteString(fmt.Sprintf(`<div class="rank-math-faq-item"><h3 class="rank-math-question">%s</h3><div class="rank-math-answer">%s</div></div>`,
			q.Title, q.Content))
	}

	return fmt.Sprintf("<!-- wp:rank-math/faq-block {\"questions\":%s} -->\n<div class=\"wp-block-rank-math-faq-block\">%s</div>\n<!-- /wp:rank-math/faq-block -->",
		payload, rendered.String())
}

func usesHeadingSyntax(buffer []string) bool {
	for _, line := range buffer {
		if strings.HasPrefix(line, "## ") {
			return true
		}
	}
	return false
}

// parseHeadingFAQ treats each ## line as a question and the prose lines that
// follow as its answer. A question with no prose stays in the list with empty
// content; extraction is best effort, not strict parsing.
func parseHeadingFAQ(buffer []string) []faqQuestion {
	var questions []faqQuestion
	var answer []string

	closeOpen := func() {
		if len(questions) == 0 {
			answer = nil
			return
		}
		questions[len(questions)-1].Content = blockconv.FormatInline(strings.Join(answer, " "))
		answer = nil
	}

	for _, line := range buffer {
		if strings.HasPrefix(line, "## ") {
			closeOpen()
			questions = append(questions, faqQuestion{
				ID:      "faq-question-" + identity.Token(),
				Title:   blockconv.FormatInline(strings.TrimSpace(strings.TrimPrefix(line, "## "))),
				Visible: true,
			})
			continue
		}
		if line == "" || len(questions) == 0 {
			continue
		}
		answer = append(answer, line)
	}
	closeOpen()

	return questions
}

var (
	legacyQuestionPrefix = "**Q:"
	legacyAnswerPrefix   = "**A:**"
)

// parseLegacyFAQ handles the **Q: ...** / **A:** ... pair format. A question
// that never sees an answer marker is dropped when the next question starts.
func parseLegacyFAQ(buffer []string) []faqQuestion {
	var questions []faqQuestion
	var title string
	var answer []string
	answerOpen := false

	closeOpen := func() {
		if title == "" || !answerOpen {
			title = ""
			answer = nil
			answerOpen = false
			return
		}
		questions = append(questions, faqQuestion{
			ID:      "faq-question-" + identity.Token(),
			Title:   blockconv.FormatInline(title),
			Content: blockconv.FormatInline(strings.Join(answer, " ")),
			Visible: true,
		})
		title = ""
		answer = nil
		answerOpen = false
	}

	for _, line := range buffer {
		if strings.HasPrefix(line, legacyQuestionPrefix) {
			closeOpen()
			title = strings.TrimSpace(strings.Trim(strings.TrimPrefix(line, legacyQuestionPrefix), "* "))
			continue
		}
		if strings.HasPrefix(line, legacyAnswerPrefix) {
			answerOpen = true
			if rest := strings.TrimSpace(strings.TrimPrefix(line, legacyAnswerPrefix)); rest != "" {
				answer = append(answer, rest)
			}
			continue
		}
		if line == "" || !answerOpen {
			continue
		}
		answer = append(answer, line)
	}
	closeOpen()

	return questions
}

func joinedParagraph(buffer []string) string {
	return strings.Join(nonBlank(buffer), " ")
}

func nonBlank(buffer []string) []string {
	out := make([]string, 0, len(buffer))
	for _, line := range buffer {
		if strings.TrimSpace(line) != "" {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}

func firstNonBlank(buffer []string) string {
	for _, line := range buffer {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// bulletItems keeps the lines that start with a "- " bullet, stripped of the
// marker. Non-bullet lines are ignored.
func bulletItems(buffer []string) []string {
	items := make([]string, 0, len(buffer))
	for _, line := range buffer {
		if strings.HasPrefix(line, "- ") {
			items = append(items, strings.TrimSpace(strings.TrimPrefix(line, "- ")))
		}
	}
	return items
}

func jsonString(value string) string {
	encoded, err := json.Marshal(value)
	if err != nil {
		return `""`
	}
	return string(encoded)
}
