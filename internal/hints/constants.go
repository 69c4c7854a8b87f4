package hints

// Template-locked values. These are configuration data, not logic: the label
// glyphs and the rotating takeaway anchor pool are pinned so generated
// fragments line up with the style rules themes ship for these class names.
const (
	proTipLabel   = "💡 Pro Tip"
	discountLabel = "🏷️ Exclusive Offer"
	accoladeGlyph = "🏆"

	statsSummary         = "Key Stats"
	defaultJumpTitle     = "In this article"
	defaultCTAButtonText = "Check Price"
)

// takeawayAnchorPool is the fixed identifier rotation for key-takeaways
// items. Items reuse the pool in order (i mod len) rather than drawing random
// tokens so the fragment matches the pinned external template exactly.
var takeawayAnchorPool = []string{
	"takeaway-4fd2",
	"takeaway-9a1c",
	"takeaway-73be",
	"takeaway-e508",
}
