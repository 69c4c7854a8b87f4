// Package blockconv converts markdown text into WordPress Gutenberg block
// markup. The converter is a line-oriented scanner with a single active
// buffering mode (code fence, list, table, quote, shortcode, or raw block
// passthrough); content that is already expressed as block markup is detected
// and re-emitted unchanged so conversion is idempotent.
package blockconv
