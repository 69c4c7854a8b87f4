// Package hints expands author-inserted marker comments
// (<!-- @name ... --> ... <!-- @end -->) into pre-templated Gutenberg block
// fragments. The expander is a single forward scan holding one open hint at a
// time; the product-roundup kind additionally runs its own sub-section scan
// over the lines it buffered.
package hints
