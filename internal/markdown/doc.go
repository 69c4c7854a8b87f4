// Package markdown provides the markdown-adjacent helpers around the block
// pipeline: frontmatter extraction ahead of conversion and a goldmark-backed
// HTML preview renderer so editors can diff source against block output.
package markdown
