// Package markup parses a constrained Markdown-like dialect into styled
// spans suitable for terminal rendering.
//
// The dialect is deliberately small:
//   - lines starting with "# ", "## ", or "### " are headings (levels 1-3)
//   - *italic*, **bold**, ***bold italic***, and __underline__ markers may
//     nest, producing combined styles such as bold-underline
//   - [justify:left|center|right]...[/justify] aligns whole blocks
//
// Parsing is a single pass: justify blocks are split first, then each line
// is classified, and inline markers are paired within a line. Malformed or
// unpaired markers degrade to literal text; there is no error recovery to
// perform because nothing can fail.
package markup
