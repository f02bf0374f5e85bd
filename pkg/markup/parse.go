package markup

import (
	"regexp"
	"strings"
)

var justifyRe = regexp.MustCompile(`(?s)\[justify:(left|center|right)\](.*?)\[/justify\]`)

// RawBlock is an unparsed stretch of input with its justification.
type RawBlock struct {
	Justify Justify
	Text    string
}

// Parse runs the full pipeline: justify-block split, then a line scan per
// block. Line endings are normalized first so CRLF input behaves.
func Parse(text string) Document {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var doc Document
	for _, raw := range SplitJustify(text) {
		doc.Blocks = append(doc.Blocks, Block{
			Justify: raw.Justify,
			Lines:   parseLines(raw.Text),
		})
	}
	return doc
}

// SplitJustify slices the input around [justify:...]...[/justify] regions.
// Stretches outside any region keep JustifyNone. Empty tag bodies are
// dropped, and whitespace-only segments are discarded after the no-match
// fallback, so whitespace-only input yields no blocks at all.
func SplitJustify(text string) []RawBlock {
	var blocks []RawBlock
	last := 0
	for _, m := range justifyRe.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			if pre := text[last:m[0]]; pre != "" {
				blocks = append(blocks, RawBlock{Justify: JustifyNone, Text: pre})
			}
		}
		if content := text[m[4]:m[5]]; content != "" {
			blocks = append(blocks, RawBlock{
				Justify: justifyByName(text[m[2]:m[3]]),
				Text:    content,
			})
		}
		last = m[1]
	}
	if last < len(text) {
		if post := text[last:]; post != "" {
			blocks = append(blocks, RawBlock{Justify: JustifyNone, Text: post})
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, RawBlock{Justify: JustifyNone, Text: text})
	}
	out := blocks[:0]
	for _, b := range blocks {
		if strings.TrimSpace(b.Text) != "" {
			out = append(out, b)
		}
	}
	return out
}

func justifyByName(name string) Justify {
	switch name {
	case "left":
		return JustifyLeft
	case "center":
		return JustifyCenter
	case "right":
		return JustifyRight
	}
	return JustifyNone
}

// parseLines classifies each line of a block. Heading detection looks at the
// trimmed line; body lines keep their original indentation for the inline
// scan. Runs of blank lines collapse to a single blank.
func parseLines(text string) []Line {
	var lines []Line
	blankPending := false
	for _, raw := range splitLines(text) {
		stripped := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(stripped, "### "):
			lines = append(lines, Line{Kind: LineHeading3, Text: stripped[4:]})
			blankPending = false
		case strings.HasPrefix(stripped, "## "):
			lines = append(lines, Line{Kind: LineHeading2, Text: stripped[3:]})
			blankPending = false
		case strings.HasPrefix(stripped, "# "):
			lines = append(lines, Line{Kind: LineHeading1, Text: stripped[2:]})
			blankPending = false
		case stripped != "":
			lines = append(lines, Line{Kind: LineText, Text: raw, Spans: ParseSpans(raw)})
			blankPending = false
		default:
			if !blankPending {
				lines = append(lines, Line{Kind: LineBlank})
				blankPending = true
			}
		}
	}
	return lines
}

// splitLines splits on newlines without producing a trailing empty element
// when the text ends in one.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
