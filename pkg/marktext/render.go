package marktext

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/Nenotriple/marktext/pkg/markup"
)

// RenderedLine is one display row. Styled carries ANSI styling and any
// justification padding; Plain is the unpadded text without markers or
// escapes and feeds selection, copy, and search. Indent is the cell count
// justification added on the left of Styled.
type RenderedLine struct {
	Styled string
	Plain  string
	Indent int
}

// RenderContent renders any content shape. Nil shows the placeholder; rich
// mode requires Text and degrades to a literal error line for other shapes.
func RenderContent(c Content, rich bool, width int, theme Theme) []RenderedLine {
	if c == nil {
		return RenderPlain(Text(noTextPlaceholder), width)
	}
	if rich {
		src, ok := richSource(c)
		if !ok {
			return RenderPlain(Text(richTextTypeError), width)
		}
		return Render(markup.Parse(src), width, theme)
	}
	return RenderPlain(c, width)
}

// Render lays out a parsed document at the given width.
func Render(doc markup.Document, width int, theme Theme) []RenderedLine {
	if width < 1 {
		width = 1
	}
	var out []RenderedLine
	for _, blk := range doc.Blocks {
		for _, ln := range blk.Lines {
			out = append(out, renderLine(ln, blk.Justify, width, theme)...)
		}
	}
	return out
}

// RenderPlain lays out content without interpreting markup. Wrapping still
// applies; styling does not.
func RenderPlain(c Content, width int) []RenderedLine {
	if width < 1 {
		width = 1
	}
	text := noTextPlaceholder
	if c != nil {
		text = c.PlainText()
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	wrapped := wrap.String(wordwrap.String(text, width), width)
	wrapped = strings.TrimRight(wrapped, "\n")
	lines := strings.Split(wrapped, "\n")
	out := make([]RenderedLine, 0, len(lines))
	for _, ln := range lines {
		out = append(out, RenderedLine{Styled: ln, Plain: ln})
	}
	return out
}

// RenderString renders a document to one string, a row per line. This is
// the non-interactive path used by the render command.
func RenderString(doc markup.Document, width int, theme Theme) string {
	lines := Render(doc, width, theme)
	rows := make([]string, len(lines))
	for i, ln := range lines {
		rows[i] = ln.Styled
	}
	return strings.Join(rows, "\n")
}

func renderLine(ln markup.Line, j markup.Justify, width int, theme Theme) []RenderedLine {
	switch ln.Kind {
	case markup.LineBlank:
		return []RenderedLine{{}}
	case markup.LineText:
		rows := wrapSpans(ln.Spans, width)
		out := make([]RenderedLine, 0, len(rows))
		for _, row := range rows {
			styled, plain := renderSpans(row, theme)
			out = append(out, justifyRow(styled, plain, j, width))
		}
		return out
	default:
		style := theme.HeadingStyle(ln.Kind.HeadingLevel())
		wrapped := wrap.String(wordwrap.String(ln.Text, width), width)
		var out []RenderedLine
		for _, row := range strings.Split(wrapped, "\n") {
			out = append(out, justifyRow(style.Render(row), row, j, width))
		}
		return out
	}
}

func renderSpans(spans []markup.Span, theme Theme) (styled, plain string) {
	var sb, pb strings.Builder
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		sb.WriteString(theme.StyleFor(s.Style).Render(s.Text))
		pb.WriteString(s.Text)
	}
	return sb.String(), pb.String()
}

func justifyRow(styled, plain string, j markup.Justify, width int) RenderedLine {
	indent := 0
	if pad := width - ansi.PrintableRuneWidth(plain); pad > 0 {
		switch j {
		case markup.JustifyCenter:
			indent = pad / 2
		case markup.JustifyRight:
			indent = pad
		}
	}
	if indent > 0 {
		styled = strings.Repeat(" ", indent) + styled
	}
	return RenderedLine{Styled: styled, Plain: plain, Indent: indent}
}

// styledRune is one cell-ish unit during wrapping; wide runes count for
// their display width.
type styledRune struct {
	r  rune
	st markup.Style
}

func cellWidth(r rune) int {
	return ansi.PrintableRuneWidth(string(r))
}

// wrapSpans word-wraps one line of spans to width columns, keeping style
// boundaries. Whitespace at a break point vanishes, matching word-wrap
// conventions; words longer than the width are hard-broken.
func wrapSpans(spans []markup.Span, width int) [][]markup.Span {
	var runes []styledRune
	for _, s := range spans {
		for _, r := range s.Text {
			runes = append(runes, styledRune{r: r, st: s.Style})
		}
	}
	if len(runes) == 0 {
		return [][]markup.Span{nil}
	}

	var rows [][]markup.Span
	var line, space, word []styledRune
	lineW, spaceW, wordW := 0, 0, 0

	flushRow := func() {
		rows = append(rows, rowSpans(line))
		line, lineW = nil, 0
	}
	commitWord := func() {
		if len(word) == 0 {
			return
		}
		if lineW > 0 && lineW+spaceW+wordW > width {
			flushRow()
		} else if len(space) > 0 {
			line = append(line, space...)
			lineW += spaceW
		}
		space, spaceW = nil, 0
		for lineW+wordW > width {
			avail := width - lineW
			k, used := 0, 0
			for k < len(word) {
				w := cellWidth(word[k].r)
				if used+w > avail {
					break
				}
				used += w
				k++
			}
			if k == 0 {
				if lineW > 0 {
					flushRow()
					continue
				}
				// A single rune wider than the row; emit it anyway.
				k, used = 1, cellWidth(word[0].r)
			}
			line = append(line, word[:k]...)
			lineW += used
			word = word[k:]
			wordW -= used
			flushRow()
		}
		line = append(line, word...)
		lineW += wordW
		word, wordW = nil, 0
	}

	for _, sr := range runes {
		if sr.r == ' ' {
			commitWord()
			space = append(space, sr)
			spaceW++
		} else {
			word = append(word, sr)
			wordW += cellWidth(sr.r)
		}
	}
	commitWord()
	rows = append(rows, rowSpans(line))
	return rows
}

// rowSpans folds styled runes back into spans, merging same-style runs.
func rowSpans(runes []styledRune) []markup.Span {
	var spans []markup.Span
	var cur strings.Builder
	var curStyle markup.Style
	for i, sr := range runes {
		if i > 0 && sr.st != curStyle {
			spans = append(spans, markup.Span{Style: curStyle, Text: cur.String()})
			cur.Reset()
		}
		curStyle = sr.st
		cur.WriteRune(sr.r)
	}
	if cur.Len() > 0 {
		spans = append(spans, markup.Span{Style: curStyle, Text: cur.String()})
	}
	return spans
}
