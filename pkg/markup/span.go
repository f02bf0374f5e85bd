package markup

import "strings"

// Style is a bit set of inline text styles. The zero value is plain content.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
	Underline
)

// Has reports whether every bit in s is set.
func (st Style) Has(s Style) bool { return st&s == s }

func (st Style) String() string {
	if st == 0 {
		return "content"
	}
	var parts []string
	if st.Has(Bold) {
		parts = append(parts, "bold")
	}
	if st.Has(Italic) {
		parts = append(parts, "italic")
	}
	if st.Has(Underline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, "+")
}

// Span is a run of text within one line sharing a single style.
type Span struct {
	Style Style
	Text  string
}

// LineKind classifies a parsed line.
type LineKind uint8

const (
	LineText LineKind = iota
	LineBlank
	LineHeading1
	LineHeading2
	LineHeading3
)

// HeadingLevel returns 1-3 for heading kinds and 0 otherwise.
func (k LineKind) HeadingLevel() int {
	switch k {
	case LineHeading1:
		return 1
	case LineHeading2:
		return 2
	case LineHeading3:
		return 3
	}
	return 0
}

// Line is one display line. Headings carry their text raw (markers inside a
// heading are not interpreted); text lines carry styled spans; blank lines
// carry nothing.
type Line struct {
	Kind  LineKind
	Text  string
	Spans []Span
}

// Plain returns the line's text with style markers already removed.
func (l Line) Plain() string {
	if l.Kind != LineText {
		return l.Text
	}
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Justify is a block-level horizontal alignment.
type Justify uint8

const (
	// JustifyNone is the default: text outside any justify block.
	JustifyNone Justify = iota
	JustifyLeft
	JustifyCenter
	JustifyRight
)

func (j Justify) String() string {
	switch j {
	case JustifyLeft:
		return "left"
	case JustifyCenter:
		return "center"
	case JustifyRight:
		return "right"
	}
	return "none"
}

// Block is a run of lines sharing one justification.
type Block struct {
	Justify Justify
	Lines   []Line
}

// Document is the parsed form of a whole input string.
type Document struct {
	Blocks []Block
}

// Empty reports whether the document renders nothing at all.
func (d Document) Empty() bool { return len(d.Blocks) == 0 }
