package marktext

import (
	"fmt"
	"strings"
	"unicode"
)

// Texts shown in place of content when there is nothing to render or the
// value does not fit the requested mode.
const (
	noTextPlaceholder = "No text available"
	richTextTypeError = "Error: Rich text mode requires a string input."
)

// Content is a displayable value. Three shapes are supported: Text, List,
// and Sections. A nil Content renders a placeholder.
type Content interface {
	// PlainText renders the value for simple (non-rich) display.
	PlainText() string
}

// Text is a plain string value. Markup is only ever interpreted for Text.
type Text string

func (t Text) PlainText() string { return stripLeading(string(t)) }

// List displays one item per line.
type List []string

func (l List) PlainText() string {
	var b strings.Builder
	for _, item := range l {
		b.WriteString(stripLeading(item))
		b.WriteByte('\n')
	}
	return b.String()
}

// Section is one labeled stretch of a Sections value.
type Section struct {
	Label string
	Body  string
}

// Sections displays label/body pairs in slice order, a blank line after
// each.
type Sections []Section

func (s Sections) PlainText() string {
	var b strings.Builder
	for _, sec := range s {
		fmt.Fprintf(&b, "%s\n%s\n\n", stripLeading(sec.Label), stripLeading(sec.Body))
	}
	return b.String()
}

// richSource returns the markup source for rich rendering. Only Text
// qualifies; everything else degrades to the type-error notice.
func richSource(c Content) (string, bool) {
	t, ok := c.(Text)
	if !ok {
		return "", false
	}
	return stripLeading(string(t)), true
}

// stripLeading drops leading whitespace, including newlines.
func stripLeading(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}
