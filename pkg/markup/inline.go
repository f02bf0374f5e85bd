package markup

import "strings"

// Marker tokens in match order. Longest first so "***" is never read as
// "**" followed by "*".
var markerTokens = [...]string{"***", "**", "__", "*"}

var markerStyles = map[string]Style{
	"***": Bold | Italic,
	"**":  Bold,
	"__":  Underline,
	"*":   Italic,
}

var styleBits = [...]Style{Bold, Italic, Underline}

// occurrence is one marker found in the input, by byte position.
type occurrence struct {
	pos   int
	width int
	token string
}

type styleEvent struct {
	add   bool
	style Style
}

// ParseSpans splits one line into styled spans. Markers pair like brackets:
// a closing marker must match the innermost open one, enclose at least one
// character, and not span a newline. Anything unpaired stays literal.
func ParseSpans(text string) []Span {
	// Fast path: no marker characters at all.
	if !strings.ContainsAny(text, "*_") {
		return []Span{{Text: text}}
	}

	occs := scanMarkers(text)
	pairs := pairMarkers(occs, text)
	if len(pairs) == 0 {
		return []Span{{Text: text}}
	}

	events := make(map[int][]styleEvent)
	skip := make(map[int]bool)
	for _, p := range pairs {
		for i := p.open.pos; i < p.open.pos+p.open.width; i++ {
			skip[i] = true
		}
		for i := p.close.pos; i < p.close.pos+p.close.width; i++ {
			skip[i] = true
		}
		st := markerStyles[p.open.token]
		openAt := p.open.pos + p.open.width
		events[openAt] = append(events[openAt], styleEvent{add: true, style: st})
		events[p.close.pos] = append(events[p.close.pos], styleEvent{style: st})
	}

	spans := emitSpans(text, events, skip)
	if len(spans) == 0 {
		return []Span{{Text: text}}
	}
	return spans
}

// scanMarkers finds all marker occurrences left to right. Marker bytes are
// ASCII, so byte positions are safe even in multi-byte text.
func scanMarkers(text string) []occurrence {
	var occs []occurrence
	for i := 0; i < len(text); {
		matched := ""
		for _, tok := range markerTokens {
			if strings.HasPrefix(text[i:], tok) {
				matched = tok
				break
			}
		}
		if matched == "" {
			i++
			continue
		}
		occs = append(occs, occurrence{pos: i, width: len(matched), token: matched})
		i += len(matched)
	}
	return occs
}

type markerPair struct {
	open  occurrence
	close occurrence
}

// pairMarkers matches openers to closers with a stack, preserving nesting.
// An occurrence that cannot close the stack top becomes a new opener; leftover
// openers simply never pair and render literally.
func pairMarkers(occs []occurrence, text string) []markerPair {
	var stack []occurrence
	var pairs []markerPair
	for _, occ := range occs {
		if n := len(stack); n > 0 && stack[n-1].token == occ.token {
			open := stack[n-1]
			innerStart := open.pos + open.width
			if occ.pos > innerStart && !strings.Contains(text[innerStart:occ.pos], "\n") {
				stack = stack[:n-1]
				pairs = append(pairs, markerPair{open: open, close: occ})
				continue
			}
		}
		stack = append(stack, occ)
	}
	return pairs
}

// emitSpans walks the text once, toggling styles at event positions and
// skipping paired marker bytes. Style activation is reference-counted per
// bit so redundant nesting (e.g. bold inside bold) stays balanced.
func emitSpans(text string, events map[int][]styleEvent, skip map[int]bool) []Span {
	counts := make(map[Style]int, 3)
	var active Style
	var spans []Span
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = appendSpan(spans, Span{Style: active, Text: buf.String()})
		buf.Reset()
	}
	apply := func(evs []styleEvent) {
		for _, ev := range evs {
			for _, bit := range styleBits {
				if !ev.style.Has(bit) {
					continue
				}
				if ev.add {
					counts[bit]++
				} else if counts[bit]--; counts[bit] <= 0 {
					delete(counts, bit)
				}
			}
		}
		active = 0
		for bit := range counts {
			active |= bit
		}
	}

	for i := 0; i < len(text); i++ {
		if evs, ok := events[i]; ok {
			flush()
			apply(evs)
		}
		if !skip[i] {
			buf.WriteByte(text[i])
		}
	}
	if evs, ok := events[len(text)]; ok {
		flush()
		apply(evs)
	}
	flush()
	return spans
}

// appendSpan merges consecutive spans that share a style.
func appendSpan(spans []Span, s Span) []Span {
	if s.Text == "" {
		return spans
	}
	if n := len(spans); n > 0 && spans[n-1].Style == s.Style {
		spans[n-1].Text += s.Text
		return spans
	}
	return append(spans, s)
}
