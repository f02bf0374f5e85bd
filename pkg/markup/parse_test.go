package markup

import "testing"

func TestParseHeadings(t *testing.T) {
	doc := Parse("# One\n## Two\n### Three")
	if len(doc.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(doc.Blocks))
	}
	lines := doc.Blocks[0].Lines
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	wantKinds := []LineKind{LineHeading1, LineHeading2, LineHeading3}
	wantText := []string{"One", "Two", "Three"}
	for i, ln := range lines {
		if ln.Kind != wantKinds[i] {
			t.Errorf("line %d kind = %v, want %v", i, ln.Kind, wantKinds[i])
		}
		if ln.Text != wantText[i] {
			t.Errorf("line %d text = %q, want %q", i, ln.Text, wantText[i])
		}
	}
}

func TestParseHeadingRequiresSpace(t *testing.T) {
	doc := Parse("#NoSpace")
	ln := doc.Blocks[0].Lines[0]
	if ln.Kind != LineText {
		t.Fatalf("kind = %v, want LineText", ln.Kind)
	}
	if got := ln.Plain(); got != "#NoSpace" {
		t.Fatalf("plain = %q, want %q", got, "#NoSpace")
	}
}

func TestParseHeadingTrimsIndent(t *testing.T) {
	doc := Parse("   ## Padded  ")
	ln := doc.Blocks[0].Lines[0]
	if ln.Kind != LineHeading2 {
		t.Fatalf("kind = %v, want LineHeading2", ln.Kind)
	}
	if ln.Text != "Padded" {
		t.Fatalf("text = %q, want %q", ln.Text, "Padded")
	}
}

func TestParseHeadingKeepsMarkersLiteral(t *testing.T) {
	// Inline markers are not interpreted inside headings.
	doc := Parse("# **loud**")
	ln := doc.Blocks[0].Lines[0]
	if ln.Kind != LineHeading1 || ln.Text != "**loud**" {
		t.Fatalf("line = %+v", ln)
	}
}

func TestParseCollapsesBlankRuns(t *testing.T) {
	doc := Parse("a\n\n\n\nb")
	lines := doc.Blocks[0].Lines
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0].Kind != LineText || lines[1].Kind != LineBlank || lines[2].Kind != LineText {
		t.Fatalf("kinds = %v %v %v", lines[0].Kind, lines[1].Kind, lines[2].Kind)
	}
}

func TestParseKeepsIndentOnTextLines(t *testing.T) {
	doc := Parse("  indented")
	if got := doc.Blocks[0].Lines[0].Plain(); got != "  indented" {
		t.Fatalf("plain = %q, want %q", got, "  indented")
	}
}

func TestParseNoTrailingBlankLine(t *testing.T) {
	doc := Parse("last line\n")
	lines := doc.Blocks[0].Lines
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
}

func TestParseNormalizesCRLF(t *testing.T) {
	doc := Parse("a\r\nb")
	lines := doc.Blocks[0].Lines
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if got := lines[1].Plain(); got != "b" {
		t.Fatalf("plain = %q, want %q", got, "b")
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", " \t\n "} {
		doc := Parse(in)
		if !doc.Empty() {
			t.Fatalf("Parse(%q) not empty: %+v", in, doc)
		}
	}
}

func TestSplitJustifyNoTags(t *testing.T) {
	blocks := SplitJustify("just text")
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	if blocks[0].Justify != JustifyNone || blocks[0].Text != "just text" {
		t.Fatalf("block = %+v", blocks[0])
	}
}

func TestSplitJustifyBasic(t *testing.T) {
	blocks := SplitJustify("before\n[justify:center]mid[/justify]\nafter")
	if len(blocks) != 3 {
		t.Fatalf("blocks = %d, want 3: %+v", len(blocks), blocks)
	}
	if blocks[0].Justify != JustifyNone || blocks[0].Text != "before\n" {
		t.Fatalf("block 0 = %+v", blocks[0])
	}
	if blocks[1].Justify != JustifyCenter || blocks[1].Text != "mid" {
		t.Fatalf("block 1 = %+v", blocks[1])
	}
	if blocks[2].Justify != JustifyNone || blocks[2].Text != "\nafter" {
		t.Fatalf("block 2 = %+v", blocks[2])
	}
}

func TestSplitJustifyDropsWhitespaceGaps(t *testing.T) {
	// Whitespace between consecutive tagged blocks does not survive as its
	// own block.
	blocks := SplitJustify("[justify:left]L[/justify]\n\n[justify:right]R[/justify]")
	if len(blocks) != 2 {
		t.Fatalf("blocks = %d, want 2: %+v", len(blocks), blocks)
	}
	if blocks[0].Justify != JustifyLeft || blocks[1].Justify != JustifyRight {
		t.Fatalf("justs = %v %v", blocks[0].Justify, blocks[1].Justify)
	}
}

func TestSplitJustifyEmptyBody(t *testing.T) {
	blocks := SplitJustify("a[justify:center][/justify]b")
	if len(blocks) != 2 {
		t.Fatalf("blocks = %d, want 2: %+v", len(blocks), blocks)
	}
	for _, b := range blocks {
		if b.Justify != JustifyNone {
			t.Fatalf("justify = %v, want JustifyNone", b.Justify)
		}
	}
}

func TestSplitJustifyMultiline(t *testing.T) {
	blocks := SplitJustify("[justify:right]one\ntwo[/justify]")
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	if blocks[0].Justify != JustifyRight || blocks[0].Text != "one\ntwo" {
		t.Fatalf("block = %+v", blocks[0])
	}
}

func TestSplitJustifyUnknownModeLiteral(t *testing.T) {
	// An unsupported mode is not a tag; the text passes through untouched.
	blocks := SplitJustify("[justify:middle]x[/justify]")
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	if blocks[0].Justify != JustifyNone || blocks[0].Text != "[justify:middle]x[/justify]" {
		t.Fatalf("block = %+v", blocks[0])
	}
}

func TestParseJustifyInlineStyles(t *testing.T) {
	doc := Parse("[justify:center]**big**[/justify]")
	if len(doc.Blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(doc.Blocks))
	}
	b := doc.Blocks[0]
	if b.Justify != JustifyCenter {
		t.Fatalf("justify = %v, want JustifyCenter", b.Justify)
	}
	spans := b.Lines[0].Spans
	if len(spans) != 1 || spans[0].Style != Bold || spans[0].Text != "big" {
		t.Fatalf("spans = %+v", spans)
	}
}

func TestLinePlainJoinsSpans(t *testing.T) {
	ln := Line{Kind: LineText, Spans: []Span{{Text: "a "}, {Style: Bold, Text: "b"}}}
	if got := ln.Plain(); got != "a b" {
		t.Fatalf("plain = %q, want %q", got, "a b")
	}
}

func TestHeadingLevel(t *testing.T) {
	cases := map[LineKind]int{
		LineHeading1: 1,
		LineHeading2: 2,
		LineHeading3: 3,
		LineText:     0,
		LineBlank:    0,
	}
	for kind, want := range cases {
		if got := kind.HeadingLevel(); got != want {
			t.Fatalf("HeadingLevel(%v) = %d, want %d", kind, got, want)
		}
	}
}
