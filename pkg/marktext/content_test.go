package marktext

import "testing"

func TestTextStripsLeadingWhitespace(t *testing.T) {
	got := Text("\n\n  hello").PlainText()
	if got != "hello" {
		t.Fatalf("PlainText = %q, want %q", got, "hello")
	}
}

func TestListOneItemPerLine(t *testing.T) {
	got := List{"  first", "second"}.PlainText()
	want := "first\nsecond\n"
	if got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
}

func TestSectionsLayout(t *testing.T) {
	got := Sections{
		{Label: " Intro", Body: "\tbody text"},
		{Label: "More", Body: "rest"},
	}.PlainText()
	want := "Intro\nbody text\n\nMore\nrest\n\n"
	if got != want {
		t.Fatalf("PlainText = %q, want %q", got, want)
	}
}

func TestRichSourceOnlyText(t *testing.T) {
	if src, ok := richSource(Text("  **x**")); !ok || src != "**x**" {
		t.Fatalf("richSource(Text) = %q, %v", src, ok)
	}
	if _, ok := richSource(List{"a"}); ok {
		t.Fatal("richSource(List) accepted")
	}
	if _, ok := richSource(Sections{{Label: "l", Body: "b"}}); ok {
		t.Fatal("richSource(Sections) accepted")
	}
}
