package marktext

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Nenotriple/marktext/pkg/markup"
)

// Styles groups every Lip Gloss style the widgets draw with. The text
// styles cover the eight inline tag combinations and three heading
// levels; the rest is widget chrome.
type Styles struct {
	Content             lipgloss.Style
	Bold                lipgloss.Style
	Italic              lipgloss.Style
	BoldItalic          lipgloss.Style
	Underline           lipgloss.Style
	BoldUnderline       lipgloss.Style
	ItalicUnderline     lipgloss.Style
	BoldItalicUnderline lipgloss.Style
	H1                  lipgloss.Style
	H2                  lipgloss.Style
	H3                  lipgloss.Style

	Selection    lipgloss.Style
	Match        lipgloss.Style
	Footer       lipgloss.Style
	Status       lipgloss.Style
	TitleBar     lipgloss.Style
	MenuItem     lipgloss.Style
	MenuSelected lipgloss.Style
	MenuDisabled lipgloss.Style
	ScrollThumb  lipgloss.Style
	ScrollTrack  lipgloss.Style

	// BorderColor is shared by the window and context menu borders.
	BorderColor string
}

// Theme is a named Styles set.
type Theme struct {
	Name   string
	Styles Styles
}

// StyleFor maps an inline style bit set to its text style.
func (t Theme) StyleFor(st markup.Style) lipgloss.Style {
	switch {
	case st.Has(markup.Bold | markup.Italic | markup.Underline):
		return t.Styles.BoldItalicUnderline
	case st.Has(markup.Bold | markup.Italic):
		return t.Styles.BoldItalic
	case st.Has(markup.Bold | markup.Underline):
		return t.Styles.BoldUnderline
	case st.Has(markup.Italic | markup.Underline):
		return t.Styles.ItalicUnderline
	case st.Has(markup.Bold):
		return t.Styles.Bold
	case st.Has(markup.Italic):
		return t.Styles.Italic
	case st.Has(markup.Underline):
		return t.Styles.Underline
	}
	return t.Styles.Content
}

// HeadingStyle returns the style for a heading level of 1 to 3.
func (t Theme) HeadingStyle(level int) lipgloss.Style {
	switch level {
	case 1:
		return t.Styles.H1
	case 2:
		return t.Styles.H2
	}
	return t.Styles.H3
}

// WithForeground returns a copy with every text style tinted to the given
// color. Chrome styles keep their own colors. Terminals have no font
// families, so this is the whole of the font-override surface.
func (t Theme) WithForeground(c lipgloss.TerminalColor) Theme {
	s := &t.Styles
	for _, st := range []*lipgloss.Style{
		&s.Content, &s.Bold, &s.Italic, &s.BoldItalic,
		&s.Underline, &s.BoldUnderline, &s.ItalicUnderline,
		&s.BoldItalicUnderline, &s.H1, &s.H2, &s.H3,
	} {
		*st = st.Foreground(c)
	}
	return t
}

// palette is the color seed a built-in theme expands from. Empty strings
// keep the terminal default.
type palette struct {
	text    string
	h1      string
	h2      string
	h3      string
	accent  string
	dim     string
	selFg   string
	selBg   string
	matchFg string
	matchBg string
}

func stylesFromPalette(p palette) Styles {
	base := lipgloss.NewStyle()
	if p.text != "" {
		base = base.Foreground(lipgloss.Color(p.text))
	}
	heading := func(c string) lipgloss.Style {
		st := base.Bold(true)
		if c != "" {
			st = st.Foreground(lipgloss.Color(c))
		}
		return st
	}
	dim := lipgloss.NewStyle().Faint(true)
	if p.dim != "" {
		dim = lipgloss.NewStyle().Foreground(lipgloss.Color(p.dim))
	}
	sel := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.selFg)).
		Background(lipgloss.Color(p.selBg))
	match := lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.matchFg)).
		Background(lipgloss.Color(p.matchBg))
	title := lipgloss.NewStyle().Bold(true)
	accent := lipgloss.NewStyle()
	if p.accent != "" {
		title = title.Foreground(lipgloss.Color(p.accent))
		accent = accent.Foreground(lipgloss.Color(p.accent))
	}
	return Styles{
		Content:             base,
		Bold:                base.Bold(true),
		Italic:              base.Italic(true),
		BoldItalic:          base.Bold(true).Italic(true),
		Underline:           base.Underline(true),
		BoldUnderline:       base.Bold(true).Underline(true),
		ItalicUnderline:     base.Italic(true).Underline(true),
		BoldItalicUnderline: base.Bold(true).Italic(true).Underline(true),
		H1:                  heading(p.h1),
		H2:                  heading(p.h2),
		H3:                  heading(p.h3),

		Selection:    sel,
		Match:        match,
		Footer:       dim,
		Status:       dim,
		TitleBar:     title,
		MenuItem:     base,
		MenuSelected: sel,
		MenuDisabled: lipgloss.NewStyle().Faint(true),
		ScrollThumb:  accent,
		ScrollTrack:  dim,
		BorderColor:  p.accent,
	}
}

// The selection colors repeat across palettes on purpose: a consistent
// selection look regardless of content theme.
var builtinThemes = map[string]Theme{
	"default": {Name: "default", Styles: stylesFromPalette(palette{
		h1: "81", h2: "75", h3: "69",
		accent: "63", dim: "240",
		selFg: "#ffffff", selBg: "#0078d7",
		matchFg: "235", matchBg: "220",
	})},
	"plain": {Name: "plain", Styles: stylesFromPalette(palette{
		accent: "7", dim: "8",
		selFg: "#ffffff", selBg: "#0078d7",
		matchFg: "0", matchBg: "11",
	})},
	"dracula": {Name: "dracula", Styles: stylesFromPalette(palette{
		text: "#f8f8f2", h1: "#bd93f9", h2: "#ff79c6", h3: "#8be9fd",
		accent: "#bd93f9", dim: "#6272a4",
		selFg: "#ffffff", selBg: "#0078d7",
		matchFg: "#282a36", matchBg: "#f1fa8c",
	})},
	"nord": {Name: "nord", Styles: stylesFromPalette(palette{
		text: "#d8dee9", h1: "#88c0d0", h2: "#81a1c1", h3: "#8fbcbb",
		accent: "#81a1c1", dim: "#4c566a",
		selFg: "#ffffff", selBg: "#0078d7",
		matchFg: "#2e3440", matchBg: "#ebcb8b",
	})},
	"gruvbox": {Name: "gruvbox", Styles: stylesFromPalette(palette{
		text: "#ebdbb2", h1: "#fabd2f", h2: "#fe8019", h3: "#b8bb26",
		accent: "#d79921", dim: "#928374",
		selFg: "#ffffff", selBg: "#0078d7",
		matchFg: "#282828", matchBg: "#fabd2f",
	})},
}

// AvailableThemes returns the names of built-in themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a built-in theme by name. The empty name selects the
// default theme.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return builtinThemes["default"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["default"]
}
