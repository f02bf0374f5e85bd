package marktext

// Option configures a Panel or Window at construction time, or later via
// Configure and Open. Window-only options (title, icon, geometry) are
// ignored by plain panels.
type Option func(*options)

type options struct {
	content     Content
	contentSet  bool
	rich        *bool
	footer      *string
	footerFn    func(Panel) string
	footerFnSet bool
	scrollbar   *bool
	theme       *Theme
	title       *string
	icon        *string
	geometry    *string
}

// WithText sets the displayed content. Passing nil shows the placeholder.
func WithText(c Content) Option {
	return func(o *options) {
		o.content = c
		o.contentSet = true
	}
}

// WithRichText selects between markup interpretation and literal display.
// Panels default to rich.
func WithRichText(rich bool) Option {
	return func(o *options) {
		o.rich = &rich
	}
}

// WithFooter sets static footer text below the text area. The empty string
// removes the footer row. Replaces any footer function.
func WithFooter(text string) Option {
	return func(o *options) {
		o.footer = &text
		o.footerFn = nil
		o.footerFnSet = false
	}
}

// WithFooterFunc sets a footer computed from the panel every frame.
// Replaces any static footer text.
func WithFooterFunc(fn func(Panel) string) Option {
	return func(o *options) {
		o.footerFn = fn
		o.footerFnSet = true
		o.footer = nil
	}
}

// WithScrollbar shows or hides the scrollbar gutter. Panels default to
// showing it; hiding gives the column back to text.
func WithScrollbar(show bool) Option {
	return func(o *options) {
		o.scrollbar = &show
	}
}

// WithTheme sets the style set for text and chrome.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = &t
	}
}

// WithTitle sets a window's title bar text. Windows default to "Text".
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = &title
	}
}

// WithIcon sets a glyph shown before the window title.
func WithIcon(glyph string) Option {
	return func(o *options) {
		o.icon = &glyph
	}
}

// WithGeometry sets a window's size as "COLSxROWS", e.g. "72x20". Invalid
// or empty geometry falls back to sizing from the host terminal.
func WithGeometry(geom string) Option {
	return func(o *options) {
		o.geometry = &geom
	}
}
