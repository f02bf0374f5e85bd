package config

// ConfigOption describes one configuration key: its default value and the
// comment the generator writes above it.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their
// meanings. This is the single source of truth for defaults, validation,
// and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "theme", Default: "default", Comment: "Color theme; `marktext themes` lists the built-in names"},
		{Key: "mouse", Default: true, Comment: "Mouse support: wheel scrolling, selection, right-click menu"},
		{Key: "log_file", Default: "", Comment: "Append debug logs to this file; empty disables logging"},

		{Key: "window.title", Default: "Text", Comment: "Default pop-up window title"},
		{Key: "window.icon", Default: "", Comment: "Glyph shown before pop-up window titles"},
		{Key: "window.geometry", Default: "", Comment: "Pop-up size as COLSxROWS, e.g. \"100x30\"; empty sizes from the terminal"},

		{Key: "render.width", Default: 80, Comment: "Wrap width for the render command; 0 uses the terminal width"},
		{Key: "render.plain", Default: false, Comment: "Skip markup interpretation in the render command"},
	}
}
