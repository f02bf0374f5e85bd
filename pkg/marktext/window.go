package marktext

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
)

// Hard floor for window size; geometry and tiny terminals clamp to this.
const (
	minWindowWidth  = 20
	minWindowHeight = 8
)

const defaultWindowTitle = "Text"

// closeHint sits at the right edge of the title row; clicking it closes
// the window, as does esc.
const closeHint = "esc ✕"

// Window is a pop-up text display: a Panel wrapped in a bordered box with
// a title bar, composited over the host's view while open. Closing hides
// the window but keeps its content and options for the next Open.
type Window struct {
	panel    Panel
	title    string
	icon     string
	geometry string

	open         bool
	termW, termH int

	width, height int
	x, y          int
}

// NewWindow builds a hidden window. Open shows it.
func NewWindow(opts ...Option) Window {
	w := Window{title: defaultWindowTitle, panel: NewPanel()}
	w.applyOptions(opts)
	return w
}

// Open applies options, shows the window, and recenters it over the host.
// Reopening an open window just reconfigures and recenters it.
func (w *Window) Open(opts ...Option) {
	w.applyOptions(opts)
	w.open = true
	w.layout()
}

// Close hides the window. State is kept for the next Open.
func (w *Window) Close() { w.open = false }

// IsOpen reports whether the window is showing.
func (w Window) IsOpen() bool { return w.open }

// Title returns the current title bar text.
func (w Window) Title() string { return w.title }

// Geometry returns the configured geometry string, possibly empty.
func (w Window) Geometry() string { return w.geometry }

// Panel returns the inner text panel.
func (w Window) Panel() Panel { return w.panel }

// SetText replaces the window content.
func (w *Window) SetText(c Content, rich bool) {
	w.panel.SetText(c, rich)
}

// Configure applies options without changing visibility.
func (w *Window) Configure(opts ...Option) {
	w.applyOptions(opts)
}

func (w *Window) applyOptions(opts []Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.title != nil {
		w.title = *o.title
	}
	if o.icon != nil {
		w.icon = *o.icon
	}
	if o.geometry != nil {
		w.geometry = *o.geometry
	}
	w.panel.applyCollected(o)
	w.layout()
}

// ParseGeometry parses a "COLSxROWS" size like "80x24".
func ParseGeometry(geom string) (cols, rows int, err error) {
	s := strings.ToLower(strings.TrimSpace(geom))
	cs, rs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("geometry %q: want COLSxROWS", geom)
	}
	cols, err = strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return 0, 0, fmt.Errorf("geometry %q: bad column count", geom)
	}
	rows, err = strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return 0, 0, fmt.Errorf("geometry %q: bad row count", geom)
	}
	if cols < 1 || rows < 1 {
		return 0, 0, fmt.Errorf("geometry %q: sizes must be positive", geom)
	}
	return cols, rows, nil
}

// layout computes the window box and centers it, then sizes the inner
// panel. Explicit geometry wins; otherwise the box takes a share of the
// terminal with fallbacks for small ones.
func (w *Window) layout() {
	termW, termH := w.termW, w.termH
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	var bw, bh int
	if cols, rows, err := ParseGeometry(w.geometry); err == nil {
		bw, bh = cols, rows
	} else {
		bw = int(float64(termW) * 0.6)
		if termW < 80 {
			bw = termW - 4
		}
		if bw < 40 {
			bw = max(32, termW-2)
		}
		bh = int(float64(termH) * 0.7)
		if termH < 20 {
			bh = termH - 2
		}
		if bh < 10 {
			bh = max(8, termH-1)
		}
	}
	// Clamp to the host, then to the floor; the floor wins.
	bw = min(bw, termW)
	bh = min(bh, termH)
	bw = max(bw, minWindowWidth)
	bh = max(bh, minWindowHeight)

	w.width, w.height = bw, bh
	w.x = max(0, (termW-bw)/2)
	w.y = max(0, (termH-bh)/2)

	// Border and padding take two columns each side; the title row takes
	// one line under the top border.
	w.panel.SetSize(bw-4, bh-3)
	w.panel.SetOffset(w.x+2, w.y+2)
}

// Update handles a message. Size messages are tracked even while hidden;
// everything else is dropped unless the window is open. Esc closes the
// window once the inner panel's menu and prompt are done with it.
func (w Window) Update(msg tea.Msg) (Window, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		w.termW, w.termH = size.Width, size.Height
		w.layout()
		return w, nil
	}
	if !w.open {
		return w, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" && !w.panel.MenuOpen() && !w.panel.Searching() {
			w.open = false
			return w, nil
		}
	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress {
			hintW := ansi.PrintableRuneWidth(closeHint)
			onHint := msg.Y == w.y+1 &&
				msg.X >= w.x+w.width-2-hintW && msg.X < w.x+w.width-2
			if onHint {
				w.open = false
				return w, nil
			}
		}
	}
	var cmd tea.Cmd
	w.panel, cmd = w.panel.Update(msg)
	return w, cmd
}

// ViewOver composites the window over the host view. While closed, the
// base view passes through untouched.
func (w Window) ViewOver(base string) string {
	if !w.open {
		return base
	}
	termW, termH := w.termW, w.termH
	if termW <= 0 {
		termW = 80
	}
	if termH <= 0 {
		termH = 24
	}
	dimBase := lipglossv2.NewStyle().Faint(true).Render(base)
	baseLayer := lipglossv2.NewLayer(dimBase).
		Width(termW).
		Height(termH)
	fgLayer := lipglossv2.NewLayer(w.chrome()).
		Width(w.width).
		Height(w.height).
		X(w.x).
		Y(w.y)
	return lipglossv2.NewCanvas(baseLayer, fgLayer).Render()
}

// chrome renders the bordered box: title row, then the panel.
func (w Window) chrome() string {
	innerW := w.width - 4
	hint := closeHint
	title := w.title
	if w.icon != "" {
		title = w.icon + " " + title
	}
	title = truncateCells(title, innerW-ansi.PrintableRuneWidth(hint)-1)
	left := w.panel.theme.Styles.TitleBar.Render(title)
	right := w.panel.theme.Styles.Status.Render(hint)
	space := innerW - ansi.PrintableRuneWidth(title) - ansi.PrintableRuneWidth(hint)
	if space < 1 {
		space = 1
	}
	titleRow := left + strings.Repeat(" ", space) + right

	box := lipglossv2.NewStyle().
		Width(w.width - 2).
		Height(w.height - 2).
		Padding(0, 1).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color(w.panel.theme.Styles.BorderColor))
	return box.Render(titleRow + "\n" + w.panel.View())
}

// truncateCells cuts a string to a cell budget, ending with an ellipsis
// when something was dropped.
func truncateCells(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if ansi.PrintableRuneWidth(s) <= limit {
		return s
	}
	runes := []rune(s)
	used := 0
	for i, r := range runes {
		rw := cellWidth(r)
		if used+rw > limit-1 {
			return string(runes[:i]) + "…"
		}
		used += rw
	}
	return s
}
