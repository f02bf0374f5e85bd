package marktext

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
)

// Panel is an embeddable read-only rich text display: a scrollable
// viewport over rendered markup with an optional scrollbar gutter, an
// optional footer row, line selection with clipboard copy, a right-click
// context menu, and fuzzy line search.
//
// Panel follows the Bubble Tea component convention: construct with
// NewPanel, size with SetSize, forward messages through Update, and place
// View's output. When several panels share a screen, SetOffset tells each
// panel where it sits so mouse events hit the right rows.
type Panel struct {
	vp        viewport.Model
	theme     Theme
	content   Content
	rich      bool
	footer    string
	footerFn  func(Panel) string
	scrollbar bool

	width, height    int
	offsetX, offsetY int

	lines []RenderedLine

	selecting bool
	selStart  int
	selEnd    int
	hasSel    bool

	status string

	menu   contextMenu
	search searchState
}

// NewPanel builds a panel from options. The panel has no size until
// SetSize is called; hosts do that from tea.WindowSizeMsg.
func NewPanel(opts ...Option) Panel {
	p := Panel{
		theme:     DefaultTheme(),
		rich:      true,
		scrollbar: true,
		search:    newSearchState(),
	}
	p.vp = viewport.New(0, 0)
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p.applyCollected(o)
	return p
}

// SetSize sets the panel's outer size in cells and re-wraps content.
func (p *Panel) SetSize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p.width, p.height = w, h
	p.syncViewportSize()
	p.refresh(false)
}

// SetOffset records the panel's screen origin so mouse coordinates can be
// translated when the host composes several panels.
func (p *Panel) SetOffset(x, y int) {
	p.offsetX, p.offsetY = x, y
}

// SetText replaces the displayed content and scrolls back to the top.
func (p *Panel) SetText(c Content, rich bool) {
	p.content = c
	p.rich = rich
	p.status = ""
	p.refresh(true)
}

// Configure applies options to a built panel. Content, rich-mode, and
// scrollbar changes re-render from the top; theme changes keep the scroll
// position, like a font swap.
func (p *Panel) Configure(opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	p.applyCollected(o)
}

func (p *Panel) applyCollected(o options) {
	dirty, top := false, false
	if o.theme != nil {
		p.theme = *o.theme
		dirty = true
	}
	if o.contentSet {
		p.content = o.content
		dirty, top = true, true
	}
	if o.rich != nil && *o.rich != p.rich {
		p.rich = *o.rich
		dirty, top = true, true
	}
	if o.footer != nil {
		p.footer = *o.footer
		p.footerFn = nil
	}
	if o.footerFnSet {
		p.footerFn = o.footerFn
		p.footer = ""
	}
	if o.scrollbar != nil && *o.scrollbar != p.scrollbar {
		p.scrollbar = *o.scrollbar
		dirty, top = true, true
	}
	p.syncViewportSize()
	if dirty {
		p.refresh(top)
	}
}

func (p *Panel) syncViewportSize() {
	p.vp.Width = p.textWidth()
	p.vp.Height = p.textHeight()
}

// textWidth is the column count available to text after the scrollbar
// gutter.
func (p Panel) textWidth() int {
	w := p.width
	if p.scrollbar {
		w--
	}
	if w < 1 {
		w = 1
	}
	return w
}

// textHeight is the row count available to text after the footer row.
func (p Panel) textHeight() int {
	h := p.height
	if p.hasFooterRow() {
		h--
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (p Panel) hasFooterRow() bool {
	return p.footer != "" || p.footerFn != nil || p.status != "" ||
		p.search.active || len(p.search.matches) > 0
}

// refresh re-renders content into display lines. Selection and search
// results index into the old layout, so both reset.
func (p *Panel) refresh(top bool) {
	p.lines = RenderContent(p.content, p.rich, p.textWidth(), p.theme)
	p.clearSelection()
	p.search.reset()
	p.syncViewportSize()
	p.syncContent()
	if top {
		p.vp.GotoTop()
	}
}

// syncContent pushes display lines into the viewport, overlaying the
// selection and the current search match.
func (p *Panel) syncContent() {
	rows := make([]string, len(p.lines))
	lo, hi := p.selRange()
	cur := p.search.current()
	for i, ln := range p.lines {
		switch {
		case p.hasSel && i >= lo && i <= hi:
			rows[i] = p.theme.Styles.Selection.Width(p.vp.Width).Render(indentedPlain(ln))
		case i == cur:
			rows[i] = p.theme.Styles.Match.Width(p.vp.Width).Render(indentedPlain(ln))
		default:
			rows[i] = ln.Styled
		}
	}
	off := p.vp.YOffset
	p.vp.SetContent(strings.Join(rows, "\n"))
	p.vp.SetYOffset(off)
}

func indentedPlain(ln RenderedLine) string {
	if ln.Indent > 0 {
		return strings.Repeat(" ", ln.Indent) + ln.Plain
	}
	return ln.Plain
}

// Update handles a message and returns the updated panel. Unhandled
// messages fall through to the viewport for scrolling.
func (p Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResultMsg:
		if msg.err != nil {
			p.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else if msg.lines == 1 {
			p.status = "Copied 1 line"
		} else {
			p.status = fmt.Sprintf("Copied %d lines", msg.lines)
		}
		p.syncViewportSize()
		return p, nil
	case tea.BlurMsg:
		// Terminal lost focus; drop the selection like a desktop widget.
		p.clearSelection()
		p.syncContent()
		return p, nil
	case tea.KeyMsg:
		return p.updateKey(msg)
	case tea.MouseMsg:
		return p.updateMouse(msg)
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p Panel) updateKey(msg tea.KeyMsg) (Panel, tea.Cmd) {
	if p.menu.open {
		return p.updateMenuKey(msg)
	}
	if p.search.active {
		return p.updateSearchKey(msg)
	}
	switch msg.String() {
	case "esc":
		p.clearSelection()
		p.status = ""
		p.search.reset()
		p.syncViewportSize()
		p.syncContent()
		return p, nil
	case "c", "ctrl+c":
		if p.hasSel {
			lo, hi := p.selRange()
			return p, copyCmd(p.SelectedText(), hi-lo+1)
		}
	case "/":
		p.status = ""
		return p, p.openSearch()
	case "n":
		if len(p.search.matches) > 0 {
			p.jumpMatch(1)
			return p, nil
		}
	case "N":
		if len(p.search.matches) > 0 {
			p.jumpMatch(-1)
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

func (p Panel) updateMouse(msg tea.MouseMsg) (Panel, tea.Cmd) {
	x := msg.X - p.offsetX
	y := msg.Y - p.offsetY
	inside := x >= 0 && x < p.width && y >= 0 && y < p.textHeight()

	if p.menu.open {
		return p.updateMenuMouse(msg, x, y)
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp && msg.Action == tea.MouseActionPress:
		if inside {
			p.vp.LineUp(3)
		}
	case msg.Button == tea.MouseButtonWheelDown && msg.Action == tea.MouseActionPress:
		if inside {
			p.vp.LineDown(3)
		}
	case msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress:
		if inside {
			p.openMenu(x, y)
		}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if !inside {
			break
		}
		line := p.lineAt(y)
		if line < 0 {
			p.clearSelection()
			p.syncContent()
			break
		}
		p.selecting = true
		p.selStart, p.selEnd, p.hasSel = line, line, true
		p.syncContent()
	case msg.Action == tea.MouseActionMotion && p.selecting:
		p.selEnd = p.clampLine(p.vp.YOffset + y)
		p.syncContent()
	case msg.Action == tea.MouseActionRelease && p.selecting:
		p.selecting = false
	}
	return p, nil
}

// lineAt maps a panel-relative row to a display line index, or -1 when
// the row is past the content.
func (p Panel) lineAt(y int) int {
	line := p.vp.YOffset + y
	if line < 0 || line >= len(p.lines) {
		return -1
	}
	return line
}

func (p Panel) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(p.lines) {
		return len(p.lines) - 1
	}
	return line
}

func (p *Panel) clearSelection() {
	p.selecting = false
	p.hasSel = false
	p.selStart, p.selEnd = 0, 0
}

func (p *Panel) selectAll() {
	if len(p.lines) == 0 {
		return
	}
	p.selStart, p.selEnd = 0, len(p.lines)-1
	p.hasSel = true
	p.syncContent()
}

func (p Panel) selRange() (lo, hi int) {
	if p.selStart <= p.selEnd {
		return p.selStart, p.selEnd
	}
	return p.selEnd, p.selStart
}

// View renders the panel at its current size.
func (p Panel) View() string {
	body := lipgloss.NewStyle().Width(p.vp.Width).Render(p.vp.View())
	if p.scrollbar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, p.renderScrollbar())
	}
	if p.hasFooterRow() {
		body += "\n" + p.renderFooterRow()
	}
	if p.menu.open {
		body = p.overlayMenu(body)
	}
	return body
}

func (p Panel) renderScrollbar() string {
	h := p.vp.Height
	if h < 1 {
		return ""
	}
	total := p.vp.TotalLineCount()
	thumbH, thumbY := h, 0
	if total > h {
		thumbH = max(1, h*h/total)
		if maxOff := total - h; maxOff > 0 {
			thumbY = p.vp.YOffset * (h - thumbH) / maxOff
		}
	}
	rows := make([]string, h)
	for i := range rows {
		if i >= thumbY && i < thumbY+thumbH {
			rows[i] = p.theme.Styles.ScrollThumb.Render("█")
		} else {
			rows[i] = p.theme.Styles.ScrollTrack.Render("░")
		}
	}
	return strings.Join(rows, "\n")
}

func (p Panel) renderFooterRow() string {
	if p.search.active {
		return p.search.view(p.width, p.theme)
	}
	left := p.footer
	if p.footerFn != nil {
		left = p.footerFn(p)
	}
	right := p.status
	if right == "" && len(p.search.matches) > 0 {
		right = fmt.Sprintf("match %d/%d • n/N", p.search.idx+1, len(p.search.matches))
	}
	space := p.width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if space < 1 {
		space = 1
	}
	return p.theme.Styles.Footer.Render(left + strings.Repeat(" ", space) + right)
}

// Content returns the value most recently given to the panel.
func (p Panel) Content() Content { return p.content }

// RichText reports whether markup is being interpreted.
func (p Panel) RichText() bool { return p.rich }

// Theme returns the active theme.
func (p Panel) Theme() Theme { return p.theme }

// Lines returns the rendered display rows, one per screen line.
func (p Panel) Lines() []RenderedLine { return p.lines }

// ScrollPercent reports scroll progress between 0 and 1.
func (p Panel) ScrollPercent() float64 { return p.vp.ScrollPercent() }

// MenuOpen reports whether the context menu is showing.
func (p Panel) MenuOpen() bool { return p.menu.open }

// Searching reports whether the find prompt is open.
func (p Panel) Searching() bool { return p.search.active }

// SelectedText returns the selected lines joined with newlines, without
// styling or justification padding.
func (p Panel) SelectedText() string {
	if !p.hasSel {
		return ""
	}
	lo, hi := p.selRange()
	parts := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi && i < len(p.lines); i++ {
		parts = append(parts, p.lines[i].Plain)
	}
	return strings.Join(parts, "\n")
}
