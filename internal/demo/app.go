package demo

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Nenotriple/marktext/pkg/markup"
	"github.com/Nenotriple/marktext/pkg/marktext"
)

const (
	overviewPanel = iota
	justifyPanel
	listPanel
	dynamicPanel
	panelCount
)

var panelNames = [panelCount]string{"Overview", "Justify", "List", "Dynamic"}

const dynamicRows = 7

// Config carries the user settings the demo honors.
type Config struct {
	Theme    marktext.Theme
	Title    string
	Icon     string
	Geometry string
}

// App is the interactive showcase: three static panels on top, a dynamic
// panel below them, and a gallery of pop-up windows on the number keys.
// Tab moves keyboard focus between panels; an open window takes all input
// until it is closed.
type App struct {
	cfg Config

	panels [panelCount]marktext.Panel
	rects  [panelCount]rect
	focus  int

	windows map[string]marktext.Window
	active  string

	dynamicIdx  int
	dynamicRich bool
	footerSwaps int

	width, height int
}

type rect struct{ x, y, w, h int }

// New builds the demo application.
func New(cfg Config) App {
	a := App{
		cfg:         cfg,
		dynamicRich: true,
		windows:     make(map[string]marktext.Window),
	}
	theme := marktext.WithTheme(cfg.Theme)
	a.panels[overviewPanel] = marktext.NewPanel(theme,
		marktext.WithText(marktext.Text(overviewText)),
		marktext.WithFooter("Demo footer"))
	a.panels[justifyPanel] = marktext.NewPanel(theme,
		marktext.WithText(marktext.Text(justifyText)),
		marktext.WithFooter("Justification Demo"))
	a.panels[listPanel] = marktext.NewPanel(theme,
		marktext.WithText(listItems),
		marktext.WithRichText(false),
		marktext.WithScrollbar(false))
	a.panels[dynamicPanel] = marktext.NewPanel(theme,
		marktext.WithText(dynamicContent[0]),
		marktext.WithFooterFunc(dynamicFooter),
		marktext.WithScrollbar(false))
	return a
}

// dynamicFooter recomputes from live panel state on every frame.
func dynamicFooter(p marktext.Panel) string {
	mode := "simple"
	if p.RichText() {
		mode = "rich"
	}
	if n := len(p.Lines()); n != 1 {
		return fmt.Sprintf("%d lines • %s", n, mode)
	}
	return "1 line • " + mode
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.layout()
		for key, w := range a.windows {
			w, _ = w.Update(msg)
			a.windows[key] = w
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	if a.active != "" {
		return a.updateWindow(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.updateKey(msg)
	case tea.MouseMsg:
		return a.updateMouse(msg)
	}
	return a.forwardFocused(msg)
}

// layout sizes the panels into a header row, a three-column top section,
// the dynamic panel, and a help row.
func (a *App) layout() {
	if a.width < 1 || a.height < 1 {
		return
	}
	topH := a.height - dynamicRows - 2
	if topH < 3 {
		topH = 3
	}
	colW := (a.width - 2) / 3
	if colW < 10 {
		colW = 10
	}
	lastW := a.width - 2*colW - 2
	if lastW < 10 {
		lastW = 10
	}
	widths := [3]int{colW, colW, lastW}
	x := 0
	for i := 0; i < 3; i++ {
		a.panels[i].SetSize(widths[i], topH)
		a.panels[i].SetOffset(x, 1)
		a.rects[i] = rect{x: x, y: 1, w: widths[i], h: topH}
		x += widths[i] + 1
	}
	a.panels[dynamicPanel].SetSize(a.width, dynamicRows)
	a.panels[dynamicPanel].SetOffset(0, 1+topH)
	a.rects[dynamicPanel] = rect{x: 0, y: 1 + topH, w: a.width, h: dynamicRows}
}

func (a App) updateWindow(msg tea.Msg) (tea.Model, tea.Cmd) {
	w, ok := a.windows[a.active]
	if !ok {
		a.active = ""
		return a, nil
	}
	w, cmd := w.Update(msg)
	a.windows[a.active] = w
	if !w.IsOpen() {
		a.active = ""
	}
	return a, cmd
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the focused panel owns the keyboard, only forward.
	busy := a.panels[a.focus].Searching() || a.panels[a.focus].MenuOpen()
	if !busy {
		switch s := msg.String(); s {
		case "q":
			return a, tea.Quit
		case "tab":
			a.focus = (a.focus + 1) % panelCount
			return a, nil
		case "shift+tab":
			a.focus = (a.focus + panelCount - 1) % panelCount
			return a, nil
		case "right":
			a.dynamicIdx = (a.dynamicIdx + 1) % len(dynamicContent)
			a.panels[dynamicPanel].SetText(dynamicContent[a.dynamicIdx], a.dynamicRich)
			return a, nil
		case "r":
			a.dynamicRich = !a.dynamicRich
			a.panels[dynamicPanel].SetText(dynamicContent[a.dynamicIdx], a.dynamicRich)
			return a, nil
		case "s":
			a.footerSwaps++
			a.panels[dynamicPanel].Configure(
				marktext.WithFooter(fmt.Sprintf("Footer update #%d", a.footerSwaps)))
			return a, nil
		case "x":
			a.panels[dynamicPanel].SetText(nil, a.dynamicRich)
			return a, nil
		default:
			if len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
				return a.openWindow(int(s[0] - '1'))
			}
		}
	}
	return a.forwardFocused(msg)
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonRight) {
		if i, ok := a.panelAt(msg.X, msg.Y); ok {
			a.focus = i
		}
	}
	// Every panel sees the event; offsets keep them from acting on
	// positions outside their own bounds.
	var cmds []tea.Cmd
	for i := range a.panels {
		p, cmd := a.panels[i].Update(msg)
		a.panels[i] = p
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return a, tea.Batch(cmds...)
}

func (a App) forwardFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	p, cmd := a.panels[a.focus].Update(msg)
	a.panels[a.focus] = p
	return a, cmd
}

func (a App) panelAt(x, y int) (int, bool) {
	for i, r := range a.rects {
		if x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h {
			return i, true
		}
	}
	return 0, false
}

func (a App) openWindow(idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(windowVariants) {
		return a, nil
	}
	v := windowVariants[idx]
	w, ok := a.windows[v.key]
	if !ok {
		w = marktext.NewWindow(
			marktext.WithTheme(a.cfg.Theme),
			marktext.WithTitle(a.cfg.Title),
			marktext.WithIcon(a.cfg.Icon),
		)
		if a.width > 0 {
			w, _ = w.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
	}
	opts := []marktext.Option{
		marktext.WithTitle(v.label),
		marktext.WithText(v.content),
		marktext.WithRichText(v.rich),
	}
	switch {
	case v.geometry != "":
		opts = append(opts, marktext.WithGeometry(v.geometry))
	case a.cfg.Geometry != "":
		opts = append(opts, marktext.WithGeometry(a.cfg.Geometry))
	}
	w.Open(opts...)
	a.windows[v.key] = w
	a.active = v.key
	return a, nil
}

func (a App) View() string {
	if a.width < 1 || a.height < 1 {
		return ""
	}
	styles := a.cfg.Theme.Styles
	header := styles.TitleBar.Render("marktext demo")
	focusNote := styles.Status.Render(panelNames[a.focus])
	gap := a.width - lipgloss.Width(header) - lipgloss.Width(focusNote)
	if gap < 1 {
		gap = 1
	}
	headerRow := header + strings.Repeat(" ", gap) + focusNote

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		a.panels[overviewPanel].View(), " ",
		a.panels[justifyPanel].View(), " ",
		a.panels[listPanel].View())
	help := styles.Status.Render(
		"tab focus • → next • r rich • s footer • x clear • 1-7 windows • q quit")

	base := lipgloss.JoinVertical(lipgloss.Left,
		headerRow, top, a.panels[dynamicPanel].View(), help)

	if a.active != "" {
		if w, ok := a.windows[a.active]; ok && w.IsOpen() {
			return w.ViewOver(base)
		}
	}
	return base
}

// Static is the non-interactive showcase: the overview and the
// justification sampler rendered once at the given width.
func Static(width int, theme marktext.Theme) string {
	if width < 1 {
		width = 80
	}
	var b strings.Builder
	b.WriteString(marktext.RenderString(markup.Parse(overviewText), width, theme))
	b.WriteString("\n\n")
	b.WriteString(marktext.RenderString(markup.Parse(justifyText), width, theme))
	return b.String()
}
