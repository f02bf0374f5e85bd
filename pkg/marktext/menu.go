package marktext

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/ansi"
)

// Context menu entries, in display order.
const (
	menuCopy = iota
	menuSelectAll
	menuFind
	menuEntryCount
)

var menuLabels = [menuEntryCount]string{"Copy", "Select all", "Find"}

// contextMenu is the right-click menu state. Geometry is computed at
// render time so the menu stays inside the panel.
type contextMenu struct {
	open bool
	x, y int
	sel  int
}

func (p *Panel) openMenu(x, y int) {
	p.menu = contextMenu{open: true, x: x, y: y}
	if !p.hasSel {
		// Copy is disabled without a selection; start below it.
		p.menu.sel = menuSelectAll
	}
}

func (p *Panel) closeMenu() {
	p.menu.open = false
}

func (p Panel) updateMenuKey(msg tea.KeyMsg) (Panel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		p.closeMenu()
	case "up", "k":
		p.menu.sel = (p.menu.sel + menuEntryCount - 1) % menuEntryCount
	case "down", "j":
		p.menu.sel = (p.menu.sel + 1) % menuEntryCount
	case "enter":
		return p.activateMenu(p.menu.sel)
	}
	return p, nil
}

func (p Panel) updateMenuMouse(msg tea.MouseMsg, x, y int) (Panel, tea.Cmd) {
	mx, my, mw, mh := p.menuGeometry()
	overItem := x > mx && x < mx+mw-1 && y > my && y < my+mh-1
	item := y - my - 1

	switch {
	case msg.Action == tea.MouseActionMotion:
		if overItem {
			p.menu.sel = item
		}
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if overItem {
			return p.activateMenu(item)
		}
		p.closeMenu()
	case msg.Button == tea.MouseButtonRight && msg.Action == tea.MouseActionPress:
		// Reanchor rather than stacking a second menu.
		p.openMenu(x, y)
	}
	return p, nil
}

func (p Panel) activateMenu(item int) (Panel, tea.Cmd) {
	p.closeMenu()
	switch item {
	case menuCopy:
		if p.hasSel {
			lo, hi := p.selRange()
			return p, copyCmd(p.SelectedText(), hi-lo+1)
		}
	case menuSelectAll:
		p.selectAll()
	case menuFind:
		p.status = ""
		return p, p.openSearch()
	}
	return p, nil
}

// menuGeometry returns the menu box position and size, clamped to the
// panel.
func (p Panel) menuGeometry() (x, y, w, h int) {
	inner := 0
	for _, label := range menuLabels {
		if lw := ansi.PrintableRuneWidth(label); lw > inner {
			inner = lw
		}
	}
	inner += 2 // a cell of air around the label
	w, h = inner+2, menuEntryCount+2
	x, y = p.menu.x, p.menu.y
	if x+w > p.width {
		x = p.width - w
	}
	if y+h > p.height {
		y = p.height - h
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y, w, h
}

func (p Panel) renderMenu(innerW int) string {
	rows := make([]string, 0, menuEntryCount)
	for i, label := range menuLabels {
		style := p.theme.Styles.MenuItem
		switch {
		case i == menuCopy && !p.hasSel:
			style = p.theme.Styles.MenuDisabled
		case i == p.menu.sel:
			style = p.theme.Styles.MenuSelected
		}
		rows = append(rows, style.Width(innerW).Render(" "+label))
	}
	box := lipglossv2.NewStyle().
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color(p.theme.Styles.BorderColor))
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// overlayMenu composites the menu over the panel body at its anchor.
func (p Panel) overlayMenu(base string) string {
	mx, my, mw, mh := p.menuGeometry()
	fg := p.renderMenu(mw - 2)
	baseLayer := lipglossv2.NewLayer(base).
		Width(p.width).
		Height(p.height)
	fgLayer := lipglossv2.NewLayer(fg).
		Width(mw).
		Height(mh).
		X(mx).
		Y(my)
	return lipglossv2.NewCanvas(baseLayer, fgLayer).Render()
}
