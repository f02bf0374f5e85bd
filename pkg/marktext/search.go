package marktext

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/ansi"
	"github.com/sahilm/fuzzy"
)

// searchState is the fuzzy find prompt that lives in the footer row.
// Matches are display line indexes ordered by score; they survive closing
// the prompt so n/N can cycle afterwards.
type searchState struct {
	active  bool
	input   textinput.Model
	matches []int
	idx     int
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "find"
	return searchState{input: ti, idx: -1}
}

func (s *searchState) reset() {
	s.active = false
	s.input.Blur()
	s.input.SetValue("")
	s.matches = nil
	s.idx = -1
}

// current returns the line index of the active match, or -1.
func (s searchState) current() int {
	if s.idx < 0 || s.idx >= len(s.matches) {
		return -1
	}
	return s.matches[s.idx]
}

func (s searchState) view(width int, theme Theme) string {
	left := s.input.View()
	var right string
	switch {
	case len(s.matches) > 0:
		right = fmt.Sprintf("%d matches", len(s.matches))
	case strings.TrimSpace(s.input.Value()) != "":
		right = "no match"
	}
	space := width - ansi.PrintableRuneWidth(left) - ansi.PrintableRuneWidth(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + theme.Styles.Status.Render(right)
}

// openSearch shows the find prompt and focuses its input.
func (p *Panel) openSearch() tea.Cmd {
	p.search.reset()
	p.search.active = true
	p.search.input.Width = max(10, p.width-10)
	cmd := p.search.input.Focus()
	p.syncViewportSize()
	return cmd
}

func (p Panel) updateSearchKey(msg tea.KeyMsg) (Panel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.search.reset()
		p.syncViewportSize()
		p.syncContent()
		return p, nil
	case "enter":
		// Keep the matches for n/N cycling, drop the prompt.
		p.search.active = false
		p.search.input.Blur()
		p.syncViewportSize()
		if p.search.current() >= 0 {
			p.scrollToLine(p.search.current())
		}
		p.syncContent()
		return p, nil
	}
	var cmd tea.Cmd
	p.search.input, cmd = p.search.input.Update(msg)
	p.runSearch()
	p.syncViewportSize()
	p.syncContent()
	return p, cmd
}

// runSearch recomputes matches for the current query against the plain
// text of every display line.
func (p *Panel) runSearch() {
	query := strings.TrimSpace(p.search.input.Value())
	if query == "" {
		p.search.matches = nil
		p.search.idx = -1
		return
	}
	data := make([]string, len(p.lines))
	for i, ln := range p.lines {
		data[i] = ln.Plain
	}
	found := fuzzy.Find(query, data)
	p.search.matches = p.search.matches[:0]
	for _, m := range found {
		p.search.matches = append(p.search.matches, m.Index)
	}
	if len(p.search.matches) == 0 {
		p.search.idx = -1
		return
	}
	p.search.idx = 0
	p.scrollToLine(p.search.matches[0])
}

// jumpMatch moves to the next or previous match, wrapping around.
func (p *Panel) jumpMatch(delta int) {
	n := len(p.search.matches)
	if n == 0 {
		return
	}
	p.search.idx = ((p.search.idx+delta)%n + n) % n
	p.scrollToLine(p.search.current())
	p.syncContent()
}

// scrollToLine brings a display line into view, roughly centered.
func (p *Panel) scrollToLine(line int) {
	p.vp.SetYOffset(line - p.vp.Height/2)
}
