package demo

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/Nenotriple/marktext/pkg/marktext"
)

func newApp(t *testing.T) App {
	t.Helper()
	a := New(Config{Theme: marktext.DefaultTheme(), Title: "Text"})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func mouse(t *testing.T, a App, msg tea.MouseMsg) App {
	t.Helper()
	m, _ := a.Update(msg)
	return m.(App)
}

func maxRowWidth(lines []marktext.RenderedLine) int {
	w := 0
	for _, ln := range lines {
		if len(ln.Plain) > w {
			w = len(ln.Plain)
		}
	}
	return w
}

func TestAppViewShowsPanels(t *testing.T) {
	a := newApp(t)
	require.Equal(t, overviewPanel, a.focus)

	v := a.View()
	require.Contains(t, v, "marktext demo")
	require.Contains(t, v, "marktext Overview")
	require.Contains(t, v, "Demo footer")
	require.Contains(t, v, "Justification Demo")
	require.Contains(t, v, "Simple mode accepts lists.")
	require.Contains(t, v, "lines • rich")
	require.Contains(t, v, "1-7 windows")
}

func TestAppViewBeforeSizeIsEmpty(t *testing.T) {
	a := New(Config{Theme: marktext.DefaultTheme()})
	require.Equal(t, "", a.View())
}

func TestAppDynamicCycleAndRichToggle(t *testing.T) {
	a := newApp(t)
	require.Contains(t, a.panels[dynamicPanel].View(), "Dynamic Rich")

	// The second entry is a list; rich mode rejects it with the
	// literal error line.
	a = press(t, a, "right")
	require.Equal(t, 1, a.dynamicIdx)
	require.Contains(t, a.panels[dynamicPanel].View(),
		"Error: Rich text mode requires a string input.")

	a = press(t, a, "r")
	require.False(t, a.dynamicRich)
	v := a.panels[dynamicPanel].View()
	require.Contains(t, v, "Dynamic list entry")
	require.Contains(t, v, "Still readable")
	require.Contains(t, v, "3 lines • simple")

	a = press(t, a, "x")
	require.Contains(t, a.panels[dynamicPanel].View(), "No text available")

	a = press(t, a, "right")
	require.Equal(t, 2, a.dynamicIdx)
	require.Contains(t, a.panels[dynamicPanel].View(), "quick notices")
}

func TestAppFooterSwap(t *testing.T) {
	a := newApp(t)
	require.Contains(t, a.panels[dynamicPanel].View(), "lines • rich")

	a = press(t, a, "s")
	require.Contains(t, a.panels[dynamicPanel].View(), "Footer update #1")

	a = press(t, a, "s")
	require.Contains(t, a.panels[dynamicPanel].View(), "Footer update #2")
}

func TestAppWindowGallery(t *testing.T) {
	a := newApp(t)

	a = press(t, a, "5")
	require.Equal(t, "large", a.active)
	require.True(t, a.windows["large"].IsOpen())
	require.Contains(t, a.View(), "Large window")

	// An open window takes all input.
	a = press(t, a, "right")
	require.Equal(t, 0, a.dynamicIdx)

	a = press(t, a, "esc")
	require.Equal(t, "", a.active)
	require.False(t, a.windows["large"].IsOpen())
	require.NotContains(t, a.View(), "Large window")

	a = press(t, a, "4")
	require.Equal(t, "none", a.active)
	require.Contains(t, a.View(), "No content")
	require.Contains(t, a.View(), "No text available")
}

func TestAppWindowResizePropagates(t *testing.T) {
	a := newApp(t)
	a = press(t, a, "1")
	require.Greater(t, maxRowWidth(a.windows["rich"].Panel().Lines()), 35)

	m, _ := a.Update(tea.WindowSizeMsg{Width: 44, Height: 18})
	a = m.(App)
	require.True(t, a.windows["rich"].IsOpen())
	require.LessOrEqual(t, maxRowWidth(a.windows["rich"].Panel().Lines()), 35)
}

func TestAppTabFocus(t *testing.T) {
	a := newApp(t)
	require.Equal(t, overviewPanel, a.focus)

	a = press(t, a, "tab")
	require.Equal(t, justifyPanel, a.focus)

	a = press(t, a, "shift+tab")
	require.Equal(t, overviewPanel, a.focus)
}

func TestAppSearchTakesKeyboard(t *testing.T) {
	a := newApp(t)
	a = press(t, a, "/")
	require.True(t, a.panels[overviewPanel].Searching())

	// q belongs to the prompt now, not the quit binding.
	a = press(t, a, "q")
	require.True(t, a.panels[overviewPanel].Searching())

	// ctrl+c still quits from anywhere.
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	a = press(t, a, "esc")
	require.False(t, a.panels[overviewPanel].Searching())

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppMouseFocusFollowsPress(t *testing.T) {
	a := newApp(t)

	a = mouse(t, a, tea.MouseMsg{
		X: 45, Y: 5,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	require.Equal(t, justifyPanel, a.focus)

	a = mouse(t, a, tea.MouseMsg{
		X: 5, Y: 33,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	require.Equal(t, dynamicPanel, a.focus)

	// Header row is outside every panel; focus stays put.
	a = mouse(t, a, tea.MouseMsg{
		X: 5, Y: 0,
		Button: tea.MouseButtonLeft, Action: tea.MouseActionPress,
	})
	require.Equal(t, dynamicPanel, a.focus)

	a = mouse(t, a, tea.MouseMsg{
		X: 85, Y: 5,
		Button: tea.MouseButtonRight, Action: tea.MouseActionPress,
	})
	require.Equal(t, listPanel, a.focus)
	require.True(t, a.panels[listPanel].MenuOpen())
}

func TestStaticIncludesShowcase(t *testing.T) {
	s := Static(80, marktext.DefaultTheme())
	require.Contains(t, s, "marktext Overview")
	require.Contains(t, s, "Left-justify (default)")
	require.NotContains(t, s, "[justify:")

	require.Equal(t, s, Static(0, marktext.DefaultTheme()))
}
