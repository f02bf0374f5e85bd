package marktext

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copyResultMsg conveys the outcome of a clipboard write back to Update.
type copyResultMsg struct {
	lines int
	err   error
}

// copyCmd writes text to the system clipboard off the update loop and
// reports back with a copyResultMsg.
func copyCmd(text string, lines int) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{lines: lines, err: clipboard.WriteAll(text)}
	}
}
