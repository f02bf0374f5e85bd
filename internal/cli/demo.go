package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nenotriple/marktext/internal/demo"
	"github.com/Nenotriple/marktext/pkg/marktext"
)

// runDemo starts the interactive showcase. When stdout is not a terminal
// it prints the static showcase once instead.
func runDemo(cmd *cobra.Command) error {
	v := getConfig(cmd)
	name := v.GetString("theme")
	theme, ok := marktext.ThemeByName(name)
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}

	out := cmd.OutOrStdout()
	outFile, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(outFile.Fd())) {
		_, err := fmt.Fprintln(out, demo.Static(v.GetInt("render.width"), theme))
		return err
	}

	if path := v.GetString("log_file"); path != "" {
		f, err := tea.LogToFile(path, "marktext")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// The alt screen owns stderr while the program runs.
		log.SetOutput(io.Discard)
	}

	app := demo.New(demo.Config{
		Theme:    theme,
		Title:    v.GetString("window.title"),
		Icon:     v.GetString("window.icon"),
		Geometry: v.GetString("window.geometry"),
	})
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithReportFocus()}
	if v.GetBool("mouse") {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(app, opts...).Run()
	return err
}
