package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Nenotriple/marktext/pkg/markup"
	"github.com/Nenotriple/marktext/pkg/marktext"
)

func newRenderCmd() *cobra.Command {
	var width int
	var plain bool
	var themeName string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render markup from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := getConfig(cmd)
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("width") {
				width = v.GetInt("render.width")
			}
			if width == 0 {
				width = detectWidth(cmd.OutOrStdout())
			}
			if width < 1 {
				return fmt.Errorf("width must be greater than 0")
			}
			if !cmd.Flags().Changed("plain") {
				plain = v.GetBool("render.plain")
			}
			name := themeName
			if !cmd.Flags().Changed("theme") {
				name = v.GetString("theme")
			}
			theme, ok := marktext.ThemeByName(name)
			if !ok {
				return fmt.Errorf("unknown theme %q", name)
			}

			out := cmd.OutOrStdout()
			if plain {
				for _, ln := range marktext.RenderPlain(marktext.Text(src), width) {
					if _, err := fmt.Fprintln(out, ln.Plain); err != nil {
						return err
					}
				}
				return nil
			}
			_, err = fmt.Fprintln(out, marktext.RenderString(markup.Parse(src), width, theme))
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "wrap width in columns (0 = terminal width)")
	cmd.Flags().BoolVar(&plain, "plain", false, "skip markup interpretation")
	cmd.Flags().StringVar(&themeName, "theme", "", "theme to render with")
	registerThemeCompletion(cmd)
	return cmd
}

// detectWidth returns the terminal width of out, or 80 when out is not a
// terminal.
func detectWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 80
}

// readSource reads the file argument, or stdin when absent or "-".
func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}
