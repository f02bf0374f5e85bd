package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Nenotriple/marktext/pkg/marktext"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := getConfig(cmd).GetString("theme")
			for _, name := range marktext.AvailableThemes() {
				marker := " "
				if name == active {
					marker = "*"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
