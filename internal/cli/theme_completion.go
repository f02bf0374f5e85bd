package cli

import (
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/Nenotriple/marktext/pkg/marktext"
)

// registerThemeCompletion completes --theme values, best fuzzy matches
// first.
func registerThemeCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := marktext.AvailableThemes()
		if toComplete == "" {
			return names, cobra.ShellCompDirectiveNoFileComp
		}
		matches := fuzzy.Find(toComplete, names)
		out := make([]string, 0, len(matches))
		for _, m := range matches {
			out = append(out, m.Str)
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})
}
