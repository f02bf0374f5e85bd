package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nenotriple/marktext/internal/config"
)

type ctxKey string

const configKey ctxKey = "config"

// Execute is the entrypoint: it builds the root cobra.Command and calls
// its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires configuration.
// Running it with no subcommand starts the interactive demo.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "marktext",
		Short:         "Styled text display for constrained markup",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			_ = v.BindPFlag("log_file", cmd.Flags().Lookup("log-file"))
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), configKey, v)
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (toml|yaml)")
	cmd.PersistentFlags().String("log-file", "", "append debug logs to this file")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newCompletionCmd())

	return cmd
}

func getConfig(cmd *cobra.Command) *viper.Viper {
	v := cmd.Context().Value(configKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: config not initialized")
		os.Exit(1)
	}
	return v.(*viper.Viper)
}
