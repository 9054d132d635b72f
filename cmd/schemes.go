package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oshokin/easycodec/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available encoding schemes.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteSchemesCommand(cmd.Context(), appConfig, cmd.OutOrStdout())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(schemesCmd)
}
