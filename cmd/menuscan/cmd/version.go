package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateaulabs/menuscan/internal/version"
)

// versionCmd prints build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		v, commit, date := version.Info()
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "menuscan %s (commit: %s, built: %s)\n", v, commit, date)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
