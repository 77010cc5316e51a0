package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Show the version, build time, git commit, Go version and platform of this binary.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), GetVersionInfo())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
