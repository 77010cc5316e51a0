package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sysprobe/internal/config"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long: `Load the config file strictly and report every invalid field.
Unlike run, a missing or invalid file is an error here.`,
	Run: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate executes the validate command logic.
func runValidate(cmd *cobra.Command, args []string) {
	configPath := GetConfigFile()

	if _, err := config.Load(configPath); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Config validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Config is valid: %s\n", configPath)
}
