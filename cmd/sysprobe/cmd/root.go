// Package cmd provides CLI commands for sysprobe.
package cmd

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version information, injected at build time via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Global flags
var (
	cfgFile  string // Config file path
	logLevel string // Log level
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sysprobe",
	Short: "Single-shot host diagnostic probe",
	Long: `sysprobe collects OS identity and root disk usage, checks free space
against a threshold, appends a line to an audit log and writes a JSON
status snapshot for CI/CD gates.

Exit codes:
  0  snapshot written
  1  free disk space below disk_alert_percent
  2  collection or output failure`,
	Version: Version,
	// Run displays help when called without any subcommands
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(2)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// GetConfigFile returns the config file path from command line flag.
func GetConfigFile() string {
	return cfgFile
}

// GetLogLevel returns the log level from command line flag.
func GetLogLevel() string {
	return logLevel
}

// GetVersionInfo returns formatted version information.
func GetVersionInfo() string {
	return Version + "\n" +
		"Build Time: " + BuildTime + "\n" +
		"Git Commit: " + GitCommit + "\n" +
		"Go Version: " + runtime.Version() + "\n" +
		"OS/Arch: " + runtime.GOOS + "/" + runtime.GOARCH
}
