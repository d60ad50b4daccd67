package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "taskpad",
	Short: "taskpad - a small task list for the terminal",
	Long: `taskpad keeps a list of tasks in memory while it runs. Add a task with a
title and an optional description, mark it done or not done, and delete it
after confirming.

Run without arguments to open the interactive board. Use "taskpad shell"
for a line-oriented prompt, or "taskpad mcp serve" to expose the list to an
MCP client over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBoard()
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taskpad %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
