package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/valter-silva-au/taskpad/internal/shell"
)

// newShellInput is replaced in tests.
var newShellInput = shell.NewLineInput

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Manage tasks from a line-oriented prompt",
	Long: `Start a prompt that reads one command per line.

Commands: add, list, done <id>, rm <id>, dump, export <format> <file>, help,
quit. Deleting asks for confirmation. When stdin is not a terminal the
commands are read from it unchanged, so the shell can be scripted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Controller == nil {
			return fmt.Errorf("task controller not initialized")
		}

		in := newShellInput()
		defer func() { _ = in.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logSessionStarted("shell")
		if err := shell.New(Controller, catalog(), in, cmd.OutOrStdout()).Run(ctx); err != nil {
			return fmt.Errorf("running shell: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shellCmd)
}
