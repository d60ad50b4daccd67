package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/valter-silva-au/taskpad/internal/tui"
)

// runTUI is replaced in tests.
var runTUI = func(m tui.Model) error {
	return tui.Run(m, tea.WithAltScreen())
}

func runBoard() error {
	if Controller == nil {
		return fmt.Errorf("task controller not initialized")
	}

	cfg := globalConfig()
	m := tui.New(Controller, catalog(), tui.Options{
		User:         cfg.User,
		Footer:       cfg.Footer,
		SidebarWidth: cfg.UI.SidebarWidth,
	})

	logSessionStarted("board")
	if err := runTUI(m); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
