package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives m on the alternate screen until the user quits or ctx ends.
func Run(ctx context.Context, m Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
