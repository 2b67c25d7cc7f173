package cli

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
	"pomodoro/internal/tui"
)

func launchTUI(cmd *cobra.Command, settings model.Settings, logger *slog.Logger) error {
	guard, err := platform.AcquireSingleInstance(AppName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	runner := newRunner(settings, logger)
	defer runner.Close()

	program := tea.NewProgram(
		tui.New(runner, runner.Subscribe(16)),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	logger.Info("terminal timer started")
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
