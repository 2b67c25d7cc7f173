// Package cli provides the command-line interface for the timer.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timer"
	"pomodoro/internal/logging"
	"pomodoro/internal/storage"
)

// AppName names the config directory and the single-instance lock.
const AppName = "Pomodoro"

// launcher starts a front end with resolved settings.
type launcher func(cmd *cobra.Command, settings model.Settings, logger *slog.Logger) error

// Launch functions are variables so tests can stub them.
var (
	launchGUIFunc launcher = launchGUI
	launchTUIFunc launcher = launchTUI
)

type rootOptions struct {
	configPath   string
	logLevel     string
	logFile      string
	workMinutes  int
	breakMinutes int
}

// NewRootCommand creates the root command. Running it without a subcommand
// opens the desktop window.
func NewRootCommand(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "pomodoro",
		Short: "Pomodoro work/break timer",
		Long: `pomodoro counts down alternating work and break intervals.
When an interval reaches zero the timer switches to the other session
and keeps running. Durations change in one-minute steps and never drop
below one minute.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, launchGUIFunc, cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "settings file (.yaml or .toml); defaults to the user config dir")
	flags.IntVarP(&opts.workMinutes, "work", "w", 0, "work interval in minutes (overrides settings)")
	flags.IntVarP(&opts.breakMinutes, "break", "b", 0, "break interval in minutes (overrides settings)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(newTUICommand(opts))
	return root
}

func newTUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Logging to the terminal would corrupt the screen.
			return run(cmd, opts, launchTUIFunc, io.Discard)
		},
	}
}

func run(cmd *cobra.Command, opts *rootOptions, launch launcher, defaultLog io.Writer) error {
	settings, err := resolveSettings(cmd, opts)
	if err != nil {
		return err
	}

	logOutput := defaultLog
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		logOutput = file
	}
	logger := logging.New(logOutput, settings.LogLevel)
	logger.Debug("settings resolved",
		"work", settings.WorkDuration,
		"break", settings.BreakDuration)

	return launch(cmd, settings, logger)
}

// resolveSettings layers defaults, the settings file and explicit flags.
func resolveSettings(cmd *cobra.Command, opts *rootOptions) (model.Settings, error) {
	settings, err := storage.LoadSettings(AppName, opts.configPath)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("work") {
		if opts.workMinutes < 1 {
			return settings, fmt.Errorf("--work must be at least 1 minute, got %d", opts.workMinutes)
		}
		settings.WorkDuration = time.Duration(opts.workMinutes) * time.Minute
	}
	if flags.Changed("break") {
		if opts.breakMinutes < 1 {
			return settings, fmt.Errorf("--break must be at least 1 minute, got %d", opts.breakMinutes)
		}
		settings.BreakDuration = time.Duration(opts.breakMinutes) * time.Minute
	}
	if flags.Changed("log-level") {
		settings.LogLevel = opts.logLevel
	}
	return settings, nil
}

// newRunner builds the timer for settings on the wall clock.
func newRunner(settings model.Settings, logger *slog.Logger) *timer.Runner {
	engine := timer.New(settings.TimerState())
	return timer.NewRunner(engine, timer.RealScheduler{}, timer.Options{
		TickInterval: time.Second,
		Logger:       logger,
	})
}
