package cli

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

type launchRecord struct {
	called   bool
	settings model.Settings
	logger   *slog.Logger
}

// stubLaunchers replaces both front ends for the duration of the test.
func stubLaunchers(t *testing.T) (gui, tui *launchRecord) {
	t.Helper()
	originalGUI, originalTUI := launchGUIFunc, launchTUIFunc
	t.Cleanup(func() {
		launchGUIFunc, launchTUIFunc = originalGUI, originalTUI
	})

	gui, tui = &launchRecord{}, &launchRecord{}
	record := func(target *launchRecord) launcher {
		return func(_ *cobra.Command, settings model.Settings, logger *slog.Logger) error {
			target.called = true
			target.settings = settings
			target.logger = logger
			return nil
		}
	}
	launchGUIFunc = record(gui)
	launchTUIFunc = record(tui)
	return gui, tui
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "none.yaml")
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := NewRootCommand("test-version")
	root.SetArgs(args)
	root.SetOut(&discard{})
	root.SetErr(&discard{})
	return root.Execute()
}

type discard struct{}

func (*discard) Write(p []byte) (int, error) { return len(p), nil }

func TestRoot_NoArgsLaunchesGUI(t *testing.T) {
	gui, tui := stubLaunchers(t)

	err := execute(t, "--config", missingConfig(t))

	require.NoError(t, err)
	assert.True(t, gui.called)
	assert.False(t, tui.called)
	assert.Equal(t, model.DefaultSettings(), gui.settings)
	assert.NotNil(t, gui.logger)
}

func TestRoot_TUISubcommand(t *testing.T) {
	gui, tui := stubLaunchers(t)

	err := execute(t, "tui", "--config", missingConfig(t), "--work", "50", "--break", "10")

	require.NoError(t, err)
	assert.False(t, gui.called)
	assert.True(t, tui.called)
	assert.Equal(t, 50*time.Minute, tui.settings.WorkDuration)
	assert.Equal(t, 10*time.Minute, tui.settings.BreakDuration)
}

func TestRoot_FlagsOverrideFile(t *testing.T) {
	gui, _ := stubLaunchers(t)
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 40\nbreak_minutes: 8\nlog_level: warn\n"), 0o644))

	err := execute(t, "-c", path, "-b", "3", "--log-level", "debug")

	require.NoError(t, err)
	assert.Equal(t, 40*time.Minute, gui.settings.WorkDuration)
	assert.Equal(t, 3*time.Minute, gui.settings.BreakDuration)
	assert.Equal(t, "debug", gui.settings.LogLevel)
}

func TestRoot_RejectsNonPositiveDurations(t *testing.T) {
	for _, args := range [][]string{{"--work", "0"}, {"--break", "-2"}} {
		gui, _ := stubLaunchers(t)

		err := execute(t, append(args, "--config", missingConfig(t))...)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 1 minute")
		assert.False(t, gui.called)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	gui, _ := stubLaunchers(t)
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes = [\n"), 0o644))

	err := execute(t, "--config", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load settings")
	assert.False(t, gui.called)
}

func TestRoot_LogFile(t *testing.T) {
	gui, _ := stubLaunchers(t)
	logPath := filepath.Join(t.TempDir(), "pomodoro.log")
	launchGUIFunc = func(_ *cobra.Command, settings model.Settings, logger *slog.Logger) error {
		gui.called = true
		logger.Info("hello from test")
		return nil
	}

	err := execute(t, "--config", missingConfig(t), "--log-file", logPath)

	require.NoError(t, err)
	assert.True(t, gui.called)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestRoot_RejectsPositionalArgs(t *testing.T) {
	gui, _ := stubLaunchers(t)

	err := execute(t, "extra")

	require.Error(t, err)
	assert.False(t, gui.called)
}

func TestNewRunner_UsesSettings(t *testing.T) {
	settings := model.Settings{WorkDuration: 30 * time.Minute, BreakDuration: 6 * time.Minute}

	runner := newRunner(settings, slog.New(slog.DiscardHandler))
	defer runner.Close()

	state := runner.State()
	assert.Equal(t, 1800, state.WorkDuration)
	assert.Equal(t, 360, state.BreakDuration)
	assert.Equal(t, 1800, state.CurrentTime)
}
