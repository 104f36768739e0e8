package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/colors-autosplitter/internal/exitcode"
	"github.com/CodexForgeBR/colors-autosplitter/internal/logging"
	"github.com/CodexForgeBR/colors-autosplitter/internal/timer"
)

func init() {
	color.NoColor = true
}

// isolate points the global config lookup at an empty directory and runs
// the command from another empty directory.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestExecuteListLevels(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	code := execute([]string{"--list-levels", "--skip-split", "PLANET_WISP_3"}, &out)

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out.String(), "[✓] TROPICAL_RESORT_1")
	assert.Contains(t, out.String(), "[ ] PLANET_WISP_3")
}

func TestExecuteListLevelsHonoursProjectConfig(t *testing.T) {
	isolate(t)
	require.NoError(t, os.WriteFile(".colors-autosplitter", []byte("SPLIT_AQUARIUM_PARK_2=false\n"), 0644))
	var out bytes.Buffer

	code := execute([]string{"--list-levels"}, &out)

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out.String(), "[ ] AQUARIUM_PARK_2")
}

func TestExecuteVersion(t *testing.T) {
	isolate(t)
	var out bytes.Buffer

	code := execute([]string{"--version"}, &out)

	assert.Equal(t, exitcode.Success, code)
	assert.Contains(t, out.String(), "dev (commit: unknown, built: unknown)")
}

func TestExecuteInvalidFlagsExitWithError(t *testing.T) {
	isolate(t)
	var errOut bytes.Buffer
	logging.SetOutput(&bytes.Buffer{}, &errOut)
	defer logging.SetOutput(nil, nil)

	tests := [][]string{
		{"--tick-rate", "0"},
		{"--skip-split", "GREEN_HILL_1"},
		{"--config", filepath.Join(t.TempDir(), "missing")},
		{"--no-such-flag"},
	}
	for _, args := range tests {
		assert.Equal(t, exitcode.Error, execute(args, &bytes.Buffer{}), "args %v", args)
	}
	assert.Contains(t, errOut.String(), "[ERROR]")
}

func TestReportEvent(t *testing.T) {
	var logs, out bytes.Buffer
	logging.SetOutput(&logs, &logs)
	defer logging.SetOutput(nil, nil)

	report := reportEvent(&out)
	report(timer.Event{Kind: timer.EventStart})
	report(timer.Event{Kind: timer.EventSplit, Segment: 1, GameTime: 65210 * time.Millisecond})
	report(timer.Event{
		Kind:     timer.EventReset,
		GameTime: 70 * time.Second,
		Splits:   []time.Duration{65210 * time.Millisecond},
	})

	assert.Contains(t, logs.String(), "[TIMER] Start")
	assert.Contains(t, logs.String(), "[TIMER] Split 1 at 1:05.21")
	assert.Contains(t, logs.String(), "[TIMER] Reset at 1:10.00")
	assert.Contains(t, out.String(), "Run ended at 1:10.00 with 1 splits")
}
