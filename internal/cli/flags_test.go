package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/colors-autosplitter/internal/config"
)

// parse binds flags to a fresh default config and parses args.
func parse(t *testing.T, args ...string) (*cobra.Command, *config.Config) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cmd := &cobra.Command{Use: "test"}
	BindFlags(cmd, cfg)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, cfg
}

// ---------------------------------------------------------------------------
// BindFlags
// ---------------------------------------------------------------------------

func TestBindFlags_DefaultValues(t *testing.T) {
	_, cfg := parse(t)

	assert.Equal(t, config.DefaultProcessNames, cfg.ProcessNames)
	assert.Equal(t, config.DefaultTickRate, cfg.TickRate)
	assert.Empty(t, cfg.ConfigFile)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.SkipSplits)
	assert.False(t, cfg.ListLevels)
}

func TestBindFlags_ProcessNameReplacesDefaults(t *testing.T) {
	_, cfg := parse(t, "--process-name", "a.exe", "--process-name", "b.exe")
	assert.Equal(t, []string{"a.exe", "b.exe"}, cfg.ProcessNames)
}

func TestBindFlags_ValueFlags(t *testing.T) {
	_, cfg := parse(t, "--tick-rate", "120", "-v", "--config", "x.conf", "--list-levels",
		"--skip-split", "PLANET_WISP_3", "--skip-split", "aquarium-park-1")

	assert.Equal(t, 120, cfg.TickRate)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "x.conf", cfg.ConfigFile)
	assert.True(t, cfg.ListLevels)
	assert.Equal(t, []string{"PLANET_WISP_3", "aquarium-park-1"}, cfg.SkipSplits)
}

// ---------------------------------------------------------------------------
// ValidateFlags
// ---------------------------------------------------------------------------

func TestValidateFlags_TickRateBounds(t *testing.T) {
	tests := []struct {
		rate    string
		wantErr bool
	}{
		{"1", false},
		{"60", false},
		{"1000", false},
		{"0", true},
		{"-1", true},
		{"1001", true},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			cmd, cfg := parse(t, "--tick-rate", tt.rate)
			err := ValidateFlags(cmd, cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "--tick-rate")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFlags_EmptyProcessName(t *testing.T) {
	cmd, cfg := parse(t, "--process-name", " ")
	err := ValidateFlags(cmd, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--process-name")
}

func TestValidateFlags_ConfigFileMustExist(t *testing.T) {
	cmd, cfg := parse(t, "--config", filepath.Join(t.TempDir(), "missing"))
	err := ValidateFlags(cmd, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--config")

	path := filepath.Join(t.TempDir(), "present")
	require.NoError(t, os.WriteFile(path, []byte("VERBOSE=1\n"), 0644))
	cmd, cfg = parse(t, "--config", path)
	assert.NoError(t, ValidateFlags(cmd, cfg))
}

func TestValidateFlags_UnknownSkipSplit(t *testing.T) {
	cmd, cfg := parse(t, "--skip-split", "GREEN_HILL_1")
	err := ValidateFlags(cmd, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--skip-split")
}

// ---------------------------------------------------------------------------
// Overrides
// ---------------------------------------------------------------------------

func TestOverrides_NothingChanged(t *testing.T) {
	cmd, cfg := parse(t)
	assert.Empty(t, Overrides(cmd.Flags(), cfg))
}

func TestOverrides_ValueFlags(t *testing.T) {
	cmd, cfg := parse(t, "--process-name", "a.exe", "--process-name", "b.exe", "--tick-rate", "30", "--verbose")
	assert.Equal(t, map[string]string{
		"PROCESS_NAMES": "a.exe,b.exe",
		"TICK_RATE":     "30",
		"VERBOSE":       "true",
	}, Overrides(cmd.Flags(), cfg))
}

func TestOverrides_Negations(t *testing.T) {
	cmd, cfg := parse(t,
		"--no-start-anypercent",
		"--no-start-sonic-simulator",
		"--no-start-egg-shuttle",
		"--no-reset-anypercent",
		"--no-reset-egg-shuttle=false",
	)
	assert.Equal(t, map[string]string{
		"START_ANYPERCENT":      "false",
		"START_SONIC_SIMULATOR": "false",
		"START_EGG_SHUTTLE":     "false",
		"RESET_ANYPERCENT":      "false",
	}, Overrides(cmd.Flags(), cfg))
}

func TestOverrides_SkipSplits(t *testing.T) {
	cmd, cfg := parse(t, "--skip-split", "planet-wisp-3", "--skip-split", "NOT_A_LEVEL")
	assert.Equal(t, map[string]string{
		"SPLIT_PLANET_WISP_3": "false",
	}, Overrides(cmd.Flags(), cfg))
}

func TestOverrides_FeedLoadWithPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "explicit")
	require.NoError(t, os.WriteFile(path, []byte("TICK_RATE=30\nSTART_EGG_SHUTTLE=true\n"), 0644))

	cmd, cfg := parse(t, "--tick-rate", "90", "--no-start-egg-shuttle")
	final, err := config.LoadWithPrecedence("", "", path, Overrides(cmd.Flags(), cfg))
	require.NoError(t, err)

	assert.Equal(t, 90, final.TickRate)
	assert.False(t, final.StartEggShuttle)
}
