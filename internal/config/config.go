// Package config defines the autosplitter configuration model and default
// values.
//
// Configuration is assembled from multiple sources with a strict precedence
// chain: built-in defaults < global config file < project config file <
// explicit config file < CLI flag overrides.
package config

import (
	"os"
	"path/filepath"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
	"github.com/CodexForgeBR/colors-autosplitter/internal/splitter"
)

// SplitPrefix prefixes the per-level split keys, e.g. SPLIT_PLANET_WISP_3.
const SplitPrefix = "SPLIT_"

// baseVars are the whitelisted keys that are not per-level.
var baseVars = []string{
	"PROCESS_NAMES",
	"TICK_RATE",
	"VERBOSE",
	"START_ANYPERCENT",
	"START_SONIC_SIMULATOR",
	"START_EGG_SHUTTLE",
	"RESET_ANYPERCENT",
	"RESET_EGG_SHUTTLE",
}

// WhitelistedVars lists every configuration variable name that may appear in
// config files: the base keys followed by one SPLIT_ key per level.
// Variables not in this list are silently ignored during loading.
func WhitelistedVars() []string {
	vars := append([]string(nil), baseVars...)
	for _, id := range level.All() {
		vars = append(vars, SplitKey(id))
	}
	return vars
}

// SplitKey returns the config key controlling the split after id.
func SplitKey(id level.ID) string {
	return SplitPrefix + id.Key()
}

// Config holds every configuration field for the autosplitter.
type Config struct {
	// Target process.
	ProcessNames []string
	TickRate     int // ticks per second

	// Runtime flags.
	Verbose bool

	// Start and reset toggles.
	StartAnyPercent     bool
	StartSonicSimulator bool
	StartEggShuttle     bool
	ResetAnyPercent     bool
	ResetEggShuttle     bool

	// Splits maps each level to whether leaving it splits.
	Splits map[level.ID]bool

	// CLI-only flags (not loaded from config files).
	ConfigFile string
	ListLevels bool
	SkipSplits []string
}

// DefaultProcessNames are the executable names of the supported releases.
var DefaultProcessNames = []string{"SonicColorsUltimate.exe", "Sonic Colors - Ultimate.exe"}

// DefaultTickRate matches the polling cadence of common autosplitter hosts.
const DefaultTickRate = 60

// Accepted tick rates, wherever TICK_RATE comes from.
const (
	MinTickRate = 1
	MaxTickRate = 1000
)

// NewDefaultConfig returns a Config populated with all built-in default values.
func NewDefaultConfig() *Config {
	cfg := &Config{
		ProcessNames:        append([]string(nil), DefaultProcessNames...),
		TickRate:            DefaultTickRate,
		StartAnyPercent:     true,
		StartSonicSimulator: true,
		StartEggShuttle:     true,
		ResetAnyPercent:     true,
		ResetEggShuttle:     true,
		Splits:              make(map[level.ID]bool),
	}
	for _, id := range level.All() {
		cfg.Splits[id] = true
	}
	return cfg
}

// Settings converts the toggles into the form the decision functions use.
func (c *Config) Settings() splitter.Settings {
	s := splitter.Settings{
		StartAnyPercent:     c.StartAnyPercent,
		StartSonicSimulator: c.StartSonicSimulator,
		StartEggShuttle:     c.StartEggShuttle,
		ResetAnyPercent:     c.ResetAnyPercent,
		ResetEggShuttle:     c.ResetEggShuttle,
		Splits:              make(map[level.ID]bool, len(c.Splits)),
	}
	for id, on := range c.Splits {
		s.Splits[id] = on
	}
	return s
}

// GlobalConfigPath returns the per-user config file location, or "" if the
// user config directory cannot be determined.
func GlobalConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "colors-autosplitter", "config")
}

// ProjectConfigPath is the config file looked up in the working directory.
const ProjectConfigPath = ".colors-autosplitter"
