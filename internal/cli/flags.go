// Package cli provides flag binding and validation for the autosplitter CLI.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/CodexForgeBR/colors-autosplitter/internal/config"
	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
)

// Tick rate bounds accepted by --tick-rate.
const (
	MinTickRate = config.MinTickRate
	MaxTickRate = config.MaxTickRate
)

// negations maps each --no-* flag to the config key it turns off.
var negations = []struct {
	flag, key, usage string
}{
	{"no-start-anypercent", "START_ANYPERCENT", "Do not start on the Any% time trial start"},
	{"no-start-sonic-simulator", "START_SONIC_SIMULATOR", "Do not start on entering Sonic Simulator 1-1"},
	{"no-start-egg-shuttle", "START_EGG_SHUTTLE", "Do not start Egg Shuttle runs"},
	{"no-reset-anypercent", "RESET_ANYPERCENT", "Do not reset when an Any% run is abandoned"},
	{"no-reset-egg-shuttle", "RESET_EGG_SHUTTLE", "Do not reset when an Egg Shuttle run is abandoned"},
}

// BindFlags registers all CLI flags on the given cobra command.
// Value flags write straight into cfg; negation flags are only inspected via
// Changed detection in Overrides. Call ValidateFlags after parsing.
func BindFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	// Target process
	flags.StringArrayVar(&cfg.ProcessNames, "process-name", cfg.ProcessNames, "Executable name to attach to (repeatable)")
	flags.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "Ticks per second")

	// Configuration
	flags.StringVar(&cfg.ConfigFile, "config", "", "Path to additional config file")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log every tick decision")

	// Start, reset and split toggles
	for _, n := range negations {
		flags.Bool(n.flag, false, n.usage)
	}
	flags.StringArrayVar(&cfg.SkipSplits, "skip-split", nil, "Level key that should not split, e.g. PLANET_WISP_3 (repeatable)")

	// Informational
	flags.BoolVar(&cfg.ListLevels, "list-levels", false, "Print every level key and exit")
}

// ValidateFlags checks flag values after parsing.
// Must be called after cmd.Execute() or cmd.ParseFlags().
func ValidateFlags(cmd *cobra.Command, cfg *config.Config) error {
	if cfg.TickRate < MinTickRate || cfg.TickRate > MaxTickRate {
		return fmt.Errorf("--tick-rate must be between %d and %d, got: %d", MinTickRate, MaxTickRate, cfg.TickRate)
	}

	if cmd.Flags().Changed("process-name") {
		for _, name := range cfg.ProcessNames {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("--process-name must not be empty")
			}
		}
	}

	// --config must exist if provided
	if cfg.ConfigFile != "" {
		if _, err := os.Stat(cfg.ConfigFile); err != nil {
			return fmt.Errorf("--config: %w", err)
		}
	}

	for _, key := range cfg.SkipSplits {
		if _, err := level.ParseKey(key); err != nil {
			return fmt.Errorf("--skip-split: %w", err)
		}
	}

	return nil
}

// Overrides creates a map of config overrides from the flags the user set.
// Only flags reported as Changed are included, so config file values are not
// overridden by flag defaults.
func Overrides(fs *pflag.FlagSet, cfg *config.Config) map[string]string {
	overrides := make(map[string]string)

	if fs.Changed("process-name") {
		overrides["PROCESS_NAMES"] = strings.Join(cfg.ProcessNames, ",")
	}
	if fs.Changed("tick-rate") {
		overrides["TICK_RATE"] = strconv.Itoa(cfg.TickRate)
	}
	if fs.Changed("verbose") {
		overrides["VERBOSE"] = strconv.FormatBool(cfg.Verbose)
	}

	for _, n := range negations {
		if !fs.Changed(n.flag) {
			continue
		}
		// --no-x=false is accepted and means "leave it on".
		if on, err := fs.GetBool(n.flag); err == nil && on {
			overrides[n.key] = "false"
		}
	}

	for _, key := range cfg.SkipSplits {
		id, err := level.ParseKey(key)
		if err != nil {
			continue
		}
		overrides[config.SplitKey(id)] = "false"
	}

	return overrides
}
