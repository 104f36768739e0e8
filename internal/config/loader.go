package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
)

var known map[string]bool

func init() {
	vars := WhitelistedVars()
	known = make(map[string]bool, len(vars))
	for _, v := range vars {
		known[v] = true
	}
}

// LoadFile reads KEY=VALUE assignments from path. Blank lines, # comments,
// lines without '=' and unknown keys are dropped; keys and values are
// trimmed. Only the first '=' separates key from value, so values may
// contain '='.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	vars := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if known[key] {
			vars[key] = strings.TrimSpace(value)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return vars, nil
}

// layer is one config file in the lookup chain.
type layer struct {
	name     string
	path     string
	required bool
}

// LoadWithPrecedence starts from the defaults and applies the global,
// project and explicit files in turn, then cli. A later source wins over an
// earlier one. An empty path skips its file. Only the explicit file must
// exist.
func LoadWithPrecedence(globalPath, projectPath, explicitPath string, cli map[string]string) (*Config, error) {
	cfg := NewDefaultConfig()

	for _, l := range []layer{
		{"global", globalPath, false},
		{"project", projectPath, false},
		{"explicit", explicitPath, true},
	} {
		if l.path == "" {
			continue
		}
		vars, err := LoadFile(l.path)
		switch {
		case err == nil:
			ApplyMapToConfig(cfg, vars)
		case !l.required && errors.Is(err, os.ErrNotExist):
			// optional and absent
		default:
			return nil, fmt.Errorf("%s config: %w", l.name, err)
		}
	}

	ApplyMapToConfig(cfg, cli)
	return cfg, nil
}

// ApplyMapToConfig copies recognised keys from m onto cfg. A value that does
// not parse, or a tick rate outside MinTickRate..MaxTickRate, keeps what cfg
// already had.
func ApplyMapToConfig(cfg *Config, m map[string]string) {
	for key, value := range m {
		switch key {
		case "PROCESS_NAMES":
			if names := parseList(value); len(names) > 0 {
				cfg.ProcessNames = names
			}
		case "TICK_RATE":
			if v, err := strconv.Atoi(value); err == nil && v >= MinTickRate && v <= MaxTickRate {
				cfg.TickRate = v
			}
		case "VERBOSE":
			cfg.Verbose = parseBool(value)
		case "START_ANYPERCENT":
			cfg.StartAnyPercent = parseBool(value)
		case "START_SONIC_SIMULATOR":
			cfg.StartSonicSimulator = parseBool(value)
		case "START_EGG_SHUTTLE":
			cfg.StartEggShuttle = parseBool(value)
		case "RESET_ANYPERCENT":
			cfg.ResetAnyPercent = parseBool(value)
		case "RESET_EGG_SHUTTLE":
			cfg.ResetEggShuttle = parseBool(value)
		default:
			if !strings.HasPrefix(key, SplitPrefix) {
				continue
			}
			id, err := level.ParseKey(strings.TrimPrefix(key, SplitPrefix))
			if err != nil {
				continue
			}
			if cfg.Splits == nil {
				cfg.Splits = make(map[level.ID]bool)
			}
			cfg.Splits[id] = parseBool(value)
		}
	}
}

// parseBool accepts true, 1 and yes in any case.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true
	}
	return false
}

func parseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
