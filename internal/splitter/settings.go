package splitter

import "github.com/CodexForgeBR/colors-autosplitter/internal/level"

// Settings are the user toggles the decision functions consult.
type Settings struct {
	StartAnyPercent     bool
	StartSonicSimulator bool
	StartEggShuttle     bool
	ResetAnyPercent     bool
	ResetEggShuttle     bool

	// Splits says whether leaving a level should split. Levels missing from
	// the map never split.
	Splits map[level.ID]bool
}

// DefaultSettings enables every start, reset and split.
func DefaultSettings() Settings {
	s := Settings{
		StartAnyPercent:     true,
		StartSonicSimulator: true,
		StartEggShuttle:     true,
		ResetAnyPercent:     true,
		ResetEggShuttle:     true,
		Splits:              make(map[level.ID]bool),
	}
	for _, id := range level.All() {
		s.Splits[id] = true
	}
	return s
}

// SplitEnabled reports whether exiting id is split-worthy.
func (s Settings) SplitEnabled(id level.ID) bool {
	return s.Splits[id]
}
