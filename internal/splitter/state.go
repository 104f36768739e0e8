// Package splitter turns sampled game state into timer decisions.
//
// State holds one watcher per sampled field plus the derived game mode and
// accumulated in-game time. The decision functions are pure: they read a
// State and Settings and never mutate either.
package splitter

import (
	"time"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
	"github.com/CodexForgeBR/colors-autosplitter/internal/sampler"
	"github.com/CodexForgeBR/colors-autosplitter/internal/timer"
	"github.com/CodexForgeBR/colors-autosplitter/internal/watcher"
)

// GameMode is the run category being played.
type GameMode int

const (
	AnyPercent GameMode = iota
	EggShuttle
)

// maxEggShuttleStages is the length of the Egg Shuttle track.
const maxEggShuttleStages = 45

func (m GameMode) String() string {
	switch m {
	case AnyPercent:
		return "Any%"
	case EggShuttle:
		return "Egg Shuttle"
	default:
		return "unknown"
	}
}

// State is everything the autosplitter remembers between ticks for one
// attached process. The zero value is ready to use.
type State struct {
	Level                   watcher.Watcher[level.ID]
	IGT                     watcher.Watcher[time.Duration]
	GoalRing                watcher.Watcher[bool]
	EggShuttleTotalStages   watcher.Watcher[uint8]
	EggShuttleProgressiveID watcher.Watcher[uint8]
	RunStart                watcher.Watcher[uint8]
	TimeTrialRank           watcher.Watcher[int8]

	// AccumulatedIGT is the in-game time of every finished segment of the
	// current run.
	AccumulatedIGT time.Duration
	// Mode is fixed while a run is in progress.
	Mode GameMode
}

// Update feeds one snapshot into the watchers and refreshes the derived
// state. ts is the timer state at the start of this tick.
func (s *State) Update(snap sampler.Snapshot, ts timer.State) {
	s.Level.Update(snap.Level)
	s.IGT.Update(snap.IGT)
	s.GoalRing.Update(snap.GoalRing)
	s.EggShuttleTotalStages.Update(snap.EggShuttleTotalStages)
	s.EggShuttleProgressiveID.Update(snap.EggShuttleProgressiveID)
	s.RunStart.Update(snap.RunStart)
	s.TimeTrialRank.Update(snap.TimeTrialRank)

	if ts == timer.NotRunning {
		s.AccumulatedIGT = 0
		s.classify()
	}

	// The game's clock restarts from zero when a segment ends; bank what it
	// showed so the run total keeps growing.
	if igt, ok := s.IGT.Pair(); ok && igt.Old != 0 && igt.Current == 0 {
		s.AccumulatedIGT += igt.Old
	}
}

// ClearAccumulated forgets the banked time of the current run. A reset and
// a new start can happen within one tick, before Update ever sees the timer
// idle.
func (s *State) ClearAccumulated() {
	s.AccumulatedIGT = 0
}

// classify picks the game mode from the Egg Shuttle stage counter. It only
// runs while the timer is idle, so counter noise cannot flip a live run.
func (s *State) classify() {
	total, ok := s.EggShuttleTotalStages.Pair()
	if !ok {
		return
	}
	if total.Current > 0 && total.Current <= maxEggShuttleStages {
		s.Mode = EggShuttle
	} else {
		s.Mode = AnyPercent
	}
}
