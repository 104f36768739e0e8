package splitter

import (
	"time"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
)

// Run-state marker values written by the game.
const (
	runStateMenu    = 35
	runStateStarted = 110

	// unranked is the time trial rank of a stage that has not been cleared.
	unranked = -1
)

// Start reports whether the timer should start this tick.
func Start(s *State, set Settings) bool {
	lvl, ok := s.Level.Pair()
	if !ok {
		return false
	}
	igt, ok := s.IGT.Pair()
	if !ok {
		return false
	}
	runStart, ok := s.RunStart.Pair()
	if !ok {
		return false
	}
	rank, ok := s.TimeTrialRank.Pair()
	if !ok {
		return false
	}

	if s.Mode == EggShuttle {
		return set.StartEggShuttle &&
			lvl.Current == level.EggShuttleFirst &&
			(lvl.Old == level.None || (igt.Old > 0 && igt.Current == 0))
	}

	timeTrial := set.StartAnyPercent &&
		rank.Current == unranked &&
		runStart.Transitioned(runStateMenu, runStateStarted)
	simulator := set.StartSonicSimulator &&
		lvl.Current == level.SimulatorFirst &&
		lvl.Old == level.None
	return timeTrial || simulator
}

// Split reports whether the timer should split this tick. The level being
// left is Level.Old; it must be enabled in set.Splits.
func Split(s *State, set Settings) bool {
	lvl, ok := s.Level.Pair()
	if !ok || !set.SplitEnabled(lvl.Old) {
		return false
	}
	ring, ok := s.GoalRing.Pair()
	if !ok {
		return false
	}
	raised := ring.Transitioned(false, true)
	cleared := ring.Transitioned(true, false)

	if s.Mode == EggShuttle {
		progressive, ok := s.EggShuttleProgressiveID.Pair()
		if !ok {
			return false
		}
		total, ok := s.EggShuttleTotalStages.Pair()
		if !ok {
			return false
		}
		// The last shuttle stage has no next stage to advance to, so it
		// splits on the goal ring instead. uint8 arithmetic wraps like the
		// game's counter.
		if progressive.Old == total.Current-1 {
			return raised
		}
		return progressive.Current == progressive.Old+1
	}

	if lvl.Old == level.Final {
		return raised
	}
	return cleared
}

// Reset reports whether the timer should reset this tick.
func Reset(s *State, set Settings) bool {
	if s.Mode == EggShuttle {
		igt, ok := s.IGT.Pair()
		if !ok {
			return false
		}
		ring, ok := s.GoalRing.Pair()
		if !ok {
			return false
		}
		// A clock dropping to zero without the goal ring is an abandoned
		// stage, not a finished one.
		return set.ResetEggShuttle && igt.Old != 0 && igt.Current == 0 && !ring.Old
	}

	runStart, ok := s.RunStart.Pair()
	if !ok {
		return false
	}
	return set.ResetAnyPercent && runStart.Transitioned(runStateStarted, runStateMenu)
}

// IsLoading reports whether game time should be paused. Game time is always
// driven by GameTime rather than by the timer's own clock, so it is always
// paused. ok is false when there is no opinion.
func IsLoading(s *State, set Settings) (loading, ok bool) {
	return true, true
}

// GameTime is the run's in-game time: the current segment's clock plus every
// banked segment. With no IGT pair yet, only the banked time counts.
func GameTime(s *State, set Settings) time.Duration {
	igt, ok := s.IGT.Pair()
	if !ok {
		return s.AccumulatedIGT
	}
	return igt.Current + s.AccumulatedIGT
}
