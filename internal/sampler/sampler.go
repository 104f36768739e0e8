// Package sampler reads one frame of game state from process memory.
//
// Three pointer branches hang off the root object. Any broken link zeroes
// only the fields of its own branch; a failed read is never fatal.
package sampler

import (
	"math"
	"time"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
)

// Memory layout of the supported game version.
const (
	offRoot    = 0x0 // root pointer slot itself
	offGame    = 0x8 // root -> game object
	offStage   = 0x38
	offLevel   = 0x60 // stage -> level info
	offShuttle = 0x68 // stage -> egg shuttle holder

	offLevelCode = 0xE0
	offGoalRing  = 0x110
	offIGT       = 0x270
	goalRingBit  = 1 << 5

	offShuttleData        = 0x110
	offShuttleTotal       = 0x0
	offShuttleProgressive = 0xB8

	offRunState      = 0x8 // game -> run state chain
	offRunStateInner = 0x10
	offRunStateData  = 0x60
	offRunStart      = 0x120
	offTimeTrialRank = 0x1CC
)

// Snapshot is one tick of raw observations. The zero value is what a tick
// with no readable memory produces.
type Snapshot struct {
	Level                   level.ID
	IGT                     time.Duration
	GoalRing                bool
	EggShuttleTotalStages   uint8
	EggShuttleProgressiveID uint8
	RunStart                uint8
	TimeTrialRank           int8
}

// Errors lists which branches failed during a Sample call. It is purely
// informational; the Snapshot is always usable.
type Errors struct {
	Root     error
	Level    error
	Shuttle  error
	RunState error
}

// Any reports whether any branch failed.
func (e Errors) Any() bool {
	return e.Root != nil || e.Level != nil || e.Shuttle != nil || e.RunState != nil
}

// Sample reads a Snapshot starting at the resolved root pointer address.
func Sample(r process.Reader, root process.Address) (Snapshot, Errors) {
	var (
		snap Snapshot
		errs Errors
	)

	game, err := process.Deref(r, root, offRoot, offGame)
	if err != nil {
		errs.Root = err
		return snap, errs
	}

	if stage, err := process.Deref(r, game, offStage); err != nil {
		errs.Level = err
		errs.Shuttle = err
	} else {
		errs.Level = sampleLevel(r, stage, &snap)
		errs.Shuttle = sampleShuttle(r, stage, &snap)
	}

	errs.RunState = sampleRunState(r, game, &snap)
	return snap, errs
}

func sampleLevel(r process.Reader, stage process.Address, snap *Snapshot) error {
	info, err := process.Deref(r, stage, offLevel)
	if err != nil {
		return err
	}
	var code level.Code
	if err := r.Read(info.Add(offLevelCode), code[:]); err != nil {
		return err
	}
	snap.Level = level.FromCode(code)
	if snap.Level == level.None {
		return nil
	}

	// IGT and goal ring are meaningless outside a stage.
	if raw, err := process.ReadF32(r, info.Add(offIGT)); err == nil {
		snap.IGT = IGTFromRaw(raw)
	}
	if flags, err := process.ReadU8(r, info.Add(offGoalRing)); err == nil {
		snap.GoalRing = flags&goalRingBit != 0
	}
	return nil
}

func sampleShuttle(r process.Reader, stage process.Address, snap *Snapshot) error {
	data, err := process.Deref(r, stage, offShuttle, offShuttleData)
	if err != nil {
		return err
	}
	total, err := process.ReadU8(r, data.Add(offShuttleTotal))
	if err != nil {
		return err
	}
	snap.EggShuttleTotalStages = total
	if id, err := process.ReadU8(r, data.Add(offShuttleProgressive)); err == nil {
		snap.EggShuttleProgressiveID = id
	}
	return nil
}

func sampleRunState(r process.Reader, game process.Address, snap *Snapshot) error {
	data, err := process.Deref(r, game, offRunState, offRunStateInner, offRunStateData)
	if err != nil {
		return err
	}
	marker, err := process.ReadU8(r, data.Add(offRunStart))
	if err != nil {
		return err
	}
	snap.RunStart = marker
	if rank, err := process.ReadI8(r, data.Add(offTimeTrialRank)); err == nil {
		snap.TimeTrialRank = rank
	}
	return nil
}

// maxHundredths bounds the conversion so the Duration cannot overflow.
const maxHundredths = math.MaxInt64 / int64(10*time.Millisecond)

// IGTFromRaw converts the game's float seconds counter into a duration.
// The value is truncated to whole hundredths, not rounded, to match the
// in-game display exactly. Non-finite values read as zero.
func IGTFromRaw(raw float32) time.Duration {
	hundredths := raw * 100
	f := float64(hundredths)
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return 0
	case f >= float64(maxHundredths):
		return time.Duration(maxHundredths) * 10 * time.Millisecond
	case f <= -float64(maxHundredths):
		return -time.Duration(maxHundredths) * 10 * time.Millisecond
	}
	return time.Duration(int64(hundredths)) * 10 * time.Millisecond
}
