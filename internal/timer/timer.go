// Package timer defines the speedrun timer command surface and a local,
// in-process implementation of it.
package timer

import "time"

// State is the coarse state of a timer.
type State int

const (
	NotRunning State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case NotRunning:
		return "NotRunning"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	default:
		return "unknown"
	}
}

// Timer is driven by the autosplitter. Every command is idempotent with
// respect to states where it does not apply: Split on a stopped timer, for
// example, does nothing.
type Timer interface {
	State() State
	Start()
	Split()
	Reset()
	SetGameTime(d time.Duration)
	PauseGameTime()
	ResumeGameTime()
}
