package timer

import (
	"sync"
	"time"
)

// EventKind labels a Local timer transition.
type EventKind string

const (
	EventStart EventKind = "start"
	EventSplit EventKind = "split"
	EventReset EventKind = "reset"
)

// Event describes one transition of a Local timer.
type Event struct {
	Kind     EventKind
	Segment  int           // 1-based segment number for splits, 0 otherwise
	GameTime time.Duration // game time when the event happened
	RealTime time.Duration // wall time since start
	Splits   []time.Duration
}

// Local is a timer that lives in this process. It keeps the game time the
// autosplitter pushes and the list of split times. OnEvent, if set, is
// called after each start, split and reset, outside the lock.
type Local struct {
	OnEvent func(Event)

	mu             sync.Mutex
	state          State
	gameTime       time.Duration
	gameTimePaused bool
	splits         []time.Duration
	startedAt      time.Time
	now            func() time.Time
}

// NewLocal returns a stopped timer.
func NewLocal() *Local {
	return &Local{now: time.Now}
}

func (l *Local) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Local) Start() {
	l.mu.Lock()
	if l.state != NotRunning {
		l.mu.Unlock()
		return
	}
	l.state = Running
	l.gameTime = 0
	l.gameTimePaused = false
	l.splits = nil
	l.startedAt = l.clock()
	ev := Event{Kind: EventStart}
	l.mu.Unlock()
	l.emit(ev)
}

func (l *Local) Split() {
	l.mu.Lock()
	if l.state != Running {
		l.mu.Unlock()
		return
	}
	l.splits = append(l.splits, l.gameTime)
	ev := Event{
		Kind:     EventSplit,
		Segment:  len(l.splits),
		GameTime: l.gameTime,
		RealTime: l.clock().Sub(l.startedAt),
	}
	l.mu.Unlock()
	l.emit(ev)
}

func (l *Local) Reset() {
	l.mu.Lock()
	if l.state == NotRunning {
		l.mu.Unlock()
		return
	}
	ev := Event{
		Kind:     EventReset,
		GameTime: l.gameTime,
		RealTime: l.clock().Sub(l.startedAt),
		Splits:   l.splits,
	}
	l.state = NotRunning
	l.splits = nil
	l.gameTime = 0
	l.gameTimePaused = false
	l.mu.Unlock()
	l.emit(ev)
}

// Pause suspends the whole timer. Only a user does this; the autosplitter
// pauses game time instead.
func (l *Local) Pause() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == Running {
		l.state = Paused
	}
}

// Resume undoes Pause.
func (l *Local) Resume() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == Paused {
		l.state = Running
	}
}

func (l *Local) SetGameTime(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != NotRunning {
		l.gameTime = d
	}
}

func (l *Local) PauseGameTime() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gameTimePaused = true
}

func (l *Local) ResumeGameTime() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gameTimePaused = false
}

// GameTime returns the last game time pushed while running.
func (l *Local) GameTime() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gameTime
}

// GameTimePaused reports whether game time is currently paused.
func (l *Local) GameTimePaused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gameTimePaused
}

// Splits returns a copy of the split times of the current run.
func (l *Local) Splits() []time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]time.Duration(nil), l.splits...)
}

func (l *Local) clock() time.Time {
	if l.now == nil {
		return time.Now()
	}
	return l.now()
}

func (l *Local) emit(ev Event) {
	if l.OnEvent != nil {
		l.OnEvent(ev)
	}
}
