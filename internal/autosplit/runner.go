// Package autosplit ties process access, sampling and the decision engine
// into a tick loop that drives a timer.
package autosplit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/CodexForgeBR/colors-autosplitter/internal/banner"
	"github.com/CodexForgeBR/colors-autosplitter/internal/logging"
	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
	"github.com/CodexForgeBR/colors-autosplitter/internal/resolver"
	"github.com/CodexForgeBR/colors-autosplitter/internal/sampler"
	"github.com/CodexForgeBR/colors-autosplitter/internal/schedule"
	"github.com/CodexForgeBR/colors-autosplitter/internal/splitter"
	"github.com/CodexForgeBR/colors-autosplitter/internal/timer"
)

// AttachFunc finds a running process by executable name.
type AttachFunc func(names []string) (process.Process, error)

// Options configures a Runner. Zero fields take defaults.
type Options struct {
	ProcessNames []string
	Settings     splitter.Settings
	TickRate     int

	// Backoff bounds for failed attach and resolve attempts.
	BackoffBase time.Duration
	BackoffMax  time.Duration

	Attach AttachFunc
	Now    func() time.Time
	Out    io.Writer // banners
}

// Runner owns the attached process and the splitter state for it.
//
// Attachment is polled: each Tick advances Detached -> Attached -> Resolved
// by at most the steps whose backoff has expired, and never blocks.
type Runner struct {
	mu sync.Mutex

	timer    timer.Timer
	settings splitter.Settings
	names    []string
	interval time.Duration
	attach   AttachFunc
	now      func() time.Time
	out      io.Writer
	backoff  schedule.Backoff

	proc     process.Process
	session  string
	root     process.Address
	resolved bool
	degraded bool
	state    splitter.State
}

// New returns a detached Runner driving t.
func New(t timer.Timer, opts Options) *Runner {
	r := &Runner{
		timer:    t,
		settings: opts.Settings,
		names:    opts.ProcessNames,
		interval: schedule.Interval(opts.TickRate),
		attach:   opts.Attach,
		now:      opts.Now,
		out:      opts.Out,
		backoff:  schedule.Backoff{Base: opts.BackoffBase, Max: opts.BackoffMax},
	}
	if r.attach == nil {
		r.attach = process.Attach
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.out == nil {
		r.out = os.Stdout
	}
	return r
}

// Run ticks until ctx is done or a tick fails fatally. The attached process,
// if any, is released before returning.
func (r *Runner) Run(ctx context.Context) error {
	defer r.Close()
	logging.Debug(fmt.Sprintf("ticking every %s", r.interval))
	return schedule.Loop(ctx, r.interval, r.Tick)
}

// Tick performs one poll of the game. The only error it returns is one that
// no later tick can recover from, such as missing platform support.
func (r *Runner) Tick() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ready, err := r.ensureAttached()
	if err != nil || !ready {
		return err
	}

	snap, errs := sampler.Sample(r.proc, r.root)
	r.reportSampleErrors(errs)

	ts := r.timer.State()
	r.state.Update(snap, ts)
	if lvl, ok := r.state.Level.Pair(); ok && lvl.Changed() {
		logging.Debug(fmt.Sprintf("[%s] level %s -> %s", r.session, lvl.Old, lvl.Current))
	}

	if ts == timer.Running || ts == timer.Paused {
		r.applyLoading()
		r.timer.SetGameTime(splitter.GameTime(&r.state, r.settings))
		if splitter.Reset(&r.state, r.settings) {
			logging.Debug(fmt.Sprintf("reset (%s)", r.state.Mode))
			r.timer.Reset()
			r.state.ClearAccumulated()
		} else if splitter.Split(&r.state, r.settings) {
			if lvl, ok := r.state.Level.Pair(); ok {
				logging.Debug(fmt.Sprintf("split leaving %s", lvl.Old))
			}
			r.timer.Split()
		}
	}

	// A reset above may have stopped the timer; a new run can start in the
	// same tick.
	if r.timer.State() == timer.NotRunning && splitter.Start(&r.state, r.settings) {
		logging.Debug(fmt.Sprintf("start (%s)", r.state.Mode))
		// Time banked on this tick belongs to the attempt that just ended.
		r.state.ClearAccumulated()
		r.timer.Start()
		r.timer.PauseGameTime()
		r.applyLoading()
	}
	return nil
}

func (r *Runner) applyLoading() {
	loading, ok := splitter.IsLoading(&r.state, r.settings)
	if !ok {
		return
	}
	if loading {
		r.timer.PauseGameTime()
	} else {
		r.timer.ResumeGameTime()
	}
}

// ensureAttached advances the attach state machine and reports whether the
// root pointer is known.
func (r *Runner) ensureAttached() (bool, error) {
	if r.proc != nil && !r.proc.Alive() {
		r.detach("process exited")
	}

	now := r.now()
	if r.proc == nil {
		if !r.backoff.Ready(now) {
			return false, nil
		}
		p, err := r.attach(r.names)
		if err != nil {
			if errors.Is(err, process.ErrUnsupported) {
				return false, err
			}
			d := r.backoff.Fail(now)
			logging.Debug(fmt.Sprintf("attach: %v (retry in %s)", err, d))
			return false, nil
		}
		r.proc = p
		r.session = uuid.NewString()
		r.state = splitter.State{}
		r.backoff.Reset()
		logging.Info(fmt.Sprintf("found %s (pid %d), session %s", p.Name(), p.Pid(), r.session))
	}

	if !r.resolved {
		if !r.backoff.Ready(now) {
			return false, nil
		}
		root, err := resolver.ResolveProcess(r.proc, append([]string{r.proc.Name()}, r.names...))
		if err != nil {
			d := r.backoff.Fail(now)
			logging.Debug(fmt.Sprintf("[%s] resolve: %v (retry in %s)", r.session, err, d))
			return false, nil
		}
		r.root = root
		r.resolved = true
		r.backoff.Reset()
		logging.Success(fmt.Sprintf("[%s] root pointer at %s", r.session, root))
		banner.PrintAttachedBanner(r.out, r.session, r.proc.Pid(), r.proc.Name(), root.String())
	}
	return true, nil
}

func (r *Runner) detach(reason string) {
	if r.proc == nil {
		return
	}
	if err := r.proc.Close(); err != nil {
		logging.Debug(fmt.Sprintf("[%s] close: %v", r.session, err))
	}
	logging.Warn(fmt.Sprintf("lost %s: %s", r.proc.Name(), reason))
	banner.PrintDetachedBanner(r.out, r.session, reason)

	r.proc = nil
	r.session = ""
	r.root = 0
	r.resolved = false
	r.degraded = false
	r.state = splitter.State{}
	r.backoff.Reset()
}

// reportSampleErrors logs when sampling starts or stops failing, not on
// every tick.
func (r *Runner) reportSampleErrors(errs sampler.Errors) {
	if errs.Any() == r.degraded {
		return
	}
	r.degraded = errs.Any()
	if !r.degraded {
		logging.Debug(fmt.Sprintf("[%s] memory reads recovered", r.session))
		return
	}
	for _, e := range []struct {
		branch string
		err    error
	}{
		{"root", errs.Root},
		{"level", errs.Level},
		{"egg shuttle", errs.Shuttle},
		{"run state", errs.RunState},
	} {
		if e.err != nil {
			logging.Debug(fmt.Sprintf("[%s] %s: %v", r.session, e.branch, e.err))
		}
	}
}

// Session returns the id of the current attachment, or "" when detached.
func (r *Runner) Session() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// Resolved reports whether the root pointer of the attached process is known.
func (r *Runner) Resolved() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved
}

// Close releases the attached process, if any.
func (r *Runner) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.proc == nil {
		return nil
	}
	err := r.proc.Close()
	r.proc = nil
	r.session = ""
	r.resolved = false
	r.state = splitter.State{}
	return err
}
