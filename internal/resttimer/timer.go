// Package resttimer implements the single-shot rest countdown.
//
// A Timer is either idle or running. Trigger (re)starts it, Tick advances it
// by one step and Dismiss stops it. When the countdown reaches zero the Cue
// plays and the timer returns to idle. There is no pause or resume.
package resttimer

import (
	"io"
	"sync"
)

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Cue is the audible signal played when a countdown completes.
type Cue interface {
	Play() error
}

// BellCue rings the terminal bell on W.
type BellCue struct {
	W io.Writer
}

func (b BellCue) Play() error {
	if b.W == nil {
		return nil
	}
	_, err := io.WriteString(b.W, "\a")
	return err
}

type NoopCue struct{}

func (NoopCue) Play() error { return nil }

// Snapshot is a point-in-time copy of the timer state. Durations are seconds.
type Snapshot struct {
	State     State
	Duration  int
	Remaining int
	Label     string
}

// Progress is the elapsed fraction in [0, 1].
func (s Snapshot) Progress() float64 {
	if s.State != Running || s.Duration <= 0 {
		return 0
	}
	p := float64(s.Duration-s.Remaining) / float64(s.Duration)
	return min(max(p, 0), 1)
}

// Timer is safe for concurrent use.
type Timer struct {
	mu        sync.Mutex
	cue       Cue
	state     State
	duration  int
	remaining int
	label     string
	cueErr    error
}

// New returns an idle timer. A nil cue is replaced by NoopCue.
func New(cue Cue) *Timer {
	if cue == nil {
		cue = NoopCue{}
	}
	return &Timer{cue: cue}
}

// Trigger starts a countdown of seconds, replacing any countdown already
// running. Non-positive durations leave the timer idle.
func (t *Timer) Trigger(seconds int, label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seconds <= 0 {
		t.reset()
		return
	}
	t.state = Running
	t.duration = seconds
	t.remaining = seconds
	t.label = label
}

// Tick advances a running countdown by one second and reports whether it is
// still running afterwards. Ticking an idle timer is a no-op.
func (t *Timer) Tick() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != Running {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return true
	}
	t.cueErr = t.cue.Play()
	t.reset()
	return false
}

// Dismiss stops the countdown without playing the cue.
func (t *Timer) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Snapshot{State: t.state, Duration: t.duration, Remaining: t.remaining, Label: t.label}
}

// CueErr returns the error from the most recent cue playback, if any.
func (t *Timer) CueErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cueErr
}

func (t *Timer) reset() {
	t.state = Idle
	t.duration = 0
	t.remaining = 0
	t.label = ""
}
