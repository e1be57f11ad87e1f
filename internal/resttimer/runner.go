package resttimer

import (
	"context"
	"time"
)

// Runner drives a Timer from a ticker until the countdown ends, the timer is
// dismissed, or ctx is cancelled. The ticker is stopped on every exit path.
type Runner struct {
	Timer *Timer
	// Interval defaults to one second.
	Interval time.Duration
	// OnTick, when set, receives the state after every tick.
	OnTick func(Snapshot)
}

// Run blocks until the countdown is no longer running. It returns ctx.Err()
// when cancelled and nil otherwise.
func (r Runner) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = time.Second
	}
	if r.Timer.Snapshot().State != Running {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			running := r.Timer.Tick()
			if r.OnTick != nil {
				r.OnTick(r.Timer.Snapshot())
			}
			if !running {
				return nil
			}
		}
	}
}

// Start runs the countdown in the background. The returned stop function
// cancels it and waits for the goroutine to exit; it is safe to call more
// than once.
func (r Runner) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = r.Run(ctx)
	}()
	return func() {
		cancel()
		<-done
	}
}
