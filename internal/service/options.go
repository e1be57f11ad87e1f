package service

import (
	"log/slog"
	"time"
)

type options struct {
	observer UseCaseObserver
	logger   *slog.Logger
	clock    func() time.Time
}

// Option configures a service.
type Option func(*options)

func WithObserver(observers ...UseCaseObserver) Option {
	return func(o *options) {
		o.observer = combineObservers(observers)
	}
}

// WithLogger sets the logger used for storage fallback warnings.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		observer: NoopUseCaseObserver{},
		logger:   slog.New(slog.DiscardHandler),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// now is the current instant in UTC without a monotonic reading.
func (o options) now() time.Time {
	return o.clock().UTC()
}
