package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

// UseCaseEvent describes one finished service call.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
}

// UseCaseObserver receives one event per tracked service call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

// observerSet forwards each event to every member in order.
type observerSet []UseCaseObserver

func (s observerSet) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	for _, obs := range s {
		obs.ObserveUseCase(ctx, event)
	}
}

func combineObservers(observers []UseCaseObserver) UseCaseObserver {
	var set observerSet
	for _, obs := range observers {
		if obs != nil {
			set = append(set, obs)
		}
	}
	switch len(set) {
	case 0:
		return NoopUseCaseObserver{}
	case 1:
		return set[0]
	}
	return set
}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes one text line per service call to w.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

// userErrors are failures caused by what was typed, not by storage.
var userErrors = []error{
	domain.ErrNoActiveWorkout,
	domain.ErrWorkoutInProgress,
	domain.ErrIndexOutOfRange,
	domain.ErrWorkoutNotFound,
	domain.ErrTemplateNotFound,
}

func isUserError(err error) bool {
	return slices.ContainsFunc(userErrors, func(target error) bool { return errors.Is(err, target) })
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Duration("took", event.Duration),
	}
	if len(event.Fields) > 0 {
		fields := make([]any, 0, len(event.Fields)*2)
		for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
			fields = append(fields, k, event.Fields[k])
		}
		attrs = append(attrs, slog.Group("fields", fields...))
	}

	level := slog.LevelInfo
	switch {
	case event.Err == nil:
	case isUserError(event.Err):
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	default:
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "use case", attrs...)
}

// track reports a use case when the returned func is deferred with the
// call's final error. fields may be filled in until then.
func (o options) track(ctx context.Context, name string, fields map[string]any) func(err error) {
	startedAt := o.clock()
	return func(err error) {
		o.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			StartedAt: startedAt,
			Duration:  o.clock().Sub(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}
}
