package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/repository"
)

// Repos bundles the collection repositories a service reads from.
type Repos struct {
	Settings  repository.SettingsRepo
	Workouts  repository.WorkoutRepo
	Templates repository.TemplateRepo
	Records   repository.RecordRepo
	BodyStats repository.BodyStatRepo
	Active    repository.ActiveWorkoutRepo
	Info      repository.CollectionInfoRepo
}

// NewSQLiteRepos wires every repository to conn, which may be a transaction.
func NewSQLiteRepos(conn db.DBTX) Repos {
	return Repos{
		Settings:  repository.NewSQLiteSettingsRepo(conn),
		Workouts:  repository.NewSQLiteWorkoutRepo(conn),
		Templates: repository.NewSQLiteTemplateRepo(conn),
		Records:   repository.NewSQLiteRecordRepo(conn),
		BodyStats: repository.NewSQLiteBodyStatRepo(conn),
		Active:    repository.NewSQLiteActiveWorkoutRepo(conn),
		Info:      repository.NewSQLiteCollectionInfoRepo(conn),
	}
}

// loadOr reads a collection, substituting def when it was never written or
// cannot be decoded. Corrupt data is logged; other storage errors are returned.
func loadOr[T any](ctx context.Context, log *slog.Logger, key string, load func(context.Context) (T, error), def T) (T, error) {
	v, err := load(ctx)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, repository.ErrNotFound):
		return def, nil
	case errors.Is(err, repository.ErrCorrupt):
		log.WarnContext(ctx, "unreadable collection, using default", "collection", key, "error", err)
		return def, nil
	}
	return def, fmt.Errorf("loading %s: %w", key, err)
}

// snapshot is the full persisted state, read in one place.
type snapshot struct {
	Settings  domain.Settings
	Workouts  []domain.Workout
	Templates []domain.Template
	Records   domain.PersonalRecords
	BodyStats []domain.BodyStat
}

func loadSettings(ctx context.Context, log *slog.Logger, r Repos) (domain.Settings, error) {
	s, err := loadOr(ctx, log, repository.KeySettings, r.Settings.Get, domain.DefaultSettings())
	if err != nil {
		return s, err
	}
	return normalizeSettings(s), nil
}

func normalizeSettings(s domain.Settings) domain.Settings {
	if s.UnitSystem != domain.UnitImperial {
		s.UnitSystem = domain.UnitMetric
	}
	if s.DefaultRestTime < 0 {
		s.DefaultRestTime = domain.DefaultRestSeconds
	}
	return s
}

func loadWorkouts(ctx context.Context, log *slog.Logger, r Repos) ([]domain.Workout, error) {
	return loadOr(ctx, log, repository.KeyWorkouts, r.Workouts.List, []domain.Workout{})
}

func loadTemplates(ctx context.Context, log *slog.Logger, r Repos) ([]domain.Template, error) {
	return loadOr(ctx, log, repository.KeyTemplates, r.Templates.List, []domain.Template{})
}

func loadRecords(ctx context.Context, log *slog.Logger, r Repos) (domain.PersonalRecords, error) {
	prs, err := loadOr(ctx, log, repository.KeyRecords, r.Records.Get, domain.PersonalRecords{})
	if prs == nil {
		prs = domain.PersonalRecords{}
	}
	return prs, err
}

func loadBodyStats(ctx context.Context, log *slog.Logger, r Repos) ([]domain.BodyStat, error) {
	return loadOr(ctx, log, repository.KeyBodyStats, r.BodyStats.List, []domain.BodyStat{})
}

func loadSnapshot(ctx context.Context, log *slog.Logger, r Repos) (snapshot, error) {
	var s snapshot
	var err error
	if s.Settings, err = loadSettings(ctx, log, r); err != nil {
		return s, err
	}
	if s.Workouts, err = loadWorkouts(ctx, log, r); err != nil {
		return s, err
	}
	if s.Templates, err = loadTemplates(ctx, log, r); err != nil {
		return s, err
	}
	if s.Records, err = loadRecords(ctx, log, r); err != nil {
		return s, err
	}
	if s.BodyStats, err = loadBodyStats(ctx, log, r); err != nil {
		return s, err
	}
	return s, nil
}

// loadActive returns domain.ErrNoActiveWorkout when the slot is empty.
func loadActive(ctx context.Context, log *slog.Logger, r Repos) (*domain.ActiveWorkout, error) {
	w, err := loadOr(ctx, log, repository.KeyActiveWorkout, r.Active.Get, (*domain.ActiveWorkout)(nil))
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNoActiveWorkout
	}
	return w, nil
}
