package service

import (
	"context"
	"time"

	"github.com/alexanderramin/gymtrack/internal/analytics"
	"github.com/alexanderramin/gymtrack/internal/units"
)

type progressService struct {
	repos Repos
	options
}

func NewProgressService(repos Repos, opts ...Option) ProgressService {
	return &progressService{repos: repos, options: buildOptions(opts)}
}

func (s *progressService) Dashboard(ctx context.Context) (*Dashboard, error) {
	snap, err := loadSnapshot(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Overview:     analytics.Summarize(snap.Workouts, snap.Templates),
		Distribution: analytics.MuscleGroupDistribution(snap.Workouts),
		Records:      snap.Records,
		Exercises:    analytics.ExerciseNames(snap.Workouts),
		Settings:     snap.Settings,
	}, nil
}

func (s *progressService) Exercise(ctx context.Context, name string) (*analytics.ExerciseSeries, error) {
	settings, err := loadSettings(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	history, err := loadWorkouts(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	prs, err := loadRecords(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	series := analytics.ExerciseHistory(name, history, prs, units.New(settings.UnitSystem))
	return &series, nil
}

func (s *progressService) BodyWeight(ctx context.Context) ([]analytics.WeightPoint, error) {
	settings, err := loadSettings(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	stats, err := loadBodyStats(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	return analytics.BodyWeightSeries(stats, units.New(settings.UnitSystem)), nil
}

// Calendar marks today by the local calendar date.
func (s *progressService) Calendar(ctx context.Context, year int, month time.Month) (*analytics.Calendar, error) {
	history, err := loadWorkouts(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	cal := analytics.MonthCalendar(year, month, history, s.clock().Local())
	return &cal, nil
}
