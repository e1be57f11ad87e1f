package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
)

type bodyStatService struct {
	repos Repos
	uow   db.UnitOfWork
	options
}

func NewBodyStatService(repos Repos, uow db.UnitOfWork, opts ...Option) BodyStatService {
	return &bodyStatService{repos: repos, uow: uow, options: buildOptions(opts)}
}

// statDate keeps only the calendar date, at UTC midnight.
func statDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *bodyStatService) List(ctx context.Context) ([]domain.BodyStat, error) {
	return loadBodyStats(ctx, s.logger, s.repos)
}

// mutate loads the entries and the weight converter, applies fn and stores
// the result sorted newest first.
func (s *bodyStatService) mutate(ctx context.Context, name string, fields map[string]any, fn func(stats []domain.BodyStat, conv units.Converter) ([]domain.BodyStat, error)) (err error) {
	done := s.track(ctx, name, fields)
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}
		stats, err := loadBodyStats(ctx, s.logger, r)
		if err != nil {
			return err
		}
		stats, err = fn(stats, units.New(settings.UnitSystem))
		if err != nil || stats == nil {
			return err
		}
		domain.SortBodyStatsDesc(stats)
		return r.BodyStats.SaveAll(ctx, stats)
	})
}

func (s *bodyStatService) Log(ctx context.Context, date time.Time, weight string) (logged bool, err error) {
	err = s.mutate(ctx, "log-body-weight", map[string]any{"date": statDate(date).Format(time.DateOnly)},
		func(stats []domain.BodyStat, conv units.Converter) ([]domain.BodyStat, error) {
			n := domain.ParseNumber(weight)
			if strings.TrimSpace(weight) == "" || !n.Valid() {
				return nil, nil
			}
			logged = true
			return append(stats, domain.BodyStat{Date: statDate(date), Weight: conv.StoreNumber(n)}), nil
		})
	return logged, err
}

func (s *bodyStatService) Edit(ctx context.Context, index int, date time.Time, weight string) error {
	return s.mutate(ctx, "edit-body-weight", map[string]any{"index": index},
		func(stats []domain.BodyStat, conv units.Converter) ([]domain.BodyStat, error) {
			if index < 0 || index >= len(stats) {
				return nil, fmt.Errorf("entry %d: %w", index+1, domain.ErrIndexOutOfRange)
			}
			if !date.IsZero() {
				stats[index].Date = statDate(date)
			}
			if n := domain.ParseNumber(weight); n.Valid() {
				stats[index].Weight = conv.StoreNumber(n)
			}
			return stats, nil
		})
}

func (s *bodyStatService) Delete(ctx context.Context, index int) error {
	return s.mutate(ctx, "delete-body-weight", map[string]any{"index": index},
		func(stats []domain.BodyStat, _ units.Converter) ([]domain.BodyStat, error) {
			if index < 0 || index >= len(stats) {
				return nil, fmt.Errorf("entry %d: %w", index+1, domain.ErrIndexOutOfRange)
			}
			return append(stats[:index], stats[index+1:]...), nil
		})
}
