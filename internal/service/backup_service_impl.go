package service

import (
	"context"
	"io"
	"slices"

	"github.com/alexanderramin/gymtrack/internal/backup"
	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/repository"
)

type backupService struct {
	repos Repos
	uow   db.UnitOfWork
	options
}

func NewBackupService(repos Repos, uow db.UnitOfWork, opts ...Option) BackupService {
	return &backupService{repos: repos, uow: uow, options: buildOptions(opts)}
}

func (s *backupService) Bundle(ctx context.Context) (*backup.Bundle, error) {
	snap, err := loadSnapshot(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	return &backup.Bundle{
		Settings:     snap.Settings,
		PastWorkouts: snap.Workouts,
		Templates:    snap.Templates,
		ExercisePRs:  snap.Records,
		BodyStats:    snap.BodyStats,
	}, nil
}

func (s *backupService) Export(ctx context.Context, w io.Writer) (err error) {
	done := s.track(ctx, "export", nil)
	defer func() { done(err) }()

	b, err := s.Bundle(ctx)
	if err != nil {
		return err
	}
	return backup.Export(w, *b)
}

func (s *backupService) Restore(ctx context.Context, b backup.Bundle) (err error) {
	fields := map[string]any{
		"workouts":   len(b.PastWorkouts),
		"templates":  len(b.Templates),
		"records":    len(b.ExercisePRs),
		"body_stats": len(b.BodyStats),
	}
	done := s.track(ctx, "import", fields)
	defer func() { done(err) }()

	b.PastWorkouts = slices.Clone(b.PastWorkouts)
	b.BodyStats = slices.Clone(b.BodyStats)
	domain.SortWorkoutsDesc(b.PastWorkouts)
	domain.SortBodyStatsDesc(b.BodyStats)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		if err := r.Settings.Save(ctx, normalizeSettings(b.Settings)); err != nil {
			return err
		}
		if err := r.Workouts.SaveAll(ctx, b.PastWorkouts); err != nil {
			return err
		}
		if err := r.Templates.SaveAll(ctx, b.Templates); err != nil {
			return err
		}
		if err := r.Records.Save(ctx, b.ExercisePRs); err != nil {
			return err
		}
		return r.BodyStats.SaveAll(ctx, b.BodyStats)
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "import failed, nothing changed", "error", err)
	}
	return err
}

func (s *backupService) Collections(ctx context.Context) ([]repository.CollectionInfo, error) {
	return s.repos.Info.List(ctx)
}
