package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

// CollectionInfo is storage metadata for one persisted collection.
type CollectionInfo struct {
	Key       string
	Bytes     int
	Version   int
	UpdatedAt time.Time
}

type SettingsRepo interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

type WorkoutRepo interface {
	List(ctx context.Context) ([]domain.Workout, error)
	SaveAll(ctx context.Context, ws []domain.Workout) error
}

type TemplateRepo interface {
	List(ctx context.Context) ([]domain.Template, error)
	SaveAll(ctx context.Context, ts []domain.Template) error
}

type RecordRepo interface {
	Get(ctx context.Context) (domain.PersonalRecords, error)
	Save(ctx context.Context, prs domain.PersonalRecords) error
}

type BodyStatRepo interface {
	List(ctx context.Context) ([]domain.BodyStat, error)
	SaveAll(ctx context.Context, stats []domain.BodyStat) error
}

type ActiveWorkoutRepo interface {
	Get(ctx context.Context) (*domain.ActiveWorkout, error)
	Save(ctx context.Context, w *domain.ActiveWorkout) error
	Clear(ctx context.Context) error
}

type CollectionInfoRepo interface {
	List(ctx context.Context) ([]CollectionInfo, error)
}

// Compile-time interface checks.
var (
	_ SettingsRepo       = (*SQLiteSettingsRepo)(nil)
	_ WorkoutRepo        = (*SQLiteWorkoutRepo)(nil)
	_ TemplateRepo       = (*SQLiteTemplateRepo)(nil)
	_ RecordRepo         = (*SQLiteRecordRepo)(nil)
	_ BodyStatRepo       = (*SQLiteBodyStatRepo)(nil)
	_ ActiveWorkoutRepo  = (*SQLiteActiveWorkoutRepo)(nil)
	_ CollectionInfoRepo = (*SQLiteCollectionInfoRepo)(nil)
)
