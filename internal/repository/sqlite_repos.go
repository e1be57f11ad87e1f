package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
)

// SQLiteSettingsRepo implements SettingsRepo.
type SQLiteSettingsRepo struct {
	c collection[domain.Settings]
}

func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{c: collection[domain.Settings]{db: conn, key: KeySettings}}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	return r.c.load(ctx)
}

func (r *SQLiteSettingsRepo) Save(ctx context.Context, s domain.Settings) error {
	return r.c.save(ctx, s)
}

// SQLiteWorkoutRepo implements WorkoutRepo. History is stored newest first.
type SQLiteWorkoutRepo struct {
	c collection[[]domain.Workout]
}

func NewSQLiteWorkoutRepo(conn db.DBTX) *SQLiteWorkoutRepo {
	return &SQLiteWorkoutRepo{c: collection[[]domain.Workout]{db: conn, key: KeyWorkouts}}
}

func (r *SQLiteWorkoutRepo) List(ctx context.Context) ([]domain.Workout, error) {
	return r.c.load(ctx)
}

func (r *SQLiteWorkoutRepo) SaveAll(ctx context.Context, ws []domain.Workout) error {
	if ws == nil {
		ws = []domain.Workout{}
	}
	return r.c.save(ctx, ws)
}

// SQLiteTemplateRepo implements TemplateRepo.
type SQLiteTemplateRepo struct {
	c collection[[]domain.Template]
}

func NewSQLiteTemplateRepo(conn db.DBTX) *SQLiteTemplateRepo {
	return &SQLiteTemplateRepo{c: collection[[]domain.Template]{db: conn, key: KeyTemplates}}
}

func (r *SQLiteTemplateRepo) List(ctx context.Context) ([]domain.Template, error) {
	return r.c.load(ctx)
}

func (r *SQLiteTemplateRepo) SaveAll(ctx context.Context, ts []domain.Template) error {
	if ts == nil {
		ts = []domain.Template{}
	}
	return r.c.save(ctx, ts)
}

// SQLiteRecordRepo implements RecordRepo.
type SQLiteRecordRepo struct {
	c collection[domain.PersonalRecords]
}

func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{c: collection[domain.PersonalRecords]{db: conn, key: KeyRecords}}
}

func (r *SQLiteRecordRepo) Get(ctx context.Context) (domain.PersonalRecords, error) {
	return r.c.load(ctx)
}

func (r *SQLiteRecordRepo) Save(ctx context.Context, prs domain.PersonalRecords) error {
	if prs == nil {
		prs = domain.PersonalRecords{}
	}
	return r.c.save(ctx, prs)
}

// SQLiteBodyStatRepo implements BodyStatRepo. Entries are stored newest first.
type SQLiteBodyStatRepo struct {
	c collection[[]domain.BodyStat]
}

func NewSQLiteBodyStatRepo(conn db.DBTX) *SQLiteBodyStatRepo {
	return &SQLiteBodyStatRepo{c: collection[[]domain.BodyStat]{db: conn, key: KeyBodyStats}}
}

func (r *SQLiteBodyStatRepo) List(ctx context.Context) ([]domain.BodyStat, error) {
	return r.c.load(ctx)
}

func (r *SQLiteBodyStatRepo) SaveAll(ctx context.Context, stats []domain.BodyStat) error {
	if stats == nil {
		stats = []domain.BodyStat{}
	}
	return r.c.save(ctx, stats)
}

// SQLiteActiveWorkoutRepo implements ActiveWorkoutRepo.
type SQLiteActiveWorkoutRepo struct {
	c collection[*domain.ActiveWorkout]
}

func NewSQLiteActiveWorkoutRepo(conn db.DBTX) *SQLiteActiveWorkoutRepo {
	return &SQLiteActiveWorkoutRepo{c: collection[*domain.ActiveWorkout]{db: conn, key: KeyActiveWorkout}}
}

// Get returns ErrNotFound when no workout is in progress.
func (r *SQLiteActiveWorkoutRepo) Get(ctx context.Context) (*domain.ActiveWorkout, error) {
	w, err := r.c.load(ctx)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%s: %w", KeyActiveWorkout, ErrNotFound)
	}
	return w, nil
}

func (r *SQLiteActiveWorkoutRepo) Save(ctx context.Context, w *domain.ActiveWorkout) error {
	if w == nil {
		return r.Clear(ctx)
	}
	return r.c.save(ctx, w)
}

func (r *SQLiteActiveWorkoutRepo) Clear(ctx context.Context) error {
	return r.c.delete(ctx)
}
