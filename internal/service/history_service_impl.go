package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/editor"
	"github.com/alexanderramin/gymtrack/internal/records"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/alexanderramin/gymtrack/internal/workout"
)

type historyService struct {
	repos Repos
	uow   db.UnitOfWork
	options
}

func NewHistoryService(repos Repos, uow db.UnitOfWork, opts ...Option) HistoryService {
	return &historyService{repos: repos, uow: uow, options: buildOptions(opts)}
}

func (s *historyService) List(ctx context.Context) ([]domain.Workout, error) {
	return loadWorkouts(ctx, s.logger, s.repos)
}

func (s *historyService) Get(ctx context.Context, id int64) (*domain.Workout, error) {
	history, err := loadWorkouts(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	w, ok := workout.Find(history, id)
	if !ok {
		return nil, fmt.Errorf("workout %d: %w", id, domain.ErrWorkoutNotFound)
	}
	return &w, nil
}

func (s *historyService) LogPast(ctx context.Context, edit func(*editor.WorkoutDraft) error) (*domain.Workout, error) {
	return s.save(ctx, "log-past-workout", 0, edit)
}

func (s *historyService) Edit(ctx context.Context, id int64, edit func(*editor.WorkoutDraft) error) (*domain.Workout, error) {
	return s.save(ctx, "edit-workout", id, edit)
}

// save opens a draft (new when id is 0), applies edit and upserts the result,
// merging it into personal records.
func (s *historyService) save(ctx context.Context, name string, id int64, edit func(*editor.WorkoutDraft) error) (out *domain.Workout, err error) {
	fields := map[string]any{"workout_id": id}
	done := s.track(ctx, name, fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}
		history, err := loadWorkouts(ctx, s.logger, r)
		if err != nil {
			return err
		}
		prs, err := loadRecords(ctx, s.logger, r)
		if err != nil {
			return err
		}

		now := s.now()
		conv := units.New(settings.UnitSystem)
		var draft *editor.WorkoutDraft
		if id == 0 {
			draft = editor.NewPastWorkout(now, conv)
		} else {
			current, ok := workout.Find(history, id)
			if !ok {
				return fmt.Errorf("workout %d: %w", id, domain.ErrWorkoutNotFound)
			}
			draft = editor.EditWorkout(current, conv)
		}
		if edit != nil {
			if err := edit(draft); err != nil {
				return err
			}
		}

		w := draft.Build(domain.NextID(now, workout.IDTaken(history)))
		if err := r.Workouts.SaveAll(ctx, workout.Upsert(history, w)); err != nil {
			return err
		}
		if err := r.Records.Save(ctx, records.Update(prs, w, now)); err != nil {
			return err
		}
		fields["workout_id"] = w.ID
		out = &w
		return nil
	})
	return out, err
}

func (s *historyService) Delete(ctx context.Context, id int64) (err error) {
	done := s.track(ctx, "delete-workout", map[string]any{"workout_id": id})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		history, err := loadWorkouts(ctx, s.logger, r)
		if err != nil {
			return err
		}
		rest, ok := workout.Remove(history, id)
		if !ok {
			return fmt.Errorf("workout %d: %w", id, domain.ErrWorkoutNotFound)
		}
		return r.Workouts.SaveAll(ctx, rest)
	})
}
