package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/db"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/editor"
	"github.com/alexanderramin/gymtrack/internal/records"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/alexanderramin/gymtrack/internal/workout"
)

type workoutService struct {
	repos Repos
	uow   db.UnitOfWork
	options
}

func NewWorkoutService(repos Repos, uow db.UnitOfWork, opts ...Option) WorkoutService {
	return &workoutService{repos: repos, uow: uow, options: buildOptions(opts)}
}

func (s *workoutService) session(w *domain.ActiveWorkout, settings domain.Settings) *ActiveSession {
	m := workout.Resume(w, settings)
	return &ActiveSession{
		Workout:      w,
		Settings:     settings,
		LiveVolumeKg: m.LiveVolume(),
		Elapsed:      max(s.now().Sub(w.StartTime), 0),
	}
}

func (s *workoutService) Active(ctx context.Context) (*ActiveSession, error) {
	w, err := loadActive(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	settings, err := loadSettings(ctx, s.logger, s.repos)
	if err != nil {
		return nil, err
	}
	return s.session(w, settings), nil
}

func (s *workoutService) Start(ctx context.Context, templateID int64) (out *ActiveSession, err error) {
	done := s.track(ctx, "start-workout", map[string]any{"template_id": templateID})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		if _, err := loadActive(ctx, s.logger, r); err == nil {
			return domain.ErrWorkoutInProgress
		} else if !errors.Is(err, domain.ErrNoActiveWorkout) {
			return err
		}
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}

		var tmpl *domain.Template
		if templateID != 0 {
			templates, err := loadTemplates(ctx, s.logger, r)
			if err != nil {
				return err
			}
			t, ok := editor.FindTemplate(templates, templateID)
			if !ok {
				return fmt.Errorf("template %d: %w", templateID, domain.ErrTemplateNotFound)
			}
			tmpl = &t
		}

		m := workout.Start(tmpl, settings, s.now())
		if err := r.Active.Save(ctx, m.Workout); err != nil {
			return err
		}
		out = s.session(m.Workout, settings)
		return nil
	})
	return out, err
}

func (s *workoutService) Discard(ctx context.Context) (err error) {
	done := s.track(ctx, "discard-workout", nil)
	defer func() { done(err) }()

	if _, err = loadActive(ctx, s.logger, s.repos); err != nil {
		return err
	}
	return s.repos.Active.Clear(ctx)
}

// mutate applies fn to the active workout and persists the result.
func (s *workoutService) mutate(ctx context.Context, name string, fields map[string]any, fn func(ctx context.Context, r Repos, m *workout.Model) error) (err error) {
	done := s.track(ctx, name, fields)
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		w, err := loadActive(ctx, s.logger, r)
		if err != nil {
			return err
		}
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}
		m := workout.Resume(w, settings)
		if err := fn(ctx, r, m); err != nil {
			return err
		}
		if err := r.Active.Save(ctx, m.Workout); err != nil {
			s.logger.ErrorContext(ctx, "saving active workout failed", "error", err)
			return err
		}
		return nil
	})
}

func (s *workoutService) Rename(ctx context.Context, name string) error {
	return s.mutate(ctx, "rename-workout", nil, func(_ context.Context, _ Repos, m *workout.Model) error {
		if name = strings.TrimSpace(name); name != "" {
			m.Workout.Name = name
		}
		return nil
	})
}

func (s *workoutService) AddExercise(ctx context.Context, name string, group domain.MuscleGroup) (added bool, err error) {
	err = s.mutate(ctx, "add-exercise", map[string]any{"exercise": name, "group": group},
		func(ctx context.Context, r Repos, m *workout.Model) error {
			history, err := loadWorkouts(ctx, s.logger, r)
			if err != nil {
				return err
			}
			added = m.AddExercise(name, group, workout.LastWeight(history, strings.TrimSpace(name)))
			return nil
		})
	return added, err
}

func (s *workoutService) RemoveExercise(ctx context.Context, exercise int) error {
	return s.mutate(ctx, "remove-exercise", map[string]any{"exercise": exercise},
		func(_ context.Context, _ Repos, m *workout.Model) error {
			return m.RemoveExercise(exercise)
		})
}

func (s *workoutService) AddSet(ctx context.Context, exercise int) error {
	return s.mutate(ctx, "add-set", map[string]any{"exercise": exercise},
		func(_ context.Context, _ Repos, m *workout.Model) error {
			return m.AddSet(exercise)
		})
}

func (s *workoutService) RemoveSet(ctx context.Context, exercise, set int) error {
	return s.mutate(ctx, "remove-set", map[string]any{"exercise": exercise, "set": set},
		func(_ context.Context, _ Repos, m *workout.Model) error {
			return m.RemoveSet(exercise, set)
		})
}

func (s *workoutService) EditSet(ctx context.Context, exercise, set int, field domain.SetField, value string) error {
	return s.mutate(ctx, "edit-set", map[string]any{"exercise": exercise, "set": set, "field": field},
		func(_ context.Context, _ Repos, m *workout.Model) error {
			return m.EditSetField(exercise, set, field, value)
		})
}

func (s *workoutService) SetRestTime(ctx context.Context, exercise, seconds int) error {
	return s.mutate(ctx, "set-rest-time", map[string]any{"exercise": exercise, "seconds": seconds},
		func(_ context.Context, _ Repos, m *workout.Model) error {
			return m.SetRestTime(exercise, seconds)
		})
}

func (s *workoutService) ToggleSet(ctx context.Context, exercise, set int) (req *workout.RestRequest, err error) {
	err = s.mutate(ctx, "toggle-set", map[string]any{"exercise": exercise, "set": set},
		func(_ context.Context, _ Repos, m *workout.Model) error {
			var err error
			req, err = m.ToggleSetComplete(exercise, set)
			return err
		})
	return req, err
}

func (s *workoutService) Finish(ctx context.Context) (out *FinishResult, err error) {
	fields := map[string]any{}
	done := s.track(ctx, "finish-workout", fields)
	defer func() { done(err) }()

	out = &FinishResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		active, err := loadActive(ctx, s.logger, r)
		if err != nil {
			return err
		}
		snap, err := loadSnapshot(ctx, s.logger, r)
		if err != nil {
			return err
		}

		now := s.now()
		m := workout.Resume(active, snap.Settings)
		finished, ok := m.Finish(domain.NextID(now, workout.IDTaken(snap.Workouts)), now)
		if !ok {
			fields["discarded"] = true
			return r.Active.Clear(ctx)
		}

		prs := records.Update(snap.Records, *finished, now)
		if err := r.Workouts.SaveAll(ctx, workout.Prepend(snap.Workouts, *finished)); err != nil {
			return err
		}
		if err := r.Records.Save(ctx, prs); err != nil {
			return err
		}
		if err := r.Active.Clear(ctx); err != nil {
			return err
		}
		out.Workout = finished
		out.NewRecords = records.Improved(snap.Records, prs)
		fields["workout_id"] = finished.ID
		fields["sets"] = finished.TotalSets()
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "finishing workout failed", "error", err)
		return nil, err
	}
	return out, nil
}

func (s *workoutService) SaveAsTemplate(ctx context.Context, name string) (out *domain.Template, saved bool, err error) {
	done := s.track(ctx, "save-workout-as-template", map[string]any{"name": name})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		r := NewSQLiteRepos(tx)
		active, err := loadActive(ctx, s.logger, r)
		if err != nil {
			return err
		}
		settings, err := loadSettings(ctx, s.logger, r)
		if err != nil {
			return err
		}
		templates, err := loadTemplates(ctx, s.logger, r)
		if err != nil {
			return err
		}

		draft := editor.NewTemplate(units.New(settings.UnitSystem))
		draft.Name = name
		draft.Exercises = workout.Resume(active, settings).TemplateExercises()
		now := s.now()
		t, ok := draft.Build(domain.NextID(now, editor.TemplateIDTaken(templates)), now)
		if !ok {
			return nil
		}
		if err := r.Templates.SaveAll(ctx, editor.UpsertTemplate(templates, t)); err != nil {
			return err
		}
		out, saved = &t, true
		return nil
	})
	return out, saved, err
}
