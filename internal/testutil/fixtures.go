package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/google/uuid"
)

var testIDCounter atomic.Int64

func nextID() int64 {
	return 1_700_000_000_000 + testIDCounter.Add(1)
}

// NewStrengthExercise builds a logged strength exercise. Each pair is
// {reps, kg}; every set is completed.
func NewStrengthExercise(name string, group domain.MuscleGroup, sets ...[2]float64) domain.Exercise {
	ex := domain.Exercise{ID: uuid.New().String(), Name: name, MuscleGroup: group}
	for _, s := range sets {
		ex.Sets = append(ex.Sets, domain.Set{
			ID:        uuid.New().String(),
			Reps:      domain.Num(s[0]),
			Weight:    domain.Num(s[1]),
			Completed: true,
		})
	}
	return ex
}

// NewCardioExercise builds a logged cardio exercise with one completed set
// per duration in minutes.
func NewCardioExercise(name string, minutes ...float64) domain.Exercise {
	ex := domain.Exercise{ID: uuid.New().String(), Name: name, MuscleGroup: domain.GroupCardio}
	for _, m := range minutes {
		ex.Sets = append(ex.Sets, domain.Set{ID: uuid.New().String(), Time: domain.Num(m), Completed: true})
	}
	return ex
}

// Workout options
type WorkoutOption func(*domain.Workout)

func WithWorkoutID(id int64) WorkoutOption {
	return func(w *domain.Workout) {
		w.ID = id
	}
}

func WithStart(t time.Time) WorkoutOption {
	return func(w *domain.Workout) {
		d := w.Duration()
		w.StartTime = t
		w.EndTime = t.Add(d)
	}
}

func WithDuration(d time.Duration) WorkoutOption {
	return func(w *domain.Workout) {
		w.EndTime = w.StartTime.Add(d)
	}
}

func WithExercises(exs ...domain.Exercise) WorkoutOption {
	return func(w *domain.Workout) {
		w.Exercises = append(w.Exercises, exs...)
	}
}

func NewTestWorkout(name string, opts ...WorkoutOption) domain.Workout {
	start := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	w := domain.Workout{
		ID:        nextID(),
		Name:      name,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Exercises: []domain.Exercise{},
	}
	for _, opt := range opts {
		opt(&w)
	}
	return w
}

// Template options
type TemplateOption func(*domain.Template)

func WithTemplateID(id int64) TemplateOption {
	return func(t *domain.Template) {
		t.ID = id
	}
}

// WithTemplateExercise adds a strength exercise with n sets of reps at kg.
func WithTemplateExercise(name string, group domain.MuscleGroup, n int, reps, kg float64) TemplateOption {
	return func(t *domain.Template) {
		ex := domain.Exercise{Name: name, MuscleGroup: group}
		for i := 0; i < n; i++ {
			ex.Sets = append(ex.Sets, domain.Set{Reps: domain.Num(reps), Weight: domain.Num(kg)})
		}
		t.Exercises = append(t.Exercises, ex)
	}
}

func WithTemplateCardio(name string, minutes float64) TemplateOption {
	return func(t *domain.Template) {
		t.Exercises = append(t.Exercises, domain.Exercise{
			Name:        name,
			MuscleGroup: domain.GroupCardio,
			Sets:        []domain.Set{{Time: domain.Num(minutes)}},
		})
	}
}

func NewTestTemplate(name string, opts ...TemplateOption) domain.Template {
	t := domain.Template{
		ID:        nextID(),
		Name:      name,
		Exercises: []domain.Exercise{},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewBodyStats returns one entry per weight, a day apart, newest first.
func NewBodyStats(newest time.Time, kgs ...float64) []domain.BodyStat {
	out := make([]domain.BodyStat, 0, len(kgs))
	for i, kg := range kgs {
		out = append(out, domain.BodyStat{Date: newest.AddDate(0, 0, -i), Weight: kg})
	}
	return out
}

// DescribeWorkout renders a compact label for assertion messages.
func DescribeWorkout(w domain.Workout) string {
	return fmt.Sprintf("%d %q (%d exercises, %d sets)", w.ID, w.Name, len(w.Exercises), w.TotalSets())
}
