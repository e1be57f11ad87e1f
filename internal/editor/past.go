package editor

import (
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/google/uuid"
)

const (
	NewPastWorkoutName     = "New Past Workout"
	DefaultDurationMinutes = 60
)

// WorkoutDraft is a history entry being logged after the fact or edited.
// Every set in it is completed.
type WorkoutDraft struct {
	ExerciseList
	// ID is zero for a workout not yet in history.
	ID              int64
	Name            string
	StartTime       time.Time
	DurationMinutes int
}

// NewPastWorkout starts an empty draft at now lasting an hour.
func NewPastWorkout(now time.Time, conv units.Converter) *WorkoutDraft {
	return &WorkoutDraft{
		ExerciseList:    ExerciseList{Exercises: []domain.Exercise{}, conv: conv, logged: true},
		Name:            NewPastWorkoutName,
		StartTime:       now,
		DurationMinutes: DefaultDurationMinutes,
	}
}

// EditWorkout opens a history entry, forcing every set completed and
// deriving the duration in whole minutes.
func EditWorkout(w domain.Workout, conv units.Converter) *WorkoutDraft {
	exercises := domain.CloneExercises(w.Exercises)
	for i := range exercises {
		if exercises[i].ID == "" {
			exercises[i].ID = uuid.New().String()
		}
		for j := range exercises[i].Sets {
			s := &exercises[i].Sets[j]
			s.Completed = true
			if s.ID == "" {
				s.ID = uuid.New().String()
			}
		}
	}
	return &WorkoutDraft{
		ExerciseList:    ExerciseList{Exercises: exercises, conv: conv, logged: true},
		ID:              w.ID,
		Name:            w.Name,
		StartTime:       w.StartTime,
		DurationMinutes: durationMinutes(w.StartTime, w.EndTime),
	}
}

func durationMinutes(start, end time.Time) int {
	m := int(math.Round(end.Sub(start).Minutes()))
	if m <= 0 {
		return DefaultDurationMinutes
	}
	return m
}

// SetDuration ignores non-positive values.
func (d *WorkoutDraft) SetDuration(minutes int) {
	if minutes > 0 {
		d.DurationMinutes = minutes
	}
}

// Build produces the history entry. newID is used only when the draft has no
// id yet. Exercises without sets are dropped.
func (d *WorkoutDraft) Build(newID int64) domain.Workout {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = NewPastWorkoutName
	}
	minutes := d.DurationMinutes
	if minutes <= 0 {
		minutes = DefaultDurationMinutes
	}
	w := domain.Workout{
		ID:        d.ID,
		Name:      name,
		StartTime: d.StartTime,
		EndTime:   d.StartTime.Add(time.Duration(minutes) * time.Minute),
		Exercises: []domain.Exercise{},
	}
	if w.ID == 0 {
		w.ID = newID
	}
	for _, ex := range domain.CloneExercises(d.Exercises) {
		if len(ex.Sets) == 0 {
			continue
		}
		for j := range ex.Sets {
			ex.Sets[j].Completed = true
			ex.Sets[j].WeightKg = domain.Empty()
		}
		w.Exercises = append(w.Exercises, ex)
	}
	return w
}
