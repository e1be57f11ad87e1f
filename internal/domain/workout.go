package domain

import (
	"encoding/json"
	"sort"
	"time"
)

// Set is one logged set. Strength sets use Reps and Weight; cardio sets use
// Time (minutes). Which pair applies is decided by the owning exercise.
type Set struct {
	ID     string `json:"id,omitempty"`
	Reps   Number `json:"reps,omitzero"`
	Weight Number `json:"weight,omitzero"`
	Time   Number `json:"time,omitzero"`
	// WeightKg is the canonical weight captured when an in-progress strength
	// set is marked complete. Finished workouts carry kg in Weight instead.
	WeightKg  Number `json:"weightKg,omitzero"`
	Completed bool   `json:"completed,omitempty"`
}

func (s *Set) UnmarshalJSON(data []byte) error {
	type plain Set
	aux := struct {
		*plain
		ID looseID `json:"id"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.ID = string(aux.ID)
	return nil
}

// ValidStrength reports whether the set counts toward strength analytics.
func (s Set) ValidStrength() bool {
	return s.Reps.Positive() && s.Weight.Positive()
}

// Volume is reps × weight.
func (s Set) Volume() float64 {
	return s.Reps.Float() * s.Weight.Float()
}

type Exercise struct {
	ID          string      `json:"id,omitempty"`
	Name        string      `json:"name"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	RestTime    int         `json:"restTime,omitempty"`
	Sets        []Set       `json:"sets"`
}

// UnmarshalJSON accepts numeric ids and a rest time typed as text ("90"), as
// older backups store them. Unreadable rest times fall back to the default.
func (e *Exercise) UnmarshalJSON(data []byte) error {
	type plain Exercise
	aux := struct {
		*plain
		ID       looseID `json:"id"`
		RestTime Number  `json:"restTime"`
	}{plain: (*plain)(e)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.ID = string(aux.ID)
	e.RestTime = max(int(aux.RestTime.Float()), 0)
	return nil
}

func (e Exercise) IsCardio() bool {
	return e.MuscleGroup.IsCardio()
}

// Clone returns a deep copy.
func (e Exercise) Clone() Exercise {
	c := e
	if e.Sets != nil {
		c.Sets = make([]Set, len(e.Sets))
		copy(c.Sets, e.Sets)
	}
	return c
}

// CloneExercises deep-copies an exercise list.
func CloneExercises(exercises []Exercise) []Exercise {
	if exercises == nil {
		return nil
	}
	out := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.Clone()
	}
	return out
}

// ActiveWorkout is the in-progress session. There is at most one.
type ActiveWorkout struct {
	Name      string     `json:"name"`
	StartTime time.Time  `json:"startTime"`
	Exercises []Exercise `json:"exercises"`
}

// Workout is a finished history entry. Weights are kg and every set is
// completed.
type Workout struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	StartTime time.Time  `json:"startTime"`
	EndTime   time.Time  `json:"endTime"`
	Exercises []Exercise `json:"exercises"`
}

func (w Workout) Duration() time.Duration {
	if w.EndTime.IsZero() || w.EndTime.Before(w.StartTime) {
		return 0
	}
	return w.EndTime.Sub(w.StartTime)
}

func (w Workout) TotalSets() int {
	var n int
	for _, ex := range w.Exercises {
		n += len(ex.Sets)
	}
	return n
}

// Volume sums reps × weight over every strength set.
func (w Workout) Volume() float64 {
	var v float64
	for _, ex := range w.Exercises {
		if ex.IsCardio() {
			continue
		}
		for _, s := range ex.Sets {
			v += s.Volume()
		}
	}
	return v
}

// FindExercise returns the first exercise with the exact given name.
func (w Workout) FindExercise(name string) (Exercise, bool) {
	for _, ex := range w.Exercises {
		if ex.Name == name {
			return ex, true
		}
	}
	return Exercise{}, false
}

// SortWorkoutsDesc orders history newest first by start time.
func SortWorkoutsDesc(ws []Workout) {
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].StartTime.After(ws[j].StartTime)
	})
}

// NextID derives a unique integer id from now, bumping forward past ids that
// are already taken.
func NextID(now time.Time, taken func(int64) bool) int64 {
	id := now.UnixMilli()
	for taken != nil && taken(id) {
		id++
	}
	return id
}
