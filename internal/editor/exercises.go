// Package editor holds the drafts behind the template builder and the
// past-workout editor. Draft weights are canonical kg; weight input is taken
// in the display unit and converted on entry.
package editor

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/google/uuid"
)

const (
	seedReps       = 8
	seedCardioTime = 10
	seedWeight     = 10
)

// ExerciseList is the editable exercise list shared by both drafts.
type ExerciseList struct {
	Exercises []domain.Exercise

	conv units.Converter
	// logged lists (past workouts) carry ids and completed sets; template
	// lists carry neither.
	logged bool
}

func (l *ExerciseList) newSet() domain.Set {
	if !l.logged {
		return domain.Set{}
	}
	return domain.Set{ID: uuid.New().String(), Completed: true}
}

func (l *ExerciseList) exercise(i int) (*domain.Exercise, error) {
	if i < 0 || i >= len(l.Exercises) {
		return nil, fmt.Errorf("exercise %d: %w", i+1, domain.ErrIndexOutOfRange)
	}
	return &l.Exercises[i], nil
}

// AddExercise appends an exercise with one seeded set. Blank names are
// ignored and report false.
func (l *ExerciseList) AddExercise(name string, group domain.MuscleGroup, restTime int) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if !group.Valid() {
		group = domain.GroupOther
	}
	ex := domain.Exercise{Name: name, MuscleGroup: group, RestTime: restTime}
	if l.logged {
		ex.ID = uuid.New().String()
	}
	s := l.newSet()
	switch {
	case ex.IsCardio():
		s.Time = domain.Num(seedCardioTime)
	case l.logged:
		s.Reps, s.Weight = domain.Num(seedReps), domain.Num(seedWeight)
	default:
		s.Reps, s.Weight = domain.Num(seedReps), domain.Num(l.conv.StoreValue(seedWeight))
	}
	ex.Sets = []domain.Set{s}
	l.Exercises = append(l.Exercises, ex)
	return true
}

func (l *ExerciseList) RemoveExercise(i int) error {
	if _, err := l.exercise(i); err != nil {
		return err
	}
	l.Exercises = append(l.Exercises[:i], l.Exercises[i+1:]...)
	return nil
}

// AddSet repeats the last set's values, falling back to 10 minutes for
// cardio and 8 reps at 0 for strength.
func (l *ExerciseList) AddSet(i int) error {
	ex, err := l.exercise(i)
	if err != nil {
		return err
	}
	var last domain.Set
	if len(ex.Sets) > 0 {
		last = ex.Sets[len(ex.Sets)-1]
	}
	s := l.newSet()
	if ex.IsCardio() {
		s.Time = orDefault(last.Time, seedCardioTime)
	} else {
		s.Reps = orDefault(last.Reps, seedReps)
		s.Weight = orDefault(last.Weight, 0)
	}
	ex.Sets = append(ex.Sets, s)
	return nil
}

func orDefault(n domain.Number, def float64) domain.Number {
	if n.Positive() {
		return n
	}
	return domain.Num(def)
}

func (l *ExerciseList) RemoveSet(i, j int) error {
	ex, err := l.exercise(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(ex.Sets) {
		return fmt.Errorf("set %d of %q: %w", j+1, ex.Name, domain.ErrIndexOutOfRange)
	}
	ex.Sets = append(ex.Sets[:j], ex.Sets[j+1:]...)
	return nil
}

// EditSet sets one numeric field. Weight input is read in the display unit
// and stored as kg; unparseable input clears the field.
func (l *ExerciseList) EditSet(i, j int, field domain.SetField, value string) error {
	ex, err := l.exercise(i)
	if err != nil {
		return err
	}
	if j < 0 || j >= len(ex.Sets) {
		return fmt.Errorf("set %d of %q: %w", j+1, ex.Name, domain.ErrIndexOutOfRange)
	}
	s := &ex.Sets[j]
	n := domain.ParseNumber(value)
	switch field {
	case domain.FieldReps:
		s.Reps = n
	case domain.FieldTime:
		s.Time = n
	case domain.FieldWeight:
		if n.Valid() {
			n = domain.Num(l.conv.StoreNumber(n))
		}
		s.Weight = n
	default:
		return fmt.Errorf("unknown set field %q", field)
	}
	return nil
}

// RenameExercise ignores blank names.
func (l *ExerciseList) RenameExercise(i int, name string) error {
	ex, err := l.exercise(i)
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name != "" {
		ex.Name = name
	}
	return nil
}

func (l *ExerciseList) SetMuscleGroup(i int, group domain.MuscleGroup) error {
	ex, err := l.exercise(i)
	if err != nil {
		return err
	}
	if !group.Valid() {
		group = domain.GroupOther
	}
	ex.MuscleGroup = group
	return nil
}

func (l *ExerciseList) SetRestTime(i, seconds int) error {
	ex, err := l.exercise(i)
	if err != nil {
		return err
	}
	ex.RestTime = max(seconds, 0)
	return nil
}
