// Package workout implements the in-progress workout: its mutations, the
// completion snapshot of canonical weights, and the finish filter that turns
// a session into a history entry.
package workout

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/google/uuid"
)

const (
	defaultReps        = 8
	defaultCardioTime  = 10
	defaultSeedWeight  = 0
	defaultNameFormat  = "Workout - %s"
	defaultDateDisplay = "1/2/2006"
)

// RestRequest asks the caller to start the rest timer and play the cue.
type RestRequest struct {
	Seconds int
	Label   string
}

// Model wraps the single active workout. Strength set weights inside the
// model are in the display unit of the settings it was created with.
type Model struct {
	Workout  *domain.ActiveWorkout
	settings domain.Settings
	conv     units.Converter
}

func newID() string {
	return uuid.New().String()
}

// Start begins a session. With a template its exercises are deep-copied with
// fresh ids, weights converted to the display unit and every set incomplete;
// otherwise the session is empty and named after the local date.
func Start(tmpl *domain.Template, settings domain.Settings, now time.Time) *Model {
	m := &Model{settings: settings, conv: units.New(settings.UnitSystem)}
	w := &domain.ActiveWorkout{
		Name:      fmt.Sprintf(defaultNameFormat, now.Local().Format(defaultDateDisplay)),
		StartTime: now,
		Exercises: []domain.Exercise{},
	}
	if tmpl != nil {
		w.Name = tmpl.Name
		w.Exercises = domain.CloneExercises(tmpl.Exercises)
		for i := range w.Exercises {
			ex := &w.Exercises[i]
			ex.ID = newID()
			if ex.MuscleGroup == "" {
				ex.MuscleGroup = domain.GroupOther
			}
			for j := range ex.Sets {
				s := &ex.Sets[j]
				s.ID = newID()
				s.Completed = false
				s.WeightKg = domain.Empty()
				if !ex.IsCardio() && s.Weight.Valid() {
					s.Weight = m.conv.Display(s.Weight.Float())
				}
			}
		}
	}
	m.Workout = w
	return m
}

// Resume wraps a previously persisted active workout.
func Resume(w *domain.ActiveWorkout, settings domain.Settings) *Model {
	return &Model{Workout: w, settings: settings, conv: units.New(settings.UnitSystem)}
}

func (m *Model) exercise(i int) (*domain.Exercise, error) {
	if i < 0 || i >= len(m.Workout.Exercises) {
		return nil, fmt.Errorf("exercise %d: %w", i+1, domain.ErrIndexOutOfRange)
	}
	return &m.Workout.Exercises[i], nil
}

func (m *Model) set(i, j int) (*domain.Exercise, *domain.Set, error) {
	ex, err := m.exercise(i)
	if err != nil {
		return nil, nil, err
	}
	if j < 0 || j >= len(ex.Sets) {
		return nil, nil, fmt.Errorf("set %d of %q: %w", j+1, ex.Name, domain.ErrIndexOutOfRange)
	}
	return ex, &ex.Sets[j], nil
}

// AddExercise appends an exercise with one seeded set. lastWeightKg seeds the
// strength set's weight (0 when the exercise has never been logged). A blank
// name is a no-op and returns false.
func (m *Model) AddExercise(name string, group domain.MuscleGroup, lastWeightKg float64) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if !group.Valid() {
		group = domain.GroupOther
	}
	ex := domain.Exercise{
		ID:          newID(),
		Name:        name,
		MuscleGroup: group,
		RestTime:    m.settings.DefaultRestTime,
	}
	if ex.IsCardio() {
		ex.Sets = []domain.Set{{ID: newID(), Time: domain.Num(defaultCardioTime)}}
	} else {
		weight := domain.Num(defaultSeedWeight)
		if lastWeightKg > 0 {
			weight = m.conv.Display(lastWeightKg)
		}
		ex.Sets = []domain.Set{{ID: newID(), Reps: domain.Num(defaultReps), Weight: weight}}
	}
	m.Workout.Exercises = append(m.Workout.Exercises, ex)
	return true
}

// AddSet appends a set, repeating the previous strength set's reps and weight.
func (m *Model) AddSet(i int) error {
	ex, err := m.exercise(i)
	if err != nil {
		return err
	}
	s := domain.Set{ID: newID()}
	switch {
	case ex.IsCardio():
		s.Time = domain.Num(defaultCardioTime)
	case len(ex.Sets) > 0:
		last := ex.Sets[len(ex.Sets)-1]
		s.Reps, s.Weight = last.Reps, last.Weight
	default:
		s.Reps, s.Weight = domain.Num(defaultReps), domain.Num(defaultSeedWeight)
	}
	ex.Sets = append(ex.Sets, s)
	return nil
}

func (m *Model) RemoveSet(i, j int) error {
	ex, _, err := m.set(i, j)
	if err != nil {
		return err
	}
	ex.Sets = append(ex.Sets[:j], ex.Sets[j+1:]...)
	return nil
}

// EditSetField stores value parsed as a float; unparseable input clears the
// field rather than failing.
func (m *Model) EditSetField(i, j int, field domain.SetField, value string) error {
	_, s, err := m.set(i, j)
	if err != nil {
		return err
	}
	n := domain.ParseNumber(value)
	switch field {
	case domain.FieldReps:
		s.Reps = n
	case domain.FieldWeight:
		s.Weight = n
	case domain.FieldTime:
		s.Time = n
	default:
		return fmt.Errorf("unknown set field %q", field)
	}
	return nil
}

func (m *Model) SetRestTime(i, seconds int) error {
	ex, err := m.exercise(i)
	if err != nil {
		return err
	}
	if seconds < 0 {
		seconds = 0
	}
	ex.RestTime = seconds
	return nil
}

// ToggleSetComplete flips a set's completion. Completing a strength set
// snapshots its kg weight and, with sound effects on, returns a rest request.
func (m *Model) ToggleSetComplete(i, j int) (*RestRequest, error) {
	ex, s, err := m.set(i, j)
	if err != nil {
		return nil, err
	}
	s.Completed = !s.Completed
	if !s.Completed || ex.IsCardio() {
		return nil, nil
	}
	s.WeightKg = domain.Num(m.conv.StoreNumber(s.Weight))
	if !m.settings.SoundEffects {
		return nil, nil
	}
	return &RestRequest{Seconds: m.settings.RestFor(*ex), Label: ex.Name}, nil
}

func (m *Model) RemoveExercise(i int) error {
	if _, err := m.exercise(i); err != nil {
		return err
	}
	m.Workout.Exercises = append(m.Workout.Exercises[:i], m.Workout.Exercises[i+1:]...)
	return nil
}

// LiveVolume sums reps × kg over completed strength sets.
func (m *Model) LiveVolume() float64 {
	var v float64
	for _, ex := range m.Workout.Exercises {
		if ex.IsCardio() {
			continue
		}
		for _, s := range ex.Sets {
			if s.Completed {
				v += s.Reps.Float() * m.conv.StoreNumber(s.Weight)
			}
		}
	}
	return v
}

// Finish keeps only completed sets, converts strength weights to kg and drops
// exercises left empty. It returns false when nothing qualifies, in which case
// the session must be discarded rather than stored.
func (m *Model) Finish(id int64, now time.Time) (*domain.Workout, bool) {
	var kept []domain.Exercise
	for _, ex := range m.Workout.Exercises {
		var sets []domain.Set
		for _, s := range ex.Sets {
			if !s.Completed {
				continue
			}
			if !ex.IsCardio() {
				kg := s.WeightKg.Float()
				if kg == 0 {
					kg = m.conv.StoreNumber(s.Weight)
				}
				s.Weight = domain.Num(kg)
				s.WeightKg = domain.Empty()
			}
			sets = append(sets, s)
		}
		if len(sets) == 0 {
			continue
		}
		ex.Sets = sets
		kept = append(kept, ex)
	}
	if len(kept) == 0 {
		return nil, false
	}
	return &domain.Workout{
		ID:        id,
		Name:      m.Workout.Name,
		StartTime: m.Workout.StartTime,
		EndTime:   now,
		Exercises: kept,
	}, true
}

// TemplateExercises returns the session's plan in template form: no ids or
// completion, weights in kg.
func (m *Model) TemplateExercises() []domain.Exercise {
	out := domain.StripTransient(m.Workout.Exercises)
	for i := range out {
		if out[i].MuscleGroup == "" {
			out[i].MuscleGroup = domain.GroupOther
		}
		for j := range out[i].Sets {
			s := &out[i].Sets[j]
			if out[i].IsCardio() {
				*s = domain.Set{Time: s.Time}
				continue
			}
			*s = domain.Set{Reps: s.Reps, Weight: domain.Num(m.conv.StoreNumber(s.Weight))}
		}
	}
	return out
}
