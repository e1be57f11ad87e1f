package editor

import (
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testNow  = time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	metric   = units.New(domain.UnitMetric)
	imperial = units.New(domain.UnitImperial)
)

func TestTemplateAddExercise_Seeds(t *testing.T) {
	d := NewTemplate(imperial)
	assert.False(t, d.AddExercise("   ", domain.GroupChest, 90))
	require.True(t, d.AddExercise("Bench", domain.GroupChest, 90))
	require.True(t, d.AddExercise("Bike", domain.GroupCardio, 0))
	require.True(t, d.AddExercise("Curl", domain.MuscleGroup("Forearms"), 0))

	bench := d.Exercises[0]
	assert.Empty(t, bench.ID)
	assert.Equal(t, 90, bench.RestTime)
	require.Len(t, bench.Sets, 1)
	assert.Equal(t, 8.0, bench.Sets[0].Reps.Float())
	assert.InDelta(t, 10/units.KgToLbs, bench.Sets[0].Weight.Float(), 1e-9)
	assert.False(t, bench.Sets[0].Completed)
	assert.Empty(t, bench.Sets[0].ID)

	assert.Equal(t, 10.0, d.Exercises[1].Sets[0].Time.Float())
	assert.Equal(t, domain.GroupOther, d.Exercises[2].MuscleGroup)
}

func TestAddSet_RepeatsLast(t *testing.T) {
	d := NewTemplate(metric)
	d.AddExercise("Squat", domain.GroupLegs, 0)
	d.AddExercise("Row", domain.GroupCardio, 0)

	require.NoError(t, d.EditSet(0, 0, domain.FieldReps, "5"))
	require.NoError(t, d.EditSet(0, 0, domain.FieldWeight, "100"))
	require.NoError(t, d.AddSet(0))
	assert.Equal(t, 5.0, d.Exercises[0].Sets[1].Reps.Float())
	assert.Equal(t, 100.0, d.Exercises[0].Sets[1].Weight.Float())

	require.NoError(t, d.EditSet(1, 0, domain.FieldTime, "25"))
	require.NoError(t, d.AddSet(1))
	assert.Equal(t, 25.0, d.Exercises[1].Sets[1].Time.Float())

	// Cleared fields fall back to defaults.
	require.NoError(t, d.EditSet(0, 1, domain.FieldReps, ""))
	require.NoError(t, d.EditSet(0, 1, domain.FieldWeight, "abc"))
	assert.False(t, d.Exercises[0].Sets[1].Weight.Valid())
	require.NoError(t, d.AddSet(0))
	last := d.Exercises[0].Sets[2]
	assert.Equal(t, 8.0, last.Reps.Float())
	assert.Equal(t, 0.0, last.Weight.Float())
	assert.True(t, last.Weight.Valid())

	require.NoError(t, d.RemoveSet(0, 0))
	assert.Len(t, d.Exercises[0].Sets, 2)
	require.NoError(t, d.RemoveSet(0, 0))
	require.NoError(t, d.RemoveSet(0, 0))
	require.NoError(t, d.AddSet(0))
	assert.Equal(t, 8.0, d.Exercises[0].Sets[0].Reps.Float())
}

func TestEditSet_WeightConvertsToKg(t *testing.T) {
	d := NewTemplate(imperial)
	d.AddExercise("Deadlift", domain.GroupBack, 0)
	require.NoError(t, d.EditSet(0, 0, domain.FieldWeight, "220.5"))
	assert.InDelta(t, 100.0, d.Exercises[0].Sets[0].Weight.Float(), 0.05)
}

func TestExerciseList_IndexErrors(t *testing.T) {
	d := NewTemplate(metric)
	d.AddExercise("Squat", domain.GroupLegs, 0)

	assert.ErrorIs(t, d.AddSet(1), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveSet(0, 3), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.EditSet(-1, 0, domain.FieldReps, "1"), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RemoveExercise(5), domain.ErrIndexOutOfRange)
	assert.ErrorIs(t, d.RenameExercise(2, "x"), domain.ErrIndexOutOfRange)
	assert.Error(t, d.EditSet(0, 0, domain.SetField("rpe"), "1"))
}

func TestExerciseList_UpdateExercise(t *testing.T) {
	d := NewTemplate(metric)
	d.AddExercise("Squat", domain.GroupLegs, 60)

	require.NoError(t, d.RenameExercise(0, "  Front Squat "))
	require.NoError(t, d.RenameExercise(0, " "))
	require.NoError(t, d.SetMuscleGroup(0, domain.GroupAbs))
	require.NoError(t, d.SetRestTime(0, -3))

	ex := d.Exercises[0]
	assert.Equal(t, "Front Squat", ex.Name)
	assert.Equal(t, domain.GroupAbs, ex.MuscleGroup)
	assert.Zero(t, ex.RestTime)

	require.NoError(t, d.RemoveExercise(0))
	assert.Empty(t, d.Exercises)
}

func TestTemplateBuild(t *testing.T) {
	d := NewTemplate(metric)
	d.AddExercise("Squat", domain.GroupLegs, 0)

	_, ok := d.Build(1, testNow)
	assert.False(t, ok, "blank name")

	d.Name = " Leg Day "
	tmpl, ok := d.Build(42, testNow)
	require.True(t, ok)
	assert.Equal(t, int64(42), tmpl.ID)
	assert.Equal(t, "Leg Day", tmpl.Name)
	assert.Equal(t, testNow, tmpl.CreatedAt)
	require.Len(t, tmpl.Exercises, 1)

	edit := EditTemplate(tmpl, metric)
	edit.Name = "Legs"
	edit.AddExercise("Lunge", domain.GroupLegs, 0)
	updated, ok := edit.Build(99, testNow.Add(time.Hour))
	require.True(t, ok)
	assert.Equal(t, int64(42), updated.ID)
	assert.Equal(t, testNow, updated.CreatedAt, "update keeps createdAt")
	assert.Len(t, updated.Exercises, 2)
	assert.Len(t, tmpl.Exercises, 1, "input untouched")
}

func TestTemplateCollectionHelpers(t *testing.T) {
	list := []domain.Template{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}

	list2 := UpsertTemplate(list, domain.Template{ID: 2, Name: "B2"})
	assert.Equal(t, "B", list[1].Name)
	assert.Equal(t, "B2", list2[1].Name)

	list3 := UpsertTemplate(list2, domain.Template{ID: 3, Name: "C"})
	require.Len(t, list3, 3)
	assert.Equal(t, []int64{3, 1, 2}, []int64{list3[0].ID, list3[1].ID, list3[2].ID}, "new templates go first")
	assert.Len(t, list2, 2)

	got, ok := FindTemplate(list3, 3)
	require.True(t, ok)
	assert.Equal(t, "C", got.Name)
	assert.True(t, TemplateIDTaken(list3)(1))
	assert.False(t, TemplateIDTaken(list3)(7))

	list4, ok := RemoveTemplate(list3, 1)
	assert.True(t, ok)
	assert.Len(t, list4, 2)
	_, ok = RemoveTemplate(list4, 1)
	assert.False(t, ok)
}

func TestNewPastWorkout(t *testing.T) {
	d := NewPastWorkout(testNow, imperial)
	assert.Equal(t, NewPastWorkoutName, d.Name)
	assert.Equal(t, 60, d.DurationMinutes)

	d.AddExercise("Bench", domain.GroupChest, 120)
	d.AddExercise("Run", domain.GroupCardio, 0)
	bench := d.Exercises[0].Sets[0]
	assert.True(t, bench.Completed)
	assert.NotEmpty(t, bench.ID)
	assert.Equal(t, 10.0, bench.Weight.Float())
	assert.Equal(t, 10.0, d.Exercises[1].Sets[0].Time.Float())

	require.NoError(t, d.AddSet(0))
	assert.True(t, d.Exercises[0].Sets[1].Completed)

	d.SetDuration(45)
	d.SetDuration(0)
	w := d.Build(777)
	assert.Equal(t, int64(777), w.ID)
	assert.Equal(t, testNow.Add(45*time.Minute), w.EndTime)
	assert.Len(t, w.Exercises, 2)
}

func TestEditWorkout(t *testing.T) {
	start := testNow.Add(-2 * time.Hour)
	w := domain.Workout{
		ID: 5, Name: "Push", StartTime: start, EndTime: start.Add(50*time.Minute + 40*time.Second),
		Exercises: []domain.Exercise{
			{Name: "Bench", MuscleGroup: domain.GroupChest, Sets: []domain.Set{{Reps: domain.Num(5), Weight: domain.Num(80)}}},
			{Name: "Dips", MuscleGroup: domain.GroupTriceps, Sets: []domain.Set{{Reps: domain.Num(10)}}},
		},
	}
	d := EditWorkout(w, metric)
	assert.Equal(t, 51, d.DurationMinutes)
	assert.True(t, d.Exercises[0].Sets[0].Completed)
	assert.False(t, w.Exercises[0].Sets[0].Completed, "source untouched")

	require.NoError(t, d.RemoveSet(1, 0))
	d.Name = ""
	out := d.Build(999)
	assert.Equal(t, int64(5), out.ID)
	assert.Equal(t, NewPastWorkoutName, out.Name)
	assert.Equal(t, start.Add(51*time.Minute), out.EndTime)
	require.Len(t, out.Exercises, 1, "exercise without sets dropped")
	assert.Equal(t, "Bench", out.Exercises[0].Name)
}

func TestEditWorkout_NonPositiveDurationDefaults(t *testing.T) {
	w := domain.Workout{ID: 1, StartTime: testNow, EndTime: testNow.Add(-time.Minute)}
	assert.Equal(t, DefaultDurationMinutes, EditWorkout(w, metric).DurationMinutes)

	w.EndTime = time.Time{}
	assert.Equal(t, DefaultDurationMinutes, EditWorkout(w, metric).DurationMinutes)
}
