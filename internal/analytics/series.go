package analytics

import (
	"sort"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/records"
	"github.com/alexanderramin/gymtrack/internal/units"
)

// ExercisePoint is one session of an exercise. Cardio points use Time;
// strength points use MaxWeight and Volume, both in display units.
type ExercisePoint struct {
	Date      time.Time
	Time      float64
	MaxWeight float64
	Volume    float64
}

type ExerciseSeries struct {
	Name        string
	MuscleGroup domain.MuscleGroup
	Points      []ExercisePoint
}

func (s ExerciseSeries) IsCardio() bool {
	return s.MuscleGroup.IsCardio()
}

// ResolveMuscleGroup takes the group from the exercise's record when present,
// else from its first occurrence in history.
func ResolveMuscleGroup(name string, history []domain.Workout, prs domain.PersonalRecords) (domain.MuscleGroup, bool) {
	if rec, ok := prs[name]; ok && rec.MuscleGroup != "" {
		return rec.MuscleGroup, true
	}
	for _, w := range history {
		if ex, ok := w.FindExercise(name); ok && ex.MuscleGroup != "" {
			return ex.MuscleGroup, true
		}
	}
	return "", false
}

// ExerciseHistory builds the ascending-by-date series for one exercise name.
// Cardio sessions contribute the first set's time when positive; strength
// sessions contribute max weight and volume over valid sets and are skipped
// when none are valid.
func ExerciseHistory(name string, history []domain.Workout, prs domain.PersonalRecords, conv units.Converter) ExerciseSeries {
	group, ok := ResolveMuscleGroup(name, history, prs)
	series := ExerciseSeries{Name: name, MuscleGroup: group}
	if !ok {
		return series
	}
	for _, w := range history {
		ex, found := w.FindExercise(name)
		if !found || len(ex.Sets) == 0 {
			continue
		}
		if group.IsCardio() {
			if t := ex.Sets[0].Time; t.Positive() {
				series.Points = append(series.Points, ExercisePoint{Date: w.StartTime, Time: t.Float()})
			}
			continue
		}
		// Classify by the resolved group, not the session's own.
		ex.MuscleGroup = group
		best, valid := records.Best(ex)
		if !valid {
			continue
		}
		series.Points = append(series.Points, ExercisePoint{
			Date:      w.StartTime,
			MaxWeight: conv.DisplayValue(best.MaxWeight),
			Volume:    conv.DisplayValue(best.Volume),
		})
	}
	sort.SliceStable(series.Points, func(i, j int) bool {
		return series.Points[i].Date.Before(series.Points[j].Date)
	})
	return series
}

type WeightPoint struct {
	Date   time.Time
	Weight float64
}

// BodyWeightSeries returns body stats ascending by date in display units.
func BodyWeightSeries(stats []domain.BodyStat, conv units.Converter) []WeightPoint {
	sorted := make([]domain.BodyStat, len(stats))
	copy(sorted, stats)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	out := make([]WeightPoint, 0, len(sorted))
	for _, s := range sorted {
		out = append(out, WeightPoint{Date: s.Date, Weight: conv.DisplayValue(s.Weight)})
	}
	return out
}
