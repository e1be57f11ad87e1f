// Package analytics derives read-only progress views from workout history,
// personal records and body stats. Nothing here is cached; every view is
// recomputed from its inputs.
package analytics

import "github.com/alexanderramin/gymtrack/internal/domain"

type GroupCount struct {
	Group domain.MuscleGroup
	Count int
}

// MuscleGroupDistribution counts logged sets per recognized muscle group, in
// canonical group order. Groups with no sets are omitted.
func MuscleGroupDistribution(history []domain.Workout) []GroupCount {
	totals := make(map[domain.MuscleGroup]int, len(domain.MuscleGroups))
	for _, w := range history {
		for _, ex := range w.Exercises {
			if !ex.MuscleGroup.Valid() {
				continue
			}
			totals[ex.MuscleGroup] += len(ex.Sets)
		}
	}
	var out []GroupCount
	for _, g := range domain.MuscleGroups {
		if n := totals[g]; n > 0 {
			out = append(out, GroupCount{Group: g, Count: n})
		}
	}
	return out
}

// ExerciseNames lists distinct exercise names in the order they first appear
// in history.
func ExerciseNames(history []domain.Workout) []string {
	seen := make(map[string]bool)
	var names []string
	for _, w := range history {
		for _, ex := range w.Exercises {
			if seen[ex.Name] {
				continue
			}
			seen[ex.Name] = true
			names = append(names, ex.Name)
		}
	}
	return names
}
