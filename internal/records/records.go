// Package records derives personal records from finished workouts and merges
// them into the persistent record map.
package records

import (
	"sort"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

// SessionBest is what a single exercise achieved in one session.
type SessionBest struct {
	MaxWeight float64
	Volume    float64
	MaxTime   float64
}

// Best computes the session best for ex. Cardio considers sets with positive
// time; strength considers sets with positive reps and weight, and Volume sums
// reps × weight over those sets only. ok is false when no set qualifies.
func Best(ex domain.Exercise) (SessionBest, bool) {
	var b SessionBest
	found := false
	for _, s := range ex.Sets {
		if ex.IsCardio() {
			if !s.Time.Positive() {
				continue
			}
			found = true
			b.MaxTime = max(b.MaxTime, s.Time.Float())
			continue
		}
		if !s.ValidStrength() {
			continue
		}
		found = true
		b.MaxWeight = max(b.MaxWeight, s.Weight.Float())
		b.Volume += s.Volume()
	}
	return b, found
}

// Update merges w into prs and returns the new map; prs is not modified.
// Stored maxima never decrease and records are never removed.
func Update(prs domain.PersonalRecords, w domain.Workout, now time.Time) domain.PersonalRecords {
	out := prs.Clone()
	for _, ex := range w.Exercises {
		if len(ex.Sets) == 0 {
			continue
		}
		best, ok := Best(ex)
		if !ok {
			continue
		}
		rec := out[ex.Name]
		if ex.IsCardio() {
			rec.MaxTime = max(rec.MaxTime, best.MaxTime)
		} else {
			rec.MaxWeight = max(rec.MaxWeight, best.MaxWeight)
			rec.MaxVolume = max(rec.MaxVolume, best.Volume)
		}
		rec.MuscleGroup = ex.MuscleGroup
		rec.LastUpdated = now
		out[ex.Name] = rec
	}
	return out
}

// Improved lists, in name order, the exercises whose maxima in after exceed
// those in before, including exercises new to after.
func Improved(before, after domain.PersonalRecords) []string {
	var names []string
	for name, rec := range after {
		old, ok := before[name]
		if !ok || rec.MaxWeight > old.MaxWeight || rec.MaxVolume > old.MaxVolume || rec.MaxTime > old.MaxTime {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
