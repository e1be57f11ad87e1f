package workout

import "github.com/alexanderramin/gymtrack/internal/domain"

// Prepend adds w in front of history and re-sorts newest first.
func Prepend(history []domain.Workout, w domain.Workout) []domain.Workout {
	out := make([]domain.Workout, 0, len(history)+1)
	out = append(out, w)
	out = append(out, history...)
	domain.SortWorkoutsDesc(out)
	return out
}

// Upsert replaces the entry with w's id, or prepends w when absent, and
// re-sorts newest first.
func Upsert(history []domain.Workout, w domain.Workout) []domain.Workout {
	for i := range history {
		if history[i].ID == w.ID {
			out := make([]domain.Workout, len(history))
			copy(out, history)
			out[i] = w
			domain.SortWorkoutsDesc(out)
			return out
		}
	}
	return Prepend(history, w)
}

// Remove drops the entry with the given id. The second result reports whether
// anything was removed.
func Remove(history []domain.Workout, id int64) ([]domain.Workout, bool) {
	out := make([]domain.Workout, 0, len(history))
	found := false
	for _, w := range history {
		if w.ID == id {
			found = true
			continue
		}
		out = append(out, w)
	}
	return out, found
}

// Find returns the entry with the given id.
func Find(history []domain.Workout, id int64) (domain.Workout, bool) {
	for _, w := range history {
		if w.ID == id {
			return w, true
		}
	}
	return domain.Workout{}, false
}

// IDTaken reports whether id is used by any history entry.
func IDTaken(history []domain.Workout) func(int64) bool {
	return func(id int64) bool {
		_, ok := Find(history, id)
		return ok
	}
}

// LastWeight returns the kg weight of the last set of the most recent
// occurrence of the named strength exercise, or 0.
func LastWeight(history []domain.Workout, name string) float64 {
	var best domain.Workout
	found := false
	for _, w := range history {
		ex, ok := w.FindExercise(name)
		if !ok || ex.IsCardio() || len(ex.Sets) == 0 {
			continue
		}
		if !found || w.StartTime.After(best.StartTime) {
			best, found = w, true
		}
	}
	if !found {
		return 0
	}
	ex, _ := best.FindExercise(name)
	return ex.Sets[len(ex.Sets)-1].Weight.Float()
}
