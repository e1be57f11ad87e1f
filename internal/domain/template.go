package domain

import "time"

// Template is a reusable workout plan. Its sets carry no ids or completion
// state and weights are stored in kg.
type Template struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt time.Time  `json:"createdAt"`
}

// StripTransient returns a copy of exercises with exercise and set ids, weight
// snapshots and completion flags removed.
func StripTransient(exercises []Exercise) []Exercise {
	out := CloneExercises(exercises)
	for i := range out {
		out[i].ID = ""
		for j := range out[i].Sets {
			s := &out[i].Sets[j]
			s.ID = ""
			s.WeightKg = Number{}
			s.Completed = false
		}
	}
	return out
}
