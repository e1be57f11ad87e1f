package analytics

import (
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

// Overview is the dashboard headline.
type Overview struct {
	WorkoutsDone int
	Templates    int
	LastWorkout  *time.Time
}

func Summarize(history []domain.Workout, templates []domain.Template) Overview {
	o := Overview{WorkoutsDone: len(history), Templates: len(templates)}
	for _, w := range history {
		if o.LastWorkout == nil || w.StartTime.After(*o.LastWorkout) {
			start := w.StartTime
			o.LastWorkout = &start
		}
	}
	return o
}
