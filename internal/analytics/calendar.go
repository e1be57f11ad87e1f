package analytics

import (
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

const dayLayout = "2006-01-02"

type CalendarDay struct {
	Day        int
	HasWorkout bool
	Today      bool
}

// Calendar is one month grid. Offset is the weekday of day 1 (Sunday = 0),
// i.e. the number of leading blank cells.
type Calendar struct {
	Year   int
	Month  time.Month
	Offset int
	Days   []CalendarDay
}

// WorkoutDays returns the set of UTC calendar days on which a workout started.
func WorkoutDays(history []domain.Workout) map[string]bool {
	days := make(map[string]bool, len(history))
	for _, w := range history {
		if w.StartTime.IsZero() {
			continue
		}
		days[w.StartTime.UTC().Format(dayLayout)] = true
	}
	return days
}

// MonthCalendar lays out year/month. Workout matching compares UTC dates;
// the Today flag uses now's own (local) calendar date.
func MonthCalendar(year int, month time.Month, history []domain.Workout, now time.Time) Calendar {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()
	workoutDays := WorkoutDays(history)
	ny, nm, nd := now.Date()

	cal := Calendar{Year: first.Year(), Month: first.Month(), Offset: int(first.Weekday())}
	for d := 1; d <= daysIn; d++ {
		key := time.Date(cal.Year, cal.Month, d, 0, 0, 0, 0, time.UTC).Format(dayLayout)
		cal.Days = append(cal.Days, CalendarDay{
			Day:        d,
			HasWorkout: workoutDays[key],
			Today:      ny == cal.Year && nm == cal.Month && nd == d,
		})
	}
	return cal
}

// ShiftMonth moves year/month by delta months, normalizing overflow.
func ShiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}
