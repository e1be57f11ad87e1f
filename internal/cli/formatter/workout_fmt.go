package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/service"
	"github.com/alexanderramin/gymtrack/internal/units"
)

// FormatExercise renders one exercise with its sets, numbered from 1. Weights
// are printed as stored in the exercise; label names their unit.
func FormatExercise(n int, ex domain.Exercise, label string, showDone bool) string {
	var b strings.Builder
	title := fmt.Sprintf("%d. %s  %s", n, Bold(ex.Name), GroupBadge(ex.MuscleGroup))
	if ex.RestTime > 0 && !ex.IsCardio() {
		title += Dim("  rest " + FormatClock(ex.RestTime))
	}
	b.WriteString(title + "\n")

	if len(ex.Sets) == 0 {
		b.WriteString(Dim("   no sets") + "\n")
		return b.String()
	}

	var headers []string
	if ex.IsCardio() {
		headers = []string{"SET", "MIN"}
	} else {
		headers = []string{"SET", "REPS", strings.ToUpper(label)}
	}
	if showDone {
		headers = append(headers, "DONE")
	}
	rows := make([][]string, 0, len(ex.Sets))
	for j, s := range ex.Sets {
		row := []string{strconv.Itoa(j + 1)}
		if ex.IsCardio() {
			row = append(row, FormatField(s.Time))
		} else {
			row = append(row, FormatField(s.Reps), FormatField(s.Weight))
		}
		if showDone {
			mark := Dim("○")
			if s.Completed {
				mark = StyleGreen.Render("✔")
			}
			row = append(row, mark)
		}
		rows = append(rows, row)
	}
	for _, line := range strings.Split(strings.TrimRight(RenderTable(headers, rows), "\n"), "\n") {
		b.WriteString("   " + line + "\n")
	}
	return b.String()
}

// FormatActiveWorkout renders the in-progress session.
func FormatActiveWorkout(s *service.ActiveSession) string {
	conv := units.New(s.Settings.UnitSystem)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(s.Workout.Name), Dim(FormatDuration(s.Elapsed)+" elapsed")))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Volume"), FormatWeight(conv.DisplayValue(s.LiveVolumeKg), conv.Label())))

	if len(s.Workout.Exercises) == 0 {
		b.WriteString(Dim("No exercises yet. Add one with `gymtrack workout add <name>`."))
	}
	for i, ex := range s.Workout.Exercises {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatExercise(i+1, ex, conv.Label(), true))
	}
	return RenderBox("Workout in progress", strings.TrimRight(b.String(), "\n"))
}

// displayExercises converts stored kg weights to the display unit.
func displayExercises(exercises []domain.Exercise, conv units.Converter) []domain.Exercise {
	out := domain.CloneExercises(exercises)
	for i := range out {
		if out[i].IsCardio() {
			continue
		}
		for j := range out[i].Sets {
			if w := out[i].Sets[j].Weight; w.Valid() {
				out[i].Sets[j].Weight = conv.Display(w.Float())
			}
		}
	}
	return out
}

// FormatHistoryList renders finished workouts, newest first as given.
func FormatHistoryList(history []domain.Workout, conv units.Converter, now time.Time) string {
	if len(history) == 0 {
		return Dim("No workouts logged yet.")
	}
	headers := []string{"ID", "DATE", "NAME", "DURATION", "SETS", "VOLUME"}
	rows := make([][]string, 0, len(history))
	for _, w := range history {
		rows = append(rows, []string{
			Dim(strconv.FormatInt(w.ID, 10)),
			HumanDate(w.StartTime, now) + Dim(" ("+RelativeDateFrom(w.StartTime, now)+")"),
			Bold(w.Name),
			FormatDuration(w.Duration()),
			strconv.Itoa(w.TotalSets()),
			FormatWeight(conv.DisplayValue(w.Volume()), conv.Label()),
		})
	}
	return RenderBox("History", RenderTable(headers, rows))
}

// FormatWorkoutDetail renders one finished workout in the display unit.
func FormatWorkoutDetail(w domain.Workout, conv units.Converter, now time.Time) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(w.Name), Dim("#"+strconv.FormatInt(w.ID, 10))))
	b.WriteString(fmt.Sprintf("%s %s at %s\n", Dim("Started"), HumanDate(w.StartTime, now), w.StartTime.Local().Format("15:04")))
	b.WriteString(fmt.Sprintf("%s %s   %s %d   %s %s\n\n",
		Dim("Duration"), FormatDuration(w.Duration()),
		Dim("Sets"), w.TotalSets(),
		Dim("Volume"), FormatWeight(conv.DisplayValue(w.Volume()), conv.Label())))
	for i, ex := range displayExercises(w.Exercises, conv) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatExercise(i+1, ex, conv.Label(), false))
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}

// FormatFinish summarizes a finished (or discarded) session.
func FormatFinish(res *service.FinishResult, conv units.Converter) string {
	if res.Workout == nil {
		return Warn("No completed sets, workout discarded.")
	}
	w := res.Workout
	var b strings.Builder
	b.WriteString(Success(fmt.Sprintf("Saved %q: %d sets, %s in %s",
		w.Name, w.TotalSets(), FormatWeight(conv.DisplayValue(w.Volume()), conv.Label()), FormatDuration(w.Duration()))))
	if len(res.NewRecords) > 0 {
		b.WriteString("\n" + StyleYellow.Render("★ New records: ") + strings.Join(res.NewRecords, ", "))
	}
	return b.String()
}
