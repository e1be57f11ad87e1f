package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/analytics"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/service"
	"github.com/alexanderramin/gymtrack/internal/units"
	"github.com/charmbracelet/lipgloss"
)

const distributionBarWidth = 20

// FormatDashboard renders the headline stats, the muscle-group distribution
// and the personal records.
func FormatDashboard(d *service.Dashboard, now time.Time) string {
	conv := units.New(d.Settings.UnitSystem)
	var b strings.Builder

	last := Dim("never")
	if d.Overview.LastWorkout != nil {
		last = HumanDate(*d.Overview.LastWorkout, now)
	}
	b.WriteString(fmt.Sprintf("%s %d   %s %d   %s %s\n",
		Dim("Workouts"), d.Overview.WorkoutsDone,
		Dim("Templates"), d.Overview.Templates,
		Dim("Last"), last))

	b.WriteString("\n" + Header("Sets by muscle group") + "\n")
	b.WriteString(FormatDistribution(d.Distribution))

	b.WriteString("\n" + Header("Personal records") + "\n")
	b.WriteString(FormatRecords(d.Records, conv))
	return RenderBox("Progress", strings.TrimRight(b.String(), "\n"))
}

// FormatDistribution draws one bar per muscle group, scaled to the largest.
func FormatDistribution(counts []analytics.GroupCount) string {
	if len(counts) == 0 {
		return Dim("No sets logged yet.") + "\n"
	}
	var total, most int
	for _, c := range counts {
		total += c.Count
		most = max(most, c.Count)
	}
	var b strings.Builder
	for _, c := range counts {
		name := string(c.Group)
		pad := strings.Repeat(" ", max(10-lipgloss.Width(name), 0))
		bar := GroupStyle(c.Group).Render(RenderBar(float64(c.Count)/float64(most), distributionBarWidth))
		b.WriteString(fmt.Sprintf("%s%s %s %d %s\n", GroupBadge(c.Group), pad, bar, c.Count,
			Dim(fmt.Sprintf("(%.0f%%)", 100*float64(c.Count)/float64(total)))))
	}
	return b.String()
}

// FormatRecords lists personal records by exercise name.
func FormatRecords(prs domain.PersonalRecords, conv units.Converter) string {
	if len(prs) == 0 {
		return Dim("No records yet.") + "\n"
	}
	names := make([]string, 0, len(prs))
	for name := range prs {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := []string{"EXERCISE", "GROUP", "BEST", "VOLUME"}
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rec := prs[name]
		row := []string{Bold(name), GroupBadge(rec.MuscleGroup)}
		if rec.MuscleGroup.IsCardio() {
			row = append(row, FormatNumber(rec.MaxTime)+" min", Dim("-"))
		} else {
			row = append(row,
				FormatWeight(conv.DisplayValue(rec.MaxWeight), conv.Label()),
				FormatWeight(conv.DisplayValue(rec.MaxVolume), conv.Label()))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatExerciseSeries renders an exercise's per-session history, oldest
// first. Values are already in the display unit.
func FormatExerciseSeries(s *analytics.ExerciseSeries, label string) string {
	if len(s.Points) == 0 {
		return Dim(fmt.Sprintf("No sessions logged for %q.", s.Name))
	}
	var headers []string
	if s.IsCardio() {
		headers = []string{"DATE", "MIN"}
	} else {
		headers = []string{"DATE", "MAX " + strings.ToUpper(label), "VOLUME"}
	}
	rows := make([][]string, 0, len(s.Points))
	for _, p := range s.Points {
		date := p.Date.Local().Format("Jan 2, 2006")
		if s.IsCardio() {
			rows = append(rows, []string{date, FormatNumber(p.Time)})
			continue
		}
		rows = append(rows, []string{date, FormatNumber(p.MaxWeight), FormatNumber(p.Volume)})
	}
	return RenderBox(s.Name, GroupBadge(s.MuscleGroup)+"\n\n"+RenderTable(headers, rows))
}

// FormatBodyWeight renders the weight trend, oldest first, with a bar per
// entry scaled between the lightest and heaviest entries.
func FormatBodyWeight(points []analytics.WeightPoint, label string) string {
	if len(points) == 0 {
		return Dim("No body weight entries yet.")
	}
	lo, hi := points[0].Weight, points[0].Weight
	for _, p := range points {
		lo, hi = min(lo, p.Weight), max(hi, p.Weight)
	}
	var b strings.Builder
	for _, p := range points {
		pct := 1.0
		if hi > lo {
			pct = 0.1 + 0.9*(p.Weight-lo)/(hi-lo)
		}
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			p.Date.UTC().Format("2006-01-02"),
			StyleBlue.Render(RenderBar(pct, distributionBarWidth)),
			FormatWeight(p.Weight, label)))
	}
	return RenderBox("Body weight", strings.TrimRight(b.String(), "\n"))
}

// FormatBodyStats lists entries newest first, numbered for edit and delete.
func FormatBodyStats(stats []domain.BodyStat, conv units.Converter) string {
	if len(stats) == 0 {
		return Dim("No body weight entries yet.")
	}
	headers := []string{"#", "DATE", "WEIGHT"}
	rows := make([][]string, 0, len(stats))
	for i, s := range stats {
		rows = append(rows, []string{
			Dim(strconv.Itoa(i + 1)),
			s.Date.UTC().Format("2006-01-02"),
			FormatWeight(conv.DisplayValue(s.Weight), conv.Label()),
		})
	}
	return RenderBox("Body weight", RenderTable(headers, rows))
}

// FormatCalendar draws a Sunday-first month grid. Workout days carry a dot
// and today is highlighted.
func FormatCalendar(cal *analytics.Calendar) string {
	var b strings.Builder
	b.WriteString(Dim("Su  Mo  Tu  We  Th  Fr  Sa") + "\n")
	col := cal.Offset
	b.WriteString(strings.Repeat("    ", col))
	for _, d := range cal.Days {
		mark := " "
		if d.HasWorkout {
			mark = StyleGreen.Render("•")
		}
		num := fmt.Sprintf("%2d", d.Day)
		if d.Today {
			num = StyleYellow.Bold(true).Render(num)
		}
		b.WriteString(num + mark)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	title := time.Date(cal.Year, cal.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	return RenderBox(title, strings.TrimRight(b.String(), " \n"))
}
