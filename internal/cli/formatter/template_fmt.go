package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
)

// FormatTemplateList renders a styled template list inside a bordered box.
func FormatTemplateList(templates []domain.Template) string {
	if len(templates) == 0 {
		return Dim("No templates yet. Create one with `gymtrack template create <name>`.")
	}
	headers := []string{"ID", "NAME", "EXERCISES", "SETS"}
	rows := make([][]string, 0, len(templates))
	for _, t := range templates {
		var sets int
		names := make([]string, 0, len(t.Exercises))
		for _, ex := range t.Exercises {
			sets += len(ex.Sets)
			names = append(names, ex.Name)
		}
		rows = append(rows, []string{
			Dim(strconv.FormatInt(t.ID, 10)),
			Bold(t.Name),
			strings.Join(names, ", "),
			strconv.Itoa(sets),
		})
	}
	return RenderBox("Templates", RenderTable(headers, rows))
}

// FormatTemplateShow renders a template's plan in the display unit.
func FormatTemplateShow(t domain.Template, conv units.Converter) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(t.Name), Dim("#"+strconv.FormatInt(t.ID, 10))))
	b.WriteString(fmt.Sprintf("%s %s\n\n", Dim("Created"), t.CreatedAt.Local().Format("Jan 2, 2006")))
	if len(t.Exercises) == 0 {
		b.WriteString(Dim("No exercises."))
	}
	for i, ex := range displayExercises(t.Exercises, conv) {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatExercise(i+1, ex, conv.Label(), false))
	}
	return RenderBox("", strings.TrimRight(b.String(), "\n"))
}
