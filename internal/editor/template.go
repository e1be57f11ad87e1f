package editor

import (
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/units"
)

// TemplateDraft is a template being built or edited.
type TemplateDraft struct {
	ExerciseList
	// ID is zero for a new template.
	ID        int64
	Name      string
	CreatedAt time.Time
}

func NewTemplate(conv units.Converter) *TemplateDraft {
	return &TemplateDraft{ExerciseList: ExerciseList{Exercises: []domain.Exercise{}, conv: conv}}
}

// EditTemplate opens an existing template. The stored template is not
// modified until the draft is saved.
func EditTemplate(t domain.Template, conv units.Converter) *TemplateDraft {
	return &TemplateDraft{
		ExerciseList: ExerciseList{Exercises: domain.StripTransient(t.Exercises), conv: conv},
		ID:           t.ID,
		Name:         t.Name,
		CreatedAt:    t.CreatedAt,
	}
}

// Build turns the draft into a template. newID supplies the id of a new
// template and now its creation time; an edited template keeps both. A blank
// name reports false.
func (d *TemplateDraft) Build(newID int64, now time.Time) (domain.Template, bool) {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return domain.Template{}, false
	}
	t := domain.Template{
		ID:        d.ID,
		Name:      name,
		Exercises: domain.StripTransient(d.Exercises),
		CreatedAt: d.CreatedAt,
	}
	if t.ID == 0 {
		t.ID = newID
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.Exercises == nil {
		t.Exercises = []domain.Exercise{}
	}
	return t, true
}

// UpsertTemplate replaces the template with t's id in place, or puts t
// first when it is new.
func UpsertTemplate(templates []domain.Template, t domain.Template) []domain.Template {
	for i := range templates {
		if templates[i].ID == t.ID {
			out := slices.Clone(templates)
			out[i] = t
			return out
		}
	}
	out := make([]domain.Template, 0, len(templates)+1)
	out = append(out, t)
	return append(out, templates...)
}

// RemoveTemplate drops the template with id and reports whether it existed.
func RemoveTemplate(templates []domain.Template, id int64) ([]domain.Template, bool) {
	out := make([]domain.Template, 0, len(templates))
	found := false
	for _, t := range templates {
		if t.ID == id {
			found = true
			continue
		}
		out = append(out, t)
	}
	return out, found
}

func FindTemplate(templates []domain.Template, id int64) (domain.Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Template{}, false
}

// TemplateIDTaken reports whether id is used by any template.
func TemplateIDTaken(templates []domain.Template) func(int64) bool {
	return func(id int64) bool {
		_, ok := FindTemplate(templates, id)
		return ok
	}
}
