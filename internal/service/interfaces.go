package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/gymtrack/internal/analytics"
	"github.com/alexanderramin/gymtrack/internal/backup"
	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/alexanderramin/gymtrack/internal/editor"
	"github.com/alexanderramin/gymtrack/internal/repository"
	"github.com/alexanderramin/gymtrack/internal/workout"
)

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	SetUnitSystem(ctx context.Context, u domain.UnitSystem) (domain.Settings, error)
	SetDefaultRestTime(ctx context.Context, seconds int) (domain.Settings, error)
	SetSoundEffects(ctx context.Context, on bool) (domain.Settings, error)
}

// ActiveSession is the in-progress workout together with the settings its
// display weights are expressed in.
type ActiveSession struct {
	Workout      *domain.ActiveWorkout
	Settings     domain.Settings
	LiveVolumeKg float64
	Elapsed      time.Duration
}

// FinishResult reports what finishing a workout stored.
type FinishResult struct {
	// Workout is nil when no completed set qualified and the session was
	// discarded.
	Workout    *domain.Workout
	NewRecords []string
}

type WorkoutService interface {
	Active(ctx context.Context) (*ActiveSession, error)
	Start(ctx context.Context, templateID int64) (*ActiveSession, error)
	Discard(ctx context.Context) error
	Rename(ctx context.Context, name string) error
	AddExercise(ctx context.Context, name string, group domain.MuscleGroup) (bool, error)
	RemoveExercise(ctx context.Context, exercise int) error
	AddSet(ctx context.Context, exercise int) error
	RemoveSet(ctx context.Context, exercise, set int) error
	EditSet(ctx context.Context, exercise, set int, field domain.SetField, value string) error
	SetRestTime(ctx context.Context, exercise, seconds int) error
	// ToggleSet flips completion and returns the rest request, if any.
	ToggleSet(ctx context.Context, exercise, set int) (*workout.RestRequest, error)
	Finish(ctx context.Context) (*FinishResult, error)
	// SaveAsTemplate copies the active plan into a new template; it reports
	// false without saving when the name is blank.
	SaveAsTemplate(ctx context.Context, name string) (*domain.Template, bool, error)
}

type TemplateService interface {
	List(ctx context.Context) ([]domain.Template, error)
	Get(ctx context.Context, id int64) (*domain.Template, error)
	// Create builds a new template; it reports false without saving when the
	// name is blank.
	Create(ctx context.Context, name string, edit func(*editor.TemplateDraft) error) (*domain.Template, bool, error)
	Edit(ctx context.Context, id int64, edit func(*editor.TemplateDraft) error) (*domain.Template, error)
	Delete(ctx context.Context, id int64) error
}

type HistoryService interface {
	List(ctx context.Context) ([]domain.Workout, error)
	Get(ctx context.Context, id int64) (*domain.Workout, error)
	// LogPast records a workout after the fact.
	LogPast(ctx context.Context, edit func(*editor.WorkoutDraft) error) (*domain.Workout, error)
	Edit(ctx context.Context, id int64, edit func(*editor.WorkoutDraft) error) (*domain.Workout, error)
	// Delete removes a history entry; personal records are kept.
	Delete(ctx context.Context, id int64) error
}

type BodyStatService interface {
	List(ctx context.Context) ([]domain.BodyStat, error)
	// Log records a weight entered in the display unit. Blank input is
	// ignored and reports false.
	Log(ctx context.Context, date time.Time, weight string) (bool, error)
	Edit(ctx context.Context, index int, date time.Time, weight string) error
	Delete(ctx context.Context, index int) error
}

// Dashboard is the headline progress view.
type Dashboard struct {
	Overview     analytics.Overview
	Distribution []analytics.GroupCount
	Records      domain.PersonalRecords
	Exercises    []string
	Settings     domain.Settings
}

type ProgressService interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
	Exercise(ctx context.Context, name string) (*analytics.ExerciseSeries, error)
	BodyWeight(ctx context.Context) ([]analytics.WeightPoint, error)
	Calendar(ctx context.Context, year int, month time.Month) (*analytics.Calendar, error)
}

type BackupService interface {
	Bundle(ctx context.Context) (*backup.Bundle, error)
	Export(ctx context.Context, w io.Writer) error
	// Restore overwrites all exported collections in one transaction.
	Restore(ctx context.Context, b backup.Bundle) error
	Collections(ctx context.Context) ([]repository.CollectionInfo, error)
}
