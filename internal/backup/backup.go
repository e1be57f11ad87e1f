// Package backup encodes and validates the JSON export bundle.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"go.uber.org/multierr"
)

var (
	// ErrUnparseable means the input is not JSON at all.
	ErrUnparseable = errors.New("backup is not valid JSON")
	// ErrInvalid means the input is JSON but lacks a required collection or
	// has the wrong shape.
	ErrInvalid = errors.New("backup is missing required data")
)

// Keys lists the required top-level keys in export order.
var Keys = []string{"settings", "pastWorkouts", "templates", "exercisePRs", "bodyStats"}

// Bundle is the full exportable state.
type Bundle struct {
	Settings     domain.Settings        `json:"settings"`
	PastWorkouts []domain.Workout       `json:"pastWorkouts"`
	Templates    []domain.Template      `json:"templates"`
	ExercisePRs  domain.PersonalRecords `json:"exercisePRs"`
	BodyStats    []domain.BodyStat      `json:"bodyStats"`
}

// FileName is the suggested export file name, dated by the UTC day of now.
func FileName(now time.Time) string {
	return fmt.Sprintf("gym-tracker-backup-%s.json", now.UTC().Format("2006-01-02"))
}

// Export writes b as JSON indented by two spaces.
func Export(w io.Writer, b Bundle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.normalized()); err != nil {
		return fmt.Errorf("encoding backup: %w", err)
	}
	return nil
}

// Parse decodes and validates a backup. Every required key must be present
// with a non-empty value; all missing keys are reported together.
func Parse(data []byte) (Bundle, error) {
	if !json.Valid(data) {
		return Bundle{}, ErrUnparseable
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Bundle{}, fmt.Errorf("%w: top level is not an object", ErrInvalid)
	}

	var errs error
	for _, key := range Keys {
		v, ok := raw[key]
		if !ok || falsy(v) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q", ErrInvalid, key))
		}
	}
	if errs != nil {
		return Bundle{}, errs
	}

	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return Bundle{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return b.normalized(), nil
}

// falsy mirrors the truthiness check of a loose JSON reader: null, false, 0
// and "" count as missing.
func falsy(v json.RawMessage) bool {
	v = bytes.TrimSpace(v)
	switch string(v) {
	case "null", "false", `""`:
		return true
	}
	var f float64
	if err := json.Unmarshal(v, &f); err == nil && f == 0 {
		return true
	}
	return false
}

func (b Bundle) normalized() Bundle {
	if b.PastWorkouts == nil {
		b.PastWorkouts = []domain.Workout{}
	}
	if b.Templates == nil {
		b.Templates = []domain.Template{}
	}
	if b.ExercisePRs == nil {
		b.ExercisePRs = domain.PersonalRecords{}
	}
	if b.BodyStats == nil {
		b.BodyStats = []domain.BodyStat{}
	}
	return b
}

// UserMessage is the text shown to the user for an import failure.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnparseable):
		return "Could not parse the backup file."
	case errors.Is(err, ErrInvalid):
		return "Invalid backup file."
	}
	return err.Error()
}
