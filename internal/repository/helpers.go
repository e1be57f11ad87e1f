package repository

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a collection has never been written.
	ErrNotFound = errors.New("not found")
	// ErrCorrupt is returned when a stored collection cannot be decoded.
	ErrCorrupt = errors.New("corrupt collection")
)

// Collection keys.
const (
	KeySettings      = "settings"
	KeyWorkouts      = "workouts"
	KeyTemplates     = "templates"
	KeyRecords       = "exercisePRs"
	KeyBodyStats     = "bodyStats"
	KeyActiveWorkout = "activeWorkout"
)

const timeLayout = time.RFC3339

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(timeLayout)
}
