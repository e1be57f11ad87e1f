package domain

import "errors"

var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrNoActiveWorkout   = errors.New("no workout in progress")
	ErrWorkoutInProgress = errors.New("a workout is already in progress")
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrTemplateNotFound  = errors.New("template not found")
)
