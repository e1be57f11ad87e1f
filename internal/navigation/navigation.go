// Package navigation resolves the host "back" gesture against the current UI
// state: an open dialog closes first, then an exercise detail view, then an
// editor returns to history, any other screen returns home, and home exits.
package navigation

import (
	"fmt"
	"strings"
)

type Screen string

const (
	ScreenHome              Screen = "home"
	ScreenWorkout           Screen = "workout"
	ScreenHistory           Screen = "history"
	ScreenTemplates         Screen = "templates"
	ScreenProgress          Screen = "progress"
	ScreenSettings          Screen = "settings"
	ScreenTemplateBuilder   Screen = "templateBuilder"
	ScreenPastWorkoutEditor Screen = "pastWorkoutEditor"
)

var Screens = []Screen{
	ScreenHome, ScreenWorkout, ScreenHistory, ScreenTemplates, ScreenProgress,
	ScreenSettings, ScreenTemplateBuilder, ScreenPastWorkoutEditor,
}

func ParseScreen(s string) (Screen, error) {
	for _, sc := range Screens {
		if strings.EqualFold(string(sc), strings.TrimSpace(s)) {
			return sc, nil
		}
	}
	return "", fmt.Errorf("unknown screen %q", s)
}

func (s Screen) IsEditor() bool {
	return s == ScreenTemplateBuilder || s == ScreenPastWorkoutEditor
}

// State is what the back gesture can unwind.
type State struct {
	Screen Screen
	// Modal names the open dialog, empty when none.
	Modal string
	// Detail names the exercise whose stats view is open, empty when none.
	Detail string
}

type Action string

const (
	ActionCloseModal  Action = "close-modal"
	ActionCloseDetail Action = "close-detail"
	ActionToHistory   Action = "to-history"
	ActionToHome      Action = "to-home"
	ActionExit        Action = "exit"
)

// Depth is how many back gestures stand between s and exiting the app.
func Depth(s State) int {
	d := 0
	if s.Modal != "" {
		d++
	}
	if s.Detail != "" {
		d++
	}
	switch {
	case s.Screen.IsEditor():
		d += 2
	case s.Screen != ScreenHome && s.Screen != "":
		d++
	}
	return d
}

// Back applies one back gesture and returns the resulting state and what it
// did. ActionExit leaves the state unchanged.
func Back(s State) (State, Action) {
	switch {
	case s.Modal != "":
		s.Modal = ""
		return s, ActionCloseModal
	case s.Detail != "":
		s.Detail = ""
		return s, ActionCloseDetail
	case s.Screen.IsEditor():
		s.Screen = ScreenHistory
		return s, ActionToHistory
	case s.Screen != ScreenHome && s.Screen != "":
		s.Screen = ScreenHome
		return s, ActionToHome
	}
	return s, ActionExit
}
