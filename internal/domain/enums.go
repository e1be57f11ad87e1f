package domain

import "strings"

type MuscleGroup string

const (
	GroupCardio    MuscleGroup = "Cardio"
	GroupChest     MuscleGroup = "Chest"
	GroupBack      MuscleGroup = "Back"
	GroupLegs      MuscleGroup = "Legs"
	GroupShoulders MuscleGroup = "Shoulders"
	GroupBiceps    MuscleGroup = "Biceps"
	GroupTriceps   MuscleGroup = "Triceps"
	GroupAbs       MuscleGroup = "Abs"
	GroupOther     MuscleGroup = "Other"
)

// MuscleGroups is the canonical, ordered set of recognized muscle groups.
var MuscleGroups = []MuscleGroup{
	GroupCardio, GroupChest, GroupBack, GroupLegs, GroupShoulders,
	GroupBiceps, GroupTriceps, GroupAbs, GroupOther,
}

// Valid reports whether g is one of the recognized muscle groups.
func (g MuscleGroup) Valid() bool {
	for _, known := range MuscleGroups {
		if g == known {
			return true
		}
	}
	return false
}

func (g MuscleGroup) IsCardio() bool {
	return g == GroupCardio
}

// ParseMuscleGroup matches s case-insensitively against the recognized groups.
// Unknown or blank input yields GroupOther and false.
func ParseMuscleGroup(s string) (MuscleGroup, bool) {
	s = strings.TrimSpace(s)
	for _, g := range MuscleGroups {
		if strings.EqualFold(string(g), s) {
			return g, true
		}
	}
	return GroupOther, false
}

type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// ParseUnitSystem accepts "metric"/"kg" and "imperial"/"lbs"/"lb".
func ParseUnitSystem(s string) (UnitSystem, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric", "kg":
		return UnitMetric, true
	case "imperial", "lbs", "lb":
		return UnitImperial, true
	}
	return "", false
}

// SetField names an editable numeric field on a Set.
type SetField string

const (
	FieldReps   SetField = "reps"
	FieldWeight SetField = "weight"
	FieldTime   SetField = "time"
)

func ParseSetField(s string) (SetField, bool) {
	switch SetField(strings.ToLower(strings.TrimSpace(s))) {
	case FieldReps:
		return FieldReps, true
	case FieldWeight:
		return FieldWeight, true
	case FieldTime:
		return FieldTime, true
	}
	return "", false
}
