package domain

import "time"

// PersonalRecord holds best-ever values for one exercise name. Strength
// exercises use MaxWeight/MaxVolume (kg), cardio uses MaxTime (minutes).
type PersonalRecord struct {
	MaxWeight   float64     `json:"maxWeight,omitempty"`
	MaxVolume   float64     `json:"maxVolume,omitempty"`
	MaxTime     float64     `json:"maxTime,omitempty"`
	MuscleGroup MuscleGroup `json:"muscleGroup"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

// PersonalRecords maps exact exercise name to its record.
type PersonalRecords map[string]PersonalRecord

// Clone returns a shallow copy of the map; records are values.
func (p PersonalRecords) Clone() PersonalRecords {
	out := make(PersonalRecords, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
