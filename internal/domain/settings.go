package domain

type Settings struct {
	UnitSystem      UnitSystem `json:"unitSystem"`
	DefaultRestTime int        `json:"defaultRestTime"`
	SoundEffects    bool       `json:"soundEffects"`
}

const DefaultRestSeconds = 120

func DefaultSettings() Settings {
	return Settings{
		UnitSystem:      UnitMetric,
		DefaultRestTime: DefaultRestSeconds,
		SoundEffects:    true,
	}
}

// RestFor picks the rest duration in seconds for an exercise: its own
// non-zero rest time, else the global default.
func (s Settings) RestFor(ex Exercise) int {
	if ex.RestTime > 0 {
		return ex.RestTime
	}
	return s.DefaultRestTime
}
