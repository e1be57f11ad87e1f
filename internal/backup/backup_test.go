package backup

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

var testNow = time.Date(2025, 4, 2, 9, 30, 0, 0, time.UTC)

func sampleBundle() Bundle {
	return Bundle{
		Settings: domain.Settings{UnitSystem: domain.UnitImperial, DefaultRestTime: 90, SoundEffects: false},
		PastWorkouts: []domain.Workout{{
			ID: 1743586200000, Name: "Legs", StartTime: testNow, EndTime: testNow.Add(time.Hour),
			Exercises: []domain.Exercise{
				{ID: "e1", Name: "Squat", MuscleGroup: domain.GroupLegs, RestTime: 120, Sets: []domain.Set{
					{ID: "s1", Reps: domain.Num(5), Weight: domain.Num(102.5), Completed: true},
				}},
				{ID: "e2", Name: "Bike", MuscleGroup: domain.GroupCardio, Sets: []domain.Set{
					{ID: "s2", Time: domain.Num(15), Completed: true},
				}},
			},
		}},
		Templates: []domain.Template{{
			ID: 7, Name: "Legs", CreatedAt: testNow.Add(-24 * time.Hour),
			Exercises: []domain.Exercise{{Name: "Squat", MuscleGroup: domain.GroupLegs, Sets: []domain.Set{
				{Reps: domain.Num(5), Weight: domain.Num(100)},
			}}},
		}},
		ExercisePRs: domain.PersonalRecords{
			"Squat": {MaxWeight: 102.5, MaxVolume: 512.5, MuscleGroup: domain.GroupLegs, LastUpdated: testNow},
			"Bike":  {MaxTime: 15, MuscleGroup: domain.GroupCardio, LastUpdated: testNow},
		},
		BodyStats: []domain.BodyStat{{Date: testNow, Weight: 81.3}},
	}
}

func TestExportParse_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, sampleBundle()))

	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, sampleBundle(), got)
}

func TestExport_Shape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, Bundle{Settings: domain.DefaultSettings()}))

	assert.Contains(t, buf.String(), "\n  \"settings\": {\n    \"unitSystem\": \"metric\"")
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, k := range Keys {
		assert.Contains(t, raw, k)
	}
	assert.JSONEq(t, `[]`, string(raw["pastWorkouts"]))
	assert.JSONEq(t, `{}`, string(raw["exercisePRs"]))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "gym-tracker-backup-2025-04-02.json", FileName(testNow))

	lateEvening := time.Date(2025, 4, 2, 22, 30, 0, 0, time.FixedZone("UTC-5", -5*3600))
	assert.Equal(t, "gym-tracker-backup-2025-04-03.json", FileName(lateEvening), "dated in UTC")
}

// A bundle as written by the browser version: float ids, rest times and
// weights kept as typed text, sets without ids in templates.
const browserBundle = `{
  "settings": {"unitSystem": "imperial", "defaultRestTime": 120, "soundEffects": true},
  "pastWorkouts": [{
    "id": 1743586200000,
    "name": "Legs",
    "startTime": "2025-04-02T09:30:00.000Z",
    "endTime": "2025-04-02T10:30:00.000Z",
    "exercises": [
      {"id": 1743586100000.4521, "name": "Squat", "muscleGroup": "Legs", "restTime": "90",
       "sets": [{"id": 1743586100001.7734, "reps": 5, "weight": "102.5", "completed": true}]},
      {"id": 1743586100002.1, "name": "Bike", "muscleGroup": "Cardio", "restTime": "",
       "sets": [{"id": 1743586100003.9, "time": 15, "completed": true}]}
    ]
  }],
  "templates": [{
    "id": 1743500000000, "name": "Legs", "createdAt": "2025-04-01T09:30:00.000Z",
    "exercises": [{"name": "Squat", "muscleGroup": "Legs", "restTime": 120, "sets": [{"reps": 5, "weight": 100}]}]
  }],
  "exercisePRs": {"Squat": {"maxWeight": 102.5, "maxVolume": 512.5, "muscleGroup": "Legs", "lastUpdated": "2025-04-02T10:30:00.000Z"}},
  "bodyStats": [{"date": "2025-04-02T00:00:00.000Z", "weight": 81.3}]
}`

func TestParse_BrowserBackup(t *testing.T) {
	b, err := Parse([]byte(browserBundle))
	require.NoError(t, err)

	require.Len(t, b.PastWorkouts, 1)
	squat, bike := b.PastWorkouts[0].Exercises[0], b.PastWorkouts[0].Exercises[1]
	assert.Equal(t, "1743586100000.4521", squat.ID)
	assert.Equal(t, 90, squat.RestTime)
	assert.Equal(t, "1743586100001.7734", squat.Sets[0].ID)
	assert.Equal(t, domain.Num(102.5), squat.Sets[0].Weight)
	assert.Zero(t, bike.RestTime)
	assert.Equal(t, domain.Num(15), bike.Sets[0].Time)

	require.Len(t, b.Templates, 1)
	assert.Equal(t, 120, b.Templates[0].Exercises[0].RestTime)
	assert.Empty(t, b.Templates[0].Exercises[0].Sets[0].ID)
	assert.Equal(t, 102.5, b.ExercisePRs["Squat"].MaxWeight)
	assert.Equal(t, testNow, b.PastWorkouts[0].StartTime)
	assert.Empty(t, UserMessage(err))
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	assert.ErrorIs(t, err, ErrUnparseable)
	assert.Equal(t, "Could not parse the backup file.", UserMessage(err))
}

func TestParse_MissingKeys(t *testing.T) {
	_, err := Parse([]byte(`{"settings":{"unitSystem":"metric"},"templates":[]}`))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, "Invalid backup file.", UserMessage(err))
	assert.Len(t, multierr.Errors(err), 3)
	assert.Contains(t, err.Error(), `"pastWorkouts"`)
	assert.Contains(t, err.Error(), `"exercisePRs"`)
	assert.Contains(t, err.Error(), `"bodyStats"`)
}

func TestParse_FalsyValuesRejected(t *testing.T) {
	cases := map[string]string{
		"null":  `{"settings":null,"pastWorkouts":[],"templates":[],"exercisePRs":{},"bodyStats":[]}`,
		"false": `{"settings":{},"pastWorkouts":false,"templates":[],"exercisePRs":{},"bodyStats":[]}`,
		"zero":  `{"settings":{},"pastWorkouts":[],"templates":0,"exercisePRs":{},"bodyStats":[]}`,
		"empty": `{"settings":{},"pastWorkouts":[],"templates":[],"exercisePRs":"","bodyStats":[]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(in))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParse_NonObjectAndWrongShape(t *testing.T) {
	_, err := Parse([]byte(`[1,2,3]`))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Parse([]byte(`{"settings":{},"pastWorkouts":"x","templates":[],"exercisePRs":{},"bodyStats":[]}`))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParse_EmptyCollections(t *testing.T) {
	b, err := Parse([]byte(`{"settings":{"unitSystem":"metric","defaultRestTime":120,"soundEffects":true},
		"pastWorkouts":[],"templates":[],"exercisePRs":{},"bodyStats":[]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), b.Settings)
	assert.NotNil(t, b.PastWorkouts)
	assert.Empty(t, b.PastWorkouts)
	assert.NotNil(t, b.ExercisePRs)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, assert.AnError.Error(), UserMessage(assert.AnError))
}
