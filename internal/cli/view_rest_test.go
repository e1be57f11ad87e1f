package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/gymtrack/internal/resttimer"
	"github.com/alexanderramin/gymtrack/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestView_TicksDownAndQuits(t *testing.T) {
	cue := &countingCue{}
	timer := resttimer.New(cue)
	timer.Trigger(2, "Bench")
	v := newRestView(timer, time.Millisecond)

	assert.Contains(t, ansiPattern.ReplaceAllString(v.View(), ""), "Bench  0:02")
	require.NotNil(t, v.Init())

	m, cmd := v.Update(restTickMsg{})
	require.NotNil(t, cmd)
	assert.Contains(t, ansiPattern.ReplaceAllString(m.View(), ""), "Bench  0:01")

	m, cmd = m.Update(restTickMsg{})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, m.View(), "Rest over")
	assert.EqualValues(t, 1, cue.n.Load())
}

func TestRestView_SkipDismissesWithoutCue(t *testing.T) {
	cue := &countingCue{}
	timer := resttimer.New(cue)
	timer.Trigger(90, "Row")
	v := newRestView(timer, 0)
	assert.Equal(t, time.Second, v.interval)

	m, _ := v.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, 60, m.(restView).bar.Width)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Contains(t, m.View(), "Rest skipped")
	assert.Equal(t, resttimer.Idle, timer.Snapshot().State)
	assert.Zero(t, cue.n.Load())
}

func TestRestView_DrivenToCompletion(t *testing.T) {
	cue := &countingCue{}
	timer := resttimer.New(cue)
	timer.Trigger(5, "Deadlift")

	d := teatest.New(t, newRestView(timer, time.Millisecond), teatest.WithSize(40, 10))
	assert.Contains(t, ansiPattern.ReplaceAllString(d.View(), ""), "Deadlift  0:05")

	d.Start()
	assert.True(t, d.Quitting)
	assert.Equal(t, 5, d.Steps)
	assert.Contains(t, d.View(), "Rest over")
	assert.EqualValues(t, 1, cue.n.Load())
}
