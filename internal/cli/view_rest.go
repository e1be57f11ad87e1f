package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/cli/formatter"
	"github.com/alexanderramin/gymtrack/internal/resttimer"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

type restTickMsg struct{}

// restView counts a rest period down on screen. It quits when the countdown
// runs out or the user skips it.
type restView struct {
	timer    *resttimer.Timer
	bar      progress.Model
	interval time.Duration
	skipped  bool
}

func newRestView(timer *resttimer.Timer, interval time.Duration) restView {
	if interval <= 0 {
		interval = time.Second
	}
	return restView{
		timer:    timer,
		bar:      progress.New(progress.WithSolidFill(string(formatter.ColorBlue)), progress.WithoutPercentage()),
		interval: interval,
	}
}

func (v restView) tick() tea.Cmd {
	return tea.Tick(v.interval, func(time.Time) tea.Msg { return restTickMsg{} })
}

func (v restView) Init() tea.Cmd {
	return v.tick()
}

func (v restView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case restTickMsg:
		if !v.timer.Tick() {
			return v, tea.Quit
		}
		return v, v.tick()

	case tea.WindowSizeMsg:
		v.bar.Width = min(max(msg.Width-4, 10), 60)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "enter", "s", "ctrl+c":
			v.timer.Dismiss()
			v.skipped = true
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v restView) View() string {
	s := v.timer.Snapshot()
	if s.State != resttimer.Running {
		if v.skipped {
			return formatter.Dim("Rest skipped") + "\n"
		}
		return formatter.Success("Rest over, next set!") + "\n"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Bold(s.Label), formatter.StyleYellow.Render(formatter.FormatClock(s.Remaining))))
	b.WriteString(v.bar.ViewAs(s.Progress()) + "\n")
	b.WriteString(formatter.Dim("q skip") + "\n")
	return b.String()
}
