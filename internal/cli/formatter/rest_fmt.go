package formatter

import (
	"fmt"

	"github.com/alexanderramin/gymtrack/internal/resttimer"
)

const restBarWidth = 24

// FormatRest renders one line of rest-timer state.
func FormatRest(s resttimer.Snapshot) string {
	if s.State != resttimer.Running {
		return Success("Rest over")
	}
	label := s.Label
	if label == "" {
		label = "Rest"
	}
	return fmt.Sprintf("%s  %s  %s", Bold(label), StyleYellow.Render(FormatClock(s.Remaining)),
		RenderProgress(s.Progress(), restBarWidth))
}
