package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/spf13/pflag"
)

// parseIndex reads a 1-based position as shown in listings and returns it
// 0-based.
func parseIndex(s, what string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s number %q", what, s)
	}
	return n - 1, nil
}

func parseIndexes(exercise, set string) (int, int, error) {
	i, err := parseIndex(exercise, "exercise")
	if err != nil {
		return 0, 0, err
	}
	j, err := parseIndex(set, "set")
	if err != nil {
		return 0, 0, err
	}
	return i, j, nil
}

func parseID(s, what string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q", what, s)
	}
	return id, nil
}

func parseField(s string) (domain.SetField, error) {
	f, ok := domain.ParseSetField(s)
	if !ok {
		return "", fmt.Errorf("unknown field %q (want reps, weight or time)", s)
	}
	return f, nil
}

func parseSeconds(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid number of seconds %q", s)
	}
	return n, nil
}

var dateLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04", time.DateOnly}

// parseLocalTime accepts YYYY-MM-DD with an optional HH:MM, in local time.
func parseLocalTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or \"YYYY-MM-DD HH:MM\")", s)
}

// groupValue is a --group flag restricted to the recognized muscle groups.
type groupValue struct {
	group domain.MuscleGroup
}

var _ pflag.Value = (*groupValue)(nil)

func newGroupValue(def domain.MuscleGroup) *groupValue {
	return &groupValue{group: def}
}

func (g *groupValue) String() string { return string(g.group) }

func (g *groupValue) Set(s string) error {
	group, ok := domain.ParseMuscleGroup(s)
	if !ok {
		return fmt.Errorf("must be one of %s", groupNames())
	}
	g.group = group
	return nil
}

func (g *groupValue) Type() string { return "group" }

func groupNames() string {
	names := make([]string, len(domain.MuscleGroups))
	for i, g := range domain.MuscleGroups {
		names[i] = string(g)
	}
	return strings.Join(names, ", ")
}
