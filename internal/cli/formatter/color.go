package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gymtrack/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var groupColors = map[domain.MuscleGroup]lipgloss.Color{
	domain.GroupCardio:    ColorRed,
	domain.GroupChest:     ColorHeader,
	domain.GroupBack:      ColorBlue,
	domain.GroupLegs:      ColorGreen,
	domain.GroupShoulders: ColorYellow,
	domain.GroupBiceps:    ColorPurple,
	domain.GroupTriceps:   ColorPurple,
	domain.GroupAbs:       ColorAqua,
}

// GroupStyle returns the color used for a muscle group across views.
func GroupStyle(g domain.MuscleGroup) lipgloss.Style {
	if c, ok := groupColors[g]; ok {
		return lipgloss.NewStyle().Foreground(c)
	}
	return StyleDim
}

// GroupBadge renders a muscle group as a colored label.
func GroupBadge(g domain.MuscleGroup) string {
	if g == "" {
		g = domain.GroupOther
	}
	return GroupStyle(g).Render(string(g))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Success renders a confirmation line, prefixed with a check mark.
func Success(text string) string {
	return StyleGreen.Render("✔ ") + text
}

// Warn renders a warning line.
func Warn(text string) string {
	return StyleYellow.Render("! ") + text
}
