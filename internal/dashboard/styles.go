package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Dashboard color palette
const (
	ColorBorder = lipgloss.Color("#2A2A4A")

	// Semantic colors for the three status bands
	ColorNormal = lipgloss.Color("#39FF14") // green
	ColorMedium = lipgloss.Color("#FFAA00") // amber
	ColorHigh   = lipgloss.Color("#FF0055") // red-pink

	// Text colors
	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	// Accent
	ColorAccent = lipgloss.Color("#FF2E97")
)

// Status thresholds. Boundary values map to the lower band: exactly 80 is
// medium, exactly 60 is normal.
const (
	HighThreshold   = 80
	MediumThreshold = 60
)

// Level is the status band derived from a usage percentage.
type Level int

const (
	LevelNormal Level = iota
	LevelMedium
	LevelHigh
)

// LevelFor maps a usage percentage to its status band.
func LevelFor(usage int) Level {
	switch {
	case usage > HighThreshold:
		return LevelHigh
	case usage > MediumThreshold:
		return LevelMedium
	default:
		return LevelNormal
	}
}

// String returns a human-readable label for the level.
func (l Level) String() string {
	switch l {
	case LevelHigh:
		return "high"
	case LevelMedium:
		return "medium"
	default:
		return "normal"
	}
}

// Color returns the level's indicator color.
func (l Level) Color() lipgloss.Color {
	switch l {
	case LevelHigh:
		return ColorHigh
	case LevelMedium:
		return ColorMedium
	default:
		return ColorNormal
	}
}

// StatusGlyph is the status indicator character.
const StatusGlyph = "●"

// Base styles for the dashboard
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1).
			MarginBottom(1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Padding(0, 1)

	ActionSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	ActionStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)
)

// fillWidth is the width of every metric fill bar in characters.
const fillWidth = 20

// FillBar renders a usage fill bar of the given width, colored by the
// usage's status band.
func FillBar(width, usage int) string {
	if width < 1 {
		width = 1
	}
	if usage < 0 {
		usage = 0
	}
	if usage > 100 {
		usage = 100
	}

	filled := usage * width / 100
	if filled > width {
		filled = width
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString("▰")
		} else {
			b.WriteString("▱")
		}
	}

	return lipgloss.NewStyle().Foreground(LevelFor(usage).Color()).Render(b.String())
}

// StatusIndicator renders the colored status glyph for a usage value.
func StatusIndicator(usage int) string {
	return lipgloss.NewStyle().Foreground(LevelFor(usage).Color()).Render(StatusGlyph)
}
