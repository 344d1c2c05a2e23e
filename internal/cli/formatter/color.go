package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/imtheyoyo/plan-course/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
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

// PhaseStyle returns the style used for a periodization phase label.
func PhaseStyle(phase domain.PhaseType) lipgloss.Style {
	switch phase {
	case domain.PhaseBase:
		return StyleBlue
	case domain.PhaseQuality:
		return StyleYellow
	case domain.PhasePeak:
		return StyleRed
	case domain.PhaseTaper:
		return StyleGreen
	default:
		return StyleDim
	}
}

// IntensityDots renders a 1-4 intensity as colored dots.
func IntensityDots(intensity int) string {
	if intensity < 1 {
		intensity = 1
	}
	if intensity > 4 {
		intensity = 4
	}
	dots := strings.Repeat("●", intensity) + strings.Repeat("○", 4-intensity)
	switch {
	case intensity >= 4:
		return StyleRed.Render(dots)
	case intensity == 3:
		return StyleYellow.Render(dots)
	default:
		return StyleGreen.Render(dots)
	}
}

// ScoreStyle colors an audit score: green from 80, yellow from 50, red below.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return StyleGreen
	case score >= 50:
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
