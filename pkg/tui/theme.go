package tui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/notepad/pkg/settings"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title      lipgloss.Style
	Todo       lipgloss.Style
	Done       lipgloss.Style
	Cursor     lipgloss.Style
	Archiving  lipgloss.Style
	Help       lipgloss.Style
	Date       lipgloss.Style
	Notice     lipgloss.Style
	Confirm    lipgloss.Style
	Selected   lipgloss.Style
	CheckEmpty string
	CheckDone  string
}

type palette struct {
	bg     string
	fg     string
	accent string
	danger string
}

var (
	darkPalette  = palette{bg: "#1a1b26", fg: "#c0caf5", accent: "#7aa2f7", danger: "#f7768e"}
	lightPalette = palette{bg: "#ffffff", fg: "#24292f", accent: "#0969da", danger: "#cf222e"}
)

// NewTheme derives the style set for the configured color mode. Muted
// tones are blended toward the background so done and in-flight lines
// recede without disappearing.
func NewTheme(mode settings.DarkMode) Theme {
	p := lightPalette
	if mode == settings.Dark {
		p = darkPalette
	}

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent)),
		Todo:       lipgloss.NewStyle().Foreground(lipgloss.Color(p.fg)),
		Done:       lipgloss.NewStyle().Foreground(blend(p.fg, p.bg, 0.55)).Strikethrough(true),
		Cursor:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)),
		Archiving:  lipgloss.NewStyle().Foreground(blend(p.accent, p.bg, 0.5)).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(blend(p.fg, p.bg, 0.6)),
		Date:       lipgloss.NewStyle().Foreground(blend(p.fg, p.bg, 0.4)).Italic(true),
		Notice:     lipgloss.NewStyle().Foreground(blend(p.fg, p.bg, 0.5)),
		Confirm:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.danger)).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.accent)).Bold(true),
		CheckEmpty: "[ ]",
		CheckDone:  "[x]",
	}
}

func blend(hexA, hexB string, t float64) lipgloss.Color {
	a, err := colorful.Hex(hexA)
	if err != nil {
		return lipgloss.Color(hexA)
	}
	b, err := colorful.Hex(hexB)
	if err != nil {
		return lipgloss.Color(hexA)
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}
