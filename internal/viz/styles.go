package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Title      lipgloss.Style
	Subtle     lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	Panel      lipgloss.Style
	Selected   lipgloss.Style
	ClockName  lipgloss.Style
	ClockTime  lipgloss.Style
	Face       lipgloss.Style
	FaceDim    lipgloss.Style
	Status     lipgloss.Style
	Paused     lipgloss.Style
	Alert      lipgloss.Style
	PickerItem lipgloss.Style
	PickerSel  lipgloss.Style
	Disabled   lipgloss.Style
}

// NewStyles builds the styles for t.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Subtle:    lipgloss.NewStyle().Foreground(t.Muted),
		Tab:       lipgloss.NewStyle().Foreground(t.Muted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(t.Background).Background(t.Primary).Bold(true).Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2),
		Selected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Accent).
			Padding(0, 2),
		ClockName:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		ClockTime:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Face:       lipgloss.NewStyle().Foreground(t.Text),
		FaceDim:    lipgloss.NewStyle().Foreground(Mix(t.Muted, t.Background, 0.4)),
		Status:     lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Paused:     lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Alert:      lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		PickerItem: lipgloss.NewStyle().Foreground(t.Text),
		PickerSel:  lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Disabled:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// Mix blends two hex colours; t=0 gives a, t=1 gives b. Non-hex input
// (ANSI palette numbers) returns a unchanged.
func Mix(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, err := colorful.Hex(string(a))
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(string(b))
	if err != nil {
		return a
	}
	return lipgloss.Color(ca.BlendRgb(cb, t).Clamped().Hex())
}
