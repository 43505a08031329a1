package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/tzclock/internal/app"
	"github.com/san-kum/tzclock/internal/timer"
	"github.com/san-kum/tzclock/internal/zone"
)

type slot struct {
	id      string
	name    string
	digital string
	angles  zone.Angles
	analog  bool
}

// View is the terminal renderer. It keeps whatever the app last pushed and
// draws it on demand.
type View struct {
	slots      []*slot
	selected   int
	mode       app.Mode
	timerText  string
	timerColor string
	addEnabled bool

	theme  Theme
	styles Styles
}

var _ app.Renderer = (*View)(nil)

// NewView returns an empty view using theme t.
func NewView(t Theme) *View {
	return &View{
		timerText:  timer.ZeroDisplay,
		timerColor: timer.DefaultColor,
		addEnabled: true,
		theme:      t,
		styles:     NewStyles(t),
	}
}

func (v *View) CreateSlot(id, name string) {
	if v.find(id) >= 0 {
		return
	}
	v.slots = append(v.slots, &slot{id: id, name: name})
}

func (v *View) DestroySlot(id string) {
	i := v.find(id)
	if i < 0 {
		return
	}
	v.slots = append(v.slots[:i], v.slots[i+1:]...)
	if v.selected >= len(v.slots) && v.selected > 0 {
		v.selected = len(v.slots) - 1
	}
}

func (v *View) UpdateDigital(id, text string) {
	if i := v.find(id); i >= 0 {
		v.slots[i].digital = text
		v.slots[i].analog = false
	}
}

func (v *View) UpdateAnalog(id string, a zone.Angles) {
	if i := v.find(id); i >= 0 {
		v.slots[i].angles = a
		v.slots[i].analog = true
	}
}

func (v *View) ShowMode(m app.Mode) { v.mode = m }

func (v *View) UpdateTimer(text, color string) {
	v.timerText = text
	v.timerColor = color
}

func (v *View) SetAddEnabled(enabled bool) { v.addEnabled = enabled }

func (v *View) find(id string) int {
	for i, s := range v.slots {
		if s.id == id {
			return i
		}
	}
	return -1
}

// Mode returns the mode last shown.
func (v *View) Mode() app.Mode { return v.mode }

// AddEnabled reports whether any time zone is left to add.
func (v *View) AddEnabled() bool { return v.addEnabled }

// Timer returns the last timer text and colour.
func (v *View) Timer() (string, string) { return v.timerText, v.timerColor }

// SlotIDs returns the slot ids in display order.
func (v *View) SlotIDs() []string {
	ids := make([]string, len(v.slots))
	for i, s := range v.slots {
		ids[i] = s.id
	}
	return ids
}

// Digital returns the text last pushed for id.
func (v *View) Digital(id string) string {
	if i := v.find(id); i >= 0 {
		return v.slots[i].digital
	}
	return ""
}

// Selected returns the id of the highlighted clock, or "".
func (v *View) Selected() string {
	if v.selected < len(v.slots) {
		return v.slots[v.selected].id
	}
	return ""
}

// MoveSelection moves the highlight by delta, clamped to the slot list.
func (v *View) MoveSelection(delta int) {
	v.selected = max(0, min(v.selected+delta, len(v.slots)-1))
}

// Theme returns the active theme.
func (v *View) Theme() Theme { return v.theme }

// SetTheme switches colours.
func (v *View) SetTheme(t Theme) {
	v.theme = t
	v.styles = NewStyles(t)
}

// Styles returns the styles of the active theme.
func (v *View) Styles() Styles { return v.styles }

// Render draws the body of the active mode.
func (v *View) Render(width int) string {
	if v.mode == app.TimerView {
		return v.renderTimer()
	}
	return v.renderClocks(width)
}

func (v *View) renderClocks(width int) string {
	if len(v.slots) == 0 {
		return v.styles.Subtle.Render("no clocks")
	}

	var cards []string
	for i, s := range v.slots {
		var face string
		if s.analog {
			style := v.styles.FaceDim
			if i == v.selected {
				style = v.styles.Face
			}
			face = style.Render(DrawFace(s.angles).String())
		} else {
			face = v.styles.ClockTime.Render(s.digital)
		}
		body := lipgloss.JoinVertical(lipgloss.Center, v.styles.ClockName.Render(s.name), face)
		box := v.styles.Panel
		if i == v.selected {
			box = v.styles.Selected
		}
		cards = append(cards, box.Render(body))
	}

	// Wrap cards into rows that fit the terminal.
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range cards {
		w := lipgloss.Width(c)
		if len(row) > 0 && width > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, c)
		rowWidth += w
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	return strings.Join(rows, "\n")
}

func (v *View) renderTimer() string {
	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(v.timerColor))
	return v.styles.Panel.Render(style.Render(v.timerText))
}
