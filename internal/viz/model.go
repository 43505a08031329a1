package viz

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/tzclock/internal/app"
	"github.com/san-kum/tzclock/internal/sched"
	"github.com/san-kum/tzclock/internal/timer"
	"github.com/san-kum/tzclock/internal/zone"
)

type prompt int

const (
	promptNone prompt = iota
	promptZone
	promptDuration
	promptColor
)

// Model is the Bubble Tea model of the interactive clock.
type Model struct {
	app  *app.App
	view *View

	keys   KeyMap
	picker pickerKeys
	help   help.Model
	input  textinput.Model

	prompt          prompt
	defaultDuration string
	choices         []zone.Entry
	cursor          int
	lastPick        string
	status          string

	width, height int
}

// NewModel wires a to v. v must be the renderer a was built with.
func NewModel(a *app.App, v *View) Model {
	in := textinput.New()
	in.CharLimit = 16
	in.Width = 16

	return Model{
		app:    a,
		view:   v,
		keys:   DefaultKeyMap(),
		picker: defaultPickerKeys(),
		help:   help.New(),
		input:  in,
		width:  80,
		height: 24,

		defaultDuration: "25:00",
	}
}

// WithDefaultDuration sets the duration offered when the timer is started
// with an empty prompt.
func (m Model) WithDefaultDuration(d time.Duration) Model {
	if d > 0 {
		m.defaultDuration = timer.FormatDuration(d)
	}
	return m
}

func (m Model) Init() tea.Cmd { return m.app.Start() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case sched.TickMsg:
		return m, m.app.HandleTick(msg)
	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.promptKey(msg)
		}
		return m.handleKey(msg)
	}
	if m.prompt == promptDuration || m.prompt == promptColor {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Mode):
		return m, m.app.ToggleMode()
	case key.Matches(msg, m.keys.Theme):
		t := NextTheme(m.view.Theme().Name)
		m.view.SetTheme(t)
		m.app.SaveTheme(t.Name)
		m.status = "theme: " + t.Name
	}

	if m.app.Mode() == app.ClockView {
		return m.clockKey(msg)
	}
	return m.timerKey(msg)
}

func (m Model) clockKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Style):
		return m, m.app.ToggleStyle()
	case key.Matches(msg, m.keys.Hour12):
		m.app.SetHour12(!m.app.Hour12())
	case key.Matches(msg, m.keys.Left):
		m.view.MoveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.view.MoveSelection(1)
	case key.Matches(msg, m.keys.Remove):
		if id := m.view.Selected(); id != "" {
			m.app.RemoveClock(id)
		}
	case key.Matches(msg, m.keys.Add):
		if m.view.AddEnabled() {
			m.openPicker()
		}
	}
	return m, nil
}

func (m Model) timerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		if m.app.Timer().State() == timer.Paused {
			return m, m.app.StartTimer(0, 0, 0)
		}
		if m.app.Timer().State() == timer.Idle {
			return m, m.openInput(promptDuration, m.defaultDuration, "")
		}
	case key.Matches(msg, m.keys.Pause):
		m.app.PauseTimer()
	case key.Matches(msg, m.keys.Reset):
		m.app.ResetTimer()
	case key.Matches(msg, m.keys.Color):
		return m, m.openInput(promptColor, "#ffffff", m.app.Timer().Color())
	}
	return m, nil
}

// openPicker lists the zones not yet shown, keeping the previous pick
// highlighted when it is still available.
func (m *Model) openPicker() {
	m.choices = m.app.Clocks().AvailableForAdd()
	m.cursor = 0
	for i, e := range m.choices {
		if e.ID == m.lastPick {
			m.cursor = i
			break
		}
	}
	m.prompt = promptZone
}

func (m *Model) openInput(p prompt, placeholder, value string) tea.Cmd {
	m.prompt = p
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) promptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.picker.Cancel) {
		m.closePrompt()
		return m, nil
	}

	if m.prompt == promptZone {
		switch {
		case key.Matches(msg, m.picker.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.picker.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.picker.Accept):
			if m.cursor < len(m.choices) {
				m.lastPick = m.choices[m.cursor].ID
				m.app.AddClock(m.lastPick)
			}
			m.closePrompt()
		}
		return m, nil
	}

	if !key.Matches(msg, m.picker.Accept) {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	value := m.input.Value()
	if value == "" {
		value = m.input.Placeholder
	}
	p := m.prompt
	m.closePrompt()

	switch p {
	case promptDuration:
		d, err := timer.ParseHMS(value)
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.app.StartTimerDuration(d)
	case promptColor:
		if err := m.app.SetTimerColor(value); err != nil {
			m.status = err.Error()
		}
	}
	return m, nil
}

func (m Model) View() string {
	st := m.view.Styles()
	var b strings.Builder

	b.WriteString(st.Title.Render("tzclock"))
	b.WriteString("  ")
	for _, md := range []app.Mode{app.ClockView, app.TimerView} {
		label := "Clocks"
		if md == app.TimerView {
			label = "Timer"
		}
		if md == m.app.Mode() {
			b.WriteString(st.ActiveTab.Render(label))
		} else {
			b.WriteString(st.Tab.Render(label))
		}
	}
	if m.app.Mode() == app.ClockView {
		b.WriteString(st.Subtle.Render(fmt.Sprintf("  %s · %s", m.app.Style(), hourFormat(m.app.Hour12()))))
	}
	b.WriteString("\n\n")

	b.WriteString(m.view.Render(m.width))
	b.WriteString("\n")

	if m.app.Mode() == app.TimerView {
		b.WriteString(m.timerStatus(st))
		b.WriteString("\n")
	} else if !m.view.AddEnabled() {
		b.WriteString(st.Disabled.Render("all time zones added"))
		b.WriteString("\n")
	}

	switch m.prompt {
	case promptZone:
		b.WriteString("\n")
		b.WriteString(m.renderPicker(st))
	case promptDuration:
		b.WriteString("\nduration: " + m.input.View() + "\n")
	case promptColor:
		b.WriteString("\ncolour: " + m.input.View() + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + st.Subtle.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) timerStatus(st Styles) string {
	cd := m.app.Timer()
	switch {
	case cd.Alerting():
		return st.Alert.Render("time's up")
	case cd.State() == timer.Running:
		return st.Status.Render("running")
	case cd.State() == timer.Paused:
		return st.Paused.Render("paused")
	}
	return st.Subtle.Render("idle")
}

func (m Model) renderPicker(st Styles) string {
	lines := []string{st.Title.Render("Add time zone")}
	for i, e := range m.choices {
		name := e.Name
		if e.ID == zone.Local {
			name += " (Current)"
		}
		if i == m.cursor {
			lines = append(lines, st.PickerSel.Render("> "+name))
		} else {
			lines = append(lines, st.PickerItem.Render("  "+name))
		}
	}
	lines = append(lines, st.Subtle.Render("enter add · esc cancel"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func hourFormat(h12 bool) string {
	if h12 {
		return "12h"
	}
	return "24h"
}
