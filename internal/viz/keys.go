package viz

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the main screen.
type KeyMap struct {
	Mode   key.Binding
	Style  key.Binding
	Hour12 key.Binding
	Add    key.Binding
	Remove key.Binding
	Left   key.Binding
	Right  key.Binding
	Start  key.Binding
	Pause  key.Binding
	Reset  key.Binding
	Color  key.Binding
	Theme  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mode:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "clocks/timer")),
		Style:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "digital/analog")),
		Hour12: key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "12/24h")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add zone")),
		Remove: key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Left:   key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "prev")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next")),
		Start:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Pause:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Color:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "colour")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Mode, k.Style, k.Add, k.Start, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Mode, k.Style, k.Hour12, k.Theme},
		{k.Add, k.Remove, k.Left, k.Right},
		{k.Start, k.Pause, k.Reset, k.Color},
		{k.Help, k.Quit},
	}
}

// pickerKeys are active while a list or text prompt is open.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func defaultPickerKeys() pickerKeys {
	return pickerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Accept: key.NewBinding(key.WithKeys("enter")),
		Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
	}
}
