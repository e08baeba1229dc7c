package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Next      key.Binding
	Prev      key.Binding
	Edit      key.Binding
	Minimize  key.Binding
	Remove    key.Binding
	Add       key.Binding
	Theme     key.Binding
	Reset     key.Binding
	Breakpt   key.Binding
	Move      key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Taller    key.Binding
	Shorter   key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Toggle    key.Binding
	ResetSel  key.Binding
	RemoveAll key.Binding
	Grab      key.Binding
	PickUp    key.Binding
	PickDown  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next widget")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev widget")),
		Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit mode")),
		Minimize:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "minimize")),
		Remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add widgets")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset layout")),
		Breakpt:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "breakpoint")),
		Move:      key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		Up:        key.NewBinding(key.WithKeys("up", "k")),
		Down:      key.NewBinding(key.WithKeys("down", "j")),
		Left:      key.NewBinding(key.WithKeys("left", "h")),
		Right:     key.NewBinding(key.WithKeys("right", "l")),
		Grow:      key.NewBinding(key.WithKeys("L", "shift+right"), key.WithHelp("H/L", "width")),
		Shrink:    key.NewBinding(key.WithKeys("H", "shift+left")),
		Taller:    key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J/K", "height")),
		Shorter:   key.NewBinding(key.WithKeys("K", "shift+up")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Toggle:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "select")),
		ResetSel:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear selection")),
		RemoveAll: key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove all")),
		Grab:      key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "drag to grid")),
		PickUp:    key.NewBinding(key.WithKeys("up", "ctrl+p")),
		PickDown:  key.NewBinding(key.WithKeys("down", "ctrl+n")),
	}
}

// gridKeys is the help set for the dashboard view.
type gridKeys struct {
	keyMap
	editing bool
}

func (k gridKeys) ShortHelp() []key.Binding {
	if k.editing {
		return []key.Binding{k.Move, k.Grow, k.Taller, k.Remove, k.Edit, k.Help}
	}
	return []key.Binding{k.Add, k.Next, k.Minimize, k.Edit, k.Theme, k.Quit, k.Help}
}

func (k gridKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Minimize, k.Add},
		{k.Edit, k.Move, k.Grow, k.Taller, k.Remove},
		{k.Theme, k.Breakpt, k.Reset, k.Quit},
	}
}

// pickerKeys is the help set for the widget picker.
type pickerKeys struct {
	keyMap
}

func (k pickerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Confirm, k.ResetSel, k.RemoveAll, k.Grab, k.Cancel}
}

func (k pickerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dragKeys is the help set while a widget is being dragged.
type dragKeys struct {
	keyMap
}

func (k dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Move,
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k dragKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
