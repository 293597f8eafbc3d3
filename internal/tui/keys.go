package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Sort     key.Binding
	SortIdle key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus search/results")),
	Up:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev suggestion")),
	Down:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next suggestion")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick suggestion")),
	Sort:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "sort")),
	SortIdle: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Focus, k.Up, k.Down, k.Select, k.Sort, k.Quit}
}
