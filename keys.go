package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Yes      key.Binding
	No       key.Binding
	Activate key.Binding
	Select   key.Binding
	Shuffle  key.Binding
	Continue key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Numbers  key.Binding
	Postcard key.Binding
	Pause    key.Binding
	Skip     key.Binding
	Finish   key.Binding
	Open     key.Binding
	Close    key.Binding
	Copy     key.Binding
	Scroll   key.Binding
	Restart  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("h", "left", "shift+tab"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("l", "right", "tab"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Yes:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Select:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "pick tile")),
		Shuffle:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shuffle")),
		Continue: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue")),
		Undo:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:     key.NewBinding(key.WithKeys("U", "ctrl+r"), key.WithHelp("U", "redo")),
		Numbers:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "tile numbers")),
		Postcard: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "save postcard")),
		Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		Skip:     key.NewBinding(key.WithKeys("s", "esc"), key.WithHelp("s/esc", "skip")),
		Finish:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "finish")),
		Open:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open card")),
		Close:    key.NewBinding(key.WithKeys("esc", "q", "backspace"), key.WithHelp("esc", "close")),
		Copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy text")),
		Scroll:   key.NewBinding(key.WithKeys("j", "k", "up", "down", "pgup", "pgdown"), key.WithHelp("j/k", "scroll")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// screenKeys adapts the bindings relevant to one screen to help.KeyMap.
type screenKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

func (s screenKeys) ShortHelp() []key.Binding  { return s.short }
func (s screenKeys) FullHelp() [][]key.Binding { return s.full }

func (m model) helpKeys() screenKeys {
	k := m.keys
	if m.mode == ModeModal {
		return screenKeys{
			short: []key.Binding{k.Scroll, k.Copy, k.Close},
			full:  [][]key.Binding{{k.Scroll, k.Copy, k.Close}, {k.Restart}},
		}
	}

	switch m.nav.Active() {
	case ScreenQuestion:
		return screenKeys{
			short: []key.Binding{k.Yes, k.No, k.Activate, k.Quit},
			full:  [][]key.Binding{{k.Yes, k.No}, {k.Left, k.Right, k.Activate}, {k.Help, k.Quit}},
		}
	case ScreenPuzzle:
		short := []key.Binding{k.Select, k.Shuffle, k.Undo}
		if m.puzzle.CanContinue() {
			short = []key.Binding{k.Continue, k.Postcard, k.Shuffle}
		}
		return screenKeys{
			short: append(short, k.Help, k.Quit),
			full: [][]key.Binding{
				{k.Up, k.Down, k.Left, k.Right},
				{k.Select, k.Shuffle, k.Undo, k.Redo},
				{k.Continue, k.Postcard, k.Numbers},
				{k.Restart, k.Help, k.Quit},
			},
		}
	case ScreenVideo:
		return screenKeys{
			short: []key.Binding{k.Pause, k.Skip, k.Finish, k.Quit},
			full:  [][]key.Binding{{k.Pause, k.Skip, k.Finish}, {k.Restart, k.Help, k.Quit}},
		}
	default:
		return screenKeys{
			short: []key.Binding{k.Open, k.Restart, k.Help, k.Quit},
			full:  [][]key.Binding{{k.Up, k.Down, k.Left, k.Right}, {k.Open, k.Restart}, {k.Help, k.Quit}},
		}
	}
}
