package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Sort      key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Search    key.Binding
	Pick      key.Binding
	Close     key.Binding
	Focus     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Sort:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		ToggleAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		PrevPage:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev page")),
		NextPage:  key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next page")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Pick:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/pick")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.Sort, k.Toggle, k.PrevPage, k.NextPage, k.Search, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Sort, k.Toggle, k.ToggleAll, k.PrevPage, k.NextPage},
		{k.Search, k.Pick, k.Close, k.Focus, k.Help, k.Quit},
	}
}
