package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	Enter  key.Binding
	Back   key.Binding
	Reload key.Binding

	Listing key.Binding
	Search  key.Binding

	ScrollLeft  key.Binding
	ScrollRight key.Binding

	SortRating    key.Binding
	SortName      key.Binding
	SortRuntime   key.Binding
	SortMetascore key.Binding

	Mode  key.Binding
	Genre key.Binding

	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Listing: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "genre listing"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "scroll shelf left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "scroll shelf right"),
	),
	SortRating: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "sort by rating"),
	),
	SortName: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "sort by name"),
	),
	SortRuntime: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "sort by runtime"),
	),
	SortMetascore: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "sort by metascore"),
	),
	Mode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "search mode"),
	),
	Genre: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "genre filter"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// ShortHelp satisfies help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Back, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Back},
		{k.Listing, k.Search, k.Reload, k.ScrollLeft, k.ScrollRight},
		{k.SortRating, k.SortName, k.SortRuntime, k.SortMetascore},
		{k.Mode, k.Genre, k.Help, k.Quit},
	}
}
