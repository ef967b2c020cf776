package cli

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the page. Table bindings apply while
// the table has focus; the query input takes every other key.
type KeyMap struct {
	Submit       key.Binding
	FocusToggle  key.Binding
	Sort         key.Binding
	Search       key.Binding
	Filter       key.Binding
	PageLength   key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	DismissAlert key.Binding
	DarkMode     key.Binding
	Quit         key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search repo"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	Sort: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "sort column"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	PageLength: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "page length"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("n", "right", "pgdown"),
		key.WithHelp("n/→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("p", "left", "pgup"),
		key.WithHelp("p/←", "prev page"),
	),
	DismissAlert: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "dismiss"),
	),
	DarkMode: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dark mode"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusToggle, k.Sort, k.Search, k.Filter, k.NextPage, k.PrevPage, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.FocusToggle, k.Quit},
		{k.Sort, k.Search, k.Filter},
		{k.PageLength, k.NextPage, k.PrevPage},
		{k.DismissAlert, k.DarkMode},
	}
}
