package tui

import "github.com/charmbracelet/bubbles/key"

// BrowserKeys are the key bindings of the catalogue grid.
type BrowserKeys struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Detail key.Binding
	More   key.Binding
	Search key.Binding
	Clear  key.Binding
	Theme  key.Binding
	Quit   key.Binding
}

// NewBrowserKeys creates the grid key bindings.
func NewBrowserKeys() BrowserKeys {
	return BrowserKeys{
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
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		More: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m", "show more"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear search"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FormKeys are shared by the search and theme overlays.
type FormKeys struct {
	Next   key.Binding
	Prev   key.Binding
	Cycle  key.Binding
	Back   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// NewFormKeys creates the overlay key bindings.
func NewFormKeys() FormKeys {
	return FormKeys{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),
		Back: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

var (
	browserKeys = NewBrowserKeys()
	formKeys    = NewFormKeys()
)
