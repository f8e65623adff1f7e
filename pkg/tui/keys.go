package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings the layout browser responds to.
type keyMap struct {
	Quit       key.Binding
	NextPreset key.Binding
	PrevPreset key.Binding
	NextRegion key.Binding
	PrevRegion key.Binding
	Auto       key.Binding
	Labels     key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextPreset: key.NewBinding(
		key.WithKeys("n", "]"),
		key.WithHelp("n", "next preset"),
	),
	PrevPreset: key.NewBinding(
		key.WithKeys("p", "["),
		key.WithHelp("p", "prev preset"),
	),
	NextRegion: key.NewBinding(
		key.WithKeys("tab", "j"),
		key.WithHelp("tab", "next region"),
	),
	PrevRegion: key.NewBinding(
		key.WithKeys("shift+tab", "k"),
		key.WithHelp("shift+tab", "prev region"),
	),
	Auto: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "auto preset"),
	),
	Labels: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "labels"),
	),
}

// shortHelp lists the bindings shown in the status bar.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.NextRegion, k.NextPreset, k.Auto, k.Labels, k.Quit}
}
