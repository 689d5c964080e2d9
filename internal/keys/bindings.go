package keys

import "github.com/charmbracelet/bubbles/key"

// Playground holds the keys the playground intercepts before the engine sees
// them. Everything else goes to the engine.
var Playground = struct {
	Quit      key.Binding
	Help      key.Binding
	ToggleVim key.Binding
	ToggleLog key.Binding
	LogLevel  key.Binding
	Reset     key.Binding
}{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "toggle help"),
	),
	ToggleVim: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "toggle vim mode"),
	),
	ToggleLog: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "toggle log pane"),
	),
	LogLevel: key.NewBinding(
		key.WithKeys("f3"),
		key.WithHelp("f3", "cycle log level"),
	),
	Reset: key.NewBinding(
		key.WithKeys("f5"),
		key.WithHelp("f5", "reset buffer"),
	),
}

// PlaygroundHelp lists the playground bindings in display order.
func PlaygroundHelp() []key.Binding {
	return []key.Binding{Playground.Help, Playground.ToggleVim, Playground.ToggleLog, Playground.LogLevel, Playground.Reset, Playground.Quit}
}
