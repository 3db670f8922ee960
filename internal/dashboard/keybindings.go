package dashboard

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit       key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	JumpPage   key.Binding
	SelectPrev key.Binding
	SelectNext key.Binding
	Trigger    key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/→", "pages"),
	),
	JumpPage: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "jump"),
	),
	SelectPrev: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/↓", "select"),
	),
	SelectNext: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next action"),
	),
	Trigger: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "send"),
	),
}

// helpEntry renders one binding as "key desc" for the footer.
func helpEntry(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
