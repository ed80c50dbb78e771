package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the app reacts to. Phrase editing itself goes
// straight to the focused text input.
type keyMap struct {
	Save     key.Binding
	Delete   key.Binding
	Copy     key.Binding
	Paste    key.Binding
	QR       key.Binding
	Export   key.Binding
	ClearQR  key.Binding
	ClearAll key.Binding
	Refresh  key.Binding
	Records  key.Binding
	Switch   key.Binding
	Quit     key.Binding

	Next  key.Binding
	Prev  key.Binding
	Up    key.Binding
	Down  key.Binding
	Load  key.Binding
	Back  key.Binding
	Space key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Delete:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "delete")),
		Copy:     key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("^y", "copy")),
		Paste:    key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("^v", "paste")),
		QR:       key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("^g", "qr")),
		Export:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("^e", "export png")),
		ClearQR:  key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^x", "clear qr")),
		ClearAll: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("^l", "clear all")),
		Refresh:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "refresh")),
		Records:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^o", "wallets")),
		Switch:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("^w", "switch panel")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("^c", "quit")),

		Next:  key.NewBinding(key.WithKeys("tab", "enter")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab")),
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Load:  key.NewBinding(key.WithKeys("enter")),
		Back:  key.NewBinding(key.WithKeys("esc", "ctrl+o")),
		Space: key.NewBinding(key.WithKeys(" ")),
	}
}
