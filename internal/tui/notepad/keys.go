package notepad

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	top      key.Binding
	bottom   key.Binding
	view     key.Binding
	menu     key.Binding
	newNote  key.Binding
	edit     key.Binding
	delete   key.Binding
	lock     key.Binding
	unlock   key.Binding
	save     key.Binding
	importTx key.Binding
	copy     key.Binding
	reload   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j / k", "Navigate notes")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g / G", "First / last note")),
	bottom:   key.NewBinding(key.WithKeys("G", "end")),
	view:     key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter / v", "View note")),
	menu:     key.NewBinding(key.WithKeys(" ", "m"), key.WithHelp("space / m", "Note actions")),
	newNote:  key.NewBinding(key.WithKeys("n", "a"), key.WithHelp("n", "New note")),
	edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit note")),
	delete:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "Delete note")),
	lock:     key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "Lock note")),
	unlock:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "Unlock note")),
	save:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "Save as text")),
	importTx: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "Import text file")),
	copy:     key.NewBinding(key.WithKeys("c", "y"), key.WithHelp("c", "Copy content")),
	reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Reload from disk")),
}

// HelpBindings lists the note list bindings for the help popup
func HelpBindings() []key.Binding {
	return []key.Binding{
		keys.up, keys.top, keys.view, keys.menu, keys.newNote, keys.edit,
		keys.delete, keys.lock, keys.unlock, keys.save, keys.importTx,
		keys.copy, keys.reload,
	}
}
