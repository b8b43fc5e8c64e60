package notes

// Action is a per-note command offered by a front-end
type Action int

const (
	ActionView Action = iota
	ActionEdit
	ActionDelete
	ActionLock
	ActionUnlock
	ActionSaveAsText
	ActionCopy
)

var actionNames = map[Action]string{
	ActionView:       "View",
	ActionEdit:       "Edit",
	ActionDelete:     "Delete",
	ActionLock:       "Lock",
	ActionUnlock:     "Unlock",
	ActionSaveAsText: "Save as text",
	ActionCopy:       "Copy",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

var (
	unlockedActions = []Action{ActionView, ActionEdit, ActionDelete, ActionLock, ActionSaveAsText, ActionCopy}
	lockedActions   = []Action{ActionView, ActionUnlock, ActionSaveAsText}
)

// ActionsFor lists the actions available for note given its lock state.
// Viewing a locked note goes through the unlock challenge.
func ActionsFor(note Note) []Action {
	src := unlockedActions
	if note.Locked {
		src = lockedActions
	}
	return append([]Action(nil), src...)
}

// Allowed reports whether action may be applied to note
func Allowed(note Note, action Action) bool {
	for _, a := range ActionsFor(note) {
		if a == action {
			return true
		}
	}
	return false
}
