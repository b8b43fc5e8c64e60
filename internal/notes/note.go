package notes

import "fmt"

// Note is a single titled text entry. Locked notes hide their content
// behind an unlock challenge.
type Note struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Locked  bool   `json:"locked"`
}

// NewNote creates an unlocked note
func NewNote(title, content string) Note {
	return Note{Title: title, Content: content}
}

// NoteList is the ordered in-memory collection of notes.
// Order is insertion or load order; nothing sorts it.
type NoteList struct {
	notes []Note
}

// NewNoteList returns an empty list
func NewNoteList() *NoteList {
	return &NoteList{}
}

// Add appends a note to the end of the list
func (l *NoteList) Add(note Note) {
	l.notes = append(l.notes, note)
}

// Remove deletes the note at the zero-based index
func (l *NoteList) Remove(index int) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.notes = append(l.notes[:index], l.notes[index+1:]...)
	return nil
}

// Get returns the note at index
func (l *NoteList) Get(index int) (Note, error) {
	if err := l.checkIndex(index); err != nil {
		return Note{}, err
	}
	return l.notes[index], nil
}

// Set replaces the note at index
func (l *NoteList) Set(index int, note Note) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.notes[index] = note
	return nil
}

// Len returns the number of notes
func (l *NoteList) Len() int {
	return len(l.notes)
}

// All returns a copy of the notes in order
func (l *NoteList) All() []Note {
	out := make([]Note, len(l.notes))
	copy(out, l.notes)
	return out
}

// Replace swaps the whole list for notes. Used to roll back a mutation
// whose save failed.
func (l *NoteList) Replace(notes []Note) {
	l.notes = append([]Note(nil), notes...)
}

// Save writes the whole list to path as JSON
func (l *NoteList) Save(path string) error {
	return WriteFile(path, l.notes)
}

// Load replaces the list with the notes stored at path. On error the list
// is left as it was.
func (l *NoteList) Load(path string) error {
	loaded, err := ReadFile(path)
	if err != nil {
		return err
	}
	l.notes = loaded
	return nil
}

func (l *NoteList) checkIndex(index int) error {
	if index < 0 || index >= len(l.notes) {
		return fmt.Errorf("%w: %d (have %d notes)", ErrIndexOutOfRange, index, len(l.notes))
	}
	return nil
}
