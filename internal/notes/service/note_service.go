package service

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"prodp/internal/lock"
	"prodp/internal/logs"
	"prodp/internal/notes"
)

var (
	ErrEmptyTitle      = errors.New("note title is empty")
	ErrEmptyContent    = errors.New("note content is empty")
	ErrInvalidText     = errors.New("note text is not valid UTF-8")
	ErrLocked          = errors.New("note is locked")
	ErrNotLocked       = errors.New("note is not locked")
	ErrChallengeFailed = errors.New("the string you entered is incorrect")
)

// NoteService defines the operations front-ends perform on the note store.
// Every mutation is saved to the backing file before it returns.
type NoteService interface {
	List() []notes.Note
	Get(index int) (notes.Note, error)
	Add(title, content string) (notes.Note, error)
	Edit(index int, title, content string) error
	Delete(index int) error
	Lock(index int) error
	Unlock(index int, challenge lock.Challenge, input string) error
	View(index int, challenge lock.Challenge, input string) (notes.Note, error)
	ExportText(index int, path string) error
	ImportText(path, title string) (notes.Note, error)
	Path() string
	Reload() error
}

type noteServiceImpl struct {
	list *notes.NoteList
	path string
}

// NewNoteService creates a NoteService backed by the file at path. A missing
// file starts an empty store; a corrupt one is an error and is left alone.
func NewNoteService(path string) (NoteService, error) {
	svc := &noteServiceImpl{
		list: notes.NewNoteList(),
		path: path,
	}
	if err := svc.Reload(); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *noteServiceImpl) Path() string {
	return s.path
}

func (s *noteServiceImpl) Reload() error {
	err := s.list.Load(s.path)
	if errors.Is(err, notes.ErrNotFound) {
		logs.Logger.Info().Str("path", s.path).Msg("no notes file yet, starting empty")
		s.list.Replace(nil)
		return nil
	}
	return err
}

func (s *noteServiceImpl) List() []notes.Note {
	return s.list.All()
}

func (s *noteServiceImpl) Get(index int) (notes.Note, error) {
	return s.list.Get(index)
}

func (s *noteServiceImpl) Add(title, content string) (notes.Note, error) {
	if err := validate(title, content); err != nil {
		return notes.Note{}, err
	}
	note := notes.NewNote(title, content)
	err := s.mutate(func(l *notes.NoteList) error {
		l.Add(note)
		return nil
	})
	if err != nil {
		return notes.Note{}, err
	}
	logs.Logger.Info().Str("title", title).Msg("added note")
	return note, nil
}

func (s *noteServiceImpl) Edit(index int, title, content string) error {
	note, err := s.unlocked(index)
	if err != nil {
		return err
	}
	if err := validate(title, content); err != nil {
		return err
	}
	note.Title = title
	note.Content = content
	return s.mutate(func(l *notes.NoteList) error {
		return l.Set(index, note)
	})
}

func (s *noteServiceImpl) Delete(index int) error {
	note, err := s.unlocked(index)
	if err != nil {
		return err
	}
	if err := s.mutate(func(l *notes.NoteList) error {
		return l.Remove(index)
	}); err != nil {
		return err
	}
	logs.Logger.Info().Str("title", note.Title).Int("index", index).Msg("deleted note")
	return nil
}

func (s *noteServiceImpl) Lock(index int) error {
	note, err := s.unlocked(index)
	if err != nil {
		return err
	}
	note.Locked = true
	return s.mutate(func(l *notes.NoteList) error {
		return l.Set(index, note)
	})
}

func (s *noteServiceImpl) Unlock(index int, challenge lock.Challenge, input string) error {
	note, err := s.list.Get(index)
	if err != nil {
		return err
	}
	if !note.Locked {
		return ErrNotLocked
	}
	if !challenge.Verify(input) {
		logs.Logger.Warn().Str("title", note.Title).Msg("unlock challenge failed")
		return ErrChallengeFailed
	}
	note.Locked = false
	return s.mutate(func(l *notes.NoteList) error {
		return l.Set(index, note)
	})
}

func (s *noteServiceImpl) View(index int, challenge lock.Challenge, input string) (notes.Note, error) {
	note, err := s.list.Get(index)
	if err != nil {
		return notes.Note{}, err
	}
	if note.Locked && !challenge.Verify(input) {
		logs.Logger.Warn().Str("title", note.Title).Msg("view challenge failed")
		return notes.Note{}, ErrChallengeFailed
	}
	return note, nil
}

func (s *noteServiceImpl) ExportText(index int, path string) error {
	note, err := s.list.Get(index)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(note.Content), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	logs.Logger.Info().Str("title", note.Title).Str("path", path).Msg("exported note")
	return nil
}

func (s *noteServiceImpl) ImportText(path, title string) (notes.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return notes.Note{}, fmt.Errorf("error reading %s: %w", path, err)
	}

	// Non-UTF-8 bytes could not survive a save, so store what the file will
	// hold.
	derived, body := notes.ParseImport(data, path)
	body = strings.ToValidUTF8(body, string(utf8.RuneError))
	if strings.TrimSpace(title) == "" {
		title = strings.ToValidUTF8(derived, string(utf8.RuneError))
	}
	return s.Add(title, body)
}

// DefaultExportName suggests a file name for saving note as text
func DefaultExportName(note notes.Note) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(note.Title))
	if name == "" {
		name = "note"
	}
	return name + ".txt"
}

// mutate applies fn and saves. If the save fails the list is restored.
func (s *noteServiceImpl) mutate(fn func(l *notes.NoteList) error) error {
	before := s.list.All()
	if err := fn(s.list); err != nil {
		return err
	}
	if err := s.list.Save(s.path); err != nil {
		logs.Logger.Error().Err(err).Str("path", s.path).Msg("save failed, rolling back")
		s.list.Replace(before)
		return err
	}
	return nil
}

func (s *noteServiceImpl) unlocked(index int) (notes.Note, error) {
	note, err := s.list.Get(index)
	if err != nil {
		return notes.Note{}, err
	}
	if note.Locked {
		return notes.Note{}, ErrLocked
	}
	return note, nil
}

func validate(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return ErrEmptyTitle
	}
	if content == "" {
		return ErrEmptyContent
	}
	if !utf8.ValidString(title) || !utf8.ValidString(content) {
		return ErrInvalidText
	}
	return nil
}
