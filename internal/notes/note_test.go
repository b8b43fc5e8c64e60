package notes

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewNoteDefaultsUnlocked(t *testing.T) {
	n := NewNote("A", "hello")
	assert.False(t, n.Locked)
}

func TestAddSaveLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	l := NewNoteList()
	l.Add(NewNote("A", "hello"))
	require.NoError(t, l.Save(path))

	loaded := NewNoteList()
	require.NoError(t, loaded.Load(path))

	require.Equal(t, 1, loaded.Len())
	n, err := loaded.Get(0)
	require.NoError(t, err)
	assert.Equal(t, Note{Title: "A", Content: "hello", Locked: false}, n)
}

func TestSaveWritesExpectedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	l := NewNoteList()
	l.Add(Note{Title: "B", Content: "secret", Locked: true})
	require.NoError(t, l.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":[{"title":"B","content":"secret","locked":true}]}`, string(data))
}

func TestSaveEmptyListWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, NewNoteList().Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"notes":[]}`, string(data))
}

func TestSaveCreatesParentDirsAndLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "notes.json")

	l := NewNoteList()
	l.Add(NewNote("A", "x"))
	require.NoError(t, l.Save(path))
	require.NoError(t, l.Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.json", entries[0].Name())
}

func TestLoadMissingLockedKeyDefaultsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	doc := `{"notes":[{"title":"old","content":"from before locks"},{"title":"new","content":"c","locked":true}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	l := NewNoteList()
	require.NoError(t, l.Load(path))

	all := l.All()
	require.Len(t, all, 2)
	assert.False(t, all[0].Locked)
	assert.True(t, all[1].Locked)
}

func TestLoadMissingNotesKeyIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

	l := NewNoteList()
	require.NoError(t, l.Load(path))
	assert.Equal(t, 0, l.Len())
}

func TestLoadMissingFile(t *testing.T) {
	l := NewNoteList()
	l.Add(NewNote("keep", "me"))

	err := l.Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrCorrupt))

	// list untouched
	assert.Equal(t, 1, l.Len())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"notes": [`), 0644))

	l := NewNoteList()
	l.Add(NewNote("keep", "me"))

	err := l.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, 1, l.Len())
}

func TestRemoveOutOfRange(t *testing.T) {
	l := NewNoteList()
	l.Add(NewNote("A", "a"))

	for _, idx := range []int{-1, 1, 5} {
		err := l.Remove(idx)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", idx)
	}
	assert.Equal(t, 1, l.Len())
}

func TestRemoveKeepsOrder(t *testing.T) {
	l := NewNoteList()
	for _, title := range []string{"A", "B", "C"} {
		l.Add(NewNote(title, title))
	}
	require.NoError(t, l.Remove(1))

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, "A", all[0].Title)
	assert.Equal(t, "C", all[1].Title)
}

func TestAllReturnsCopy(t *testing.T) {
	l := NewNoteList()
	l.Add(NewNote("A", "a"))

	all := l.All()
	all[0].Title = "changed"

	n, _ := l.Get(0)
	assert.Equal(t, "A", n.Title)
}

func noteGen() *rapid.Generator[Note] {
	return rapid.Custom(func(t *rapid.T) Note {
		return Note{
			Title:   rapid.String().Filter(utf8.ValidString).Draw(t, "title"),
			Content: rapid.String().Filter(utf8.ValidString).Draw(t, "content"),
			Locked:  rapid.Bool().Draw(t, "locked"),
		}
	})
}

func TestSaveLoadRoundTrip_Properties(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(t *rapid.T) {
		want := rapid.SliceOf(noteGen()).Draw(t, "notes")

		l := NewNoteList()
		for _, n := range want {
			l.Add(n)
		}

		path := filepath.Join(dir, "roundtrip.json")
		if err := l.Save(path); err != nil {
			t.Fatalf("save: %v", err)
		}

		loaded := NewNoteList()
		if err := loaded.Load(path); err != nil {
			t.Fatalf("load: %v", err)
		}

		got := loaded.All()
		if len(got) != len(want) {
			t.Fatalf("expected %d notes, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("note %d: expected %+v, got %+v", i, want[i], got[i])
			}
		}
	})
}

func TestAddThenRemoveRestores_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		before := rapid.SliceOf(noteGen()).Draw(t, "notes")
		extra := noteGen().Draw(t, "extra")

		l := NewNoteList()
		for _, n := range before {
			l.Add(n)
		}

		l.Add(extra)
		if err := l.Remove(l.Len() - 1); err != nil {
			t.Fatalf("remove: %v", err)
		}

		got := l.All()
		if len(got) != len(before) {
			t.Fatalf("expected %d notes, got %d", len(before), len(got))
		}
		for i := range before {
			if got[i] != before[i] {
				t.Fatalf("note %d changed: %+v -> %+v", i, before[i], got[i])
			}
		}
	})
}
