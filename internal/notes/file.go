package notes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"prodp/internal/logs"
)

var (
	// ErrNotFound is returned by ReadFile when the notes file does not
	// exist. It also matches fs.ErrNotExist.
	ErrNotFound = errors.New("notes file not found")
	// ErrCorrupt is returned when the notes file is not valid JSON
	ErrCorrupt = errors.New("notes file is corrupt")
	// ErrIndexOutOfRange is returned for an index outside the list
	ErrIndexOutOfRange = errors.New("note index out of range")

	mu sync.Mutex
)

// notesFile is the on-disk document: {"notes": [...]}
type notesFile struct {
	Notes []Note `json:"notes"`
}

type notFoundError struct {
	path string
	err  error
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.path)
}

func (e *notFoundError) Is(target error) bool {
	return target == ErrNotFound || target == fs.ErrNotExist
}

func (e *notFoundError) Unwrap() error {
	return e.err
}

// ReadFile parses the notes file at path. A missing file yields an error
// matching ErrNotFound; bad JSON yields one matching ErrCorrupt.
func ReadFile(path string) ([]Note, error) {
	mu.Lock()
	defer mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &notFoundError{path: path, err: err}
		}
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}

	var doc notesFile
	if err := json.Unmarshal(data, &doc); err != nil {
		logs.Logger.Error().Err(err).Str("path", path).Msg("notes file does not parse")
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	if doc.Notes == nil {
		doc.Notes = []Note{}
	}
	return doc.Notes, nil
}

// WriteFile serializes notes to path. The document is written to a
// temporary file beside path and renamed over it.
func WriteFile(path string, notes []Note) error {
	mu.Lock()
	defer mu.Unlock()

	if notes == nil {
		notes = []Note{}
	}
	data, err := json.MarshalIndent(notesFile{Notes: notes}, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding notes: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("error replacing %s: %w", path, err)
	}

	logs.Logger.Debug().Str("path", path).Int("count", len(notes)).Msg("saved notes")
	return nil
}
