package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	// ErrEmptyPath is returned when a FileStore is created without a path.
	ErrEmptyPath = errors.New("preferences path cannot be empty")
	// ErrLoadFailed is returned when the preferences file exists but
	// cannot be read or parsed.
	ErrLoadFailed = errors.New("failed to load preferences")
	// ErrSaveFailed is returned when persisting preferences fails.
	ErrSaveFailed = errors.New("failed to save preferences")
)

// Store persists preferences. Implementations are injected into the
// presentation layer at startup; nothing reads preference state through
// ambient globals.
type Store interface {
	Load(ctx context.Context) (Preferences, error)
	Save(ctx context.Context, p Preferences) error
}

// FileStore keeps preferences in a single JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path. The file
// does not need to exist yet.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &FileStore{path: path}, nil
}

// Load reads persisted preferences. A missing file yields defaults, not
// an error; a present but unreadable file is an error.
func (s *FileStore) Load(ctx context.Context) (Preferences, error) {
	if err := ctx.Err(); err != nil {
		return Preferences{}, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Preferences{}, errors.Join(ErrLoadFailed, err)
	}

	var p Preferences
	if err := json.Unmarshal(data, &p); err != nil {
		return Preferences{}, errors.Join(ErrLoadFailed, err)
	}
	return p.normalize(), nil
}

// Save writes preferences atomically: a uniquely named temp file in the
// same directory is renamed over the target, so readers never observe a
// half-written file.
func (s *FileStore) Save(ctx context.Context, p Preferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(p.normalize(), "", "  ")
	if err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}

	tmp := s.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Join(ErrSaveFailed, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Join(ErrSaveFailed, err)
	}
	return nil
}
