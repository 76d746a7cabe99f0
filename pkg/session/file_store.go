package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// FileStore implements Store with a single file, the terminal analogue of a
// browser's localStorage slot. The blob is already opaque, so the file holds
// it verbatim with owner-only permissions.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to dir/StorageKey. The directory is
// created on first write, not on construction.
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, StorageKey)}
}

// Path returns the file backing the store.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) Read(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoSession
		}
		return "", errors.Join(ErrStorageFailed, err)
	}
	if len(raw) == 0 {
		return "", ErrNoSession
	}
	return string(raw), nil
}

func (f *FileStore) Write(ctx context.Context, blob string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}

	// Write-then-rename so a crash mid-write cannot leave a truncated blob
	// behind; a torn read would otherwise masquerade as corruption and evict
	// a valid session.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(blob), 0o600); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

func (f *FileStore) Delete(ctx context.Context) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}
