package jsonstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Makepad-fr/todo/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; concurrent writers race and the last one wins.

// DefaultFileName is the backup file used when nothing else is configured.
const DefaultFileName = "todos.json"

// Store reads and writes one snapshot file.
type Store struct {
	Path string
}

func New(path string) *Store {
	return &Store{Path: path}
}

// Load returns the stored list, or a fresh one owned by owner when the
// file does not exist. restored reports which happened.
// An unreadable snapshot is returned as a *DecodeError and left on disk.
func (s *Store) Load(owner string) (l *model.ToDoList, restored bool, err error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewList(owner), false, nil
		}
		return nil, false, fmt.Errorf("read file: %w", err)
	}
	l, err = Decode(b)
	if err != nil {
		return nil, false, err
	}
	return l, true, nil
}

// Save replaces the snapshot atomically: the data goes to a temp file in
// the same directory which is then renamed over the old one.
func (s *Store) Save(l *model.ToDoList) error {
	b, err := Encode(l)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

// Quarantine moves the snapshot aside as <path>.corrupt-<timestamp> and
// returns the new name, so the next Load starts fresh.
func (s *Store) Quarantine(now time.Time) (string, error) {
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("nothing to recover: %s does not exist", s.Path)
		}
		return "", fmt.Errorf("stat: %w", err)
	}
	dst := fmt.Sprintf("%s.corrupt-%s", s.Path, now.UTC().Format("20060102T150405Z"))
	if err := os.Rename(s.Path, dst); err != nil {
		return "", fmt.Errorf("rename: %w", err)
	}
	return dst, nil
}
