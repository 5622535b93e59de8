// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package favorites persists the user's favorite station ids as a JSON array in the user
// configuration directory. The file is read tolerantly and always rewritten as a whole.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/wneessen/hydro/internal/logger"
)

const (
	// AppDir is the directory below the user configuration directory holding hydro's files.
	AppDir = "hydro"
	// FileName is the name of the favorites file.
	FileName = "favorites.json"

	dirPerm  = 0o755
	filePerm = 0o644
)

var (
	// ErrDirectory is returned if the favorites directory cannot be created.
	ErrDirectory = errors.New("failed to create favorites directory")
	// ErrFile is returned if the favorites file cannot be read or written.
	ErrFile = errors.New("failed to access favorites file")
)

// Store loads and saves the favorites Set at a fixed path. An empty path stands for
// DefaultPath and is resolved on first access.
type Store struct {
	path   string
	logger *logger.Logger
}

// NewStore returns a Store for the favorites file at path.
func NewStore(path string, log *logger.Logger) *Store {
	return &Store{path: path, logger: log}
}

// DefaultPath returns <config_dir>/hydro/favorites.json for the current user.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine user config directory: %w", err)
	}
	return filepath.Join(dir, AppDir, FileName), nil
}

// Path returns the location of the favorites file.
func (s *Store) Path() (string, error) {
	if s.path != "" {
		return s.path, nil
	}
	path, err := DefaultPath()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDirectory, err)
	}
	s.path = path
	return path, nil
}

// Load reads the favorites. A missing file yields an empty set, as does a file that is not a
// JSON array of station ids.
func (s *Store) Load() (Set, error) {
	path, err := s.ensureDir()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrFile, path, err)
	}

	var ids []uint16
	if err = json.Unmarshal(data, &ids); err != nil {
		s.logger.Warn("ignoring unreadable favorites file", slog.String("path", path), logger.Err(err))
		return NewSet(), nil
	}
	return NewSet(ids...), nil
}

// Save replaces the favorites file with set. The content is written to a temporary file in the
// same directory first and then renamed over the old file.
func (s *Store) Save(set Set) (err error) {
	path, err := s.ensureDir()
	if err != nil {
		return err
	}

	data, err := json.Marshal(set.IDs())
	if err != nil {
		return fmt.Errorf("%w %q: failed to encode favorites: %w", ErrFile, path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+FileName+".*")
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrFile, path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w %q: %w", ErrFile, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w %q: %w", ErrFile, tmp.Name(), err)
	}
	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("%w %q: %w", ErrFile, tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w %q: %w", ErrFile, path, err)
	}

	s.logger.Debug("saved favorites", slog.String("path", path), slog.Int("count", set.Len()))
	return nil
}

// ensureDir resolves the favorites path and creates its parent directory.
func (s *Store) ensureDir() (string, error) {
	path, err := s.Path()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrDirectory, dir, err)
	}
	return path, nil
}
