// Package token persists the single opaque access token.
package token

import (
	"log/slog"
	"os"
	"strings"
)

// Store is the access token persistence contract. All operations are
// idempotent and never fail outward: storage errors are logged and degrade,
// Read to an empty token and Save/Remove to a no-op.
type Store interface {
	// Save persists the token, replacing any previous one.
	Save(tok string)

	// Read returns the stored token, or "" if none is stored.
	Read() string

	// Remove deletes the stored token. Removing an absent token is a no-op.
	Remove()
}

// FileStore persists the token as a single flat file with mode 0600.
type FileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileStore{path: path, logger: logger}
}

// Save implements Store.
func (s *FileStore) Save(tok string) {
	if err := os.WriteFile(s.path, []byte(tok), 0600); err != nil {
		s.logger.Error("failed to save token", slog.String("path", s.path), slog.String("error", err.Error()))
	}
}

// Read implements Store.
func (s *FileStore) Read() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Error("failed to read token", slog.String("path", s.path), slog.String("error", err.Error()))
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Remove implements Store.
func (s *FileStore) Remove() {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Error("failed to remove token", slog.String("path", s.path), slog.String("error", err.Error()))
	}
}
