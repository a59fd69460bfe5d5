// Package session persists the login token between runs.
package session

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	apperrors "github.com/wexinc/artisan/internal/errors"
)

// FileName is the default session file name inside the artisan directory.
const FileName = "session.yaml"

// Session is a stored login.
type Session struct {
	Token    string    `yaml:"token"`
	Username string    `yaml:"username"`
	LoggedIn time.Time `yaml:"logged_in"`
}

// Valid reports whether the session holds a token.
func (s *Session) Valid() bool {
	return s != nil && s.Token != ""
}

// Store reads and writes a session file.
type Store struct {
	path string
}

// NewStore returns a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.artisan/session.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".artisan", FileName)
	}
	return filepath.Join(home, ".artisan", FileName)
}

// Path returns the session file location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored session. A missing file means logged out and
// returns nil without error.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.SessionUnreadable(s.path, err)
	}

	var sess Session
	if err := yaml.Unmarshal(data, &sess); err != nil {
		return nil, apperrors.SessionUnreadable(s.path, err)
	}
	if !sess.Valid() {
		return nil, nil
	}
	return &sess, nil
}

// Save writes sess with owner-only permissions.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return apperrors.SessionUnwritable(s.path, err)
	}

	data, err := yaml.Marshal(sess)
	if err != nil {
		return apperrors.SessionUnwritable(s.path, err)
	}

	// Atomic replace.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return apperrors.SessionUnwritable(s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return apperrors.SessionUnwritable(s.path, err)
	}
	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apperrors.SessionUnwritable(s.path, err)
	}
	return nil
}
