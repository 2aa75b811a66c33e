// Package storage is the device-local key-value store: session token,
// language code and device ID, persisted as a single JSON file. Writes go
// through a temp-file rename so a crash never leaves a torn file.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

const fileName = "session.json"

type data struct {
	Token    string `json:"token,omitempty"`
	Language string `json:"language,omitempty"`
	DeviceID string `json:"deviceId,omitempty"`
}

// Store is the local key-value store. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	data data
}

// Open loads (or initializes) the store under dir. A missing file is not
// an error; a device ID is generated on first open and kept forever.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	s := &Store{path: filepath.Join(dir, fileName)}

	raw, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
		// First run.
	default:
		return nil, err
	}

	if s.data.DeviceID == "" {
		s.data.DeviceID = uuid.New().String()
		if err := s.flush(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Token returns the persisted session token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// SetToken persists the session token.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	return s.flush()
}

// ClearToken removes the session token (logout).
func (s *Store) ClearToken() error {
	return s.SetToken("")
}

// Language returns the persisted language code, or "" when never set.
func (s *Store) Language() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Language
}

// SetLanguage persists the selected language code.
func (s *Store) SetLanguage(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Language = code
	return s.flush()
}

// DeviceID returns the stable per-install device identifier.
func (s *Store) DeviceID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.DeviceID
}

// flush writes the store to disk. Caller must hold the write lock.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
