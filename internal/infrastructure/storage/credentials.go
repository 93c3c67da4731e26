// Package storage persists the client's durable state: the bearer token and
// the user projection, kept as one JSON document so both entries appear and
// disappear together.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/majadash/admin-console/internal/core/domain"
)

// FileCredentialStore stores credentials in a single mode-0600 JSON file.
// Writes go through a temp file + rename so a crash mid-write can never
// leave one entry without the other.
type FileCredentialStore struct {
	path string
}

func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

type credentialsFile struct {
	Token string           `json:"token"`
	User  *domain.AuthUser `json:"user"`
}

func (s *FileCredentialStore) Save(token string, user domain.AuthUser) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage: create credentials dir: %w", err)
	}

	data, err := json.Marshal(credentialsFile{Token: token, User: &user})
	if err != nil {
		return fmt.Errorf("storage: encode credentials: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("storage: write credentials: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("storage: commit credentials: %w", err)
	}
	return nil
}

// Load returns the stored pair. A missing file, an unparsable file, or a
// file holding only one of the two entries all yield ("", nil, nil): the
// session simply starts unauthenticated.
func (s *FileCredentialStore) Load() (string, *domain.AuthUser, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("storage: read credentials: %w", err)
	}

	var cf credentialsFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return "", nil, nil
	}
	if cf.Token == "" || cf.User == nil {
		return "", nil, nil
	}
	return cf.Token, cf.User, nil
}

func (s *FileCredentialStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: clear credentials: %w", err)
	}
	return nil
}

// Token returns the stored token, or "" when the store holds no complete
// credential pair.
func (s *FileCredentialStore) Token() string {
	token, _, err := s.Load()
	if err != nil {
		return ""
	}
	return token
}
