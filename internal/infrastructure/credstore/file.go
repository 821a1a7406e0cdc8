// Package credstore persists the session credential across runs: two
// string-valued slots (the bearer token and the serialized user snapshot)
// written together and cleared together.
package credstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// FileStore keeps the two credential slots as files under a state
// directory, owner-readable only. Parsing of the user snapshot is the
// session's concern; the store moves raw strings.
type FileStore struct {
	dir string
}

// NewFileStore creates the state directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("credstore: create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes both slots. The user snapshot lands first so a crash between
// the two writes leaves a credential Load treats as absent (token missing)
// rather than a token without its user.
func (s *FileStore) Save(token, user string) error {
	if err := s.writeSlot(userFile, user); err != nil {
		return err
	}
	return s.writeSlot(tokenFile, token)
}

// Load returns both slots; an absent credential is two empty strings, not
// an error.
func (s *FileStore) Load() (string, string, error) {
	token, err := s.readSlot(tokenFile)
	if err != nil {
		return "", "", err
	}
	user, err := s.readSlot(userFile)
	if err != nil {
		return "", "", err
	}
	return token, user, nil
}

// Clear removes both slots. Slots already absent are not an error.
func (s *FileStore) Clear() error {
	var errs []error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("credstore: remove %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (s *FileStore) writeSlot(name, value string) error {
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("credstore: write %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("credstore: write %s: %w", name, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("credstore: write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("credstore: write %s: %w", name, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("credstore: write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) readSlot(name string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("credstore: read %s: %w", name, err)
	}
	return string(raw), nil
}
