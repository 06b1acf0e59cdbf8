package content

import (
	"os"
	"path/filepath"
	"strings"
)

// CredentialStore persists the admin token across restarts.
type CredentialStore interface {
	Load() string
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a mode-0600 file under the user config dir.
type FileStore struct {
	path string
}

func NewFileStore() (*FileStore, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}
	appDir := filepath.Join(dir, "personal-website")
	if err := os.MkdirAll(appDir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{path: filepath.Join(appDir, "token")}, nil
}

func (f *FileStore) Load() string {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func (f *FileStore) Save(token string) error {
	return os.WriteFile(f.path, []byte(token), 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemoryStore holds the token for the process lifetime only. Used in tests.
type MemoryStore struct {
	token string
}

func (m *MemoryStore) Load() string            { return m.token }
func (m *MemoryStore) Save(token string) error { m.token = token; return nil }
func (m *MemoryStore) Clear() error            { m.token = ""; return nil }
