// Package storage persists uploaded files. The platform runs on a single
// node, so the default store writes to local disk behind an interface that
// an object-storage backend could replace.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store saves uploaded content and returns a URL the client can fetch it at.
type Store interface {
	Save(name string, r io.Reader) (url string, err error)
	Remove(url string) error
}

// LocalStore writes files under a base directory and serves them from a
// base URL path.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save writes the content under a random key, keeping the original
// extension so content types stay guessable.
func (s *LocalStore) Save(name string, r io.Reader) (string, error) {
	key := uuid.NewString() + filepath.Ext(name)
	path := filepath.Join(s.dir, key)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.baseURL + "/" + key, nil
}

func (s *LocalStore) Remove(url string) error {
	key := filepath.Base(url)
	if key == "." || key == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Dir returns the directory files are stored in, for static file serving.
func (s *LocalStore) Dir() string {
	return s.dir
}
