package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/nikolayk812/storefront-cart/internal/port"
)

// FileStore keeps one file per key under dir. Writes go through a temp file
// and a rename so readers never see a torn value.
type FileStore struct {
	dir string
}

var _ port.KVStore = (*FileStore)(nil)

func NewFile(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return value, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	tmp, err := os.CreateTemp(s.dir, ".kv-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		return errors.Join(fmt.Errorf("tmp.Write: %w", err), tmp.Close(), os.Remove(tmpName))
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(fmt.Errorf("tmp.Close: %w", err), os.Remove(tmpName))
	}

	if err := os.Rename(tmpName, s.path(key)); err != nil {
		return errors.Join(fmt.Errorf("os.Rename: %w", err), os.Remove(tmpName))
	}

	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
