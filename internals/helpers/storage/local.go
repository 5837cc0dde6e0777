// file: internals/helpers/storage/local.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage simpan objek di disk. Publish-nya atomic:
// tulis ke file temp satu direktori, lalu os.Rename ke key final.
type LocalStorage struct {
	Root       string
	PublicBase string // contoh: http://localhost:3000/static
}

func NewLocalStorage(root, publicBase string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("local storage: mkdir root: %w", err)
	}
	return &LocalStorage{
		Root:       root,
		PublicBase: strings.TrimRight(publicBase, "/"),
	}, nil
}

func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean("/" + key) // tolak traversal ke luar root
	return filepath.Join(s.Root, clean), nil
}

func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) error {
	dst, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("local storage: mkdir: %w", err)
	}

	// tulis ke temp di direktori yang sama supaya rename dijamin atomic
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return fmt.Errorf("local storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("local storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("local storage: sync temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("local storage: close temp: %w", err)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("local storage: publish: %w", err)
	}
	return nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	p, err := s.path(key)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("local storage: read: %w", err)
	}
	return b, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("local storage: delete: %w", err)
	}
	return nil
}

func (s *LocalStorage) PublicURL(key string) string {
	if s.PublicBase == "" {
		return "/static/" + strings.TrimLeft(key, "/")
	}
	return s.PublicBase + "/" + strings.TrimLeft(key, "/")
}
