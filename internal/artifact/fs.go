package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type fsStore struct {
	dir string
}

// NewFS stores artifacts as files under dir.
func NewFS(dir string) Store {
	return &fsStore{dir: dir}
}

func (s *fsStore) Put(_ context.Context, name string, content []byte) error {
	target := filepath.Join(s.dir, filepath.FromSlash(name))

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, content, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}

func (s *fsStore) Close() error { return nil }
