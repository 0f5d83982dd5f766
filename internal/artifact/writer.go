package artifact

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// ErrPersistence wraps every failed write.
var ErrPersistence = errors.New("persistence failed")

func (w *implWriter) Write(ctx context.Context, name, content string) error {
	return w.put(ctx, name, []byte(content))
}

func (w *implWriter) WriteDOCX(ctx context.Context, name, title, content string) error {
	data, err := renderDOCX(title, content)
	if err != nil {
		w.logger.Error(ctx, "Failed to render %s: %v", name, err)
		return fmt.Errorf("%s: %w: %w", name, ErrPersistence, err)
	}
	return w.put(ctx, name, data)
}

func (w *implWriter) put(ctx context.Context, name string, data []byte) error {
	key := name
	if w.prefix != "" {
		key = path.Join(w.prefix, name)
	}

	if err := w.store.Put(ctx, key, data); err != nil {
		w.logger.Error(ctx, "Failed to save %s: %v", key, err)
		return fmt.Errorf("%s: %w: %w", key, ErrPersistence, err)
	}

	w.logger.Info(ctx, "Saved %s (%d bytes)", key, len(data))
	return nil
}

// renderDOCX goes through a temp file because the document API saves to paths.
func renderDOCX(title, content string) ([]byte, error) {
	dir, err := os.MkdirTemp("", "lecture-docx-*")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	out := filepath.Join(dir, "document.docx")
	if err := markdownToDocx(title, content, out); err != nil {
		return nil, fmt.Errorf("build docx: %w", err)
	}

	return os.ReadFile(out)
}
