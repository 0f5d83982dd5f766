package input

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// waitForFile blocks until the input file exists, the wait elapses or ctx ends.
func (p *implProvider) waitForFile(ctx context.Context) error {
	if _, err := os.Stat(p.file); err == nil {
		return nil
	}

	dir := filepath.Dir(p.file)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create input directory %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("add watch path: %w", err)
	}

	// The file may have appeared between the first check and the watch.
	if _, err := os.Stat(p.file); err == nil {
		return nil
	}

	p.logger.Info(ctx, "Waiting up to %s for input file %s", p.wait, p.file)

	timer := time.NewTimer(p.wait)
	defer timer.Stop()

	target := filepath.Clean(p.file)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-timer.C:
			return fmt.Errorf("input file %s not created within %s: %w", p.file, p.wait, ErrMissing)

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}

			p.logger.Info(ctx, "Input file detected: %s", event.Name)
			// Give the writer a moment to finish.
			time.Sleep(p.settle)
			return nil

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			p.logger.Warn(ctx, "Watcher error: %v", err)
		}
	}
}
