// Package watch reloads site content when the backing file changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mvaleri/atrium/internal/content"
	"github.com/mvaleri/atrium/internal/platform/timeouts"
)

const defaultDebounce = 250 * time.Millisecond

// Config describes the file to watch and where reloaded documents go.
type Config struct {
	// Path is the content file to reload on change.
	Path string

	// Debounce is how long to collect events before reloading.
	Debounce time.Duration

	// Apply receives each successfully reloaded document.
	Apply func(*content.Document)

	Logger *log.Logger
}

// Watcher reloads the content file on change and publishes documents that
// parse and validate. A failed reload keeps the previous document.
type Watcher struct {
	path     string
	debounce time.Duration
	apply    func(*content.Document)
	logger   *log.Logger
	fsw      *fsnotify.Watcher
}

// New builds a watcher for the configured content file.
func New(cfg Config) (*Watcher, error) {
	if cfg.Path == "" {
		return nil, errors.New("content path is required")
	}
	if cfg.Apply == nil {
		return nil, errors.New("apply func is required")
	}
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve content path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// Watch the parent directory. Editors replace files via rename, which
	// drops a watch held on the file itself.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		apply:    cfg.Apply,
		logger:   logger,
		fsw:      fsw,
	}, nil
}

// Run processes file events until ctx ends or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil {
		return errors.New("watcher is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	pending := false
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				pending = true
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("content watcher error: %v", err)
		case <-ticker.C:
			if !pending {
				continue
			}
			pending = false
			w.reload(ctx)
		}
	}
}

// Close releases the underlying file watcher. Run returns after Close.
func (w *Watcher) Close() error {
	if w == nil || w.fsw == nil {
		return nil
	}
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}

func (w *Watcher) reload(ctx context.Context) {
	reloadCtx, cancel := context.WithTimeout(ctx, timeouts.ContentReload)
	defer cancel()

	type loaded struct {
		doc *content.Document
		err error
	}
	done := make(chan loaded, 1)
	go func() {
		doc, err := content.Load(w.path)
		done <- loaded{doc: doc, err: err}
	}()

	select {
	case <-reloadCtx.Done():
		w.logger.Printf("content reload timed out, keeping previous snapshot: %v", reloadCtx.Err())
	case res := <-done:
		if res.err != nil {
			w.logger.Printf("content reload failed, keeping previous snapshot: %v", res.err)
			return
		}
		w.apply(res.doc)
		w.logger.Printf("content reloaded from %s", w.path)
	}
}
