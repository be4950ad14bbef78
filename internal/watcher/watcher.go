// Package watcher reruns a build whenever its input file changes on disk.
package watcher

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 500 * time.Millisecond

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets how long writes must be quiet before a rebuild.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher calls rebuild after bursts of changes to a single file.
type Watcher struct {
	path     string
	rebuild  func() error
	debounce time.Duration

	builds   atomic.Int64
	failures atomic.Int64
}

func New(path string, rebuild func() error, opts ...Option) *Watcher {
	w := &Watcher{
		path:     path,
		rebuild:  rebuild,
		debounce: defaultDebounce,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Builds returns how many rebuilds have run, and how many of them failed.
func (w *Watcher) Builds() (total, failed int64) {
	return w.builds.Load(), w.failures.Load()
}

// Watch blocks until ctx is done. The parent directory is watched so that
// editors which save by rename are still seen. A failed rebuild is logged and
// watching continues.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}
	name := filepath.Base(w.path)

	log.Printf("Watching %s (debounce %s)", w.path, w.debounce)

	quiet := time.NewTimer(w.debounce)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) == name && ev.Has(fsnotify.Write|fsnotify.Create) {
				quiet.Reset(w.debounce)
			}

		case <-quiet.C:
			w.run()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Watcher) run() {
	w.builds.Add(1)
	if err := w.rebuild(); err != nil {
		w.failures.Add(1)
		log.Printf("Rebuild of %s failed: %v", w.path, err)
	}
}
