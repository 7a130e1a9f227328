// Package watch triggers regeneration when slide sources change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/agiangrant/slidetheme/internal/log"
)

// ChangeFunc is called once per settled burst of events with the changed
// paths, sorted.
type ChangeFunc func(ctx context.Context, changed []string) error

// Watcher watches files and directory trees.
type Watcher struct {
	debounce time.Duration
	ignore   []string
	files    map[string]bool // explicitly watched files
	dirs     map[string]bool // watched directory trees
	fs       *fsnotify.Watcher
	logger   zerolog.Logger
}

// New watches paths. Directories are watched recursively, including ones
// created later. Paths that do not exist yet are skipped. Events for paths
// in ignore (typically the generated stylesheet) are dropped.
func New(paths []string, debounce time.Duration, ignore ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		debounce: debounce,
		files:    make(map[string]bool),
		dirs:     make(map[string]bool),
		fs:       fw,
		logger:   log.WithComponent("watch"),
	}
	for _, p := range ignore {
		w.ignore = append(w.ignore, filepath.Clean(p))
	}

	for _, p := range paths {
		p = filepath.Clean(p)
		info, err := os.Stat(p)
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Debug().Str("path", p).Msg("skipping missing path")
			continue
		}
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if info.IsDir() {
			if err := w.addTree(p); err != nil {
				_ = fw.Close()
				return nil, err
			}
			continue
		}
		// Watch the parent so editors that replace files on save keep working.
		w.files[p] = true
		if err := w.fs.Add(filepath.Dir(p)); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", p, err)
		}
	}
	return w, nil
}

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		w.dirs[path] = true
		return nil
	})
}

// WatchList returns the directories currently registered with the OS.
func (w *Watcher) WatchList() []string {
	list := w.fs.WatchList()
	slices.Sort(list)
	return list
}

func (w *Watcher) relevant(path string) bool {
	if slices.Contains(w.ignore, path) {
		return false
	}
	if w.files[path] {
		return true
	}
	for dir := range w.dirs {
		if path == dir || strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run delivers debounced changes to fn until ctx is canceled. Errors from fn
// are logged and do not stop the watcher. Run closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, fn ChangeFunc) error {
	defer func() {
		if err := w.fs.Close(); err != nil {
			w.logger.Debug().Err(err).Msg("close watcher")
		}
	}()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]bool)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Str("event", "watch.stopped").Msg("watcher stopped")
			return nil

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			path := filepath.Clean(event.Name)
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(path); err == nil && info.IsDir() && w.relevant(path) {
					if err := w.addTree(path); err != nil {
						w.logger.Warn().Err(err).Str("path", path).Msg("watch new directory")
					}
				}
			}
			if !w.relevant(path) || event.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug().
				Str("event", "watch.file_changed").
				Str("op", event.Op.String()).
				Str("path", path).
				Msg("source changed")

			pending[path] = true
			// Debounce: reset timer on each event
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for p := range pending {
				changed = append(changed, p)
			}
			clear(pending)
			slices.Sort(changed)
			if err := fn(ctx, changed); err != nil {
				w.logger.Error().
					Err(err).
					Str("event", "watch.regenerate_failed").
					Msg("regeneration failed")
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().
				Err(err).
				Str("event", "watch.error").
				Msg("watcher error")
		}
	}
}
