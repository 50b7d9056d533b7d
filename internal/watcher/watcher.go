// Package watcher re-runs an action when files of interest change in a set of
// directories. Bursts of events are collapsed into one call.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ChangeFunc receives the files changed since the previous call, sorted.
type ChangeFunc func(ctx context.Context, changed []string)

// Watcher watches directories for changes to files matching a set of patterns.
type Watcher struct {
	dirs     []string
	patterns []string
	delay    time.Duration
	onChange ChangeFunc
	logger   zerolog.Logger
	ready    chan struct{}
}

// New creates a Watcher. Patterns are doublestar globs matched against file
// base names; no pattern means every file. delay is the quiet period after
// the last event before onChange runs.
func New(dirs, patterns []string, delay time.Duration, onChange ChangeFunc, logger zerolog.Logger) (*Watcher, error) {
	if len(dirs) == 0 {
		return nil, errors.New("no directory to watch")
	}
	if onChange == nil {
		return nil, errors.New("change handler cannot be nil")
	}
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid watch pattern %q", p)
		}
	}

	return &Watcher{
		dirs:     dirs,
		patterns: patterns,
		delay:    delay,
		onChange: onChange,
		logger:   logger.With().Str("component", "Watcher").Logger(),
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once every directory is watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is done. It returns nil on cancellation and an error
// when a directory cannot be watched.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.Error().Err(err).Msg("Failed to close file watcher")
		}
	}()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch '%s': %w", dir, err)
		}
		w.logger.Info().Str("dir", dir).Msg("Watching directory")
	}
	close(w.ready)

	reloadTimer := time.NewTimer(0)
	reloadTimer.Stop()
	defer reloadTimer.Stop()

	pending := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Watch loop stopped due to context cancellation")
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("Change detected")
			pending[event.Name] = struct{}{}
			reloadTimer.Reset(w.delay)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("File watcher error")

		case <-reloadTimer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			clear(pending)

			w.onChange(ctx, changed)
		}
	}
}

// relevant reports whether an event changes the content of a watched file
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if len(w.patterns) == 0 {
		return true
	}
	base := filepath.Base(event.Name)
	for _, p := range w.patterns {
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}
