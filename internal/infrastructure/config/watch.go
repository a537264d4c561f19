package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// LevelReload carries a freshly loaded level, or the error that prevented it.
type LevelReload struct {
	Name  string
	Level *LevelConfig
	Err   error
}

// Watcher reloads level files from a config directory when they change on
// disk. Reloads arrive on Reloads(); the simulation picks them up between
// frames.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
	reloads chan LevelReload
	done    chan struct{}
	once    sync.Once
	log     *slog.Logger
}

// NewWatcher starts watching <dir>/levels.
func NewWatcher(dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}

	levelDir := filepath.Join(dir, "levels")
	if err := fw.Add(levelDir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("config: watch %s: %w", levelDir, err)
	}

	w := &Watcher{
		loader:  NewLoader(dir),
		watcher: fw,
		reloads: make(chan LevelReload, 8),
		done:    make(chan struct{}),
		log:     logger,
	}
	go w.loop()
	return w, nil
}

// Reloads delivers reloaded levels.
func (w *Watcher) Reloads() <-chan LevelReload {
	return w.reloads
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) loop() {
	const debounce = 100 * time.Millisecond

	pending := make(map[string]struct{})
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := LevelName(filepath.ToSlash(ev.Name))
			if name == "" {
				continue
			}
			pending[name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("level watcher error", "error", err)
		case <-fire:
			fire = nil
			for name := range pending {
				lvl, err := w.loader.LoadLevel(name)
				if err != nil {
					w.log.Warn("level reload failed", "level", name, "error", err)
				} else {
					w.log.Info("level reloaded", "level", name)
				}
				select {
				case w.reloads <- LevelReload{Name: name, Level: lvl, Err: err}:
				case <-w.done:
					return
				}
			}
			clear(pending)
		}
	}
}
