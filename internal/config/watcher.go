package config

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads configuration when the underlying file changes and
// publishes each valid snapshot to the store.
type Watcher struct {
	path   string
	store  *Store
	logger *zap.SugaredLogger

	fsw *fsnotify.Watcher

	mu     sync.Mutex
	closed bool
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for the given config file. The file does
// not need to exist yet; creation events trigger a load too.
func NewWatcher(path string, store *Store, logger *zap.SugaredLogger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		path:   path,
		store:  store,
		logger: logger,
		fsw:    fsw,
		done:   make(chan struct{}),
	}
	return w, nil
}

// Start begins watching. It returns immediately; reloads happen on a
// background goroutine.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(w.path); err != nil {
		return err
	}

	w.wg.Add(1)
	go w.run()
	return nil
}

// Close stops the watcher and waits for the reload goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("config watch error", "path", w.path, "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		// Keep the last good snapshot on parse/validation failure.
		w.logger.Warnw("config reload failed", "path", w.path, "error", err)
		return
	}
	w.store.Set(cfg)
	w.logger.Infow("config reloaded",
		"path", w.path,
		"auto_completion", cfg.AutoCompletion,
		"completion_trigger_len", cfg.CompletionTriggerLen,
	)
}
