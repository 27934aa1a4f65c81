package am

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/logger"
)

// DefaultDebounce coalesces the burst of events an editor save produces
const DefaultDebounce = 500 * time.Millisecond

// ConfigWatcher watches config files for changes and triggers reload callbacks
type ConfigWatcher struct {
	files          map[string]bool // cleaned paths being watched
	watcher        *fsnotify.Watcher
	loader         Loader
	callbacks      []ReloadCallback
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// ReloadCallback is called when config is reloaded
// Receives the new config and returns any error
type ReloadCallback func(*Config) error

// Loader produces a fresh configuration after a change
type Loader func() (*Config, error)

// Reload drops the cached configuration and loads the cascade again
func Reload() (*Config, error) {
	Reset()
	return Load()
}

// WatcherOption customizes a ConfigWatcher
type WatcherOption func(*ConfigWatcher)

// WithDebounce sets the quiet period before a reload
func WithDebounce(d time.Duration) WatcherOption {
	return func(cw *ConfigWatcher) { cw.debouncePeriod = d }
}

// WithLoader replaces the cascade reload (Reload) with another loader
func WithLoader(l Loader) WatcherOption {
	return func(cw *ConfigWatcher) { cw.loader = l }
}

// NewConfigWatcher creates a watcher for the given config files. The
// parent directories are watched so editors that save by rename are seen.
func NewConfigWatcher(paths []string, opts ...WatcherOption) (*ConfigWatcher, error) {
	if len(paths) == 0 {
		return nil, errors.New("no config files to watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	cw := &ConfigWatcher{
		files:          make(map[string]bool, len(paths)),
		watcher:        watcher,
		loader:         Reload,
		callbacks:      make([]ReloadCallback, 0),
		debouncePeriod: DefaultDebounce,
	}
	for _, opt := range opts {
		opt(cw)
	}

	dirs := make(map[string]bool)
	for _, path := range paths {
		clean := filepath.Clean(path)
		cw.files[clean] = true
		dirs[filepath.Dir(clean)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch config directory %s", dir)
		}
	}

	return cw, nil
}

// OnReload registers a callback to be called when config is reloaded
func (cw *ConfigWatcher) OnReload(callback ReloadCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

// Start begins watching for config file changes
func (cw *ConfigWatcher) Start() {
	go cw.watchLoop()
}

// watchLoop monitors file system events
func (cw *ConfigWatcher) watchLoop() {
	log := logger.ComponentLogger("am")
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}

			// Siblings in the directory (swap files, other configs) are not ours
			if !cw.files[filepath.Clean(event.Name)] {
				continue
			}

			// Write, Create and Rename cover in-place saves and atomic replaces
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				log.Infow("Config watcher detected change",
					logger.FieldFile, event.Name,
					"op", event.Op.String())
				cw.scheduleReload()
			}

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Warnw("Config watcher error",
				logger.FieldError, err)
		}
	}
}

// scheduleReload debounces rapid file changes and triggers reload
func (cw *ConfigWatcher) scheduleReload() {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}

	cw.debounceTimer = time.AfterFunc(cw.debouncePeriod, func() {
		if err := cw.reload(); err != nil {
			logger.ComponentLogger("am").Errorw("Config reload failed",
				logger.FieldError, err)
		}
	})
}

// reload loads the new config, validates it and calls all callbacks. An
// invalid config never reaches the callbacks.
func (cw *ConfigWatcher) reload() error {
	newConfig, err := cw.loader()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := newConfig.Validate(); err != nil {
		return errors.Wrap(err, "reloaded config is invalid")
	}

	logger.ComponentLogger("am").Infow("Config reloaded successfully",
		logger.FieldWeekStart, newConfig.Parser.WeekStart,
		logger.FieldLocale, newConfig.Locale.Tag)

	cw.mu.RLock()
	callbacks := make([]ReloadCallback, len(cw.callbacks))
	copy(callbacks, cw.callbacks)
	cw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(newConfig); err != nil {
			logger.ComponentLogger("am").Warnw("Config reload callback error",
				logger.FieldError, err)
			// Continue calling other callbacks even if one fails
		}
	}

	return nil
}

// Stop stops watching for config changes
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	if cw.debounceTimer != nil {
		cw.debounceTimer.Stop()
	}
	cw.mu.Unlock()
	return cw.watcher.Close()
}
