// FILE: lixenwraith/natsort/config/watch.go
package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultMaxWatchers bounds the subscribers of one watcher
const DefaultMaxWatchers = 100

// Notifications sent on Watch channels besides changed paths
const (
	EventFileDeleted   = "file_deleted"
	EventReloadTimeout = "reload_timeout"
	EventReloadError   = "reload_error"
)

// WatchOptions tunes a settings file watcher. Zero fields take defaults.
type WatchOptions struct {
	Debounce      time.Duration // quiet period before a reload
	MaxWatchers   int           // subscriber cap; extra Watch channels are closed at once
	ReloadTimeout time.Duration

	// Logger receives watcher errors and reload results. Nil discards them.
	Logger *slog.Logger
}

func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		Debounce:      DefaultDebounce,
		MaxWatchers:   DefaultMaxWatchers,
		ReloadTimeout: DefaultReloadTimeout,
	}
}

// watcher reloads one settings file on change and fans out the changed paths
type watcher struct {
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
	opts        WatchOptions
	filePath    string
	fs          *fsnotify.Watcher
	done        chan struct{}
	reloading   atomic.Bool
	subscribers map[int64]chan string
	nextID      int64
	pending     *time.Timer
}

// Watch returns a channel receiving the paths whose values changed after the
// loaded settings file was modified, plus the Event* notifications. The
// channel closes when ctx is done or watching stops.
func (c *Config) Watch(ctx context.Context) (<-chan string, error) {
	return c.WatchWithOptions(ctx, DefaultWatchOptions())
}

// WatchWithOptions is Watch with custom options. Options only apply when no
// watcher is running for the current file yet.
func (c *Config) WatchWithOptions(ctx context.Context, opts WatchOptions) (<-chan string, error) {
	w, err := c.startWatcher(opts)
	if err != nil {
		return nil, err
	}
	return w.subscribe(ctx), nil
}

// StopWatching stops the file watcher and closes every Watch channel.
func (c *Config) StopWatching() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.watcher != nil {
		c.watcher.stop()
		c.watcher = nil
	}
}

// IsWatching reports whether a watcher is running for the loaded file.
func (c *Config) IsWatching() bool {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.watcher != nil && c.watcher.ctx.Err() == nil
}

// WatcherCount returns the number of open Watch channels.
func (c *Config) WatcherCount() int {
	c.mutex.RLock()
	w := c.watcher
	c.mutex.RUnlock()

	if w == nil {
		return 0
	}
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.subscribers)
}

func (o WatchOptions) withDefaults() WatchOptions {
	def := DefaultWatchOptions()
	if o.Debounce <= 0 {
		o.Debounce = def.Debounce
	}
	if o.MaxWatchers <= 0 {
		o.MaxWatchers = def.MaxWatchers
	}
	if o.ReloadTimeout <= 0 {
		o.ReloadTimeout = def.ReloadTimeout
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

func (c *Config) startWatcher(opts WatchOptions) (*watcher, error) {
	opts = opts.withDefaults()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.configFilePath == "" {
		return nil, ErrNoWatchFile
	}
	filePath := filepath.Clean(c.configFilePath)

	if prev := c.watcher; prev != nil {
		if prev.filePath == filePath && prev.ctx.Err() == nil {
			return prev, nil
		}
		prev.stop()
		c.watcher = nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create settings watcher: %w", err)
	}
	// The directory is watched so that rename-over saves are seen
	if err := fw.Add(filepath.Dir(filePath)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch directory of %q: %w", filePath, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &watcher{
		ctx:         ctx,
		cancel:      cancel,
		opts:        opts,
		filePath:    filePath,
		fs:          fw,
		done:        make(chan struct{}),
		subscribers: make(map[int64]chan string),
	}
	c.watcher = w

	go w.watchLoop(c)
	opts.Logger.Debug("watching settings file", "path", filePath)
	return w, nil
}

func (w *watcher) watchLoop(c *Config) {
	defer close(w.done)

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handleEvent(c, event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.opts.Logger.Warn("settings watcher error", "error", err)
		}
	}
}

func (w *watcher) handleEvent(c *Config, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.filePath {
		return
	}
	// Chmod fires on plain reads on some platforms
	if event.Op == fsnotify.Chmod {
		return
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if _, err := os.Stat(w.filePath); errors.Is(err, os.ErrNotExist) {
			w.notify(EventFileDeleted)
			return
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending != nil {
		w.pending.Stop()
	}
	w.pending = time.AfterFunc(w.opts.Debounce, func() { w.reload(c) })
}

// reload re-reads the file and notifies each path whose value changed.
// Overlapping reloads are dropped.
func (w *watcher) reload(c *Config) {
	if w.ctx.Err() != nil || !w.reloading.CompareAndSwap(false, true) {
		return
	}
	defer w.reloading.Store(false)

	ctx, cancel := context.WithTimeout(w.ctx, w.opts.ReloadTimeout)
	defer cancel()

	before := c.snapshot()
	result := make(chan error, 1)
	go func() { result <- c.loadFile(w.filePath) }()

	select {
	case <-ctx.Done():
		w.notify(EventReloadTimeout)
	case err := <-result:
		if err != nil {
			w.opts.Logger.Warn("settings reload failed", "path", w.filePath, "error", err)
			w.notify(EventReloadError)
			return
		}
		changed := changedPaths(before, c.snapshot())
		for _, p := range changed {
			w.notify(p)
		}
		w.opts.Logger.Debug("settings reloaded", "path", w.filePath, "changed", len(changed))
	}
}

func changedPaths(before, after map[string]any) []string {
	var out []string
	for p, v := range after {
		if old, ok := before[p]; !ok || !reflect.DeepEqual(old, v) {
			out = append(out, p)
		}
	}
	slices.Sort(out)
	return out
}

// subscribe registers a channel that lives until ctx or the watcher ends.
func (w *watcher) subscribe(ctx context.Context) <-chan string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.subscribers) >= w.opts.MaxWatchers || w.ctx.Err() != nil {
		w.opts.Logger.Warn("settings watch refused", "subscribers", len(w.subscribers))
		ch := make(chan string)
		close(ch)
		return ch
	}

	ch := make(chan string, subscriberBuffer)
	w.nextID++
	id := w.nextID
	w.subscribers[id] = ch

	go func() {
		select {
		case <-ctx.Done():
		case <-w.ctx.Done():
		}
		w.mu.Lock()
		delete(w.subscribers, id)
		close(ch)
		w.mu.Unlock()
	}()

	return ch
}

// notify sends to every subscriber without blocking; full channels miss the event.
func (w *watcher) notify(path string) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, ch := range w.subscribers {
		select {
		case ch <- path:
		default:
		}
	}
}

func (w *watcher) stop() {
	w.cancel()
	w.fs.Close()

	w.mu.Lock()
	if w.pending != nil {
		w.pending.Stop()
		w.pending = nil
	}
	w.mu.Unlock()

	select {
	case <-w.done:
	case <-time.After(ShutdownTimeout):
	}
}
