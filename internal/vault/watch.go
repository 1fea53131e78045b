package vault

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long a file must stay quiet before it is re-read
const DebounceInterval = 50 * time.Millisecond

// Watch re-parses matching files under dir whenever they are written or
// created and hands each record to fn. Bursts of events for one file collapse
// into a single call. fn always runs on the goroutine that called Watch, one
// call at a time. Watch blocks until ctx is done.
func Watch(ctx context.Context, dir, pattern string, fn func(Record), logger *slog.Logger) error {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := walkDirs(dir, watcher.Add); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	d := newDebouncer(DebounceInterval)
	defer d.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case rel := <-d.ready:
			rec, err := ParseFile(dir, rel)
			if err != nil {
				logger.Warn("failed to parse note file", "path", rel, "error", err)
				continue
			}
			fn(rec)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := walkDirs(event.Name, watcher.Add); err != nil {
					logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
				}
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			rel, err := filepath.Rel(dir, event.Name)
			if err != nil || !matches(pattern, rel) {
				continue
			}
			d.add(rel)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("fsnotify error", "error", err)
		}
	}
}

// debouncer publishes a key on ready once the key has been quiet for the
// interval. Timers only signal; the receiver does the work.
type debouncer struct {
	interval time.Duration
	ready    chan string
	quit     chan struct{}

	mu      sync.Mutex
	timers  map[string]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		ready:    make(chan string),
		quit:     make(chan struct{}),
		timers:   make(map[string]*time.Timer),
	}
}

func (d *debouncer) add(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	if t, ok := d.timers[key]; ok && t.Stop() {
		// The pending signal was cancelled before it fired
		d.wg.Done()
	}
	d.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()

		d.mu.Lock()
		if d.timers[key] == t {
			delete(d.timers, key)
		}
		d.mu.Unlock()

		select {
		case d.ready <- key:
		case <-d.quit:
		}
	})
	d.timers[key] = t
}

// stop cancels pending signals and waits for fired timers to give up
func (d *debouncer) stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.quit)
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	d.wg.Wait()
}
