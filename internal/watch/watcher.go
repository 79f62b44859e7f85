// Package watch re-runs clustering when surname input files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/standardbeagle/thar/internal/debug"
)

// DefaultDebounce is used when Options.Debounce is zero.
const DefaultDebounce = 300 * time.Millisecond

// EventType represents the type of file system event
type EventType int

const (
	EventCreate EventType = iota
	EventWrite
	EventRemove
	EventRename
)

func (e EventType) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventWrite:
		return "write"
	case EventRemove:
		return "remove"
	case EventRename:
		return "rename"
	}
	return "unknown"
}

// Options configures a Watcher.
type Options struct {
	Patterns []string // input paths or doublestar globs
	Debounce time.Duration
}

// Watcher monitors the directories holding the input patterns and reports
// batches of changed input files after a quiet period.
type Watcher struct {
	watcher   *fsnotify.Watcher
	patterns  []pattern
	debouncer *eventDebouncer
	onBatch   func(changed []string)
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup

	statsMu         sync.RWMutex
	eventsProcessed int64
	errorCount      int64
	lastEventTime   time.Time
}

type pattern struct {
	raw       string // absolute path or glob
	glob      bool
	base      string // directory to watch
	recursive bool
}

// NewWatcher creates a watcher for opts.Patterns. onBatch receives the
// sorted changed paths of each debounced batch.
func NewWatcher(opts Options, onBatch func(changed []string)) (*Watcher, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("nothing to watch")
	}

	patterns := make([]pattern, 0, len(opts.Patterns))
	for _, p := range opts.Patterns {
		parsed, err := parsePattern(p)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, parsed)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fsw,
		patterns: patterns,
		onBatch:  onBatch,
		ctx:      ctx,
		cancel:   cancel,
	}
	w.debouncer = newEventDebouncer(debounce, w.flush)
	return w, nil
}

func parsePattern(p string) (pattern, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return pattern{}, fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	if !strings.ContainsAny(abs, "*?[{") {
		return pattern{raw: abs, base: filepath.Dir(abs)}, nil
	}

	// wildcards in a directory component need every directory below base
	base, rest := doublestar.SplitPattern(filepath.ToSlash(abs))
	return pattern{
		raw:       abs,
		glob:      true,
		base:      filepath.FromSlash(base),
		recursive: strings.Contains(rest, "/") || strings.Contains(rest, "**"),
	}, nil
}

// Start adds the watches and starts the event goroutines.
func (w *Watcher) Start() error {
	for _, p := range w.patterns {
		if err := w.addWatches(p); err != nil {
			return fmt.Errorf("failed to add watches for %s: %w", p.raw, err)
		}
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.debouncer.run(w.ctx, &w.wg)

	debug.LogWatch("watching %d patterns\n", len(w.patterns))
	return nil
}

// Stop stops the watcher and waits for its goroutines. Events still pending
// in the debouncer are dropped.
func (w *Watcher) Stop() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	debug.LogWatch("watcher stopped\n")
	return err
}

func (w *Watcher) addWatches(p pattern) error {
	if !p.recursive {
		return w.watcher.Add(p.base)
	}

	// Track visited directories to prevent infinite loops from symlink cycles
	visited := make(map[string]bool)
	return filepath.WalkDir(p.base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == p.base {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil
		}
		if visited[realPath] {
			return filepath.SkipDir
		}
		visited[realPath] = true

		if err := w.watcher.Add(path); err != nil {
			debug.LogWatch("failed to add watch for %s: %v\n", path, err)
		}
		return nil
	})
}

// Matches reports whether path is one of the watched inputs.
func (w *Watcher) Matches(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	for _, p := range w.patterns {
		if !p.glob {
			if abs == p.raw {
				return true
			}
			continue
		}
		if ok, _ := doublestar.PathMatch(p.raw, abs); ok {
			return true
		}
	}
	return false
}

func (w *Watcher) underRecursiveBase(dir string) bool {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for _, p := range w.patterns {
		if p.recursive && (abs == p.base || strings.HasPrefix(abs, p.base+string(filepath.Separator))) {
			return true
		}
	}
	return false
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.incrementStats(0, 1)
			debug.LogWatch("watcher error: %v\n", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name
	debug.LogWatch("event %v for %s\n", event.Op, path)

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if w.underRecursiveBase(path) {
				if err := w.watcher.Add(path); err != nil {
					debug.LogWatch("failed to add watch for new directory %s: %v\n", path, err)
				}
			}
			return
		}
	}

	if !w.Matches(path) {
		return
	}

	var eventType EventType
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = EventCreate
	case event.Op&fsnotify.Write != 0:
		eventType = EventWrite
	case event.Op&fsnotify.Remove != 0:
		eventType = EventRemove
	case event.Op&fsnotify.Rename != 0:
		eventType = EventRename
	default:
		return
	}

	w.debouncer.addEvent(w.ctx, path, eventType)
}

func (w *Watcher) flush(events map[string]EventType) {
	paths := make([]string, 0, len(events))
	for path, eventType := range events {
		debug.LogWatch("%s %s\n", eventType, path)
		paths = append(paths, path)
	}
	sort.Strings(paths)

	w.incrementStats(int64(len(events)), 0)
	if w.onBatch != nil {
		w.onBatch(paths)
	}
}

// incrementStats updates watch mode statistics
func (w *Watcher) incrementStats(events int64, errors int64) {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()

	w.eventsProcessed += events
	w.errorCount += errors
	if events > 0 {
		w.lastEventTime = time.Now()
	}
}

// Stats returns current watch statistics
func (w *Watcher) Stats() Stats {
	w.statsMu.RLock()
	defer w.statsMu.RUnlock()

	return Stats{
		EventsProcessed: w.eventsProcessed,
		ErrorCount:      w.errorCount,
		LastEventTime:   w.lastEventTime,
		IsActive:        w.ctx.Err() == nil,
	}
}

// Stats contains statistics about file watching
type Stats struct {
	EventsProcessed int64
	ErrorCount      int64
	LastEventTime   time.Time
	IsActive        bool
}
