// Package watcher reports file changes in batches. Bursts of writes to the
// same path within the debounce delay collapse into one event.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mayura-ui/mayura/internal/logging"
)

// FileWatcher watches for file changes with debouncing
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	logger    logging.Logger
	filters   []FileFilter
	handlers  []ChangeHandler
	mutex     sync.RWMutex
	stopOnce  sync.Once
}

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type    EventType
	Path    string
	ModTime time.Time
	Size    int64
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file should be reported
type FileFilter func(path string) bool

// ChangeHandler handles a debounced batch of change events
type ChangeHandler func(events []ChangeEvent) error

// Debouncer groups rapid file changes together
type Debouncer struct {
	delay   time.Duration
	output  chan []ChangeEvent
	timer   *time.Timer
	pending map[string]ChangeEvent
	mutex   sync.Mutex
}

// NewDebouncer returns a debouncer that emits on Output after delay of
// quiet.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:   delay,
		output:  make(chan []ChangeEvent, 10),
		pending: make(map[string]ChangeEvent),
	}
}

// Output delivers batches, sorted by path, with one event per path.
func (d *Debouncer) Output() <-chan []ChangeEvent {
	return d.output
}

// Add records an event and restarts the quiet period.
func (d *Debouncer) Add(event ChangeEvent) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.pending[event.Path] = event

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.flush)
}

func (d *Debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.pending) == 0 {
		return
	}

	events := make([]ChangeEvent, 0, len(d.pending))
	for _, event := range d.pending {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })

	select {
	case d.output <- events:
	default:
		// consumer is behind; the next change produces a fresh batch
	}

	clear(d.pending)
}

// Stop cancels a pending flush.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}

// NewFileWatcher creates a new file watcher. A nil logger discards output.
func NewFileWatcher(debounceDelay time.Duration, logger logging.Logger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	return &FileWatcher{
		watcher:   watcher,
		debouncer: NewDebouncer(debounceDelay),
		logger:    logger.WithComponent("watcher"),
	}, nil
}

// AddFilter adds a file filter. An event is reported only when every filter
// accepts its path.
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.filters = append(fw.filters, filter)
}

// AddHandler adds a change handler
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// AddPath watches a file or directory. Watching a single file misses
// editors that save by renaming a temp file over it, so callers that care
// about one file watch its directory with a MatchBase filter.
func (fw *FileWatcher) AddPath(path string) error {
	return fw.watcher.Add(filepath.Clean(path))
}

// Start runs the watch and dispatch loops until ctx is done.
func (fw *FileWatcher) Start(ctx context.Context) error {
	go fw.processEvents(ctx)
	go fw.watchLoop(ctx)
	return nil
}

// Stop stops the file watcher and cleans up resources. It is safe to call
// more than once.
func (fw *FileWatcher) Stop() error {
	var err error
	fw.stopOnce.Do(func() {
		fw.debouncer.Stop()
		err = fw.watcher.Close()
	})
	return err
}

func (fw *FileWatcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleFsnotifyEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn(ctx, err, "File watcher error")
		}
	}
}

func (fw *FileWatcher) accepts(path string) bool {
	fw.mutex.RLock()
	defer fw.mutex.RUnlock()
	for _, filter := range fw.filters {
		if !filter(path) {
			return false
		}
	}
	return true
}

func (fw *FileWatcher) handleFsnotifyEvent(event fsnotify.Event) {
	if !fw.accepts(event.Name) {
		return
	}
	fw.debouncer.Add(toChangeEvent(event))
}

func toChangeEvent(event fsnotify.Event) ChangeEvent {
	ce := ChangeEvent{Path: event.Name}
	if info, err := os.Stat(event.Name); err == nil {
		ce.ModTime = info.ModTime()
		ce.Size = info.Size()
	}

	switch {
	case event.Has(fsnotify.Create):
		ce.Type = EventTypeCreated
	case event.Has(fsnotify.Write):
		ce.Type = EventTypeModified
	case event.Has(fsnotify.Remove):
		ce.Type = EventTypeDeleted
	case event.Has(fsnotify.Rename):
		ce.Type = EventTypeRenamed
	default:
		ce.Type = EventTypeModified
	}
	return ce
}

func (fw *FileWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case events := <-fw.debouncer.Output():
			fw.mutex.RLock()
			handlers := fw.handlers
			fw.mutex.RUnlock()

			for _, handler := range handlers {
				if err := handler(events); err != nil {
					fw.logger.Error(ctx, err, "File watcher handler error", "events", len(events))
				}
			}
		}
	}
}

// MatchBase accepts paths whose base name is name.
func MatchBase(name string) FileFilter {
	return func(path string) bool {
		return filepath.Base(path) == name
	}
}

// NoEditorTempFilter rejects swap and backup files editors write next to
// the real file.
func NoEditorTempFilter(path string) bool {
	base := filepath.Base(path)
	switch {
	case strings.HasSuffix(base, "~"),
		strings.HasSuffix(base, ".swp"),
		strings.HasSuffix(base, ".swx"),
		strings.HasPrefix(base, ".#"):
		return false
	}
	return true
}
