package fixtures

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/mayura-ui/mayura/internal/logging"
	"github.com/mayura-ui/mayura/internal/watcher"
)

// DefaultDebounce is the quiet period before a changed file is reloaded.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a fixtures file when it changes. A reload that fails to
// parse or validate is logged and the previous fixtures stay current.
type Watcher struct {
	path   string
	fw     *watcher.FileWatcher
	logger logging.Logger

	mu        sync.RWMutex
	current   *Fixtures
	listeners []func(*Fixtures)
}

// NewWatcher loads path and prepares to watch it. The file must exist and be
// valid at startup.
func NewWatcher(path string, debounce time.Duration, logger logging.Logger) (*Watcher, error) {
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := watcher.NewFileWatcher(debounce, logger)
	if err != nil {
		return nil, err
	}
	fw.AddFilter(watcher.MatchBase(filepath.Base(path)))
	fw.AddFilter(watcher.NoEditorTempFilter)

	w := &Watcher{
		path:    path,
		fw:      fw,
		logger:  logger.WithComponent("fixtures").With("path", path),
		current: f,
	}
	fw.AddHandler(w.handle)

	// watch the directory so that rename-over saves are seen
	if err := fw.AddPath(filepath.Dir(path)); err != nil {
		fw.Stop()
		return nil, err
	}
	return w, nil
}

// Current returns the most recent valid fixtures.
func (w *Watcher) Current() *Fixtures {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers fn to run after every successful reload.
func (w *Watcher) OnChange(fn func(*Fixtures)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.listeners = append(w.listeners, fn)
}

// Start watches until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	return w.fw.Start(ctx)
}

// Stop releases the underlying file watch.
func (w *Watcher) Stop() error {
	return w.fw.Stop()
}

func (w *Watcher) handle(events []watcher.ChangeEvent) error {
	ctx := context.Background()
	f, err := Load(w.path)
	if err != nil {
		w.logger.Warn(ctx, err, "Fixtures reload failed, keeping previous data")
		return nil
	}

	w.mu.Lock()
	w.current = f
	listeners := slices.Clone(w.listeners)
	w.mu.Unlock()

	w.logger.Info(ctx, "Fixtures reloaded", "events", len(events))
	for _, fn := range listeners {
		fn(f)
	}
	return nil
}
