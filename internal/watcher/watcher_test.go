package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayura-ui/mayura/internal/testutils"
)

func TestEventTypeString(t *testing.T) {
	testCases := []struct {
		eventType EventType
		expected  string
	}{
		{EventTypeCreated, "created"},
		{EventTypeModified, "modified"},
		{EventTypeDeleted, "deleted"},
		{EventTypeRenamed, "renamed"},
		{EventType(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.eventType.String())
		})
	}
}

func TestNewFileWatcher(t *testing.T) {
	watcher, err := NewFileWatcher(100*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.NotNil(t, watcher.watcher)
	assert.NotNil(t, watcher.debouncer)
	assert.Empty(t, watcher.filters)
	assert.Empty(t, watcher.handlers)
}

func TestStopIsIdempotent(t *testing.T) {
	watcher, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)

	assert.NoError(t, watcher.Stop())
	assert.NoError(t, watcher.Stop())
}

func TestAddPathMissing(t *testing.T) {
	watcher, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	assert.Error(t, watcher.AddPath(filepath.Join(t.TempDir(), "nope")))
}

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter FileFilter
		path   string
		want   bool
	}{
		{"base match", MatchBase("demo.yml"), "/tmp/x/demo.yml", true},
		{"base mismatch", MatchBase("demo.yml"), "/tmp/x/other.yml", false},
		{"swap file", NoEditorTempFilter, "a/.demo.yml.swp", false},
		{"backup", NoEditorTempFilter, "a/demo.yml~", false},
		{"emacs lock", NoEditorTempFilter, "a/.#demo.yml", false},
		{"real file", NoEditorTempFilter, "a/demo.yml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter(tt.path))
		})
	}
}

func TestDebouncer(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	d.Add(ChangeEvent{Type: EventTypeCreated, Path: "b.yml"})
	d.Add(ChangeEvent{Type: EventTypeModified, Path: "a.yml"})
	d.Add(ChangeEvent{Type: EventTypeModified, Path: "b.yml"})

	select {
	case batch := <-d.Output():
		require.Len(t, batch, 2)
		assert.Equal(t, "a.yml", batch[0].Path)
		assert.Equal(t, "b.yml", batch[1].Path)
		assert.Equal(t, EventTypeModified, batch[1].Type, "last event per path wins")
	case <-time.After(time.Second):
		t.Fatal("debouncer never flushed")
	}

	select {
	case batch := <-d.Output():
		t.Fatalf("unexpected second batch: %v", batch)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	d.Add(ChangeEvent{Path: "a.yml"})
	d.Stop()

	select {
	case <-d.Output():
		t.Fatal("stopped debouncer flushed")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestFileWatcherDeliversFilteredBatch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "demo.yml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0o600))

	watcher, err := NewFileWatcher(30*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	watcher.AddFilter(MatchBase("demo.yml"))

	var mu sync.Mutex
	var got []ChangeEvent
	watcher.AddHandler(func(events []ChangeEvent) error {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, events...)
		return nil
	})

	require.NoError(t, watcher.AddPath(dir))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("x"), 0o600))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte("a: 2\n"), 0o600))
	}

	require.True(t, testutils.Eventually(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0
	}))

	mu.Lock()
	defer mu.Unlock()
	for _, ev := range got {
		assert.Equal(t, target, ev.Path)
	}
}

func TestHandlerErrorsDoNotStopDelivery(t *testing.T) {
	dir := t.TempDir()
	watcher, err := NewFileWatcher(10*time.Millisecond, nil)
	require.NoError(t, err)
	defer watcher.Stop()

	var mu sync.Mutex
	calls := 0
	watcher.AddHandler(func([]ChangeEvent) error { return errors.New("handler failed") })
	watcher.AddHandler(func([]ChangeEvent) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	})

	require.NoError(t, watcher.AddPath(dir))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), []byte("x"), 0o600))

	assert.True(t, testutils.Eventually(t, 2*time.Second, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return calls > 0
	}))
}
