package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcscheme/internal/adapters/watcher"
	"go.trai.ch/xcscheme/internal/core/domain"
	"go.trai.ch/xcscheme/internal/core/ports"
	"go.trai.ch/xcscheme/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func collect(t *testing.T, w *watcher.Watcher, want string) <-chan ports.WatchEvent {
	t.Helper()

	found := make(chan ports.WatchEvent, 1)
	go func() {
		for event := range w.Events() {
			if event.Path == want {
				found <- event
				return
			}
		}
	}()
	return found
}

func TestWatcher_ReportsSchemeWrites(t *testing.T) {
	root := t.TempDir()
	schemes := filepath.Join(root, "App.xcodeproj", "xcshareddata", "xcschemes")
	require.NoError(t, os.MkdirAll(schemes, 0o750))

	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	path := filepath.Join(schemes, "App.xcscheme")
	found := collect(t, w, path)

	require.NoError(t, os.WriteFile(path, []byte("<Scheme/>\n"), 0o600))

	select {
	case event := <-found:
		assert.Contains(t, []ports.WatchOp{ports.OpCreate, ports.OpWrite}, event.Operation)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for scheme write")
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()

	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx, root))
	defer func() { _ = w.Stop() }()

	dir := filepath.Join(root, "xcschemes")
	path := filepath.Join(dir, "App.xcscheme")
	found := collect(t, w, path)

	require.NoError(t, os.Mkdir(dir, 0o750))

	// The subdirectory watch is added asynchronously; keep writing until it is seen.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-found:
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("<Scheme/>\n"), 0o600))
		case <-deadline:
			t.Fatal("no event for file in new directory")
		}
	}
}

func TestWatcher_StartMissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	err := w.Start(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.ErrorContains(t, err, domain.ErrWatchFailed.Error())
	require.NoError(t, w.Stop())
}

func TestWatcher_StopIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(mocks.NewMockLogger(ctrl))

	require.NoError(t, w.Stop())
	require.NoError(t, w.Start(context.Background(), t.TempDir()))
	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
}
