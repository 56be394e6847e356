package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcscheme/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/work/App.xcodeproj/xcshareddata/xcschemes/App.xcscheme")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/work/App.xcodeproj/xcshareddata/xcschemes/App.xcscheme"}, calls[0])
	})
}

func TestDebouncer_Add_CoalescesAndSorts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/s/B.xcscheme")
		d.Add("/s/A.xcscheme")
		d.Add("/s/B.xcscheme")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/s/A.xcscheme", "/s/B.xcscheme"}, calls[0])
	})
}

func TestDebouncer_Add_ResetsWindow(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var count int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			count++
		})

		d.Add("/s/A.xcscheme")
		time.Sleep(60 * time.Millisecond)
		d.Add("/s/A.xcscheme")
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, count)

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 1, count)
	})
}

func TestDebouncer_SeparateBatches(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls [][]string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			calls = append(calls, paths)
		})

		d.Add("/s/A.xcscheme")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Add("/s/B.xcscheme")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		require.Len(t, calls, 2)
		assert.Equal(t, []string{"/s/A.xcscheme"}, calls[0])
		assert.Equal(t, []string{"/s/B.xcscheme"}, calls[1])
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var calls [][]string

		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, paths)
		})

		d.Add("/s/A.xcscheme")
		d.Flush()

		mu.Lock()
		require.Len(t, calls, 1)
		assert.Equal(t, []string{"/s/A.xcscheme"}, calls[0])
		mu.Unlock()

		// Nothing pending, nothing fires.
		d.Flush()
		time.Sleep(2 * time.Hour)
		synctest.Wait()

		mu.Lock()
		assert.Len(t, calls, 1)
		mu.Unlock()
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)

		d.Add("/s/A.xcscheme")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		d.Add("/s/B.xcscheme")
		d.Flush()
	})
}
