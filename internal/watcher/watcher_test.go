package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var calls atomic.Int32
	w := New(path, func() error {
		calls.Add(1)
		return nil
	}, WithDebounce(100*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- w.Watch(ctx) }()

	// Let the watch register before writing
	time.Sleep(100 * time.Millisecond)

	for _, body := range []string{"b", "c", "d"} {
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	assert.ErrorIs(t, <-errc, context.Canceled)

	total, failed := w.Builds()
	assert.Equal(t, int64(1), total)
	assert.Zero(t, failed)
}

func TestWatchKeepsGoingAfterFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w := New(path, func() error { return errors.New("bad spec") }, WithDebounce(50*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Watch(ctx)

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	assert.Eventually(t, func() bool { _, f := w.Builds(); return f == 1 }, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("c"), 0o644))
	assert.Eventually(t, func() bool { _, f := w.Builds(); return f == 2 }, 2*time.Second, 20*time.Millisecond)
}

func TestWithDebounceIgnoresNonPositive(t *testing.T) {
	w := New("spec.yaml", func() error { return nil }, WithDebounce(0))
	assert.Equal(t, defaultDebounce, w.debounce)
}

func TestWatchMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "nope", "spec.yaml"), func() error { return nil })
	assert.Error(t, w.Watch(context.Background()))
}
