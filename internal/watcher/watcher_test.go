package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// startWatcher runs a watcher on dir and returns the channel of change batches
// and a stop function waiting for Run to return
func startWatcher(t *testing.T, dir string, patterns []string) (<-chan []string, func() error) {
	t.Helper()
	changes := make(chan []string, 10)
	w, err := New([]string{dir}, patterns, 50*time.Millisecond, func(_ context.Context, changed []string) {
		changes <- changed
	}, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-w.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("watcher stopped early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("watcher not ready")
	}

	return changes, func() error {
		cancel()
		return <-done
	}
}

func TestWatcher_ReportsMatchingChanges(t *testing.T) {
	dir := t.TempDir()
	changes, stop := startWatcher(t, dir, []string{"*.csv"})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.csv"), []byte("in-url\n"), 0644))
	}

	select {
	case changed := <-changes:
		assert.Equal(t, []string{filepath.Join(dir, "a.csv")}, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	assert.NoError(t, stop())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	changes, stop := startWatcher(t, dir, []string{"*.csv"})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case changed := <-changes:
		t.Fatalf("unexpected change: %v", changed)
	case <-time.After(300 * time.Millisecond):
	}

	assert.NoError(t, stop())
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New([]string{filepath.Join(t.TempDir(), "missing")}, nil, time.Millisecond, func(context.Context, []string) {}, zerolog.Nop())
	require.NoError(t, err)
	assert.Error(t, w.Run(context.Background()))
}

func TestNew_Errors(t *testing.T) {
	noop := func(context.Context, []string) {}

	_, err := New(nil, nil, 0, noop, zerolog.Nop())
	assert.Error(t, err)

	_, err = New([]string{"."}, nil, 0, nil, zerolog.Nop())
	assert.Error(t, err)

	_, err = New([]string{"."}, []string{"[x"}, 0, noop, zerolog.Nop())
	assert.Error(t, err)
}
