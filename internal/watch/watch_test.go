package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func startWatcher(t *testing.T, w *Watcher) (<-chan []string, context.CancelFunc, <-chan error) {
	t.Helper()
	changes := make(chan []string, 16)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) error {
			changes <- changed
			return nil
		})
	}()
	return changes, cancel, done
}

func TestRunDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	slides := filepath.Join(dir, "slides.md")
	require.NoError(t, os.WriteFile(slides, []byte("p-4"), 0o644))
	out := filepath.Join(dir, "dist.css")

	w, err := New([]string{dir}, 50*time.Millisecond, out)
	require.NoError(t, err)
	changes, cancel, done := startWatcher(t, w)

	for i := range 5 {
		require.NoError(t, os.WriteFile(slides, []byte("p-"+string(rune('0'+i))), 0o644))
	}
	require.NoError(t, os.WriteFile(out, []byte("ignored"), 0o644))

	select {
	case got := <-changes:
		assert.Equal(t, []string{slides}, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change delivered")
	}

	select {
	case got := <-changes:
		t.Fatalf("burst delivered twice: %v", got)
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestRunWatchesNewDirectories(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{dir}, 20*time.Millisecond)
	require.NoError(t, err)
	changes, cancel, done := startWatcher(t, w)
	defer func() {
		cancel()
		<-done
	}()

	sub := filepath.Join(dir, "components")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// Wait for the directory creation to settle before writing into it.
	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("directory creation not delivered")
	}

	card := filepath.Join(sub, "Card.vue")
	require.NoError(t, os.WriteFile(card, []byte("<div class=\"p-4\"/>"), 0o644))
	require.Eventually(t, func() bool {
		select {
		case got := <-changes:
			return assert.ObjectsAreEqual([]string{card}, got)
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}

func TestNewSkipsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	w, err := New([]string{filepath.Join(dir, "missing"), dir}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, []string{dir}, w.WatchList())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx, func(context.Context, []string) error { return nil }))
}
