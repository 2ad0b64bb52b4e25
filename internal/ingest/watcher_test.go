package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}

func TestStartWatcherInitialScan(t *testing.T) {
	dir := t.TempDir()
	want := writeFile(t, dir, "existing.pdf", "body")
	writeFile(t, dir, "ignored.txt", "body")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{dir},
		InitialScan: true,
	})
	require.NoError(t, err)

	select {
	case got := <-events:
		assert.Equal(t, want, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no initial scan event")
	}

	cancel()
	select {
	case _, open := <-events:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("event channel did not close")
	}
}

// A burst of creates with a tiny debounce exercises the timer-driven flush
// concurrently with incoming events; every file must still come through.
func TestStartWatcherDebouncedBurst(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	})
	require.NoError(t, err)

	const n = 100
	done := make(chan map[string]struct{}, 1)
	go func() {
		seen := make(map[string]struct{})
		for p := range events {
			seen[p] = struct{}{}
			if len(seen) == n {
				break
			}
		}
		done <- seen
	}()

	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("doc-%03d.pdf", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
	}

	select {
	case seen := <-done:
		assert.Len(t, seen, n)
	case <-time.After(10 * time.Second):
		t.Fatal("burst events not all delivered")
	}
}

func TestStartWatcherPicksUpNewPDF(t *testing.T) {
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	require.NoError(t, err)

	want := writeFile(t, dir, "fresh.pdf", "body")

	select {
	case got := <-events:
		assert.Equal(t, want, got)
	case <-time.After(3 * time.Second):
		t.Fatal("no create event")
	}
}
