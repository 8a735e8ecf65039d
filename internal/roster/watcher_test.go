package roster

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherEmitsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "call_log_data.csv")
	if err := os.WriteFile(path, []byte("Name,Phone\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()
	w.Start()

	if err := os.WriteFile(path, []byte("Name,Phone\nAsha,99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events:
		if filepath.Clean(ev.Path) != w.path {
			t.Errorf("event path = %q, want %q", ev.Path, w.path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "call_log_data.csv")
	if err := os.WriteFile(path, []byte("Name,Phone\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()
	w.Start()

	// A burst of writes within the debounce window collapses to one event
	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte("Name,Phone\nAsha,99\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(20 * time.Millisecond)
	}

	select {
	case <-w.Events:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for watch event")
	}

	select {
	case <-w.Events:
		t.Error("burst should collapse into a single event")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "call_log_data.csv")
	if err := os.WriteFile(path, []byte("Name,Phone\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Stop()
	w.Start()

	other := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(other, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events:
		t.Errorf("unexpected event for %q", ev.Path)
	case <-time.After(600 * time.Millisecond):
	}
}
