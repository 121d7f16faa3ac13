package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPendingDebounce(t *testing.T) {
	var p pending
	now := time.Now()
	if p.due(now) {
		t.Error("Expected nothing due before any change")
	}
	p.mark(now)
	if p.due(now.Add(debounce / 2)) {
		t.Error("Expected change to wait for the debounce period")
	}
	if !p.due(now.Add(debounce)) {
		t.Error("Expected change to be due after the debounce period")
	}
	if p.due(now.Add(2 * debounce)) {
		t.Error("Expected a due change to fire only once")
	}
}

func TestWatchReportsChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "steam_api.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	changed := make(chan string, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(p string) {
			select {
			case changed <- p:
			default:
			}
			cancel()
		})
	}()

	// unrelated files in the same directory are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"structs": []}`), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-changed:
		if filepath.Base(got) != "steam_api.json" {
			t.Errorf("Expected steam_api.json, got %s", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Expected a change notification")
	}
	if err := <-done; err != nil {
		t.Errorf("Expected Watch to stop cleanly, got %v", err)
	}
}
