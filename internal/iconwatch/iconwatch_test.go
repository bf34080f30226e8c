//go:build !tinygo

package iconwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: "/x/hotdog.bmp", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/x/HOTDOG.BMP", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/x/pizza.bmp", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/x/pizza.bmp", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/x/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.ev); got != tt.want {
			t.Fatalf("relevant(%v)=%v want %v", tt.ev, got, tt.want)
		}
	}
}

func TestWatcherSignalsOnBitmapWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hotdog.bmp"), []byte("BM"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	select {
	case <-w.Reload():
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload signal after writing a bitmap")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Fatalf("New on a missing directory succeeded")
	}
}
