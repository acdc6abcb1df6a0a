package local

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveOpenDeleteRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	payload := []byte("fake image bytes")
	n, err := store.Save(ctx, "job-1.jpg", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != int64(len(payload)) {
		t.Fatalf("expected %d bytes written, got %d", len(payload), n)
	}

	rc, err := store.Open(ctx, "job-1.jpg")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	got, _ := io.ReadAll(rc)
	rc.Close()
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch")
	}

	if err := store.Delete(ctx, "job-1.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Open(ctx, "job-1.jpg"); err == nil {
		t.Fatalf("expected open after delete to fail")
	}
	if err := store.Delete(ctx, "job-1.jpg"); err != nil {
		t.Fatalf("expected second delete to be a no-op, got %v", err)
	}
}

func TestSaveRejectsTraversalKeys(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, key := range []string{"../escape.jpg", "a/b.jpg", "."} {
		if _, err := store.Save(context.Background(), key, bytes.NewReader(nil)); err == nil {
			t.Fatalf("expected key %q to be rejected", key)
		}
	}
}

func TestListOlderThan(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"old.jpg", "new.png"} {
		if _, err := store.Save(ctx, key, bytes.NewReader([]byte("x"))); err != nil {
			t.Fatalf("Save %s: %v", key, err)
		}
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(filepath.Join(dir, "old.jpg"), stale, stale); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	keys, err := store.ListOlderThan(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("ListOlderThan: %v", err)
	}
	if len(keys) != 1 || keys[0] != "old.jpg" {
		t.Fatalf("expected [old.jpg], got %v", keys)
	}
}
