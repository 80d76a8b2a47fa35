package file

import (
	"context"
	"path/filepath"
	"testing"
)

func TestLoadMissing(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "draft.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer store.Close()

	_, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if found {
		t.Fatalf("missing draft reported as found")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := New(filepath.Join(t.TempDir(), "nested", "draft.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	body := []byte(`{"invoiceNumber":"INV-1"}`)
	if err := store.Save(ctx, body); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, found, err := store.Load(ctx)
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if string(got) != string(body) {
		t.Fatalf("round trip mismatch: %s", got)
	}

	// Overwrite replaces wholesale.
	if err := store.Save(ctx, []byte(`{}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _, _ = store.Load(ctx)
	if string(got) != "{}" {
		t.Fatalf("expected overwritten draft, got %s", got)
	}
}
