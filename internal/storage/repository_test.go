package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"), "invoice-draft")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	_, found, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if found {
		t.Fatalf("empty store reported a draft")
	}

	body := []byte(`{"invoiceNumber":"INV-42","items":[]}`)
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

	// Second save upserts the same key.
	if err := store.Save(ctx, []byte(`{"invoiceNumber":"INV-43"}`)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, _, _ = store.Load(ctx)
	if string(got) != `{"invoiceNumber":"INV-43"}` {
		t.Fatalf("expected overwritten draft, got %s", got)
	}
}
