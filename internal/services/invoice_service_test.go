package services

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"invoiceflash/internal/core"
	"invoiceflash/internal/draft/file"

	"github.com/shopspring/decimal"
)

func newTestService(t *testing.T) (*InvoiceService, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.json")
	store, err := file.New(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewInvoiceService(store, nil), path
}

func TestEditPersistsDraft(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	name := "Acme Corp"
	svc.UpdateInvoice(ctx, core.Change{BusinessName: &name})

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("draft not written: %v", err)
	}
	var persisted core.Invoice
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("persisted draft does not parse: %v", err)
	}
	if persisted.BusinessName != "Acme Corp" {
		t.Fatalf("edit not persisted: %q", persisted.BusinessName)
	}
}

func TestItemOperationsKeepTotals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	inv := svc.AddItem(ctx)
	q := decimal.RequireFromString("2")
	r := decimal.RequireFromString("50")
	inv = svc.UpdateItem(ctx, inv.Items[0].ID, core.ItemChange{Quantity: &q, Rate: &r})
	rate := decimal.RequireFromString("10")
	inv = svc.UpdateInvoice(ctx, core.Change{TaxRate: &rate})

	if got := inv.Total.StringFixed(2); got != "110.00" {
		t.Fatalf("expected total 110.00, got %s", got)
	}

	inv = svc.RemoveItem(ctx, inv.Items[0].ID)
	if len(inv.Items) != 0 || !inv.Total.IsZero() {
		t.Fatalf("expected empty invoice after removal, got %d items, total %s", len(inv.Items), inv.Total)
	}
}

func TestLoadDraftRestoresState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	store, err := file.New(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	first := NewInvoiceService(store, nil)
	name := "Acme Corp"
	first.UpdateInvoice(ctx, core.Change{BusinessName: &name})
	first.AddItem(ctx)

	second := NewInvoiceService(store, nil)
	second.LoadDraft(ctx)
	got := second.Snapshot()
	if got.BusinessName != "Acme Corp" || len(got.Items) != 1 {
		t.Fatalf("draft not restored: name=%q items=%d", got.BusinessName, len(got.Items))
	}
}

func TestLoadDraftCorruptedFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "draft.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt draft: %v", err)
	}
	store, err := file.New(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	svc := NewInvoiceService(store, nil)
	svc.LoadDraft(context.Background()) // must not panic or error out

	inv := svc.Snapshot()
	if inv.InvoiceNumber == "" || inv.InvoiceNumber[:4] != "INV-" {
		t.Fatalf("fallback invoice missing generated number: %q", inv.InvoiceNumber)
	}
	if inv.Terms != core.DefaultTerms {
		t.Fatalf("fallback invoice missing default terms: %q", inv.Terms)
	}
	if len(inv.Items) != 0 {
		t.Fatalf("fallback invoice should be empty")
	}
}

func TestResetReplacesDraft(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	name := "Old Business"
	svc.UpdateInvoice(ctx, core.Change{BusinessName: &name})
	svc.AddItem(ctx)

	fresh := svc.Reset(ctx)
	if fresh.BusinessName != "" || len(fresh.Items) != 0 {
		t.Fatalf("reset did not produce a fresh invoice: %+v", fresh)
	}
	if fresh.Terms != core.DefaultTerms {
		t.Fatalf("fresh invoice missing default terms")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	svc.AddItem(ctx)

	snap := svc.Snapshot()
	snap.Items[0].Description = "tampered"

	if svc.Snapshot().Items[0].Description == "tampered" {
		t.Fatalf("snapshot aliases the live invoice")
	}
}
