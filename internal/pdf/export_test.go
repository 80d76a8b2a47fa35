package pdf

import (
	"bytes"
	"testing"

	"invoiceflash/internal/core"

	"github.com/shopspring/decimal"
)

func renderSample(t *testing.T) []byte {
	t.Helper()
	inv := core.NewInvoice()
	inv = inv.AddItem()
	q := decimal.RequireFromString("2")
	r := decimal.RequireFromString("50")
	inv = inv.ApplyItemEdit(inv.Items[0].ID, core.ItemChange{Quantity: &q, Rate: &r})
	name := "Acme Corp"
	client := "Wile E. Coyote"
	rate := decimal.RequireFromString("10")
	inv = inv.ApplyEdit(core.Change{BusinessName: &name, ClientName: &client, TaxRate: &rate})

	data, err := Render(core.Project(inv))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return data
}

func TestRenderProducesPDF(t *testing.T) {
	data := renderSample(t)
	if len(data) == 0 {
		t.Fatalf("empty output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %.8s", data)
	}
}

func TestRenderManyItemsPaginates(t *testing.T) {
	inv := core.NewInvoice()
	for i := 0; i < 60; i++ {
		inv = inv.AddItem()
	}
	data, err := Render(core.Project(inv))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	single := renderSample(t)
	pages := func(b []byte) int { return bytes.Count(b, []byte("/Type /Page")) }
	if pages(data) <= pages(single) {
		t.Fatalf("expected multi-page output for 60 items: %d vs %d page objects", pages(data), pages(single))
	}
}

func TestFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"INV-1730000000000", "INV-1730000000000.pdf"},
		{"", "invoice.pdf"},
		{"   ", "invoice.pdf"},
	}
	for _, tc := range cases {
		if got := Filename(tc.in); got != tc.want {
			t.Fatalf("Filename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
