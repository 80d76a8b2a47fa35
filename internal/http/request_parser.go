package http

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"invoiceflash/internal/core"
)

// sanitizeInput removes control characters and trims whitespace.
// Newlines survive so multi-line address fields keep their shape.
func sanitizeInput(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// parseInvoiceChange builds a sparse edit from submitted form fields.
// Only fields present in the form are set; everything else stays nil so
// the edit leaves the rest of the invoice untouched.
func parseInvoiceChange(form url.Values) (core.Change, error) {
	var ch core.Change

	setStr := func(key string, dst **string) {
		if form.Has(key) {
			v := sanitizeInput(form.Get(key))
			*dst = &v
		}
	}

	setStr("invoiceNumber", &ch.InvoiceNumber)
	setStr("invoiceDate", &ch.InvoiceDate)
	setStr("dueDate", &ch.DueDate)
	setStr("businessName", &ch.BusinessName)
	setStr("businessAddress", &ch.BusinessAddress)
	setStr("businessPhone", &ch.BusinessPhone)
	setStr("businessEmail", &ch.BusinessEmail)
	setStr("clientName", &ch.ClientName)
	setStr("clientAddress", &ch.ClientAddress)
	setStr("clientEmail", &ch.ClientEmail)
	setStr("notes", &ch.Notes)
	setStr("terms", &ch.Terms)
	setStr("currency", &ch.Currency)
	setStr("theme", &ch.Theme)

	if form.Has("taxRate") {
		rate, err := parseFormAmount(form.Get("taxRate"))
		if err != nil {
			return core.Change{}, fmt.Errorf("tax rate: %w", err)
		}
		ch.TaxRate = &rate
	}

	return ch, nil
}

// parseItemChange builds a sparse line item edit from form fields.
func parseItemChange(form url.Values) (core.ItemChange, error) {
	var ch core.ItemChange

	if form.Has("description") {
		v := sanitizeInput(form.Get("description"))
		ch.Description = &v
	}
	if form.Has("quantity") {
		qty, err := parseFormAmount(form.Get("quantity"))
		if err != nil {
			return core.ItemChange{}, fmt.Errorf("quantity: %w", err)
		}
		ch.Quantity = &qty
	}
	if form.Has("rate") {
		rate, err := parseFormAmount(form.Get("rate"))
		if err != nil {
			return core.ItemChange{}, fmt.Errorf("rate: %w", err)
		}
		ch.Rate = &rate
	}

	return ch, nil
}

// parseFormAmount treats a cleared numeric input as zero rather than an error.
func parseFormAmount(raw string) (decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.Zero, nil
	}
	return core.ParseAmount(raw)
}
