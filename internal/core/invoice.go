package core

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used on the invoice and in the
// persisted draft.
const DateLayout = "2006-01-02"

// DefaultTerms is the terms text a fresh invoice starts with.
const DefaultTerms = "Payment is due within 30 days of invoice date."

// LineItem is one billable row. Amount is derived from quantity and rate
// and is never edited directly.
type LineItem struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// Invoice is the single aggregate the whole app revolves around. It is
// treated as an immutable value: every operation returns a new invoice with
// totals recomputed, so subtotal, taxAmount and total are always consistent
// with the items and tax rate.
type Invoice struct {
	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`
	Logo            string `json:"logo,omitempty"`

	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress"`
	ClientEmail   string `json:"clientEmail,omitempty"`

	InvoiceNumber string `json:"invoiceNumber"`
	InvoiceDate   string `json:"invoiceDate"`
	DueDate       string `json:"dueDate"`
	Currency      string `json:"currency"`
	Theme         string `json:"theme"`

	Items []LineItem `json:"items"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Total     decimal.Decimal `json:"total"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`
}

// Change is a sparse set of top-level field assignments. Nil fields are
// left untouched; a non-nil Items replaces the item collection wholesale.
type Change struct {
	BusinessName    *string
	BusinessAddress *string
	BusinessPhone   *string
	BusinessEmail   *string
	Logo            *string
	ClientName      *string
	ClientAddress   *string
	ClientEmail     *string
	InvoiceNumber   *string
	InvoiceDate     *string
	DueDate         *string
	Currency        *string
	Theme           *string
	TaxRate         *decimal.Decimal
	Notes           *string
	Terms           *string
	Items           *[]LineItem
}

// ItemChange is a sparse change for a single line item. Amount cannot be
// set here; it is always recomputed from quantity and rate.
type ItemChange struct {
	Description *string
	Quantity    *decimal.Decimal
	Rate        *decimal.Decimal
}

// NewInvoice returns a freshly defaulted invoice: number derived from the
// current time, invoice date today, due date in 30 days, default currency
// and theme, no items, default terms.
func NewInvoice() Invoice {
	return NewInvoiceAt(time.Now())
}

// NewInvoiceAt is NewInvoice with an explicit clock, for tests.
func NewInvoiceAt(now time.Time) Invoice {
	return Invoice{
		InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
		InvoiceDate:   now.Format(DateLayout),
		DueDate:       now.AddDate(0, 0, 30).Format(DateLayout),
		Currency:      DefaultCurrencyCode,
		Theme:         DefaultThemeID,
		Items:         []LineItem{},
		Terms:         DefaultTerms,
	}
}

// NewItemID generates an id guaranteed unique within the invoice lifetime.
func NewItemID() string {
	return ulid.Make().String()
}

// ApplyEdit merges a sparse change into a copy of the invoice and
// recomputes the totals unconditionally. The receiver is never mutated,
// and applying the same change twice yields the same result as once.
func (inv Invoice) ApplyEdit(c Change) Invoice {
	out := inv.clone()
	if c.BusinessName != nil {
		out.BusinessName = *c.BusinessName
	}
	if c.BusinessAddress != nil {
		out.BusinessAddress = *c.BusinessAddress
	}
	if c.BusinessPhone != nil {
		out.BusinessPhone = *c.BusinessPhone
	}
	if c.BusinessEmail != nil {
		out.BusinessEmail = *c.BusinessEmail
	}
	if c.Logo != nil {
		out.Logo = *c.Logo
	}
	if c.ClientName != nil {
		out.ClientName = *c.ClientName
	}
	if c.ClientAddress != nil {
		out.ClientAddress = *c.ClientAddress
	}
	if c.ClientEmail != nil {
		out.ClientEmail = *c.ClientEmail
	}
	if c.InvoiceNumber != nil {
		out.InvoiceNumber = *c.InvoiceNumber
	}
	if c.InvoiceDate != nil {
		out.InvoiceDate = *c.InvoiceDate
	}
	if c.DueDate != nil {
		out.DueDate = *c.DueDate
	}
	if c.Currency != nil {
		out.Currency = *c.Currency
	}
	if c.Theme != nil {
		out.Theme = *c.Theme
	}
	if c.TaxRate != nil {
		out.TaxRate = *c.TaxRate
	}
	if c.Notes != nil {
		out.Notes = *c.Notes
	}
	if c.Terms != nil {
		out.Terms = *c.Terms
	}
	if c.Items != nil {
		out.Items = append([]LineItem(nil), (*c.Items)...)
	}
	return out.recalculated()
}

// ApplyItemEdit merges a sparse change into the item with the given id,
// recomputes that item's amount, and recomputes the totals. An unknown id
// leaves the invoice unchanged; item order is always preserved.
func (inv Invoice) ApplyItemEdit(itemID string, c ItemChange) Invoice {
	out := inv.clone()
	found := false
	for i := range out.Items {
		if out.Items[i].ID != itemID {
			continue
		}
		if c.Description != nil {
			out.Items[i].Description = *c.Description
		}
		if c.Quantity != nil {
			out.Items[i].Quantity = *c.Quantity
		}
		if c.Rate != nil {
			out.Items[i].Rate = *c.Rate
		}
		out.Items[i].Amount = out.Items[i].Quantity.Mul(out.Items[i].Rate)
		found = true
		break
	}
	if !found {
		return inv
	}
	return out.recalculated()
}

// AddItem appends a new blank line item (quantity 1, rate 0) and
// recomputes the totals.
func (inv Invoice) AddItem() Invoice {
	out := inv.clone()
	out.Items = append(out.Items, LineItem{
		ID:       NewItemID(),
		Quantity: decimal.NewFromInt(1),
	})
	return out.recalculated()
}

// RemoveItem drops the item with the given id, preserving the order of the
// survivors. An unknown id is a no-op.
func (inv Invoice) RemoveItem(itemID string) Invoice {
	out := inv.clone()
	items := out.Items[:0:0]
	for _, it := range out.Items {
		if it.ID != itemID {
			items = append(items, it)
		}
	}
	out.Items = items
	return out.recalculated()
}

// Item returns the line item with the given id, if present.
func (inv Invoice) Item(itemID string) (LineItem, bool) {
	for _, it := range inv.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return LineItem{}, false
}

func (inv Invoice) clone() Invoice {
	out := inv
	out.Items = append([]LineItem(nil), inv.Items...)
	return out
}

// recalculated derives subtotal, tax amount and total from the items and
// the tax rate. It runs after every mutation, whether or not the edit
// touched money fields; that removes a whole class of stale-total bugs.
func (inv Invoice) recalculated() Invoice {
	subtotal := decimal.Zero
	for _, it := range inv.Items {
		subtotal = subtotal.Add(it.Amount)
	}
	inv.Subtotal = subtotal
	inv.TaxAmount = subtotal.Mul(inv.TaxRate).Div(decimal.NewFromInt(100))
	inv.Total = subtotal.Add(inv.TaxAmount)
	return inv
}
