package core

import (
	"strings"
	"time"
)

// ItemRow is the render-ready form of one line item. Quantity is shown as
// entered; rate and amount are currency-formatted.
type ItemRow struct {
	ID          string
	Description string
	Quantity    string
	Rate        string
	Amount      string
}

// InvoiceView is the presentation-ready projection of an invoice. It is
// derived, never the source of truth: the renderer consumes it and the
// aggregate never sees it.
type InvoiceView struct {
	BusinessName         string
	BusinessAddressLines []string
	BusinessPhone        string
	BusinessEmail        string
	Logo                 string
	HasLogo              bool

	ClientName         string
	ClientAddressLines []string
	ClientEmail        string

	InvoiceNumber string
	InvoiceDate   string
	DueDate       string

	CurrencyCode string
	CurrencyName string

	Rows     []ItemRow
	Subtotal string

	ShowTax   bool
	TaxLabel  string
	TaxAmount string
	Total     string

	ShowNotes bool
	Notes     string
	ShowTerms bool
	Terms     string

	ThemeID   string
	ThemeName string
	Styles    StyleRoles
}

// Project maps an invoice to its view model. It is pure: same invoice in,
// same view out, no clock reads beyond the date strings already stored on
// the invoice. Unknown currency codes and theme ids resolve through the
// catalog fallbacks.
func Project(inv Invoice) InvoiceView {
	currency := LookupCurrency(inv.Currency)
	theme := LookupTheme(inv.Theme)

	view := InvoiceView{
		BusinessName:         inv.BusinessName,
		BusinessAddressLines: splitLines(inv.BusinessAddress),
		BusinessPhone:        inv.BusinessPhone,
		BusinessEmail:        inv.BusinessEmail,
		Logo:                 inv.Logo,
		HasLogo:              inv.Logo != "",

		ClientName:         inv.ClientName,
		ClientAddressLines: splitLines(inv.ClientAddress),
		ClientEmail:        inv.ClientEmail,

		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   formatDisplayDate(inv.InvoiceDate),
		DueDate:       formatDisplayDate(inv.DueDate),

		CurrencyCode: currency.Code,
		CurrencyName: currency.Name,

		Subtotal: FormatMoney(inv.Subtotal, inv.Currency),
		Total:    FormatMoney(inv.Total, inv.Currency),

		ShowNotes: strings.TrimSpace(inv.Notes) != "",
		Notes:     inv.Notes,
		ShowTerms: strings.TrimSpace(inv.Terms) != "",
		Terms:     inv.Terms,

		ThemeID:   theme.ID,
		ThemeName: theme.Name,
		Styles:    theme.Styles,
	}

	for _, it := range inv.Items {
		view.Rows = append(view.Rows, ItemRow{
			ID:          it.ID,
			Description: it.Description,
			Quantity:    it.Quantity.String(),
			Rate:        FormatMoney(it.Rate, inv.Currency),
			Amount:      FormatMoney(it.Amount, inv.Currency),
		})
	}

	if inv.TaxRate.IsPositive() {
		view.ShowTax = true
		view.TaxLabel = "Tax (" + inv.TaxRate.String() + "%)"
		view.TaxAmount = FormatMoney(inv.TaxAmount, inv.Currency)
	}

	return view
}

// formatDisplayDate renders an ISO calendar date for humans. Anything that
// does not parse passes through untouched.
func formatDisplayDate(s string) string {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
