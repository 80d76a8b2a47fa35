package core

import "github.com/shopspring/decimal"

// SymbolPosition says where a currency symbol sits relative to the amount.
type SymbolPosition string

const (
	SymbolBefore SymbolPosition = "before"
	SymbolAfter  SymbolPosition = "after"
)

// Currency is an immutable catalog entry. Currencies are display-format
// only; there is no conversion between them.
type Currency struct {
	Code     string
	Name     string
	Symbol   string
	Position SymbolPosition
}

// Currencies is the static currency catalog. The first entry doubles as the
// fallback for unknown codes.
var Currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Symbol: "$", Position: SymbolBefore},
	{Code: "EUR", Name: "Euro", Symbol: "€", Position: SymbolBefore},
	{Code: "GBP", Name: "British Pound", Symbol: "£", Position: SymbolBefore},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Position: SymbolBefore},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$", Position: SymbolBefore},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$", Position: SymbolBefore},
	{Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", Position: SymbolBefore},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Position: SymbolBefore},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹", Position: SymbolBefore},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Position: SymbolBefore},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "$", Position: SymbolBefore},
	{Code: "SEK", Name: "Swedish Krona", Symbol: "kr", Position: SymbolAfter},
	{Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", Position: SymbolAfter},
	{Code: "DKK", Name: "Danish Krone", Symbol: "kr", Position: SymbolAfter},
	{Code: "PLN", Name: "Polish Złoty", Symbol: "zł", Position: SymbolAfter},
}

// DefaultCurrencyCode is the code used by freshly created invoices.
var DefaultCurrencyCode = Currencies[0].Code

// LookupCurrency resolves a currency code. It never fails: unknown codes
// fall back to the first catalog entry. Callers rely on this totality.
func LookupCurrency(code string) Currency {
	for _, c := range Currencies {
		if c.Code == code {
			return c
		}
	}
	return Currencies[0]
}

// FormatMoney renders an amount with exactly two decimal places and the
// resolved currency's symbol: before the amount with no separator, or after
// it with a single space.
func FormatMoney(amount decimal.Decimal, code string) string {
	c := LookupCurrency(code)
	s := amount.StringFixed(2)
	if c.Position == SymbolAfter {
		return s + " " + c.Symbol
	}
	return c.Symbol + s
}
