package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLookupCurrencyFallback(t *testing.T) {
	if got := LookupCurrency("SEK"); got.Code != "SEK" || got.Position != SymbolAfter {
		t.Fatalf("unexpected SEK entry: %+v", got)
	}
	// Unknown codes never fail; they resolve to the first catalog entry.
	if got := LookupCurrency("XXX"); got.Code != Currencies[0].Code {
		t.Fatalf("expected fallback to %s, got %s", Currencies[0].Code, got.Code)
	}
	if got := LookupCurrency(""); got.Code != Currencies[0].Code {
		t.Fatalf("expected fallback for empty code, got %s", got.Code)
	}
}

func TestFormatMoney(t *testing.T) {
	amount := decimal.RequireFromString("1234.5")
	cases := []struct {
		code string
		want string
	}{
		{"USD", "$1234.50"},
		{"SEK", "1234.50 kr"},
		{"EUR", "€1234.50"},
		{"PLN", "1234.50 zł"},
		{"XXX", "$1234.50"}, // unknown code uses the fallback currency's rule
	}
	for _, tc := range cases {
		if got := FormatMoney(amount, tc.code); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.code, tc.want, got)
		}
	}
	if got := FormatMoney(decimal.Zero, "USD"); got != "$0.00" {
		t.Fatalf("expected $0.00, got %q", got)
	}
}
