// Package core holds the invoice aggregate, the static currency and theme
// catalogs, and the projection that turns an invoice into a render-ready view.
//
// This file contains parsing for monetary and quantity input coming from
// form fields. Amounts are handled as decimals throughout; floats never
// enter the totals math.
package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

func init() {
	// Drafts persist numbers as plain JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseAmount converts a decimal string from a form field into a decimal.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and
// trims surrounding whitespace. Negative values are rejected; zero is fine
// (a line item rate starts at 0).
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("0")     -> 0, nil
//	ParseAmount("-1")    -> error
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
