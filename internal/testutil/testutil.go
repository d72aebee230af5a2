// Package testutil holds in-memory fakes shared by package tests.
package testutil

import "github.com/shopspring/decimal"

// MustDecimal parses s or panics.
func MustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
