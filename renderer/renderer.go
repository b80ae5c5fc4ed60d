// Package renderer turns patrimoine reports into markdown documents.
// Rendering is a pure string transform; displaying (colors, pagers,
// terminals) is the caller's concern.
package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/etnz/patrimoine"
)

// pct renders an exact percent value with two decimals.
func pct(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// sourced annotates a money value with the date it was carried from.
func sourced(m patrimoine.Money, from patrimoine.Date) string {
	return m.String() + " (from " + from.String() + ")"
}
