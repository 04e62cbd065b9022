// Package money implements the currency string contract shared by the
// engine and every presentation surface: compact "$1.2M" / "$450K" style
// rendering and a forgiving parser that never fails.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders a dollar amount in the compact notation used across
// dashboards and exports: millions to one decimal place with an "M" suffix,
// thousands to whole numbers with a "K" suffix, smaller amounts as whole
// dollars.
func Format(value float64) string {
	neg := value < 0
	abs := value
	if neg {
		abs = -abs
	}

	var body string
	switch {
	case abs >= 1_000_000:
		body = decimal.NewFromFloat(abs / 1_000_000).Round(1).String() + "M"
	case abs >= 1_000:
		body = decimal.NewFromFloat(abs / 1_000).Round(0).String() + "K"
	default:
		body = decimal.NewFromFloat(abs).Round(0).String()
	}

	if neg {
		return "-$" + body
	}
	return "$" + body
}

// Parse converts a currency string back into a dollar amount. Currency
// symbols, commas, and whitespace are stripped; trailing K/M/B suffixes
// scale by thousand/million/billion. Anything unparsable yields 0 rather
// than an error, so a blank or malformed analyst entry never aborts a
// recalculation.
func Parse(s string) float64 {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	if cleaned == "" {
		return 0
	}

	neg := false
	if strings.HasPrefix(cleaned, "-") {
		neg = true
		cleaned = cleaned[1:]
	}

	multiplier := 1.0
	switch {
	case strings.HasSuffix(cleaned, "K"), strings.HasSuffix(cleaned, "k"):
		multiplier = 1_000
		cleaned = cleaned[:len(cleaned)-1]
	case strings.HasSuffix(cleaned, "M"), strings.HasSuffix(cleaned, "m"):
		multiplier = 1_000_000
		cleaned = cleaned[:len(cleaned)-1]
	case strings.HasSuffix(cleaned, "B"), strings.HasSuffix(cleaned, "b"):
		multiplier = 1_000_000_000
		cleaned = cleaned[:len(cleaned)-1]
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	if neg {
		value = -value
	}
	return value * multiplier
}
