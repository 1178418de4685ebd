package parser

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// datetimeLayouts are tried in order. Venmo writes the first; the rest cover
// older exports.
var datetimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

func parseDatetime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrMissingField
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadDate
}

// parseAmount turns a statement amount like "- $1,234.50" into a signed
// decimal. The sign is whatever appears before the first digit; currency
// symbol, spaces, explicit signs and thousands separators are stripped before
// the magnitude is parsed.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, ErrMissingField
	}

	neg := false
	for _, r := range s {
		if r == '-' {
			neg = true
			break
		}
		if r >= '0' && r <= '9' {
			break
		}
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '+', '-', '$', ',', ' ', '\t', ' ':
			return -1
		}
		return r
	}, s)

	magnitude, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, ErrBadAmount
	}
	if neg {
		magnitude = magnitude.Neg()
	}
	return magnitude, nil
}
