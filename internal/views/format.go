package views

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an optional price in US dollars, "$0.00" when unset.
func FormatCurrency(v *float64) string {
	if v == nil {
		return "$0.00"
	}

	return FormatMoney(decimal.NewFromFloat(*v))
}

// FormatMoney renders d as "$1,234.50".
func FormatMoney(d decimal.Decimal) string {
	d = d.Round(2)

	whole, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}

	b.WriteByte('$')

	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}

// FormatCompact shortens large values: 1.2K, 3.4M.
func FormatCompact(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}

	s := strconv.Itoa(n)

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return b.String()
}

// Truncate cuts s to max runes and appends "...".
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	return string([]rune(s)[:max]) + "..."
}
