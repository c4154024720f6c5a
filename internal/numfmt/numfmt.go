// Package numfmt parses and formats user-entered numeric strings.
//
// User records are often half filled: amounts arrive empty, comma-grouped, or
// plain garbage. Parse never returns an error; anything unparseable becomes
// zero so downstream sums stay resilient to partial input.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a raw user-entered string to a decimal. Thousand separators
// and surrounding whitespace are stripped first. Empty or non-numeric input
// yields zero, never an error.
func Parse(raw string) decimal.Decimal {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Format renders a decimal with the given number of fraction digits and
// thousand separators in the integer part. Format and Parse are inverse up to
// the requested precision: Parse(Format(d, n)) == d.Round(n).
func Format(d decimal.Decimal, places int32) string {
	fixed := d.StringFixed(places)

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)
	return b.String()
}
