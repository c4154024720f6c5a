package repository

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ParseTime parses a date string in "2006-01-02" or RFC3339 format.
// Note: mirrors validation.ParseTime — both are intentionally kept local to avoid cross-layer imports.
func ParseTime(str string) (time.Time, error) {
	returnTime, err := time.Parse("2006-01-02", str)
	if err != nil {
		returnTime, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date: %w", err)
		}
	}
	return returnTime.UTC(), nil
}

// ParseDecimal parses a decimal column stored as TEXT. Stored values are
// written by this layer, so a parse failure means a corrupt row.
func ParseDecimal(str string) (decimal.Decimal, error) {
	if str == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("failed to parse stored decimal %q: %w", str, err)
	}
	return d, nil
}
