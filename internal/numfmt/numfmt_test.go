package numfmt_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain integer", "1200", "1200"},
		{"comma grouped", "1,234,567.89", "1234567.89"},
		{"negative with commas", "-12,000", "-12000"},
		{"leading and trailing whitespace", "  42.5  ", "42.5"},
		{"empty string", "", "0"},
		{"whitespace only", "   ", "0"},
		{"non-numeric", "abc", "0"},
		{"partially numeric", "12abc", "0"},
		{"lone separator", ".", "0"},
		{"zero", "0", "0"},
		{"small fraction", "0.01", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numfmt.Parse(tt.raw)
			want, err := decimal.NewFromString(tt.want)
			if err != nil {
				t.Fatalf("bad expectation %q: %v", tt.want, err)
			}
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = %s, want %s", tt.raw, got, want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		places int32
		want   string
	}{
		{"grouping", "1234567.891", 2, "1,234,567.89"},
		{"no grouping needed", "999", 0, "999"},
		{"exactly one group", "1000", 0, "1,000"},
		{"negative", "-1234.5", 2, "-1,234.50"},
		{"zero", "0", 2, "0.00"},
		{"pads fraction", "12.3", 2, "12.30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.value)
			if err != nil {
				t.Fatalf("bad value %q: %v", tt.value, err)
			}
			if got := numfmt.Format(d, tt.places); got != tt.want {
				t.Errorf("Format(%s, %d) = %q, want %q", tt.value, tt.places, got, tt.want)
			}
		})
	}
}

// Parse(Format(d, 2)) must return d for every value with at most two
// fraction digits.
func TestRoundTrip(t *testing.T) {
	values := []string{
		"0", "0.01", "1", "999.99", "1000", "1234.5",
		"1234567.89", "-1234567.89", "-0.5", "32000000",
	}

	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			t.Fatalf("bad value %q: %v", v, err)
		}
		formatted := numfmt.Format(d, 2)
		back := numfmt.Parse(formatted)
		if !back.Equal(d) {
			t.Errorf("Parse(Format(%s)) = %s via %q, want %s", v, back, formatted, v)
		}
	}
}
