package fx_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testRates() fx.RateSet {
	return fx.RateSet{
		model.TWD: dec("32"),
		model.EUR: dec("0.9"),
		model.JPY: dec("150"),
	}
}

func TestConvert(t *testing.T) {
	rates := testRates()

	tests := []struct {
		name   string
		amount string
		from   model.Currency
		to     model.Currency
		want   string
	}{
		{"hub to foreign", "100", model.USD, model.TWD, "3200"},
		{"foreign to hub", "3200", model.TWD, model.USD, "100"},
		{"hub to hub", "55.5", model.USD, model.USD, "55.5"},
		{"foreign to itself", "77", model.JPY, model.JPY, "77"},
		{"foreign to twd through hub", "150", model.JPY, model.TWD, "32"},
		{"twd to foreign through hub", "32", model.TWD, model.JPY, "150"},
		{"unsupported foreign pair passes through", "100", model.EUR, model.JPY, "100"},
		{"missing rate to hub", "500", model.CHF, model.USD, "0"},
		{"hub to missing rate", "500", model.USD, model.CHF, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fx.Convert(dec(tt.amount), tt.from, tt.to, rates)
			if !got.Equal(dec(tt.want)) {
				t.Errorf("Convert(%s, %s, %s) = %s, want %s", tt.amount, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

// A zero rate must be treated as unconvertible, never as a division by zero.
func TestConvertZeroRate(t *testing.T) {
	rates := fx.RateSet{model.JPY: decimal.Zero}

	got := fx.Convert(dec("1000"), model.JPY, model.USD, rates)
	if !got.IsZero() {
		t.Errorf("expected zero for zero-rate conversion, got %s", got)
	}
}

// Identity must hold for every supported currency and any rate table,
// including an empty one.
func TestConvertIdentity(t *testing.T) {
	for _, rates := range []fx.RateSet{testRates(), {}} {
		for _, c := range model.Currencies {
			amount := dec("123.45")
			if got := fx.Convert(amount, c, c, rates); !got.Equal(amount) {
				t.Errorf("Convert(123.45, %s, %s) = %s, want 123.45", c, c, got)
			}
		}
	}
}

func TestRate(t *testing.T) {
	rates := testRates()

	if got := rates.Rate(model.Hub); !got.Equal(dec("1")) {
		t.Errorf("hub rate = %s, want 1", got)
	}
	if got := rates.Rate(model.SGD); !got.IsZero() {
		t.Errorf("missing rate = %s, want 0", got)
	}
	if got := rates.Rate(model.TWD); !got.Equal(dec("32")) {
		t.Errorf("TWD rate = %s, want 32", got)
	}
}
