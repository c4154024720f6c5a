// Package fx converts amounts between supported currencies.
//
// The rate model is asymmetric on purpose: USD is the hub, every rate is
// "units of foreign currency per 1 USD", and only hub-involving conversions
// are defined directly. TWD, the secondary display currency, is additionally
// routed through the hub in two steps. Any other foreign-to-foreign pair is
// not converted: the amount is returned unchanged and a warning is logged,
// because dependent totals are defined in terms of this exact behavior.
package fx

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// RateSet maps non-hub currencies to their rate against the hub. A missing or
// zero rate means the currency is unconvertible for now; affected amounts
// contribute zero rather than erroring.
type RateSet map[model.Currency]decimal.Decimal

// Rate returns the rate for c, or zero when absent. The hub always rates 1.
func (rs RateSet) Rate(c model.Currency) decimal.Decimal {
	if c == model.Hub {
		return decimal.NewFromInt(1)
	}
	return rs[c]
}

// Convert converts amount from one currency to another using rs.
//
// Rules, in priority order:
//  1. from == to: amount unchanged.
//  2. from is the hub: amount * rate(to).
//  3. to is the hub: amount / rate(from); a zero or missing rate(from)
//     yields zero instead of dividing by zero.
//  4. either side is TWD: two-step conversion through the hub.
//  5. anything else: unsupported pair, amount returned unchanged.
func Convert(amount decimal.Decimal, from, to model.Currency, rs RateSet) decimal.Decimal {
	if from == to {
		return amount
	}
	if from == model.Hub {
		return amount.Mul(rs.Rate(to))
	}
	if to == model.Hub {
		return toHub(amount, from, rs)
	}
	if from == model.TWD || to == model.TWD {
		return Convert(toHub(amount, from, rs), model.Hub, to, rs)
	}
	log.Printf("fx: unsupported conversion %s -> %s, amount passed through", from, to)
	return amount
}

func toHub(amount decimal.Decimal, from model.Currency, rs RateSet) decimal.Decimal {
	rate := rs.Rate(from)
	if rate.IsZero() {
		return decimal.Zero
	}
	return amount.Div(rate)
}
