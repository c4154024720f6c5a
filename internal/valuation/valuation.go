// Package valuation derives market value, cost, profit/loss and return rate
// from a position's raw fields.
//
// Every derived field is a pure function of the raws: revaluation overwrites
// all of them, and a zero, empty or non-numeric divisor yields a defined zero
// for that one field while the rest keep computing.
package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
)

var hundred = decimal.NewFromInt(100)

// returnRate computes profitLoss/cost*100, or zero when cost is not positive.
func returnRate(profitLoss, cost decimal.Decimal) decimal.Decimal {
	if !cost.IsPositive() {
		return decimal.Zero
	}
	return profitLoss.Div(cost).Mul(hundred)
}

// CashValue returns a cash balance's amount in its native currency.
func CashValue(b model.CashBalance) decimal.Decimal {
	return numfmt.Parse(b.Amount)
}

// PlanValue returns a recurring plan's manually maintained market value.
func PlanValue(p model.RecurringPlan) decimal.Decimal {
	return numfmt.Parse(p.MarketValue)
}

// PolicyValue returns an insurance policy's cash value.
func PolicyValue(p model.InsurancePolicy) decimal.Decimal {
	return numfmt.Parse(p.CashValue)
}
