package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
)

// RevalueBond recomputes a bond position's derived fields.
//
// Cost is subscription price (a percentage of face value) plus accrued
// interest. Current value and received interest are manual inputs, not
// derived, so profit/loss compares what the holding returned so far against
// what it cost to enter.
func RevalueBond(p *model.BondPosition) {
	faceValue := numfmt.Parse(p.FaceValue)
	subscriptionPct := numfmt.Parse(p.SubscriptionPricePct)
	accruedInterest := numfmt.Parse(p.AccruedInterest)
	currentValue := numfmt.Parse(p.CurrentValue)
	receivedInterest := numfmt.Parse(p.ReceivedInterest)

	p.Cost = subscriptionPct.Div(hundred).Mul(faceValue).Add(accruedInterest)
	p.ProfitLoss = currentValue.Add(receivedInterest).Sub(p.Cost)
	p.ReturnRate = returnRate(p.ProfitLoss, p.Cost)
}

// BondMarketValue is the amount a bond position contributes to totals in its
// native currency: the manually tracked current value.
func BondMarketValue(p model.BondPosition) decimal.Decimal {
	return numfmt.Parse(p.CurrentValue)
}
