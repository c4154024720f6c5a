package valuation

import (
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
)

// RevalueEquity recomputes every derived field on an equity position from its
// raw inputs. Called on every manual edit and after every price refresh; a
// refresh updates CurrentPrice and then runs this, so MarketValue can never
// drift from the price it was computed with.
func RevalueEquity(p *model.EquityPosition) {
	shares := numfmt.Parse(p.Shares)
	costPerShare := numfmt.Parse(p.CostPerShare)
	currentPrice := numfmt.Parse(p.CurrentPrice)

	p.MarketValue = shares.Mul(currentPrice)
	p.Cost = shares.Mul(costPerShare)
	p.ProfitLoss = p.MarketValue.Sub(p.Cost)
	p.ReturnRate = returnRate(p.ProfitLoss, p.Cost)
}
