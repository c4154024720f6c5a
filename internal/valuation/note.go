package valuation

import (
	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
)

// RevalueNote recomputes the per-leg derived fields on a structured note.
// The four legs are independent: a leg with no initial price gets zeroed
// derived fields while the remaining legs compute normally.
func RevalueNote(n *model.StructuredNote) {
	putPct := numfmt.Parse(n.PutPct)
	kiPct := numfmt.Parse(n.KIPct)

	for i := range n.Legs {
		leg := &n.Legs[i]
		initial := numfmt.Parse(leg.InitialPrice)
		live := numfmt.Parse(leg.LivePrice)

		leg.StrikePrice = initial.Mul(putPct).Div(hundred)
		leg.ProtectionPrice = initial.Mul(kiPct).Div(hundred)
		if initial.IsPositive() {
			leg.DistancePct = live.Div(initial).Mul(hundred)
		} else {
			leg.DistancePct = decimal.Zero
		}
	}
}

// NoteMarketValue is the amount a structured note contributes to totals in
// its native currency. An exited note contributes nothing, unconditionally.
func NoteMarketValue(n model.StructuredNote) decimal.Decimal {
	if n.IsExited {
		return decimal.Zero
	}
	return numfmt.Parse(n.TransactionAmount)
}
