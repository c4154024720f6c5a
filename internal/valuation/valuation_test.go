package valuation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/valuation"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", field, got, want)
	}
}

func TestRevalueEquity(t *testing.T) {
	t.Run("standard holding", func(t *testing.T) {
		p := model.EquityPosition{
			Shares:       "100",
			CostPerShare: "10",
			CurrentPrice: "12",
		}

		valuation.RevalueEquity(&p)

		assertDecimal(t, "MarketValue", p.MarketValue, "1200")
		assertDecimal(t, "Cost", p.Cost, "1000")
		assertDecimal(t, "ProfitLoss", p.ProfitLoss, "200")
		assertDecimal(t, "ReturnRate", p.ReturnRate, "20")
	})

	t.Run("comma formatted inputs", func(t *testing.T) {
		p := model.EquityPosition{
			Shares:       "1,000",
			CostPerShare: "50",
			CurrentPrice: "45.5",
		}

		valuation.RevalueEquity(&p)

		assertDecimal(t, "MarketValue", p.MarketValue, "45500")
		assertDecimal(t, "Cost", p.Cost, "50000")
		assertDecimal(t, "ProfitLoss", p.ProfitLoss, "-4500")
		assertDecimal(t, "ReturnRate", p.ReturnRate, "-9")
	})

	t.Run("zero cost yields zero return rate", func(t *testing.T) {
		p := model.EquityPosition{
			Shares:       "100",
			CostPerShare: "",
			CurrentPrice: "12",
		}

		valuation.RevalueEquity(&p)

		assertDecimal(t, "MarketValue", p.MarketValue, "1200")
		assertDecimal(t, "ReturnRate", p.ReturnRate, "0")
	})

	t.Run("derived fields are overwritten, not patched", func(t *testing.T) {
		p := model.EquityPosition{
			Shares:      "",
			MarketValue: dec("9999"),
			Cost:        dec("9999"),
		}

		valuation.RevalueEquity(&p)

		assertDecimal(t, "MarketValue", p.MarketValue, "0")
		assertDecimal(t, "Cost", p.Cost, "0")
	})
}

func TestRevalueBond(t *testing.T) {
	t.Run("standard subscription", func(t *testing.T) {
		p := model.BondPosition{
			FaceValue:            "100000",
			SubscriptionPricePct: "98",
			AccruedInterest:      "500",
			CurrentValue:         "99500",
			ReceivedInterest:     "1000",
		}

		valuation.RevalueBond(&p)

		assertDecimal(t, "Cost", p.Cost, "98500")
		assertDecimal(t, "ProfitLoss", p.ProfitLoss, "2000")

		// 2000/98500*100 ~= 2.03
		if p.ReturnRate.Round(2).String() != "2.03" {
			t.Errorf("ReturnRate = %s, want ~2.03", p.ReturnRate)
		}
	})

	t.Run("empty inputs all fall back to zero", func(t *testing.T) {
		p := model.BondPosition{}

		valuation.RevalueBond(&p)

		assertDecimal(t, "Cost", p.Cost, "0")
		assertDecimal(t, "ProfitLoss", p.ProfitLoss, "0")
		assertDecimal(t, "ReturnRate", p.ReturnRate, "0")
	})
}

func TestRevalueNote(t *testing.T) {
	t.Run("legs compute independently", func(t *testing.T) {
		n := model.StructuredNote{
			PutPct: "80",
			KIPct:  "60",
		}
		n.Legs[0] = model.NoteLeg{Symbol: "AAPL", InitialPrice: "200", LivePrice: "190"}
		// leg 1 left empty on purpose
		n.Legs[2] = model.NoteLeg{Symbol: "NVDA", InitialPrice: "100", LivePrice: "120"}

		valuation.RevalueNote(&n)

		assertDecimal(t, "leg0 StrikePrice", n.Legs[0].StrikePrice, "160")
		assertDecimal(t, "leg0 ProtectionPrice", n.Legs[0].ProtectionPrice, "120")
		assertDecimal(t, "leg0 DistancePct", n.Legs[0].DistancePct, "95")

		assertDecimal(t, "leg1 StrikePrice", n.Legs[1].StrikePrice, "0")
		assertDecimal(t, "leg1 DistancePct", n.Legs[1].DistancePct, "0")

		assertDecimal(t, "leg2 StrikePrice", n.Legs[2].StrikePrice, "80")
		assertDecimal(t, "leg2 ProtectionPrice", n.Legs[2].ProtectionPrice, "60")
		assertDecimal(t, "leg2 DistancePct", n.Legs[2].DistancePct, "120")
	})

	t.Run("zero initial price never divides", func(t *testing.T) {
		n := model.StructuredNote{PutPct: "80", KIPct: "60"}
		n.Legs[0] = model.NoteLeg{InitialPrice: "0", LivePrice: "50"}

		valuation.RevalueNote(&n)

		assertDecimal(t, "DistancePct", n.Legs[0].DistancePct, "0")
	})
}

func TestNoteMarketValue(t *testing.T) {
	n := model.StructuredNote{TransactionAmount: "250,000"}
	assertDecimal(t, "active note", valuation.NoteMarketValue(n), "250000")

	n.IsExited = true
	assertDecimal(t, "exited note", valuation.NoteMarketValue(n), "0")
}

func TestPassThroughValues(t *testing.T) {
	assertDecimal(t, "CashValue",
		valuation.CashValue(model.CashBalance{Amount: "3,200"}), "3200")
	assertDecimal(t, "PlanValue",
		valuation.PlanValue(model.RecurringPlan{MarketValue: "1500.50"}), "1500.50")
	assertDecimal(t, "PolicyValue",
		valuation.PolicyValue(model.InsurancePolicy{CashValue: ""}), "0")
}
