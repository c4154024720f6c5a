package validation

import (
	"strings"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// Numeric amount fields are deliberately not validated here: they are stored
// as raw strings and parse tolerantly to zero at valuation time, so a
// half-filled record is acceptable input.

func validCurrency(errors map[string]string, field, currency string) {
	if !model.ValidCurrency(model.Currency(currency)) {
		errors[field] = "unsupported currency"
	}
}

func ValidateSetCashBalance(req request.SetCashBalanceRequest) error {
	errors := make(map[string]string)

	validCurrency(errors, "currency", req.Currency)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateEquityPosition(req request.EquityPositionRequest) error {
	errors := make(map[string]string)

	validCurrency(errors, "currency", req.Currency)
	if strings.TrimSpace(req.Symbol) == "" && strings.TrimSpace(req.Name) == "" {
		errors["symbol"] = "symbol or name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateBondPosition(req request.BondPositionRequest) error {
	errors := make(map[string]string)

	validCurrency(errors, "currency", req.Currency)
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateStructuredNote(req request.StructuredNoteRequest) error {
	errors := make(map[string]string)

	validCurrency(errors, "currency", req.Currency)
	if strings.TrimSpace(req.ProductName) == "" {
		errors["productName"] = "productName is required"
	}
	if len(req.Legs) > model.MaxNoteLegs {
		errors["legs"] = "a note carries at most 4 legs"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateRecurringPlan(req request.RecurringPlanRequest) error {
	errors := make(map[string]string)

	validCurrency(errors, "currency", req.Currency)
	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateInsurancePolicy(req request.InsurancePolicyRequest) error {
	errors := make(map[string]string)

	validCurrency(errors, "currency", req.Currency)
	if strings.TrimSpace(req.Company) == "" {
		errors["company"] = "company is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
