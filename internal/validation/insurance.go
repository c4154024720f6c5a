package validation

import (
	"strings"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/api/request"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

func validateCalculatorFields(errors map[string]string, company, product, currency, startDate string, benefits []string) {
	if strings.TrimSpace(company) == "" {
		errors["company"] = "company is required"
	}
	if strings.TrimSpace(product) == "" {
		errors["product"] = "product is required"
	}
	validCurrency(errors, "currency", currency)
	if _, err := time.Parse(DateLayout, startDate); err != nil {
		errors["startDate"] = "startDate must be formatted as YYYY-MM-DD"
	}
	if len(benefits) > model.MaxPolicyYears {
		errors["benefits"] = "benefits covers at most 100 policy years"
	}
}

func ValidateCreateCalculator(req request.CreateCalculatorRequest) error {
	errors := make(map[string]string)

	validateCalculatorFields(errors, req.Company, req.Product, req.Currency, req.StartDate, req.Benefits)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateCalculator(req request.UpdateCalculatorRequest) error {
	errors := make(map[string]string)

	validateCalculatorFields(errors, req.Company, req.Product, req.Currency, req.StartDate, req.Benefits)

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
