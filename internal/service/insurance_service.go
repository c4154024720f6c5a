package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// InsuranceService handles benefit-projection calculators and their
// per-policy-year row tables. Any mutation that changes the row table also
// invalidates the benefit projection cache.
type InsuranceService struct {
	insuranceRepo *repository.InsuranceRepository
	clientRepo    *repository.ClientRepository
	benefits      *BenefitService
}

// NewInsuranceService creates a new InsuranceService with the provided dependencies.
func NewInsuranceService(
	insuranceRepo *repository.InsuranceRepository,
	clientRepo *repository.ClientRepository,
	benefits *BenefitService,
) *InsuranceService {
	return &InsuranceService{
		insuranceRepo: insuranceRepo,
		clientRepo:    clientRepo,
		benefits:      benefits,
	}
}

// InsuranceAgeAt returns the whole-years age of a client at a policy start
// date. Policy year 1 maps to this age; the ages of all later rows follow
// from it monotonically.
func InsuranceAgeAt(birthDate, startDate time.Time) int {
	age := startDate.Year() - birthDate.Year()
	if startDate.Month() < birthDate.Month() ||
		(startDate.Month() == birthDate.Month() && startDate.Day() < birthDate.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return age
}

// buildRows generates the full row table for a calculator. The mapping from
// policy year to insurance age is total: every row 1..100 exists, with a zero
// benefit where none was entered. Benefits are matched to rows by policy year.
func buildRows(calculatorID string, birthDate, startDate time.Time, benefits []string) []model.InsuranceCalculatorRow {
	baseAge := InsuranceAgeAt(birthDate, startDate)

	rows := make([]model.InsuranceCalculatorRow, model.MaxPolicyYears)
	for year := 1; year <= model.MaxPolicyYears; year++ {
		row := model.InsuranceCalculatorRow{
			ID:           uuid.New().String(),
			CalculatorID: calculatorID,
			PolicyYear:   year,
			InsuranceAge: baseAge + year - 1,
		}
		if year-1 < len(benefits) {
			row.Benefit = numfmt.Parse(benefits[year-1])
		}
		rows[year-1] = row
	}
	return rows
}

// CreateCalculator creates a calculator and generates its complete row table
// from the client's birth date and the policy start date. benefits holds the
// per-policy-year amounts, index 0 = policy year 1; missing years are zero.
func (s *InsuranceService) CreateCalculator(
	clientID, company, product string,
	currency model.Currency,
	startDate time.Time,
	benefits []string,
) (model.InsuranceCalculator, error) {
	client, err := s.clientRepo.GetClient(clientID)
	if err != nil {
		return model.InsuranceCalculator{}, err
	}

	calc := model.InsuranceCalculator{
		ID:        uuid.New().String(),
		ClientID:  clientID,
		Company:   company,
		Product:   product,
		Currency:  currency,
		StartDate: startDate,
	}
	rows := buildRows(calc.ID, client.BirthDate, startDate, benefits)

	if err := s.insuranceRepo.CreateCalculator(calc, rows); err != nil {
		return model.InsuranceCalculator{}, err
	}

	s.benefits.Invalidate(clientID)
	return calc, nil
}

// UpdateCalculator overwrites a calculator and regenerates its entire row
// table. When the start date changes, every row's insurance age is recomputed
// from the new base age; a partial patch is never performed. A nil benefits
// slice keeps the previously entered benefit amounts, matched by policy year.
func (s *InsuranceService) UpdateCalculator(
	calculatorID, company, product string,
	currency model.Currency,
	startDate time.Time,
	benefits []string,
) (model.InsuranceCalculator, error) {
	calc, err := s.insuranceRepo.GetCalculator(calculatorID)
	if err != nil {
		return model.InsuranceCalculator{}, err
	}
	client, err := s.clientRepo.GetClient(calc.ClientID)
	if err != nil {
		return model.InsuranceCalculator{}, err
	}

	if benefits == nil {
		existing, err := s.insuranceRepo.GetRows(calculatorID)
		if err != nil {
			return model.InsuranceCalculator{}, err
		}
		benefits = make([]string, model.MaxPolicyYears)
		for _, row := range existing {
			if row.PolicyYear >= 1 && row.PolicyYear <= model.MaxPolicyYears {
				benefits[row.PolicyYear-1] = row.Benefit.String()
			}
		}
	}

	calc.Company = company
	calc.Product = product
	calc.Currency = currency
	calc.StartDate = startDate
	rows := buildRows(calc.ID, client.BirthDate, startDate, benefits)

	if err := s.insuranceRepo.UpdateCalculator(calc, rows); err != nil {
		return model.InsuranceCalculator{}, err
	}

	s.benefits.Invalidate(calc.ClientID)
	return calc, nil
}

// GetCalculator retrieves one calculator.
func (s *InsuranceService) GetCalculator(calculatorID string) (model.InsuranceCalculator, error) {
	return s.insuranceRepo.GetCalculator(calculatorID)
}

// GetCalculators retrieves all calculators for a client.
func (s *InsuranceService) GetCalculators(clientID string) ([]model.InsuranceCalculator, error) {
	return s.insuranceRepo.GetCalculators(clientID)
}

// GetRows retrieves a calculator's row table.
func (s *InsuranceService) GetRows(calculatorID string) ([]model.InsuranceCalculatorRow, error) {
	return s.insuranceRepo.GetRows(calculatorID)
}

// DeleteCalculator removes a calculator and its rows.
func (s *InsuranceService) DeleteCalculator(calculatorID string) error {
	calc, err := s.insuranceRepo.GetCalculator(calculatorID)
	if err != nil {
		return err
	}
	if err := s.insuranceRepo.DeleteCalculator(calculatorID); err != nil {
		return err
	}
	s.benefits.Invalidate(calc.ClientID)
	return nil
}
