package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// HoldingRepository provides data access methods for the pass-through
// holdings: recurring_plan and insurance_policy. Both carry a manually
// maintained value and no derived fields.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// CreatePlan inserts a new recurring investment plan.
func (r *HoldingRepository) CreatePlan(p model.RecurringPlan) error {
	query := `
        INSERT INTO recurring_plan (id, client_id, currency, name, monthly_amount, market_value)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.Exec(query, p.ID, p.ClientID, p.Currency, p.Name, p.MonthlyAmount, p.MarketValue)
	if err != nil {
		return fmt.Errorf("failed to insert recurring plan: %w", err)
	}
	return nil
}

// UpdatePlan overwrites an existing recurring plan.
func (r *HoldingRepository) UpdatePlan(p model.RecurringPlan) error {
	query := `
        UPDATE recurring_plan
        SET currency = ?, name = ?, monthly_amount = ?, market_value = ?
        WHERE id = ?
    `
	result, err := r.db.Exec(query, p.Currency, p.Name, p.MonthlyAmount, p.MarketValue, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update recurring plan: %w", err)
	}
	return requireAffected(result)
}

// GetPlans retrieves all recurring plans for a client.
func (r *HoldingRepository) GetPlans(clientID string) ([]model.RecurringPlan, error) {
	query := `
        SELECT id, client_id, currency, name, monthly_amount, market_value
        FROM recurring_plan
        WHERE client_id = ?
        ORDER BY name ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring_plan table: %w", err)
	}
	defer rows.Close()

	plans := []model.RecurringPlan{}

	for rows.Next() {
		var p model.RecurringPlan
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Currency, &p.Name, &p.MonthlyAmount, &p.MarketValue); err != nil {
			return nil, fmt.Errorf("failed to scan recurring_plan table results: %w", err)
		}
		plans = append(plans, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring_plan table: %w", err)
	}

	return plans, nil
}

// DeletePlan removes one recurring plan.
func (r *HoldingRepository) DeletePlan(planID string) error {
	result, err := r.db.Exec(`DELETE FROM recurring_plan WHERE id = ?`, planID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring plan: %w", err)
	}
	return requireAffected(result)
}

// CreatePolicy inserts a new insurance policy.
func (r *HoldingRepository) CreatePolicy(p model.InsurancePolicy) error {
	query := `
        INSERT INTO insurance_policy (id, client_id, currency, company, product, cash_value)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.Exec(query, p.ID, p.ClientID, p.Currency, p.Company, p.Product, p.CashValue)
	if err != nil {
		return fmt.Errorf("failed to insert insurance policy: %w", err)
	}
	return nil
}

// UpdatePolicy overwrites an existing insurance policy.
func (r *HoldingRepository) UpdatePolicy(p model.InsurancePolicy) error {
	query := `
        UPDATE insurance_policy
        SET currency = ?, company = ?, product = ?, cash_value = ?
        WHERE id = ?
    `
	result, err := r.db.Exec(query, p.Currency, p.Company, p.Product, p.CashValue, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update insurance policy: %w", err)
	}
	return requireAffected(result)
}

// GetPolicies retrieves all insurance policies for a client.
func (r *HoldingRepository) GetPolicies(clientID string) ([]model.InsurancePolicy, error) {
	query := `
        SELECT id, client_id, currency, company, product, cash_value
        FROM insurance_policy
        WHERE client_id = ?
        ORDER BY company ASC, product ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query insurance_policy table: %w", err)
	}
	defer rows.Close()

	policies := []model.InsurancePolicy{}

	for rows.Next() {
		var p model.InsurancePolicy
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Currency, &p.Company, &p.Product, &p.CashValue); err != nil {
			return nil, fmt.Errorf("failed to scan insurance_policy table results: %w", err)
		}
		policies = append(policies, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insurance_policy table: %w", err)
	}

	return policies, nil
}

// DeletePolicy removes one insurance policy.
func (r *HoldingRepository) DeletePolicy(policyID string) error {
	result, err := r.db.Exec(`DELETE FROM insurance_policy WHERE id = ?`, policyID)
	if err != nil {
		return fmt.Errorf("failed to delete insurance policy: %w", err)
	}
	return requireAffected(result)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read statement result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}
	return nil
}
