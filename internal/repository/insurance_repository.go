package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// InsuranceRepository provides data access methods for the
// insurance_calculator and insurance_calculator_row tables.
type InsuranceRepository struct {
	db *sql.DB
}

// NewInsuranceRepository creates a new InsuranceRepository with the provided database connection.
func NewInsuranceRepository(db *sql.DB) *InsuranceRepository {
	return &InsuranceRepository{db: db}
}

// CreateCalculator inserts a calculator together with its initial row table.
// The calculator and its rows are written in one transaction.
func (r *InsuranceRepository) CreateCalculator(c model.InsuranceCalculator, calcRows []model.InsuranceCalculatorRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
        INSERT INTO insurance_calculator (id, client_id, company, product, currency, start_date)
        VALUES (?, ?, ?, ?, ?, ?)
    `
	if _, err := tx.Exec(query, c.ID, c.ClientID, c.Company, c.Product, c.Currency, c.StartDate.Format("2006-01-02")); err != nil {
		return fmt.Errorf("failed to insert insurance calculator: %w", err)
	}

	if err := insertRows(tx, calcRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insurance calculator: %w", err)
	}
	return nil
}

// UpdateCalculator overwrites a calculator and replaces its entire row table
// in one transaction. Partial row updates are not supported: the insurance
// ages are a pure function of birth date and start date, so rows are always
// regenerated as a whole.
func (r *InsuranceRepository) UpdateCalculator(c model.InsuranceCalculator, calcRows []model.InsuranceCalculatorRow) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	query := `
        UPDATE insurance_calculator
        SET company = ?, product = ?, currency = ?, start_date = ?
        WHERE id = ? AND client_id = ?
    `
	result, err := tx.Exec(query, c.Company, c.Product, c.Currency, c.StartDate.Format("2006-01-02"), c.ID, c.ClientID)
	if err != nil {
		return fmt.Errorf("failed to update insurance calculator: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCalculatorNotFound
	}

	if _, err := tx.Exec(`DELETE FROM insurance_calculator_row WHERE calculator_id = ?`, c.ID); err != nil {
		return fmt.Errorf("failed to clear calculator rows: %w", err)
	}
	if err := insertRows(tx, calcRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insurance calculator: %w", err)
	}
	return nil
}

func insertRows(tx *sql.Tx, calcRows []model.InsuranceCalculatorRow) error {
	query := `
        INSERT INTO insurance_calculator_row (id, calculator_id, policy_year, insurance_age, benefit)
        VALUES (?, ?, ?, ?, ?)
    `
	for _, row := range calcRows {
		if _, err := tx.Exec(query, row.ID, row.CalculatorID, row.PolicyYear, row.InsuranceAge, row.Benefit.String()); err != nil {
			return fmt.Errorf("failed to insert calculator row %d: %w", row.PolicyYear, err)
		}
	}
	return nil
}

// GetCalculator retrieves one calculator by ID.
func (r *InsuranceRepository) GetCalculator(calculatorID string) (model.InsuranceCalculator, error) {
	query := `
        SELECT id, client_id, company, product, currency, start_date
        FROM insurance_calculator
        WHERE id = ?
    `
	row := r.db.QueryRow(query, calculatorID)

	c, err := scanCalculator(row)
	if err == sql.ErrNoRows {
		return model.InsuranceCalculator{}, apperrors.ErrCalculatorNotFound
	}
	return c, err
}

// GetCalculators retrieves all calculators for a client.
func (r *InsuranceRepository) GetCalculators(clientID string) ([]model.InsuranceCalculator, error) {
	query := `
        SELECT id, client_id, company, product, currency, start_date
        FROM insurance_calculator
        WHERE client_id = ?
        ORDER BY company ASC, product ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query insurance_calculator table: %w", err)
	}
	defer rows.Close()

	calculators := []model.InsuranceCalculator{}

	for rows.Next() {
		c, err := scanCalculator(rows)
		if err != nil {
			return nil, err
		}
		calculators = append(calculators, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insurance_calculator table: %w", err)
	}

	return calculators, nil
}

// GetRows retrieves a calculator's row table ordered by policy year.
func (r *InsuranceRepository) GetRows(calculatorID string) ([]model.InsuranceCalculatorRow, error) {
	query := `
        SELECT id, calculator_id, policy_year, insurance_age, benefit
        FROM insurance_calculator_row
        WHERE calculator_id = ?
        ORDER BY policy_year ASC
    `
	rows, err := r.db.Query(query, calculatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query insurance_calculator_row table: %w", err)
	}
	defer rows.Close()

	calcRows := []model.InsuranceCalculatorRow{}

	for rows.Next() {
		var cr model.InsuranceCalculatorRow
		var benefit string
		if err := rows.Scan(&cr.ID, &cr.CalculatorID, &cr.PolicyYear, &cr.InsuranceAge, &benefit); err != nil {
			return nil, fmt.Errorf("failed to scan insurance_calculator_row table results: %w", err)
		}
		if cr.Benefit, err = ParseDecimal(benefit); err != nil {
			return nil, err
		}
		calcRows = append(calcRows, cr)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating insurance_calculator_row table: %w", err)
	}

	return calcRows, nil
}

// DeleteCalculator removes a calculator; its rows cascade.
func (r *InsuranceRepository) DeleteCalculator(calculatorID string) error {
	result, err := r.db.Exec(`DELETE FROM insurance_calculator WHERE id = ?`, calculatorID)
	if err != nil {
		return fmt.Errorf("failed to delete insurance calculator: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrCalculatorNotFound
	}
	return nil
}

func scanCalculator(row rowScanner) (model.InsuranceCalculator, error) {
	var c model.InsuranceCalculator
	var startDate string

	err := row.Scan(&c.ID, &c.ClientID, &c.Company, &c.Product, &c.Currency, &startDate)
	if err == sql.ErrNoRows {
		return model.InsuranceCalculator{}, err
	}
	if err != nil {
		return model.InsuranceCalculator{}, fmt.Errorf("failed to scan insurance_calculator table results: %w", err)
	}

	if c.StartDate, err = ParseTime(startDate); err != nil {
		return model.InsuranceCalculator{}, err
	}
	return c, nil
}
