package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// CashRepository provides data access methods for the cash_balance table.
// A client holds at most one balance row per currency.
type CashRepository struct {
	db *sql.DB
}

// NewCashRepository creates a new CashRepository with the provided database connection.
func NewCashRepository(db *sql.DB) *CashRepository {
	return &CashRepository{db: db}
}

// UpsertBalance writes a client's balance for one currency, inserting or
// replacing the existing row for that currency.
func (r *CashRepository) UpsertBalance(b model.CashBalance) error {
	query := `
        INSERT INTO cash_balance (id, client_id, currency, amount)
        VALUES (?, ?, ?, ?)
        ON CONFLICT (client_id, currency) DO UPDATE SET amount = excluded.amount
    `
	_, err := r.db.Exec(query, b.ID, b.ClientID, b.Currency, b.Amount)
	if err != nil {
		return fmt.Errorf("failed to upsert cash balance: %w", err)
	}
	return nil
}

// GetBalances retrieves all cash balances for a client.
// Returns an empty slice if the client holds no cash.
func (r *CashRepository) GetBalances(clientID string) ([]model.CashBalance, error) {
	query := `
        SELECT id, client_id, currency, amount
        FROM cash_balance
        WHERE client_id = ?
        ORDER BY currency ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cash_balance table: %w", err)
	}
	defer rows.Close()

	balances := []model.CashBalance{}

	for rows.Next() {
		var b model.CashBalance
		if err := rows.Scan(&b.ID, &b.ClientID, &b.Currency, &b.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan cash_balance table results: %w", err)
		}
		balances = append(balances, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash_balance table: %w", err)
	}

	return balances, nil
}

// DeleteBalance removes a client's balance row for one currency.
func (r *CashRepository) DeleteBalance(clientID string, currency model.Currency) error {
	query := `DELETE FROM cash_balance WHERE client_id = ? AND currency = ?`
	if _, err := r.db.Exec(query, clientID, currency); err != nil {
		return fmt.Errorf("failed to delete cash balance: %w", err)
	}
	return nil
}
