package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// RateRepository provides data access methods for the exchange_rate table.
// A client's rate set is only ever replaced as a whole; aggregation never
// observes a partially updated set.
type RateRepository struct {
	db *sql.DB
}

// NewRateRepository creates a new RateRepository with the provided database connection.
func NewRateRepository(db *sql.DB) *RateRepository {
	return &RateRepository{db: db}
}

// ReplaceSet swaps a client's entire rate set in one transaction: delete all,
// insert all. Readers see either the old set or the new set, never a mix.
func (r *RateRepository) ReplaceSet(clientID string, rates fx.RateSet, source string, asOf time.Time) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(`DELETE FROM exchange_rate WHERE client_id = ?`, clientID); err != nil {
		return fmt.Errorf("failed to clear exchange rates: %w", err)
	}

	query := `
        INSERT INTO exchange_rate (id, client_id, currency, rate, source, as_of, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	now := time.Now().UTC().Format(time.RFC3339)
	for _, cur := range model.Currencies {
		if cur == model.Hub {
			continue
		}
		rate, ok := rates[cur]
		if !ok {
			continue
		}
		_, err := tx.Exec(query, uuid.New().String(), clientID, cur, rate.String(), source, asOf.UTC().Format(time.RFC3339), now)
		if err != nil {
			return fmt.Errorf("failed to insert exchange rate %s: %w", cur, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit exchange rates: %w", err)
	}
	return nil
}

// GetSet retrieves a client's rate set. A client with no persisted rates gets
// an empty set, which marks every non-hub currency unconvertible.
func (r *RateRepository) GetSet(clientID string) (fx.RateSet, error) {
	query := `
        SELECT currency, rate
        FROM exchange_rate
        WHERE client_id = ?
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_rate table: %w", err)
	}
	defer rows.Close()

	rates := make(fx.RateSet)

	for rows.Next() {
		var currency model.Currency
		var rateStr string
		if err := rows.Scan(&currency, &rateStr); err != nil {
			return nil, fmt.Errorf("failed to scan exchange_rate table results: %w", err)
		}
		rate, err := ParseDecimal(rateStr)
		if err != nil {
			return nil, err
		}
		rates[currency] = rate
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_rate table: %w", err)
	}

	return rates, nil
}

// GetRates retrieves a client's full rate rows including source and asOf
// metadata, ordered by currency.
func (r *RateRepository) GetRates(clientID string) ([]model.ExchangeRate, error) {
	query := `
        SELECT id, client_id, currency, rate, source, as_of, updated_at
        FROM exchange_rate
        WHERE client_id = ?
        ORDER BY currency ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange_rate table: %w", err)
	}
	defer rows.Close()

	rates := []model.ExchangeRate{}

	for rows.Next() {
		var er model.ExchangeRate
		var rateStr string
		var asOf, updatedAt sql.NullString
		if err := rows.Scan(&er.ID, &er.ClientID, &er.Currency, &rateStr, &er.Source, &asOf, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan exchange_rate table results: %w", err)
		}
		if er.Rate, err = ParseDecimal(rateStr); err != nil {
			return nil, err
		}
		if asOf.Valid {
			if er.AsOf, err = ParseTime(asOf.String); err != nil {
				return nil, err
			}
		}
		if updatedAt.Valid {
			if er.UpdatedAt, err = ParseTime(updatedAt.String); err != nil {
				er.UpdatedAt, err = time.Parse("2006-01-02 15:04:05", updatedAt.String)
				if err != nil {
					return nil, fmt.Errorf("failed to parse exchange_rate updated_at: %w", err)
				}
			}
		}
		rates = append(rates, er)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange_rate table: %w", err)
	}

	return rates, nil
}
