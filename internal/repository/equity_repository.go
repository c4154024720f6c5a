package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// EquityRepository provides data access methods for the equity_position table.
type EquityRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewEquityRepository creates a new EquityRepository with the provided database connection.
func NewEquityRepository(db *sql.DB) *EquityRepository {
	return &EquityRepository{db: db}
}

// WithTx returns a copy of the repository that runs its statements inside tx.
// Used by the batch price refresh to commit all updated positions together.
func (r *EquityRepository) WithTx(tx *sql.Tx) *EquityRepository {
	return &EquityRepository{db: r.db, tx: tx}
}

func (r *EquityRepository) getQuerier() interface {
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
	Exec(query string, args ...any) (sql.Result, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const equityColumns = `
    id, client_id, currency, market, symbol, name,
    shares, cost_per_share, current_price,
    market_value, cost, profit_loss, return_rate
`

// CreatePosition inserts a new equity position with its derived fields.
func (r *EquityRepository) CreatePosition(p model.EquityPosition) error {
	query := `
        INSERT INTO equity_position (` + equityColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.getQuerier().Exec(query,
		p.ID, p.ClientID, p.Currency, p.Market, p.Symbol, p.Name,
		p.Shares, p.CostPerShare, p.CurrentPrice,
		p.MarketValue.String(), p.Cost.String(), p.ProfitLoss.String(), p.ReturnRate.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert equity position: %w", err)
	}
	return nil
}

// UpdatePosition overwrites every stored field of an existing position.
// The raws and the deriveds are written together so a revaluation is never
// half persisted.
func (r *EquityRepository) UpdatePosition(p model.EquityPosition) error {
	query := `
        UPDATE equity_position
        SET currency = ?, market = ?, symbol = ?, name = ?,
            shares = ?, cost_per_share = ?, current_price = ?,
            market_value = ?, cost = ?, profit_loss = ?, return_rate = ?
        WHERE id = ? AND client_id = ?
    `
	result, err := r.getQuerier().Exec(query,
		p.Currency, p.Market, p.Symbol, p.Name,
		p.Shares, p.CostPerShare, p.CurrentPrice,
		p.MarketValue.String(), p.Cost.String(), p.ProfitLoss.String(), p.ReturnRate.String(),
		p.ID, p.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update equity position: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}
	return nil
}

// GetPosition retrieves one equity position by ID.
func (r *EquityRepository) GetPosition(positionID string) (model.EquityPosition, error) {
	query := `SELECT ` + equityColumns + ` FROM equity_position WHERE id = ?`
	row := r.getQuerier().QueryRow(query, positionID)

	p, err := scanEquity(row)
	if err == sql.ErrNoRows {
		return model.EquityPosition{}, apperrors.ErrPositionNotFound
	}
	return p, err
}

// GetPositions retrieves all equity positions for a client.
// Returns an empty slice if the client holds none.
func (r *EquityRepository) GetPositions(clientID string) ([]model.EquityPosition, error) {
	query := `
        SELECT ` + equityColumns + `
        FROM equity_position
        WHERE client_id = ?
        ORDER BY symbol ASC
    `
	rows, err := r.getQuerier().Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query equity_position table: %w", err)
	}
	defer rows.Close()

	positions := []model.EquityPosition{}

	for rows.Next() {
		p, err := scanEquity(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating equity_position table: %w", err)
	}

	return positions, nil
}

// DeletePosition removes one equity position.
func (r *EquityRepository) DeletePosition(positionID string) error {
	result, err := r.getQuerier().Exec(`DELETE FROM equity_position WHERE id = ?`, positionID)
	if err != nil {
		return fmt.Errorf("failed to delete equity position: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPositionNotFound
	}
	return nil
}

func scanEquity(row rowScanner) (model.EquityPosition, error) {
	var p model.EquityPosition
	var marketValue, cost, profitLoss, returnRate string

	err := row.Scan(
		&p.ID, &p.ClientID, &p.Currency, &p.Market, &p.Symbol, &p.Name,
		&p.Shares, &p.CostPerShare, &p.CurrentPrice,
		&marketValue, &cost, &profitLoss, &returnRate,
	)
	if err == sql.ErrNoRows {
		return model.EquityPosition{}, err
	}
	if err != nil {
		return model.EquityPosition{}, fmt.Errorf("failed to scan equity_position table results: %w", err)
	}

	if p.MarketValue, err = ParseDecimal(marketValue); err != nil {
		return model.EquityPosition{}, err
	}
	if p.Cost, err = ParseDecimal(cost); err != nil {
		return model.EquityPosition{}, err
	}
	if p.ProfitLoss, err = ParseDecimal(profitLoss); err != nil {
		return model.EquityPosition{}, err
	}
	if p.ReturnRate, err = ParseDecimal(returnRate); err != nil {
		return model.EquityPosition{}, err
	}
	return p, nil
}
