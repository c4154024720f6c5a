package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// BondRepository provides data access methods for the bond_position table and
// the bond_update side ledger.
type BondRepository struct {
	db *sql.DB
}

// NewBondRepository creates a new BondRepository with the provided database connection.
func NewBondRepository(db *sql.DB) *BondRepository {
	return &BondRepository{db: db}
}

const bondColumns = `
    id, client_id, currency, name,
    face_value, subscription_price_pct, accrued_interest,
    current_value, received_interest,
    cost, profit_loss, return_rate
`

// CreatePosition inserts a new bond position with its derived fields.
func (r *BondRepository) CreatePosition(p model.BondPosition) error {
	query := `
        INSERT INTO bond_position (` + bondColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.Exec(query,
		p.ID, p.ClientID, p.Currency, p.Name,
		p.FaceValue, p.SubscriptionPricePct, p.AccruedInterest,
		p.CurrentValue, p.ReceivedInterest,
		p.Cost.String(), p.ProfitLoss.String(), p.ReturnRate.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert bond position: %w", err)
	}
	return nil
}

// UpdatePosition overwrites every stored field of an existing bond position.
func (r *BondRepository) UpdatePosition(p model.BondPosition) error {
	query := `
        UPDATE bond_position
        SET currency = ?, name = ?,
            face_value = ?, subscription_price_pct = ?, accrued_interest = ?,
            current_value = ?, received_interest = ?,
            cost = ?, profit_loss = ?, return_rate = ?
        WHERE id = ? AND client_id = ?
    `
	result, err := r.db.Exec(query,
		p.Currency, p.Name,
		p.FaceValue, p.SubscriptionPricePct, p.AccruedInterest,
		p.CurrentValue, p.ReceivedInterest,
		p.Cost.String(), p.ProfitLoss.String(), p.ReturnRate.String(),
		p.ID, p.ClientID,
	)
	if err != nil {
		return fmt.Errorf("failed to update bond position: %w", err)
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

// GetPosition retrieves one bond position by ID.
func (r *BondRepository) GetPosition(positionID string) (model.BondPosition, error) {
	query := `SELECT ` + bondColumns + ` FROM bond_position WHERE id = ?`
	row := r.db.QueryRow(query, positionID)

	p, err := scanBond(row)
	if err == sql.ErrNoRows {
		return model.BondPosition{}, apperrors.ErrPositionNotFound
	}
	return p, err
}

// GetPositions retrieves all bond positions for a client.
func (r *BondRepository) GetPositions(clientID string) ([]model.BondPosition, error) {
	query := `
        SELECT ` + bondColumns + `
        FROM bond_position
        WHERE client_id = ?
        ORDER BY name ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bond_position table: %w", err)
	}
	defer rows.Close()

	positions := []model.BondPosition{}

	for rows.Next() {
		p, err := scanBond(rows)
		if err != nil {
			return nil, err
		}
		positions = append(positions, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bond_position table: %w", err)
	}

	return positions, nil
}

// DeletePosition removes one bond position.
func (r *BondRepository) DeletePosition(positionID string) error {
	result, err := r.db.Exec(`DELETE FROM bond_position WHERE id = ?`, positionID)
	if err != nil {
		return fmt.Errorf("failed to delete bond position: %w", err)
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

// AppendUpdate appends one manually entered aggregate bond total/interest
// pair. Rows are never updated in place; every save creates a new record so
// the override history is preserved.
func (r *BondRepository) AppendUpdate(u model.BondUpdate) (model.BondUpdate, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	query := `
        INSERT INTO bond_update (id, client_id, total, interest, created_at)
        VALUES (?, ?, ?, ?, ?)
    `
	_, err := r.db.Exec(query, u.ID, u.ClientID, u.Total.String(), u.Interest.String(), u.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return model.BondUpdate{}, fmt.Errorf("failed to insert bond update: %w", err)
	}
	return u, nil
}

// LatestUpdate retrieves the most recent bond update for a client, or nil
// when none has been recorded.
func (r *BondRepository) LatestUpdate(clientID string) (*model.BondUpdate, error) {
	query := `
        SELECT id, client_id, total, interest, created_at
        FROM bond_update
        WHERE client_id = ?
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(query, clientID)

	u, err := scanBondUpdate(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateHistory retrieves all bond updates for a client, oldest first.
func (r *BondRepository) UpdateHistory(clientID string) ([]model.BondUpdate, error) {
	query := `
        SELECT id, client_id, total, interest, created_at
        FROM bond_update
        WHERE client_id = ?
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bond_update table: %w", err)
	}
	defer rows.Close()

	updates := []model.BondUpdate{}

	for rows.Next() {
		u, err := scanBondUpdate(rows)
		if err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bond_update table: %w", err)
	}

	return updates, nil
}

func scanBond(row rowScanner) (model.BondPosition, error) {
	var p model.BondPosition
	var cost, profitLoss, returnRate string

	err := row.Scan(
		&p.ID, &p.ClientID, &p.Currency, &p.Name,
		&p.FaceValue, &p.SubscriptionPricePct, &p.AccruedInterest,
		&p.CurrentValue, &p.ReceivedInterest,
		&cost, &profitLoss, &returnRate,
	)
	if err == sql.ErrNoRows {
		return model.BondPosition{}, err
	}
	if err != nil {
		return model.BondPosition{}, fmt.Errorf("failed to scan bond_position table results: %w", err)
	}

	if p.Cost, err = ParseDecimal(cost); err != nil {
		return model.BondPosition{}, err
	}
	if p.ProfitLoss, err = ParseDecimal(profitLoss); err != nil {
		return model.BondPosition{}, err
	}
	if p.ReturnRate, err = ParseDecimal(returnRate); err != nil {
		return model.BondPosition{}, err
	}
	return p, nil
}

func scanBondUpdate(row rowScanner) (model.BondUpdate, error) {
	var u model.BondUpdate
	var total, interest, createdAt string

	err := row.Scan(&u.ID, &u.ClientID, &total, &interest, &createdAt)
	if err == sql.ErrNoRows {
		return model.BondUpdate{}, err
	}
	if err != nil {
		return model.BondUpdate{}, fmt.Errorf("failed to scan bond_update table results: %w", err)
	}

	if u.Total, err = ParseDecimal(total); err != nil {
		return model.BondUpdate{}, err
	}
	if u.Interest, err = ParseDecimal(interest); err != nil {
		return model.BondUpdate{}, err
	}
	if u.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		if u.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt); err != nil {
			return model.BondUpdate{}, fmt.Errorf("failed to parse bond_update created_at: %w", err)
		}
	}
	return u, nil
}
