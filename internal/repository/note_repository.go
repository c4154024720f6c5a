package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// NoteRepository provides data access methods for the structured_note table.
// The four underlying legs are stored inline on the note row.
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository with the provided database connection.
func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `
    id, client_id, currency, product_name,
    transaction_amount, interest_rate_pct, ko_pct, ki_pct, put_pct, is_exited,
    leg1_symbol, leg1_initial_price, leg1_live_price, leg1_strike_price, leg1_protection_price, leg1_distance_pct,
    leg2_symbol, leg2_initial_price, leg2_live_price, leg2_strike_price, leg2_protection_price, leg2_distance_pct,
    leg3_symbol, leg3_initial_price, leg3_live_price, leg3_strike_price, leg3_protection_price, leg3_distance_pct,
    leg4_symbol, leg4_initial_price, leg4_live_price, leg4_strike_price, leg4_protection_price, leg4_distance_pct
`

func noteArgs(n model.StructuredNote) []any {
	args := []any{
		n.ID, n.ClientID, n.Currency, n.ProductName,
		n.TransactionAmount, n.InterestRatePct, n.KOPct, n.KIPct, n.PutPct, n.IsExited,
	}
	for _, leg := range n.Legs {
		args = append(args,
			leg.Symbol, leg.InitialPrice, leg.LivePrice,
			leg.StrikePrice.String(), leg.ProtectionPrice.String(), leg.DistancePct.String(),
		)
	}
	return args
}

// CreateNote inserts a new structured note with all four legs.
func (r *NoteRepository) CreateNote(n model.StructuredNote) error {
	query := `
        INSERT INTO structured_note (` + noteColumns + `)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?,
                ?, ?, ?, ?, ?, ?,
                ?, ?, ?, ?, ?, ?,
                ?, ?, ?, ?, ?, ?,
                ?, ?, ?, ?, ?, ?)
    `
	if _, err := r.db.Exec(query, noteArgs(n)...); err != nil {
		return fmt.Errorf("failed to insert structured note: %w", err)
	}
	return nil
}

// UpdateNote overwrites every stored field of an existing note.
func (r *NoteRepository) UpdateNote(n model.StructuredNote) error {
	query := `
        UPDATE structured_note
        SET currency = ?, product_name = ?,
            transaction_amount = ?, interest_rate_pct = ?, ko_pct = ?, ki_pct = ?, put_pct = ?, is_exited = ?,
            leg1_symbol = ?, leg1_initial_price = ?, leg1_live_price = ?, leg1_strike_price = ?, leg1_protection_price = ?, leg1_distance_pct = ?,
            leg2_symbol = ?, leg2_initial_price = ?, leg2_live_price = ?, leg2_strike_price = ?, leg2_protection_price = ?, leg2_distance_pct = ?,
            leg3_symbol = ?, leg3_initial_price = ?, leg3_live_price = ?, leg3_strike_price = ?, leg3_protection_price = ?, leg3_distance_pct = ?,
            leg4_symbol = ?, leg4_initial_price = ?, leg4_live_price = ?, leg4_strike_price = ?, leg4_protection_price = ?, leg4_distance_pct = ?
        WHERE id = ? AND client_id = ?
    `
	args := noteArgs(n)
	// Reorder: id/client_id move from the head of the insert args to the WHERE clause.
	args = append(args[2:], n.ID, n.ClientID)

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update structured note: %w", err)
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

// GetNote retrieves one structured note by ID.
func (r *NoteRepository) GetNote(noteID string) (model.StructuredNote, error) {
	query := `SELECT ` + noteColumns + ` FROM structured_note WHERE id = ?`
	row := r.db.QueryRow(query, noteID)

	n, err := scanNote(row)
	if err == sql.ErrNoRows {
		return model.StructuredNote{}, apperrors.ErrPositionNotFound
	}
	return n, err
}

// GetNotes retrieves all structured notes for a client, exited ones included.
// Exclusion of exited notes from totals happens at valuation, not here, so
// the record-keeping view still shows them.
func (r *NoteRepository) GetNotes(clientID string) ([]model.StructuredNote, error) {
	query := `
        SELECT ` + noteColumns + `
        FROM structured_note
        WHERE client_id = ?
        ORDER BY product_name ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query structured_note table: %w", err)
	}
	defer rows.Close()

	notes := []model.StructuredNote{}

	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating structured_note table: %w", err)
	}

	return notes, nil
}

// DeleteNote removes one structured note.
func (r *NoteRepository) DeleteNote(noteID string) error {
	result, err := r.db.Exec(`DELETE FROM structured_note WHERE id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("failed to delete structured note: %w", err)
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

func scanNote(row rowScanner) (model.StructuredNote, error) {
	var n model.StructuredNote
	var strike, protection, distance [model.MaxNoteLegs]string

	dest := []any{
		&n.ID, &n.ClientID, &n.Currency, &n.ProductName,
		&n.TransactionAmount, &n.InterestRatePct, &n.KOPct, &n.KIPct, &n.PutPct, &n.IsExited,
	}
	for i := range n.Legs {
		dest = append(dest,
			&n.Legs[i].Symbol, &n.Legs[i].InitialPrice, &n.Legs[i].LivePrice,
			&strike[i], &protection[i], &distance[i],
		)
	}

	err := row.Scan(dest...)
	if err == sql.ErrNoRows {
		return model.StructuredNote{}, err
	}
	if err != nil {
		return model.StructuredNote{}, fmt.Errorf("failed to scan structured_note table results: %w", err)
	}

	for i := range n.Legs {
		if n.Legs[i].StrikePrice, err = ParseDecimal(strike[i]); err != nil {
			return model.StructuredNote{}, err
		}
		if n.Legs[i].ProtectionPrice, err = ParseDecimal(protection[i]); err != nil {
			return model.StructuredNote{}, err
		}
		if n.Legs[i].DistancePct, err = ParseDecimal(distance[i]); err != nil {
			return model.StructuredNote{}, err
		}
	}
	return n, nil
}
