package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the snapshot and
// snapshot_currency tables. The ledger is append-only: there is no update
// statement for non-live rows anywhere in this repository.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new SnapshotRepository with the provided database connection.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Append inserts a snapshot with its per-currency breakdown in one
// transaction. For a live snapshot the previous live row for the client is
// removed first so at most one ephemeral preview exists per client.
func (r *SnapshotRepository) Append(s model.Snapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if s.IsLive {
		if _, err := tx.Exec(`DELETE FROM snapshot WHERE client_id = ? AND is_live = TRUE`, s.ClientID); err != nil {
			return fmt.Errorf("failed to clear previous live snapshot: %w", err)
		}
	}

	query := `
        INSERT INTO snapshot (
            id, client_id, created_at, is_live,
            cash_total, equity_total, bond_total, note_total,
            recurring_total, insurance_total, grand_total
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err = tx.Exec(query,
		s.ID, s.ClientID, s.CreatedAt.UTC().Format(time.RFC3339Nano), s.IsLive,
		s.CashTotal.String(), s.EquityTotal.String(), s.BondTotal.String(), s.NoteTotal.String(),
		s.RecurringTotal.String(), s.InsuranceTotal.String(), s.GrandTotal.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	currencyQuery := `
        INSERT INTO snapshot_currency (snapshot_id, currency, cash_amount, rate)
        VALUES (?, ?, ?, ?)
    `
	for _, sc := range s.Currencies {
		if _, err := tx.Exec(currencyQuery, s.ID, sc.Currency, sc.CashAmount.String(), sc.Rate.String()); err != nil {
			return fmt.Errorf("failed to insert snapshot currency %s: %w", sc.Currency, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Latest retrieves the snapshot with the greatest timestamp among a client's
// non-live records, or nil when the client has no history yet.
func (r *SnapshotRepository) Latest(clientID string) (*model.Snapshot, error) {
	query := snapshotSelect + `
        WHERE client_id = ? AND is_live = FALSE
        ORDER BY created_at DESC
        LIMIT 1
    `
	row := r.db.QueryRow(query, clientID)

	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadCurrencies(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// History retrieves a client's non-live snapshots ordered by timestamp
// ascending. Live previews never appear here so trend analysis is not
// polluted by transient states.
func (r *SnapshotRepository) History(clientID string) ([]model.Snapshot, error) {
	query := snapshotSelect + `
        WHERE client_id = ? AND is_live = FALSE
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.Snapshot{}

	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating snapshot table: %w", err)
	}

	for i := range snapshots {
		if err := r.loadCurrencies(&snapshots[i]); err != nil {
			return nil, err
		}
	}
	return snapshots, nil
}

// Get retrieves one snapshot by ID, live or not.
func (r *SnapshotRepository) Get(snapshotID string) (model.Snapshot, error) {
	query := snapshotSelect + ` WHERE id = ?`
	row := r.db.QueryRow(query, snapshotID)

	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, apperrors.ErrSnapshotNotFound
	}
	if err != nil {
		return model.Snapshot{}, err
	}
	if err := r.loadCurrencies(&s); err != nil {
		return model.Snapshot{}, err
	}
	return s, nil
}

// Live retrieves a client's current live preview, or nil when none exists.
func (r *SnapshotRepository) Live(clientID string) (*model.Snapshot, error) {
	query := snapshotSelect + ` WHERE client_id = ? AND is_live = TRUE`
	row := r.db.QueryRow(query, clientID)

	s, err := scanSnapshot(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadCurrencies(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

const snapshotSelect = `
    SELECT id, client_id, created_at, is_live,
           cash_total, equity_total, bond_total, note_total,
           recurring_total, insurance_total, grand_total
    FROM snapshot
`

func (r *SnapshotRepository) loadCurrencies(s *model.Snapshot) error {
	query := `
        SELECT snapshot_id, currency, cash_amount, rate
        FROM snapshot_currency
        WHERE snapshot_id = ?
        ORDER BY currency ASC
    `
	rows, err := r.db.Query(query, s.ID)
	if err != nil {
		return fmt.Errorf("failed to query snapshot_currency table: %w", err)
	}
	defer rows.Close()

	s.Currencies = []model.SnapshotCurrency{}

	for rows.Next() {
		var sc model.SnapshotCurrency
		var cashAmount, rate string
		if err := rows.Scan(&sc.SnapshotID, &sc.Currency, &cashAmount, &rate); err != nil {
			return fmt.Errorf("failed to scan snapshot_currency table results: %w", err)
		}
		if sc.CashAmount, err = ParseDecimal(cashAmount); err != nil {
			return err
		}
		if sc.Rate, err = ParseDecimal(rate); err != nil {
			return err
		}
		s.Currencies = append(s.Currencies, sc)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating snapshot_currency table: %w", err)
	}
	return nil
}

func scanSnapshot(row rowScanner) (model.Snapshot, error) {
	var s model.Snapshot
	var createdAt string
	var totals [7]string

	err := row.Scan(
		&s.ID, &s.ClientID, &createdAt, &s.IsLive,
		&totals[0], &totals[1], &totals[2], &totals[3],
		&totals[4], &totals[5], &totals[6],
	)
	if err == sql.ErrNoRows {
		return model.Snapshot{}, err
	}
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to scan snapshot table results: %w", err)
	}

	if s.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to parse snapshot created_at: %w", err)
	}

	if s.CashTotal, err = ParseDecimal(totals[0]); err != nil {
		return model.Snapshot{}, err
	}
	if s.EquityTotal, err = ParseDecimal(totals[1]); err != nil {
		return model.Snapshot{}, err
	}
	if s.BondTotal, err = ParseDecimal(totals[2]); err != nil {
		return model.Snapshot{}, err
	}
	if s.NoteTotal, err = ParseDecimal(totals[3]); err != nil {
		return model.Snapshot{}, err
	}
	if s.RecurringTotal, err = ParseDecimal(totals[4]); err != nil {
		return model.Snapshot{}, err
	}
	if s.InsuranceTotal, err = ParseDecimal(totals[5]); err != nil {
		return model.Snapshot{}, err
	}
	if s.GrandTotal, err = ParseDecimal(totals[6]); err != nil {
		return model.Snapshot{}, err
	}
	return s, nil
}
