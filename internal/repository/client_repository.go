package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// ClientRepository provides data access methods for the client table.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new ClientRepository with the provided database connection.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// CreateClient inserts a new client row.
func (r *ClientRepository) CreateClient(c model.Client) error {
	query := `
        INSERT INTO client (id, name, birth_date, created_at)
        VALUES (?, ?, ?, ?)
    `
	_, err := r.db.Exec(query, c.ID, c.Name, c.BirthDate.Format("2006-01-02"), c.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert client: %w", err)
	}
	return nil
}

// GetClients retrieves all clients ordered by name.
// Returns an empty slice if no clients exist.
func (r *ClientRepository) GetClients() ([]model.Client, error) {
	query := `
        SELECT id, name, birth_date, created_at
        FROM client
        ORDER BY name ASC
    `
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client table: %w", err)
	}
	defer rows.Close()

	clients := []model.Client{}

	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client table: %w", err)
	}

	return clients, nil
}

// GetClient retrieves one client by ID.
// Returns apperrors.ErrClientNotFound when the ID does not exist.
func (r *ClientRepository) GetClient(clientID string) (model.Client, error) {
	query := `
        SELECT id, name, birth_date, created_at
        FROM client
        WHERE id = ?
    `
	row := r.db.QueryRow(query, clientID)

	c, err := scanClient(row)
	if err == sql.ErrNoRows {
		return model.Client{}, apperrors.ErrClientNotFound
	}
	if err != nil {
		return model.Client{}, err
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (model.Client, error) {
	var c model.Client
	var birthDate, createdAt string

	err := row.Scan(&c.ID, &c.Name, &birthDate, &createdAt)
	if err == sql.ErrNoRows {
		return model.Client{}, err
	}
	if err != nil {
		return model.Client{}, fmt.Errorf("failed to scan client table results: %w", err)
	}

	c.BirthDate, err = ParseTime(birthDate)
	if err != nil {
		return model.Client{}, err
	}
	c.CreatedAt, err = ParseTime(createdAt)
	if err != nil {
		// created_at may carry sqlite's default "YYYY-MM-DD HH:MM:SS" format
		c.CreatedAt, err = time.Parse("2006-01-02 15:04:05", createdAt)
		if err != nil {
			return model.Client{}, fmt.Errorf("failed to parse client created_at: %w", err)
		}
	}
	return c, nil
}
