package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
)

// SettingRepository provides data access methods for the system_setting table.
type SettingRepository struct {
	db *sql.DB
}

// NewSettingRepository creates a new SettingRepository with the provided database connection.
func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Set writes a setting value, inserting or replacing the existing row.
func (r *SettingRepository) Set(key, value string) error {
	query := `
        INSERT INTO system_setting (id, "key", value, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT ("key") DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
    `
	_, err := r.db.Exec(query, uuid.New().String(), key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// Get retrieves a setting value. Returns apperrors.ErrSettingNotFound when
// the key has never been set.
func (r *SettingRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM system_setting WHERE "key" = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", apperrors.ErrSettingNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %s: %w", key, err)
	}
	return value, nil
}
