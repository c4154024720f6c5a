package repository

import (
	"database/sql"
	"fmt"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
)

// GroupRepository provides data access methods for the position_group and
// position_group_member tables. Groups are display-only; nothing here feeds
// into valuation.
type GroupRepository struct {
	db *sql.DB
}

// NewGroupRepository creates a new GroupRepository with the provided database connection.
func NewGroupRepository(db *sql.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateGroup inserts a new display group.
func (r *GroupRepository) CreateGroup(g model.PositionGroup) error {
	query := `INSERT INTO position_group (id, client_id, name) VALUES (?, ?, ?)`
	if _, err := r.db.Exec(query, g.ID, g.ClientID, g.Name); err != nil {
		return fmt.Errorf("failed to insert position group: %w", err)
	}
	return nil
}

// GetGroups retrieves all display groups for a client.
func (r *GroupRepository) GetGroups(clientID string) ([]model.PositionGroup, error) {
	query := `
        SELECT id, client_id, name
        FROM position_group
        WHERE client_id = ?
        ORDER BY name ASC
    `
	rows, err := r.db.Query(query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query position_group table: %w", err)
	}
	defer rows.Close()

	groups := []model.PositionGroup{}

	for rows.Next() {
		var g model.PositionGroup
		if err := rows.Scan(&g.ID, &g.ClientID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan position_group table results: %w", err)
		}
		groups = append(groups, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating position_group table: %w", err)
	}

	return groups, nil
}

// DeleteGroup removes a group; memberships cascade. Positions themselves are
// untouched.
func (r *GroupRepository) DeleteGroup(groupID string) error {
	result, err := r.db.Exec(`DELETE FROM position_group WHERE id = ?`, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete position group: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// AddMember links a position into a group. Adding the same position twice is
// a duplicate-entry error.
func (r *GroupRepository) AddMember(m model.GroupMember) error {
	query := `
        INSERT INTO position_group_member (group_id, asset_class, position_id)
        VALUES (?, ?, ?)
    `
	if _, err := r.db.Exec(query, m.GroupID, m.AssetClass, m.PositionID); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrDuplicateEntry, err)
	}
	return nil
}

// RemoveMember unlinks a position from a group.
func (r *GroupRepository) RemoveMember(m model.GroupMember) error {
	query := `
        DELETE FROM position_group_member
        WHERE group_id = ? AND asset_class = ? AND position_id = ?
    `
	if _, err := r.db.Exec(query, m.GroupID, m.AssetClass, m.PositionID); err != nil {
		return fmt.Errorf("failed to remove group member: %w", err)
	}
	return nil
}

// GetMembers retrieves all memberships of a group.
func (r *GroupRepository) GetMembers(groupID string) ([]model.GroupMember, error) {
	query := `
        SELECT group_id, asset_class, position_id
        FROM position_group_member
        WHERE group_id = ?
        ORDER BY asset_class ASC, position_id ASC
    `
	rows, err := r.db.Query(query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query position_group_member table: %w", err)
	}
	defer rows.Close()

	members := []model.GroupMember{}

	for rows.Next() {
		var m model.GroupMember
		if err := rows.Scan(&m.GroupID, &m.AssetClass, &m.PositionID); err != nil {
			return nil, fmt.Errorf("failed to scan position_group_member table results: %w", err)
		}
		members = append(members, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating position_group_member table: %w", err)
	}

	return members, nil
}
