package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// GroupService handles display-group operations. Groups never affect
// valuation; they exist purely so the dashboard can cluster positions.
type GroupService struct {
	groupRepo  *repository.GroupRepository
	clientRepo *repository.ClientRepository
}

// NewGroupService creates a new GroupService with the provided repositories.
func NewGroupService(groupRepo *repository.GroupRepository, clientRepo *repository.ClientRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo, clientRepo: clientRepo}
}

// CreateGroup creates a named display group for a client.
func (s *GroupService) CreateGroup(clientID, name string) (model.PositionGroup, error) {
	if _, err := s.clientRepo.GetClient(clientID); err != nil {
		return model.PositionGroup{}, err
	}
	group := model.PositionGroup{
		ID:       uuid.New().String(),
		ClientID: clientID,
		Name:     name,
	}
	if err := s.groupRepo.CreateGroup(group); err != nil {
		return model.PositionGroup{}, err
	}
	return group, nil
}

// GetGroups retrieves all display groups for a client.
func (s *GroupService) GetGroups(clientID string) ([]model.PositionGroup, error) {
	return s.groupRepo.GetGroups(clientID)
}

// DeleteGroup removes a group and its memberships.
func (s *GroupService) DeleteGroup(groupID string) error {
	return s.groupRepo.DeleteGroup(groupID)
}

// AddMember links a position into a group.
func (s *GroupService) AddMember(groupID string, class model.AssetClass, positionID string) (model.GroupMember, error) {
	if !model.ValidAssetClass(class) {
		return model.GroupMember{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidAssetClass, class)
	}
	member := model.GroupMember{
		GroupID:    groupID,
		AssetClass: class,
		PositionID: positionID,
	}
	if err := s.groupRepo.AddMember(member); err != nil {
		return model.GroupMember{}, err
	}
	return member, nil
}

// RemoveMember unlinks a position from a group.
func (s *GroupService) RemoveMember(groupID string, class model.AssetClass, positionID string) error {
	return s.groupRepo.RemoveMember(model.GroupMember{
		GroupID:    groupID,
		AssetClass: class,
		PositionID: positionID,
	})
}

// GetMembers retrieves a group's memberships.
func (s *GroupService) GetMembers(groupID string) ([]model.GroupMember, error) {
	return s.groupRepo.GetMembers(groupID)
}
