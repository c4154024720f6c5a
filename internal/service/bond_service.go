package service

import (
	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/valuation"
)

// BondService handles bond position business logic and the append-only
// bond-update ledger of manually declared aggregate totals.
type BondService struct {
	bondRepo *repository.BondRepository
}

// NewBondService creates a new BondService with the provided repository.
func NewBondService(bondRepo *repository.BondRepository) *BondService {
	return &BondService{bondRepo: bondRepo}
}

// CreatePosition revalues and inserts a new bond position.
func (s *BondService) CreatePosition(p model.BondPosition) (model.BondPosition, error) {
	p.ID = uuid.New().String()
	valuation.RevalueBond(&p)
	if err := s.bondRepo.CreatePosition(p); err != nil {
		return model.BondPosition{}, err
	}
	return p, nil
}

// UpdatePosition revalues and overwrites an existing bond position.
func (s *BondService) UpdatePosition(p model.BondPosition) (model.BondPosition, error) {
	valuation.RevalueBond(&p)
	if err := s.bondRepo.UpdatePosition(p); err != nil {
		return model.BondPosition{}, err
	}
	return p, nil
}

// GetPosition retrieves one bond position.
func (s *BondService) GetPosition(positionID string) (model.BondPosition, error) {
	return s.bondRepo.GetPosition(positionID)
}

// GetPositions retrieves all bond positions for a client.
func (s *BondService) GetPositions(clientID string) ([]model.BondPosition, error) {
	return s.bondRepo.GetPositions(clientID)
}

// DeletePosition removes one bond position.
func (s *BondService) DeletePosition(positionID string) error {
	return s.bondRepo.DeletePosition(positionID)
}

// AppendUpdate records a manually entered aggregate bond total/interest pair.
// Always appends; the ledger keeps every override ever made.
func (s *BondService) AppendUpdate(clientID, total, interest string) (model.BondUpdate, error) {
	update := model.BondUpdate{
		ClientID: clientID,
		Total:    numfmt.Parse(total),
		Interest: numfmt.Parse(interest),
	}
	return s.bondRepo.AppendUpdate(update)
}

// LatestUpdate retrieves the most recent declared total, or nil.
func (s *BondService) LatestUpdate(clientID string) (*model.BondUpdate, error) {
	return s.bondRepo.LatestUpdate(clientID)
}

// UpdateHistory retrieves the full declared-total history, oldest first.
func (s *BondService) UpdateHistory(clientID string) ([]model.BondUpdate, error) {
	return s.bondRepo.UpdateHistory(clientID)
}
