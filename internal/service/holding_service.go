package service

import (
	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// HoldingService handles the pass-through holdings: recurring investment
// plans and insurance policy cash values. Neither carries derived fields;
// their manual market value is only currency-converted at aggregation.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService with the provided repository.
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{holdingRepo: holdingRepo}
}

// CreatePlan inserts a new recurring investment plan.
func (s *HoldingService) CreatePlan(p model.RecurringPlan) (model.RecurringPlan, error) {
	p.ID = uuid.New().String()
	if err := s.holdingRepo.CreatePlan(p); err != nil {
		return model.RecurringPlan{}, err
	}
	return p, nil
}

// UpdatePlan overwrites an existing recurring plan.
func (s *HoldingService) UpdatePlan(p model.RecurringPlan) (model.RecurringPlan, error) {
	if err := s.holdingRepo.UpdatePlan(p); err != nil {
		return model.RecurringPlan{}, err
	}
	return p, nil
}

// GetPlans retrieves all recurring plans for a client.
func (s *HoldingService) GetPlans(clientID string) ([]model.RecurringPlan, error) {
	return s.holdingRepo.GetPlans(clientID)
}

// DeletePlan removes one recurring plan.
func (s *HoldingService) DeletePlan(planID string) error {
	return s.holdingRepo.DeletePlan(planID)
}

// CreatePolicy inserts a new insurance policy.
func (s *HoldingService) CreatePolicy(p model.InsurancePolicy) (model.InsurancePolicy, error) {
	p.ID = uuid.New().String()
	if err := s.holdingRepo.CreatePolicy(p); err != nil {
		return model.InsurancePolicy{}, err
	}
	return p, nil
}

// UpdatePolicy overwrites an existing insurance policy.
func (s *HoldingService) UpdatePolicy(p model.InsurancePolicy) (model.InsurancePolicy, error) {
	if err := s.holdingRepo.UpdatePolicy(p); err != nil {
		return model.InsurancePolicy{}, err
	}
	return p, nil
}

// GetPolicies retrieves all insurance policies for a client.
func (s *HoldingService) GetPolicies(clientID string) ([]model.InsurancePolicy, error) {
	return s.holdingRepo.GetPolicies(clientID)
}

// DeletePolicy removes one insurance policy.
func (s *HoldingService) DeletePolicy(policyID string) error {
	return s.holdingRepo.DeletePolicy(policyID)
}
