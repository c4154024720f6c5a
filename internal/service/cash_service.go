package service

import (
	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// CashService handles a client's per-currency cash balances.
type CashService struct {
	cashRepo *repository.CashRepository
}

// NewCashService creates a new CashService with the provided repository.
func NewCashService(cashRepo *repository.CashRepository) *CashService {
	return &CashService{cashRepo: cashRepo}
}

// SetBalance writes a client's balance for one currency. The raw amount
// string is stored as entered; parsing happens at valuation time and falls
// back to zero.
func (s *CashService) SetBalance(clientID string, currency model.Currency, amount string) (model.CashBalance, error) {
	balance := model.CashBalance{
		ID:       uuid.New().String(),
		ClientID: clientID,
		Currency: currency,
		Amount:   amount,
	}
	if err := s.cashRepo.UpsertBalance(balance); err != nil {
		return model.CashBalance{}, err
	}
	return balance, nil
}

// GetBalances retrieves all cash balances for a client.
func (s *CashService) GetBalances(clientID string) ([]model.CashBalance, error) {
	return s.cashRepo.GetBalances(clientID)
}

// DeleteBalance removes a client's balance for one currency.
func (s *CashService) DeleteBalance(clientID string, currency model.Currency) error {
	return s.cashRepo.DeleteBalance(clientID, currency)
}
