package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
)

// ClientService handles client registry operations.
type ClientService struct {
	clientRepo *repository.ClientRepository
}

// NewClientService creates a new ClientService with the provided repository.
func NewClientService(clientRepo *repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClient registers a new client.
func (s *ClientService) CreateClient(name string, birthDate time.Time) (model.Client, error) {
	client := model.Client{
		ID:        uuid.New().String(),
		Name:      name,
		BirthDate: birthDate,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.clientRepo.CreateClient(client); err != nil {
		return model.Client{}, err
	}
	return client, nil
}

// GetClients retrieves all clients.
func (s *ClientService) GetClients() ([]model.Client, error) {
	return s.clientRepo.GetClients()
}

// GetClient retrieves one client by ID.
func (s *ClientService) GetClient(clientID string) (model.Client, error) {
	return s.clientRepo.GetClient(clientID)
}
