package service

import (
	"database/sql"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/database"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/secret"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/version"
)

// quoteAPIKeySetting is the system_setting key holding the encrypted quote
// feed API key.
const quoteAPIKeySetting = "quote_api_key"

// SystemService handles system-related operations
type SystemService struct {
	db          *sql.DB
	settingRepo *repository.SettingRepository
	codec       *secret.Codec
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB, settingRepo *repository.SettingRepository, codec *secret.Codec) *SystemService {
	return &SystemService{
		db:          db,
		settingRepo: settingRepo,
		codec:       codec,
	}
}

// CheckHealth checks the health of the system
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}

func (s *SystemService) CheckVersion() string {
	return version.Version
}

// SetQuoteAPIKey stores the quote feed API key, encrypted at rest.
func (s *SystemService) SetQuoteAPIKey(key string) error {
	encrypted, err := s.codec.Encrypt(key)
	if err != nil {
		return err
	}
	return s.settingRepo.Set(quoteAPIKeySetting, encrypted)
}

// QuoteAPIKey returns the stored quote feed API key, or empty when none has
// been configured.
func (s *SystemService) QuoteAPIKey() (string, error) {
	encrypted, err := s.settingRepo.Get(quoteAPIKeySetting)
	if err != nil {
		return "", err
	}
	return s.codec.Decrypt(encrypted)
}
