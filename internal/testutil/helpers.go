package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/secret"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
)

// NewTestClientService wires a ClientService against the test database.
func NewTestClientService(t *testing.T, db *sql.DB) *service.ClientService {
	t.Helper()

	return service.NewClientService(repository.NewClientRepository(db))
}

// NewTestBenefitService wires a BenefitService against the test database.
func NewTestBenefitService(t *testing.T, db *sql.DB) *service.BenefitService {
	t.Helper()

	return service.NewBenefitService(
		repository.NewInsuranceRepository(db),
		repository.NewRateRepository(db),
	)
}

// NewTestInsuranceService wires an InsuranceService against the test database.
func NewTestInsuranceService(t *testing.T, db *sql.DB) *service.InsuranceService {
	t.Helper()

	return service.NewInsuranceService(
		repository.NewInsuranceRepository(db),
		repository.NewClientRepository(db),
		NewTestBenefitService(t, db),
	)
}

// NewTestAggregationService wires an AggregationService against the test database.
func NewTestAggregationService(t *testing.T, db *sql.DB) *service.AggregationService {
	t.Helper()

	return service.NewAggregationService(
		repository.NewClientRepository(db),
		repository.NewCashRepository(db),
		repository.NewEquityRepository(db),
		repository.NewBondRepository(db),
		repository.NewNoteRepository(db),
		repository.NewHoldingRepository(db),
		repository.NewRateRepository(db),
	)
}

// NewTestSnapshotService wires a SnapshotService against the test database.
func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	return service.NewSnapshotService(
		repository.NewSnapshotRepository(db),
		NewTestAggregationService(t, db),
	)
}

// NewTestSystemService wires a SystemService against the test database with
// a pass-through secret codec.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	codec, err := secret.NewCodec("")
	if err != nil {
		t.Fatalf("Failed to create secret codec: %v", err)
	}
	return service.NewSystemService(db, repository.NewSettingRepository(db), codec)
}

// NewTestEquityService wires an EquityService against the test database,
// querying prices from the given feed.
func NewTestEquityService(t *testing.T, db *sql.DB, feed service.QuoteFeed) *service.EquityService {
	t.Helper()

	return service.NewEquityService(db, repository.NewEquityRepository(db), feed)
}

// NewTestRatesService wires a RatesService against the test database,
// fetching rates from the given feed and invalidating the given benefit
// cache on replacement.
func NewTestRatesService(t *testing.T, db *sql.DB, feed service.RateFeed, benefits *service.BenefitService) *service.RatesService {
	t.Helper()

	return service.NewRatesService(
		repository.NewRateRepository(db),
		repository.NewClientRepository(db),
		feed,
		benefits,
	)
}

// NewTestBondService wires a BondService against the test database.
func NewTestBondService(t *testing.T, db *sql.DB) *service.BondService {
	t.Helper()

	return service.NewBondService(repository.NewBondRepository(db))
}

// MakeID generates a UUID for testing.
func MakeID() string {
	return uuid.New().String()
}

// MakeName generates a unique name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Client")
//	// Returns: "Client A1B2C3"
func MakeName(base string) string {
	if base == "" {
		base = "Test"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
