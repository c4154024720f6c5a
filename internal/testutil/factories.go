package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/fx"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/numfmt"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/repository"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/valuation"
)

// ClientBuilder provides a fluent interface for creating test clients.
//
// Example usage:
//
//	// Simple creation with defaults
//	client := testutil.NewClient().Build(t, db)
//
//	// Customized client
//	client := testutil.NewClient().
//	    WithName("Alice").
//	    WithBirthDate(1980, 6, 15).
//	    Build(t, db)
type ClientBuilder struct {
	ID        string
	Name      string
	BirthDate time.Time
}

// NewClient creates a ClientBuilder with sensible defaults.
func NewClient() *ClientBuilder {
	return &ClientBuilder{
		ID:        MakeID(),
		Name:      MakeName("Test Client"),
		BirthDate: time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

// WithID sets a custom ID.
func (b *ClientBuilder) WithID(id string) *ClientBuilder {
	b.ID = id
	return b
}

// WithName sets a custom name.
func (b *ClientBuilder) WithName(name string) *ClientBuilder {
	b.Name = name
	return b
}

// WithBirthDate sets a custom birth date.
func (b *ClientBuilder) WithBirthDate(year int, month time.Month, day int) *ClientBuilder {
	b.BirthDate = time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return b
}

// Build creates the client in the database and returns it.
func (b *ClientBuilder) Build(t *testing.T, db *sql.DB) model.Client {
	t.Helper()

	query := `
		INSERT INTO client (id, name, birth_date, created_at)
		VALUES (?, ?, ?, ?)
	`
	createdAt := time.Now().UTC()
	_, err := db.Exec(query, b.ID, b.Name, b.BirthDate.Format("2006-01-02"), createdAt.Format(time.RFC3339))
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	return model.Client{
		ID:        b.ID,
		Name:      b.Name,
		BirthDate: b.BirthDate,
		CreatedAt: createdAt,
	}
}

// SeedRates writes a client's exchange-rate set directly, with rates given as
// decimal strings per currency.
func SeedRates(t *testing.T, db *sql.DB, clientID string, rates map[model.Currency]string) fx.RateSet {
	t.Helper()

	set := make(fx.RateSet, len(rates))
	for cur, value := range rates {
		set[cur] = numfmt.Parse(value)
	}

	if err := repository.NewRateRepository(db).ReplaceSet(clientID, set, "test", time.Now().UTC()); err != nil {
		t.Fatalf("Failed to seed exchange rates: %v", err)
	}
	return set
}

// SeedCash writes one cash balance row.
func SeedCash(t *testing.T, db *sql.DB, clientID string, currency model.Currency, amount string) model.CashBalance {
	t.Helper()

	balance := model.CashBalance{
		ID:       MakeID(),
		ClientID: clientID,
		Currency: currency,
		Amount:   amount,
	}
	if err := repository.NewCashRepository(db).UpsertBalance(balance); err != nil {
		t.Fatalf("Failed to seed cash balance: %v", err)
	}
	return balance
}

// SeedEquity inserts an equity position, revalued from its raw fields the
// same way the service layer does it.
func SeedEquity(t *testing.T, db *sql.DB, p model.EquityPosition) model.EquityPosition {
	t.Helper()

	if p.ID == "" {
		p.ID = MakeID()
	}
	valuation.RevalueEquity(&p)
	if err := repository.NewEquityRepository(db).CreatePosition(p); err != nil {
		t.Fatalf("Failed to seed equity position: %v", err)
	}
	return p
}

// SeedBond inserts a bond position, revalued from its raw fields.
func SeedBond(t *testing.T, db *sql.DB, p model.BondPosition) model.BondPosition {
	t.Helper()

	if p.ID == "" {
		p.ID = MakeID()
	}
	valuation.RevalueBond(&p)
	if err := repository.NewBondRepository(db).CreatePosition(p); err != nil {
		t.Fatalf("Failed to seed bond position: %v", err)
	}
	return p
}

// SeedNote inserts a structured note, with per-leg figures derived.
func SeedNote(t *testing.T, db *sql.DB, n model.StructuredNote) model.StructuredNote {
	t.Helper()

	if n.ID == "" {
		n.ID = MakeID()
	}
	valuation.RevalueNote(&n)
	if err := repository.NewNoteRepository(db).CreateNote(n); err != nil {
		t.Fatalf("Failed to seed structured note: %v", err)
	}
	return n
}

// SeedPlan inserts a recurring plan.
func SeedPlan(t *testing.T, db *sql.DB, p model.RecurringPlan) model.RecurringPlan {
	t.Helper()

	if p.ID == "" {
		p.ID = MakeID()
	}
	if err := repository.NewHoldingRepository(db).CreatePlan(p); err != nil {
		t.Fatalf("Failed to seed recurring plan: %v", err)
	}
	return p
}

// SeedPolicy inserts an insurance policy.
func SeedPolicy(t *testing.T, db *sql.DB, p model.InsurancePolicy) model.InsurancePolicy {
	t.Helper()

	if p.ID == "" {
		p.ID = MakeID()
	}
	if err := repository.NewHoldingRepository(db).CreatePolicy(p); err != nil {
		t.Fatalf("Failed to seed insurance policy: %v", err)
	}
	return p
}
