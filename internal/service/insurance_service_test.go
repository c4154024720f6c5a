package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/apperrors"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/model"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/service"
	"github.com/wealthdash/Wealth-Dashboard-Backend/internal/testutil"
)

// TestInsuranceAgeAt tests the age-at-policy-start formula.
//
// WHY: Every insurance age in every row table derives from this one value.
// The boundary cases are the standard birthday-arithmetic ones: the age
// increments on the birthday itself, not the day before.
func TestInsuranceAgeAt(t *testing.T) {
	birthDate := time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		startDate time.Time
		want      int
	}{
		{"day before birthday", time.Date(2015, 3, 9, 0, 0, 0, 0, time.UTC), 29},
		{"on the birthday", time.Date(2015, 3, 10, 0, 0, 0, 0, time.UTC), 30},
		{"day after birthday", time.Date(2015, 3, 11, 0, 0, 0, 0, time.UTC), 30},
		{"earlier month", time.Date(2015, 2, 20, 0, 0, 0, 0, time.UTC), 29},
		{"start before birth clamps to zero", time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := service.InsuranceAgeAt(birthDate, tc.startDate); got != tc.want {
				t.Errorf("InsuranceAgeAt(%s) = %d, want %d", tc.startDate.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

// TestInsuranceService_CreateCalculator tests calculator creation and row
// generation.
func TestInsuranceService_CreateCalculator(t *testing.T) {
	t.Run("generates the complete row table", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInsuranceService(t, db)

		client := testutil.NewClient().WithBirthDate(1985, 3, 10).Build(t, db)
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)

		// Execute
		calc, err := svc.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, start, []string{"1000", "2000"})

		// Assert
		if err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		rows, err := svc.GetRows(calc.ID)
		if err != nil {
			t.Fatalf("GetRows() returned unexpected error: %v", err)
		}
		if len(rows) != model.MaxPolicyYears {
			t.Fatalf("Expected %d rows, got %d", model.MaxPolicyYears, len(rows))
		}

		// Policy year 1 maps to the age at start (30), later years follow.
		if rows[0].InsuranceAge != 30 {
			t.Errorf("Row 1 insurance age = %d, want 30", rows[0].InsuranceAge)
		}
		if rows[99].InsuranceAge != 129 {
			t.Errorf("Row 100 insurance age = %d, want 129", rows[99].InsuranceAge)
		}

		if !rows[0].Benefit.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("Row 1 benefit = %s, want 1000", rows[0].Benefit)
		}
		if !rows[1].Benefit.Equal(decimal.RequireFromString("2000")) {
			t.Errorf("Row 2 benefit = %s, want 2000", rows[1].Benefit)
		}
		if !rows[2].Benefit.IsZero() {
			t.Errorf("Row 3 benefit = %s, want 0", rows[2].Benefit)
		}
	})

	t.Run("returns not found for an unknown client", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInsuranceService(t, db)

		// Execute
		_, err := svc.CreateCalculator(testutil.MakeID(), "Acme Life", "Whole Life", model.USD, time.Now(), nil)

		// Assert
		if !errors.Is(err, apperrors.ErrClientNotFound) {
			t.Errorf("Expected ErrClientNotFound, got %v", err)
		}
	})
}

// TestInsuranceService_UpdateCalculator tests whole-table regeneration on
// update.
//
// WHY: A start-date edit shifts the age of every row; patching only some rows
// would leave the table internally inconsistent. The update must also be
// usable for metadata-only edits without retyping a hundred benefit amounts.
func TestInsuranceService_UpdateCalculator(t *testing.T) {
	t.Run("start date change recomputes every row age", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInsuranceService(t, db)

		client := testutil.NewClient().WithBirthDate(1985, 3, 10).Build(t, db)
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
		calc, err := svc.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, start, []string{"1000"})
		if err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		// Execute
		newStart := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
		if _, err := svc.UpdateCalculator(calc.ID, calc.Company, calc.Product, calc.Currency, newStart, []string{"1000"}); err != nil {
			t.Fatalf("UpdateCalculator() returned unexpected error: %v", err)
		}

		// Assert
		rows, err := svc.GetRows(calc.ID)
		if err != nil {
			t.Fatalf("GetRows() returned unexpected error: %v", err)
		}
		if rows[0].InsuranceAge != 35 {
			t.Errorf("Row 1 insurance age after shift = %d, want 35", rows[0].InsuranceAge)
		}
		if rows[99].InsuranceAge != 134 {
			t.Errorf("Row 100 insurance age after shift = %d, want 134", rows[99].InsuranceAge)
		}
	})

	t.Run("nil benefits keeps the previously entered amounts", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInsuranceService(t, db)

		client := testutil.NewClient().Build(t, db)
		start := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
		calc, err := svc.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, start, []string{"1000", "2000"})
		if err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		// Execute: rename only, benefits nil.
		updated, err := svc.UpdateCalculator(calc.ID, "Acme Life", "Whole Life Plus", calc.Currency, start, nil)

		// Assert
		if err != nil {
			t.Fatalf("UpdateCalculator() returned unexpected error: %v", err)
		}
		if updated.Product != "Whole Life Plus" {
			t.Errorf("Product = %q, want %q", updated.Product, "Whole Life Plus")
		}

		rows, err := svc.GetRows(calc.ID)
		if err != nil {
			t.Fatalf("GetRows() returned unexpected error: %v", err)
		}
		if !rows[0].Benefit.Equal(decimal.RequireFromString("1000")) {
			t.Errorf("Row 1 benefit = %s, want 1000 (preserved)", rows[0].Benefit)
		}
		if !rows[1].Benefit.Equal(decimal.RequireFromString("2000")) {
			t.Errorf("Row 2 benefit = %s, want 2000 (preserved)", rows[1].Benefit)
		}
	})

	t.Run("returns not found for an unknown calculator", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInsuranceService(t, db)

		// Execute
		_, err := svc.UpdateCalculator(testutil.MakeID(), "Acme Life", "Whole Life", model.USD, time.Now(), nil)

		// Assert
		if !errors.Is(err, apperrors.ErrCalculatorNotFound) {
			t.Errorf("Expected ErrCalculatorNotFound, got %v", err)
		}
	})
}

// TestInsuranceService_DeleteCalculator tests deletion with its rows.
func TestInsuranceService_DeleteCalculator(t *testing.T) {
	t.Run("removes the calculator and its table", func(t *testing.T) {
		// Setup
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestInsuranceService(t, db)

		client := testutil.NewClient().Build(t, db)
		calc, err := svc.CreateCalculator(client.ID, "Acme Life", "Whole Life", model.USD, time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC), nil)
		if err != nil {
			t.Fatalf("CreateCalculator() returned unexpected error: %v", err)
		}

		// Execute
		if err := svc.DeleteCalculator(calc.ID); err != nil {
			t.Fatalf("DeleteCalculator() returned unexpected error: %v", err)
		}

		// Assert
		if _, err := svc.GetCalculator(calc.ID); !errors.Is(err, apperrors.ErrCalculatorNotFound) {
			t.Errorf("Expected ErrCalculatorNotFound after delete, got %v", err)
		}
	})
}
