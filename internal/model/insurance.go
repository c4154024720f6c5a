package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceCalculator is one policy's benefit-projection table, scoped to
// client + company + product. Its rows map policy years to insurance ages and
// benefit amounts; the age mapping is a pure function of the client's birth
// date and the policy start date.
type InsuranceCalculator struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId"`
	Company   string    `json:"company"`
	Product   string    `json:"product"`
	Currency  Currency  `json:"currency"`
	StartDate time.Time `json:"startDate"`
}

// InsuranceCalculatorRow is one policy-year entry (1..100). InsuranceAge is
// derived from the policy year and the age at policy start and is recomputed
// for every row whenever the start date changes, never patched partially.
type InsuranceCalculatorRow struct {
	ID           string          `json:"id"`
	CalculatorID string          `json:"calculatorId"`
	PolicyYear   int             `json:"policyYear"`
	InsuranceAge int             `json:"insuranceAge"`
	Benefit      decimal.Decimal `json:"benefit"`
}

// MaxPolicyYears is the number of rows each calculator carries.
const MaxPolicyYears = 100

// MaxInsuranceAge bounds the benefit-projection lookup table (ages 0..100).
const MaxInsuranceAge = 100
