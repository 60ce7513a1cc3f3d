package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvestmentRecord is an append-only capital injection entry
type InvestmentRecord struct {
	shared.BaseEntity
	Date        time.Time       `json:"date"`
	Unit        Unit            `json:"business_unit"`
	Amount      decimal.Decimal `json:"amount"`
	Investor    string          `json:"investor"`
	Description string          `json:"description"`
}

// NewInvestmentRecord creates an investment entry with a positive amount
func NewInvestmentRecord(unit Unit, date time.Time, amount decimal.Decimal, investor, description string) (*InvestmentRecord, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if investor == "" {
		return nil, shared.NewDomainError("INVALID_INVESTOR", "Investor name cannot be empty")
	}
	if description == "" {
		description = "Investment from " + investor
	}

	return &InvestmentRecord{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Unit:        unit,
		Amount:      amount,
		Investor:    investor,
		Description: description,
	}, nil
}

// Matches reports whether the record collides with the given submission.
// Two investments with identical (unit, investor, amount, day) may not
// coexist; this guards against double-submit duplication.
func (r *InvestmentRecord) Matches(unit Unit, investor string, amount decimal.Decimal, day time.Time) bool {
	return r.Unit == unit &&
		r.Investor == investor &&
		r.Amount.Equal(amount) &&
		sameDay(r.Date, day)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
