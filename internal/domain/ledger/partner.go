package ledger

import (
	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/bizmaster/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Partner is a row in a unit's equity table. Withdrawn and Invested are
// cumulative and authoritative: entitlement math reads them directly rather
// than re-deriving from the expense log, to avoid drift.
type Partner struct {
	shared.BaseEntity
	Name      string            `json:"partner"`
	Share     valueobject.Share `json:"share"`
	Withdrawn decimal.Decimal   `json:"withdrawn"`
	Invested  decimal.Decimal   `json:"invested"`
}

// NewPartner creates a partner with zero cumulative withdrawals and investments
func NewPartner(name string, share valueobject.Share) (*Partner, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PARTNER_NAME", "Partner name cannot be empty")
	}

	return &Partner{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Share:      share,
		Withdrawn:  decimal.Zero,
		Invested:   decimal.Zero,
	}, nil
}

// recordWithdrawal adds to the cumulative withdrawn figure. Entitlement
// checks happen at the operation level, where distributable profit is known.
func (p *Partner) recordWithdrawal(amount decimal.Decimal) {
	p.Withdrawn = p.Withdrawn.Add(amount)
}

// recordContribution adds a pro-rata investment portion to the cumulative
// invested figure.
func (p *Partner) recordContribution(amount decimal.Decimal) {
	p.Invested = p.Invested.Add(amount)
}

// clone returns an independent copy for read-side snapshots
func (p *Partner) clone() *Partner {
	cp := *p
	return &cp
}
