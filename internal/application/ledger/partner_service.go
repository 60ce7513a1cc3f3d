package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerService provides application-level partner equity operations
type PartnerService struct {
	store  *ledger.Store
	ops    *ledger.Service
	equity *ledger.EquityService
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(store *ledger.Store, ops *ledger.Service, equity *ledger.EquityService) *PartnerService {
	return &PartnerService{
		store:  store,
		ops:    ops,
		equity: equity,
	}
}

// PartnerResponse represents a partner row in API responses
type PartnerResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Share        decimal.Decimal `json:"share"`
	Withdrawn    decimal.Decimal `json:"withdrawn"`
	Invested     decimal.Decimal `json:"invested"`
	BusinessUnit string          `json:"business_unit"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PartnerProfitResponse represents one partner's entitlement figures
type PartnerProfitResponse struct {
	Partner          string          `json:"partner"`
	Share            decimal.Decimal `json:"share"`
	TotalEntitlement decimal.Decimal `json:"total_entitlement"`
	Withdrawn        decimal.Decimal `json:"withdrawn"`
	AvailableNow     decimal.Decimal `json:"available_now"`
}

// CombinedPartnerProfitResponse aggregates one person across all units
type CombinedPartnerProfitResponse struct {
	Partner          string          `json:"partner"`
	Share            decimal.Decimal `json:"share"`
	SharePercentage  decimal.Decimal `json:"share_percentage"`
	TotalEntitlement decimal.Decimal `json:"total_entitlement"`
	Withdrawn        decimal.Decimal `json:"withdrawn"`
	AvailableNow     decimal.Decimal `json:"available_now"`
	BusinessUnits    []string        `json:"business_units"`
}

// AddPartnerRequest represents a request to add a partner to a unit
type AddPartnerRequest struct {
	BusinessUnit string          `json:"business_unit" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Share        decimal.Decimal `json:"share" binding:"required"`
}

// RemovePartnerRequest represents a request to remove a partner. The freed
// share is redistributed across the remaining partners unless a successor
// takes over part of it.
type RemovePartnerRequest struct {
	BusinessUnit   string          `json:"business_unit" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	SuccessorName  string          `json:"successor_name"`
	SuccessorShare decimal.Decimal `json:"successor_share"`
}

// RecordWithdrawalRequest represents a request to pay out part of a
// partner's available entitlement
type RecordWithdrawalRequest struct {
	BusinessUnit string          `json:"business_unit" binding:"required"`
	Partner      string          `json:"partner" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Description  string          `json:"description"`
}

// ListPartners returns a unit's equity table in insertion order
func (s *PartnerService) ListPartners(unit string) []*PartnerResponse {
	rows := s.store.Partners(ledger.Unit(unit))
	out := make([]*PartnerResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPartnerResponse(p, ledger.Unit(unit)))
	}
	return out
}

// AddPartner adds a partner row within the unit's remaining allocation
func (s *PartnerService) AddPartner(req AddPartnerRequest) (*PartnerResponse, error) {
	partner, err := s.ops.AddPartner(ledger.Unit(req.BusinessUnit), req.Name, req.Share)
	if err != nil {
		return nil, err
	}
	return toPartnerResponse(partner, ledger.Unit(req.BusinessUnit)), nil
}

// RemovePartner removes a partner and settles the freed share: assigned to a
// successor when one is named, redistributed proportionally otherwise. The
// removal itself is atomic per step; a failed successor assignment leaves
// the freed share redistributed.
func (s *PartnerService) RemovePartner(req RemovePartnerRequest) ([]*PartnerResponse, error) {
	unit := ledger.Unit(req.BusinessUnit)
	freed, err := s.ops.RemovePartner(unit, req.Name)
	if err != nil {
		return nil, err
	}

	var rows []*ledger.Partner
	if req.SuccessorName != "" {
		rows, err = s.ops.AssignFreedShare(unit, freed, req.SuccessorName, req.SuccessorShare)
		if err != nil {
			// Fall back so the table still sums to 100.
			if rows, ferr := s.ops.RedistributeFreedShare(unit, freed); ferr == nil {
				return toPartnerResponses(rows, unit), err
			}
			return nil, err
		}
	} else {
		rows, err = s.ops.RedistributeFreedShare(unit, freed)
		if err != nil {
			return nil, err
		}
	}
	return toPartnerResponses(rows, unit), nil
}

// RecordWithdrawal pays out part of a partner's available entitlement
func (s *PartnerService) RecordWithdrawal(req RecordWithdrawalRequest) (*ExpenseRecordResponse, error) {
	record, err := s.ops.RecordWithdrawal(ledger.Unit(req.BusinessUnit), req.Partner, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}
	return toExpenseRecordResponse(record), nil
}

// PartnerProfits returns per-partner entitlement figures for one unit
func (s *PartnerService) PartnerProfits(unit string) []*PartnerProfitResponse {
	profits := s.equity.PartnerProfits(ledger.Unit(unit))
	out := make([]*PartnerProfitResponse, 0, len(profits))
	for _, p := range profits {
		out = append(out, &PartnerProfitResponse{
			Partner:          p.Partner,
			Share:            p.Share,
			TotalEntitlement: p.TotalEntitlement,
			Withdrawn:        p.Withdrawn,
			AvailableNow:     p.AvailableNow,
		})
	}
	return out
}

// CombinedPartnerProfits aggregates entitlements per person across units
func (s *PartnerService) CombinedPartnerProfits() []*CombinedPartnerProfitResponse {
	combined := s.equity.CombinedPartnerProfits()
	out := make([]*CombinedPartnerProfitResponse, 0, len(combined))
	for _, c := range combined {
		units := make([]string, 0, len(c.Units))
		for _, u := range c.Units {
			units = append(units, u.String())
		}
		out = append(out, &CombinedPartnerProfitResponse{
			Partner:          c.Partner,
			Share:            c.Share,
			SharePercentage:  c.SharePercentage,
			TotalEntitlement: c.TotalEntitlement,
			Withdrawn:        c.Withdrawn,
			AvailableNow:     c.AvailableNow,
			BusinessUnits:    units,
		})
	}
	return out
}

func toPartnerResponse(p *ledger.Partner, unit ledger.Unit) *PartnerResponse {
	return &PartnerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Share:        p.Share.Value(),
		Withdrawn:    p.Withdrawn,
		Invested:     p.Invested,
		BusinessUnit: unit.String(),
		CreatedAt:    p.CreatedAt,
	}
}

func toPartnerResponses(rows []*ledger.Partner, unit ledger.Unit) []*PartnerResponse {
	out := make([]*PartnerResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPartnerResponse(p, unit))
	}
	return out
}
