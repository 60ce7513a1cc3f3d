package ledger

import (
	"sort"

	"github.com/bizmaster/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PartnerProfit is one row of a unit's profit-distribution table
type PartnerProfit struct {
	Partner          string          `json:"partner"`
	Share            decimal.Decimal `json:"share"`
	TotalEntitlement decimal.Decimal `json:"total_entitlement"`
	Withdrawn        decimal.Decimal `json:"withdrawn"`
	AvailableNow     decimal.Decimal `json:"available_now"`
}

// CombinedPartnerProfit is one row of the cross-unit aggregation. Partners
// appearing in multiple units are merged into a single row keyed by name.
type CombinedPartnerProfit struct {
	Partner          string          `json:"partner"`
	Share            decimal.Decimal `json:"share"`
	SharePercentage  decimal.Decimal `json:"share_percentage"`
	TotalEntitlement decimal.Decimal `json:"total_entitlement"`
	Withdrawn        decimal.Decimal `json:"withdrawn"`
	AvailableNow     decimal.Decimal `json:"available_now"`
	Units            []Unit          `json:"business_units"`
}

// EquityService derives per-partner entitlement and withdrawal figures.
// Withdrawn amounts come from the authoritative Partner rows, never
// re-derived from the expense log.
type EquityService struct {
	store *Store
}

// NewEquityService creates an EquityService over the given store
func NewEquityService(store *Store) *EquityService {
	return &EquityService{store: store}
}

// PartnerProfits returns the unit's profit-distribution table. Entitlement
// is share/100 of distributable profit; available-now floors at zero per
// partner. Empty when the unit has no partners.
func (s *EquityService) PartnerProfits(unit Unit) []PartnerProfit {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.partnerProfits(unit)
}

// CombinedPartnerProfits aggregates partner profits across all units,
// merging rows by partner name and recomputing each partner's share of the
// combined total.
func (s *EquityService) CombinedPartnerProfits() []CombinedPartnerProfit {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var order []string
	merged := make(map[string]*CombinedPartnerProfit)
	for _, unit := range s.store.units {
		for _, row := range s.store.partnerProfits(unit) {
			combined, ok := merged[row.Partner]
			if !ok {
				combined = &CombinedPartnerProfit{Partner: row.Partner}
				merged[row.Partner] = combined
				order = append(order, row.Partner)
			}
			combined.Share = combined.Share.Add(row.Share)
			combined.TotalEntitlement = combined.TotalEntitlement.Add(row.TotalEntitlement)
			combined.Withdrawn = combined.Withdrawn.Add(row.Withdrawn)
			combined.AvailableNow = combined.AvailableNow.Add(row.AvailableNow)
			combined.Units = append(combined.Units, unit)
		}
	}
	if len(order) == 0 {
		return nil
	}

	totalShares := decimal.Zero
	for _, name := range order {
		totalShares = totalShares.Add(merged[name].Share)
	}

	out := make([]CombinedPartnerProfit, 0, len(order))
	for _, name := range order {
		row := merged[name]
		if !totalShares.IsZero() {
			row.SharePercentage = row.Share.Div(totalShares).Mul(valueobject.MaxShare).Round(2)
		}
		sort.Slice(row.Units, func(i, j int) bool { return row.Units[i] < row.Units[j] })
		out = append(out, *row)
	}
	return out
}

// partnerProfits is the unlocked derivation shared with mutation operations.
// Callers must hold s.mu.
func (s *Store) partnerProfits(unit Unit) []PartnerProfit {
	partners := s.partners[unit]
	if len(partners) == 0 {
		return nil
	}

	distributable := s.distributableProfit(unit)
	rows := make([]PartnerProfit, 0, len(partners))
	for _, p := range partners {
		entitlement := p.Share.ApplyTo(distributable).Round(2)
		available := entitlement.Sub(p.Withdrawn)
		if available.IsNegative() {
			available = decimal.Zero
		}
		rows = append(rows, PartnerProfit{
			Partner:          p.Name,
			Share:            p.Share.Value(),
			TotalEntitlement: entitlement,
			Withdrawn:        p.Withdrawn.Round(2),
			AvailableNow:     available.Round(2),
		})
	}
	return rows
}

// availableNow returns a partner's entitlement minus cumulative withdrawals,
// floored at zero. Callers must hold s.mu.
func (s *Store) availableNow(unit Unit, name string) (decimal.Decimal, bool) {
	for _, row := range s.partnerProfits(unit) {
		if row.Partner == name {
			return row.AvailableNow, true
		}
	}
	return decimal.Zero, false
}

// RedistributeShares distributes a freed percentage proportionally to the
// partners' current shares, then re-normalizes so the total is exactly 100
// (guarding against floating-point drift), rounded to 2 decimals. It is a
// no-op on an empty or zero-share set. The input rows are not modified.
func RedistributeShares(partners []*Partner, freedShare decimal.Decimal) []*Partner {
	if len(partners) == 0 {
		return partners
	}
	total := decimal.Zero
	for _, p := range partners {
		total = total.Add(p.Share.Value())
	}
	if total.LessThanOrEqual(decimal.Zero) {
		return partners
	}

	grown := make([]decimal.Decimal, len(partners))
	grownTotal := decimal.Zero
	for i, p := range partners {
		grown[i] = p.Share.Value().Add(p.Share.Value().Div(total).Mul(freedShare))
		grownTotal = grownTotal.Add(grown[i])
	}

	out := make([]*Partner, len(partners))
	for i, p := range partners {
		normalized := grown[i].Mul(valueobject.MaxShare).Div(grownTotal)
		share, err := valueobject.NewShare(normalized.Round(2))
		if err != nil {
			// Sub-cent shares can round to zero; keep the unrounded value.
			share = valueobject.MustShare(normalized)
		}
		cp := p.clone()
		cp.Share = share
		out[i] = cp
	}
	return out
}
