package ledger

import (
	"github.com/shopspring/decimal"
)

// ValuationService derives inventory valuation and profit figures from the
// ledger store. All derivations are pure reads; nothing here mutates state.
type ValuationService struct {
	store *Store
}

// NewValuationService creates a ValuationService over the given store
func NewValuationService(store *Store) *ValuationService {
	return &ValuationService{store: store}
}

// InventoryValue returns the unit's net stock in kg and its value at the
// current market price. Stock is rounded to the store's kg precision and
// value to 2 decimals. Both are zero when the unit has no records.
func (s *ValuationService) InventoryValue(unit Unit) (stockKg, value decimal.Decimal) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.inventoryValue(unit)
}

// OperatingExpenses returns the unit's expense total excluding the reserved
// equity-flow categories.
func (s *ValuationService) OperatingExpenses(unit Unit) decimal.Decimal {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.operatingExpenses(unit)
}

// ProfitLoss returns the unit's realized gross and net profit.
// Gross is sales minus purchases; net additionally deducts operating
// expenses. Withdrawals and contributions are equity distributions, not
// business costs, so neither reserved category is deducted.
func (s *ValuationService) ProfitLoss(unit Unit) (gross, net decimal.Decimal) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.profitLoss(unit)
}

// ProvisionalProfit returns the unrealized profit locked in current stock,
// net of capital injected and costs incurred. Floors at zero.
func (s *ValuationService) ProvisionalProfit(unit Unit) decimal.Decimal {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.provisionalProfit(unit)
}

// DistributableProfit returns the basis for partner entitlements: the
// greater of provisional and realized net profit, so partners can draw
// against whichever is currently larger.
func (s *ValuationService) DistributableProfit(unit Unit) decimal.Decimal {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.distributableProfit(unit)
}

// InvestmentTotal returns the sum of all capital injected into the unit
func (s *ValuationService) InvestmentTotal(unit Unit) decimal.Decimal {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	return s.store.investmentTotal(unit)
}

// ===================== Unlocked derivations =====================
// Callers must hold s.mu. Shared between the read-side services and the
// entitlement checks inside mutation operations.

func (s *Store) inventoryValue(unit Unit) (stockKg, value decimal.Decimal) {
	stock := decimal.Zero
	for _, r := range s.inventory {
		if r.Unit != unit {
			continue
		}
		if r.IsPurchase() {
			stock = stock.Add(r.QuantityKg)
		} else {
			stock = stock.Sub(r.QuantityKg)
		}
	}
	stock = stock.Round(s.kgPrecision)
	return stock, stock.Mul(s.currentPrice).Round(2)
}

func (s *Store) operatingExpenses(unit Unit) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.expenses {
		if e.Unit == unit && e.IsOperating() {
			total = total.Add(e.Amount)
		}
	}
	return total.Round(2)
}

func (s *Store) profitLoss(unit Unit) (gross, net decimal.Decimal) {
	sales := decimal.Zero
	purchases := decimal.Zero
	for _, r := range s.inventory {
		if r.Unit != unit {
			continue
		}
		if r.IsSale() {
			sales = sales.Add(r.TotalAmount)
		} else {
			purchases = purchases.Add(r.TotalAmount)
		}
	}
	gross = sales.Sub(purchases).Round(2)
	net = gross.Sub(s.operatingExpenses(unit)).Round(2)
	return gross, net
}

func (s *Store) investmentTotal(unit Unit) decimal.Decimal {
	total := decimal.Zero
	for _, r := range s.investments {
		if r.Unit == unit {
			total = total.Add(r.Amount)
		}
	}
	return total
}

func (s *Store) provisionalProfit(unit Unit) decimal.Decimal {
	_, value := s.inventoryValue(unit)
	provisional := value.Sub(s.investmentTotal(unit)).Sub(s.operatingExpenses(unit))
	if provisional.IsNegative() {
		return decimal.Zero
	}
	return provisional.Round(2)
}

func (s *Store) distributableProfit(unit Unit) decimal.Decimal {
	provisional := s.provisionalProfit(unit)
	_, net := s.profitLoss(unit)
	if net.GreaterThan(provisional) {
		return net
	}
	return provisional
}
