package ledger

import "github.com/shopspring/decimal"

// UnitSummary is a consistent snapshot of one unit's financial position.
// All figures are rounded to 2 decimal places.
type UnitSummary struct {
	Unit              Unit            `json:"unit"`
	CashBalance       decimal.Decimal `json:"cash_balance"`
	StockKg           decimal.Decimal `json:"stock_kg"`
	InventoryValue    decimal.Decimal `json:"inventory_value"`
	GrossProfit       decimal.Decimal `json:"gross_profit"`
	NetProfit         decimal.Decimal `json:"net_profit"`
	ProvisionalProfit decimal.Decimal `json:"provisional_profit"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
	InvestmentTotal   decimal.Decimal `json:"investment_total"`
	PartnerCount      int             `json:"partner_count"`
}

// SystemSummary aggregates every unit plus cross-unit totals
type SystemSummary struct {
	Units             []UnitSummary   `json:"units"`
	TotalCash         decimal.Decimal `json:"total_cash"`
	TotalStockKg      decimal.Decimal `json:"total_stock_kg"`
	TotalValue        decimal.Decimal `json:"total_value"`
	TotalInvestments  decimal.Decimal `json:"total_investments"`
	CurrentPrice      decimal.Decimal `json:"current_price"`
	TransactionCount  int             `json:"transaction_count"`
	AllExpensesTotal  decimal.Decimal `json:"all_expenses_total"`
	OperatingExpenses decimal.Decimal `json:"operating_expenses"`
}

// SummaryService assembles read-only snapshots of the ledger. Each snapshot
// is computed under a single read lock so all figures within it are mutually
// consistent.
type SummaryService struct {
	store *Store
}

// NewSummaryService creates a SummaryService over the given store
func NewSummaryService(store *Store) *SummaryService {
	return &SummaryService{store: store}
}

// UnitSummary returns one unit's snapshot
func (s *SummaryService) UnitSummary(unit Unit) (UnitSummary, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if !s.store.hasUnit(unit) {
		return UnitSummary{}, ErrUnknownUnit
	}
	return s.store.unitSummary(unit), nil
}

// SystemSummary returns the snapshot of the whole ledger
func (s *SummaryService) SystemSummary() SystemSummary {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	out := SystemSummary{
		Units:        make([]UnitSummary, 0, len(s.store.units)),
		CurrentPrice: s.store.currentPrice,
	}
	for _, unit := range s.store.units {
		us := s.store.unitSummary(unit)
		out.Units = append(out.Units, us)
		out.TotalCash = out.TotalCash.Add(us.CashBalance)
		out.TotalStockKg = out.TotalStockKg.Add(us.StockKg)
		out.TotalValue = out.TotalValue.Add(us.InventoryValue)
		out.TotalInvestments = out.TotalInvestments.Add(us.InvestmentTotal)
		out.OperatingExpenses = out.OperatingExpenses.Add(us.OperatingExpenses)
	}
	out.TransactionCount = len(s.store.transactions)
	out.AllExpensesTotal = s.store.allExpenses().Round(2)
	return out
}

// unitSummary assembles one unit's figures. Caller must hold the lock.
func (s *Store) unitSummary(unit Unit) UnitSummary {
	stock, value := s.inventoryValue(unit)
	gross, net := s.profitLoss(unit)
	return UnitSummary{
		Unit:              unit,
		CashBalance:       s.cash[unit].Round(2),
		StockKg:           stock,
		InventoryValue:    value,
		GrossProfit:       gross,
		NetProfit:         net,
		ProvisionalProfit: s.provisionalProfit(unit),
		OperatingExpenses: s.operatingExpenses(unit),
		InvestmentTotal:   s.investmentTotal(unit),
		PartnerCount:      len(s.partners[unit]),
	}
}

// allExpenses sums every expense entry including the reserved equity-flow
// categories. Caller must hold the lock.
func (s *Store) allExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.expenses {
		total = total.Add(e.Amount)
	}
	return total
}
