package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/bizmaster/backend/internal/infrastructure/export"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportService provides dashboard summaries, the audit trail, and CSV
// exports of every dataset
type ReportService struct {
	store     *ledger.Store
	summaries *ledger.SummaryService
}

// NewReportService creates a new ReportService
func NewReportService(store *ledger.Store, summaries *ledger.SummaryService) *ReportService {
	return &ReportService{store: store, summaries: summaries}
}

// UnitSummaryResponse represents one unit's financial snapshot
type UnitSummaryResponse struct {
	BusinessUnit      string          `json:"business_unit"`
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

// SystemSummaryResponse represents the cross-unit snapshot
type SystemSummaryResponse struct {
	Units             []UnitSummaryResponse `json:"units"`
	TotalCash         decimal.Decimal       `json:"total_cash"`
	TotalStockKg      decimal.Decimal       `json:"total_stock_kg"`
	TotalValue        decimal.Decimal       `json:"total_value"`
	TotalInvestments  decimal.Decimal       `json:"total_investments"`
	CurrentPrice      decimal.Decimal       `json:"current_price"`
	TransactionCount  int                   `json:"transaction_count"`
	AllExpensesTotal  decimal.Decimal       `json:"all_expenses_total"`
	OperatingExpenses decimal.Decimal       `json:"operating_expenses"`
}

// TransactionLogResponse represents one audit trail entry
type TransactionLogResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	From        string          `json:"from"`
	To          string          `json:"to"`
	Description string          `json:"description"`
}

// ExportResponse carries a rendered CSV document
type ExportResponse struct {
	Filename string
	Data     []byte
}

// UnitSummary returns one unit's snapshot
func (s *ReportService) UnitSummary(unit string) (*UnitSummaryResponse, error) {
	us, err := s.summaries.UnitSummary(ledger.Unit(unit))
	if err != nil {
		return nil, err
	}
	out := toUnitSummaryResponse(us)
	return &out, nil
}

// SystemSummary returns the snapshot of every unit plus totals
func (s *ReportService) SystemSummary() *SystemSummaryResponse {
	sys := s.summaries.SystemSummary()
	units := make([]UnitSummaryResponse, 0, len(sys.Units))
	for _, us := range sys.Units {
		units = append(units, toUnitSummaryResponse(us))
	}
	return &SystemSummaryResponse{
		Units:             units,
		TotalCash:         sys.TotalCash,
		TotalStockKg:      sys.TotalStockKg,
		TotalValue:        sys.TotalValue,
		TotalInvestments:  sys.TotalInvestments,
		CurrentPrice:      sys.CurrentPrice,
		TransactionCount:  sys.TransactionCount,
		AllExpensesTotal:  sys.AllExpensesTotal,
		OperatingExpenses: sys.OperatingExpenses,
	}
}

// TransactionLog returns the audit trail oldest first
func (s *ReportService) TransactionLog() []*TransactionLogResponse {
	entries := s.store.TransactionLog()
	out := make([]*TransactionLogResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &TransactionLogResponse{
			ID:          e.ID,
			Date:        e.Date,
			Type:        string(e.Type),
			Amount:      e.Amount,
			From:        e.From,
			To:          e.To,
			Description: e.Description,
		})
	}
	return out
}

// Export datasets selectable via the export endpoint
const (
	DatasetInventory    = "inventory"
	DatasetExpenses     = "expenses"
	DatasetInvestments  = "investments"
	DatasetPartners     = "partners"
	DatasetTransactions = "transactions"
)

// ExportCSV renders one dataset as a CSV document covering all units
func (s *ReportService) ExportCSV(dataset string, at time.Time) (*ExportResponse, error) {
	var (
		data []byte
		err  error
	)
	switch dataset {
	case DatasetInventory:
		data, err = s.exportInventory()
	case DatasetExpenses:
		data, err = s.exportExpenses()
	case DatasetInvestments:
		data, err = s.exportInvestments()
	case DatasetPartners:
		data, err = s.exportPartners()
	case DatasetTransactions:
		data, err = s.exportTransactions()
	default:
		return nil, shared.NewDomainError("UNKNOWN_DATASET", "Unknown export dataset")
	}
	if err != nil {
		return nil, err
	}
	return &ExportResponse{Filename: export.Filename(dataset, at), Data: data}, nil
}

func (s *ReportService) exportInventory() ([]byte, error) {
	w := export.NewCSVWriter("date", "type", "quantity_kg", "unit_price", "total_amount", "business_unit", "remarks")
	for _, unit := range s.store.Units() {
		for _, r := range s.store.InventoryRecords(unit) {
			if err := w.AppendRow(r.Date, r.Type, r.QuantityKg, r.UnitPrice, r.TotalAmount, r.Unit, r.Remarks); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes()
}

func (s *ReportService) exportExpenses() ([]byte, error) {
	w := export.NewCSVWriter("date", "category", "amount", "description", "business_unit", "partner", "payment_method")
	for _, unit := range s.store.Units() {
		for _, r := range s.store.ExpenseRecords(unit) {
			partner := ""
			if r.Partner != nil {
				partner = *r.Partner
			}
			if err := w.AppendRow(r.Date, r.Category, r.Amount, r.Description, r.Unit, partner, string(r.PaymentMethod)); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes()
}

func (s *ReportService) exportInvestments() ([]byte, error) {
	w := export.NewCSVWriter("date", "amount", "investor", "description", "business_unit")
	for _, unit := range s.store.Units() {
		for _, r := range s.store.InvestmentRecords(unit) {
			if err := w.AppendRow(r.Date, r.Amount, r.Investor, r.Description, r.Unit); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes()
}

func (s *ReportService) exportPartners() ([]byte, error) {
	w := export.NewCSVWriter("name", "share", "withdrawn", "invested", "business_unit")
	for _, unit := range s.store.Units() {
		for _, p := range s.store.Partners(unit) {
			if err := w.AppendRow(p.Name, p.Share.Value(), p.Withdrawn, p.Invested, unit); err != nil {
				return nil, err
			}
		}
	}
	return w.Bytes()
}

func (s *ReportService) exportTransactions() ([]byte, error) {
	w := export.NewCSVWriter("date", "type", "amount", "from", "to", "description")
	for _, e := range s.store.TransactionLog() {
		if err := w.AppendRow(e.Date, e.Type, e.Amount, e.From, e.To, e.Description); err != nil {
			return nil, err
		}
	}
	return w.Bytes()
}

func toUnitSummaryResponse(us ledger.UnitSummary) UnitSummaryResponse {
	return UnitSummaryResponse{
		BusinessUnit:      us.Unit.String(),
		CashBalance:       us.CashBalance,
		StockKg:           us.StockKg,
		InventoryValue:    us.InventoryValue,
		GrossProfit:       us.GrossProfit,
		NetProfit:         us.NetProfit,
		ProvisionalProfit: us.ProvisionalProfit,
		OperatingExpenses: us.OperatingExpenses,
		InvestmentTotal:   us.InvestmentTotal,
		PartnerCount:      us.PartnerCount,
	}
}
