package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinanceService provides application-level expense and investment operations
type FinanceService struct {
	store     *ledger.Store
	ops       *ledger.Service
	valuation *ledger.ValuationService
}

// NewFinanceService creates a new FinanceService
func NewFinanceService(store *ledger.Store, ops *ledger.Service, valuation *ledger.ValuationService) *FinanceService {
	return &FinanceService{
		store:     store,
		ops:       ops,
		valuation: valuation,
	}
}

// ===================== Expense Operations =====================

// ExpenseRecordResponse represents an expense entry in API responses
type ExpenseRecordResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	BusinessUnit  string          `json:"business_unit"`
	Partner       *string         `json:"partner,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RecordExpenseRequest represents a request to record an operating expense
type RecordExpenseRequest struct {
	BusinessUnit  string          `json:"business_unit" binding:"required"`
	Date          time.Time       `json:"date"`
	Category      string          `json:"category" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"payment_method"`
}

// RecordExpense records an operating expense paid from the unit's cash
func (s *FinanceService) RecordExpense(req RecordExpenseRequest) (*ExpenseRecordResponse, error) {
	method := ledger.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = ledger.PaymentMethodCash
	}
	record, err := s.ops.RecordExpense(ledger.Unit(req.BusinessUnit), req.Date,
		ledger.ExpenseCategory(req.Category), req.Amount, req.Description, method)
	if err != nil {
		return nil, err
	}
	return toExpenseRecordResponse(record), nil
}

// ListExpenses returns a unit's expense entries oldest first, reserved
// equity-flow rows included
func (s *FinanceService) ListExpenses(unit string) []*ExpenseRecordResponse {
	records := s.store.ExpenseRecords(ledger.Unit(unit))
	out := make([]*ExpenseRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toExpenseRecordResponse(r))
	}
	return out
}

// OperatingExpenseTotal returns a unit's expense total excluding equity flows
func (s *FinanceService) OperatingExpenseTotal(unit string) decimal.Decimal {
	return s.valuation.OperatingExpenses(ledger.Unit(unit))
}

// ExpenseCategories lists the categories selectable for new expenses
func (s *FinanceService) ExpenseCategories() []string {
	return []string{
		string(ledger.ExpenseCategorySalaries),
		string(ledger.ExpenseCategoryUtilities),
		string(ledger.ExpenseCategoryRent),
		string(ledger.ExpenseCategoryAdministration),
		string(ledger.ExpenseCategoryOther),
	}
}

// ===================== Investment Operations =====================

// InvestmentRecordResponse represents a capital injection in API responses
type InvestmentRecordResponse struct {
	ID           uuid.UUID       `json:"id"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount"`
	Investor     string          `json:"investor"`
	Description  string          `json:"description,omitempty"`
	BusinessUnit string          `json:"business_unit"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RecordInvestmentRequest represents a request to record a capital injection
type RecordInvestmentRequest struct {
	BusinessUnit string          `json:"business_unit" binding:"required"`
	Date         time.Time       `json:"date"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Investor     string          `json:"investor" binding:"required"`
	Description  string          `json:"description"`
}

// RecordInvestment credits cash and distributes the amount across the
// unit's partners pro-rata to their shares
func (s *FinanceService) RecordInvestment(req RecordInvestmentRequest) (*InvestmentRecordResponse, error) {
	record, err := s.ops.RecordInvestment(ledger.Unit(req.BusinessUnit), req.Date, req.Amount, req.Investor, req.Description)
	if err != nil {
		return nil, err
	}
	return toInvestmentRecordResponse(record), nil
}

// ListInvestments returns a unit's capital injections oldest first
func (s *FinanceService) ListInvestments(unit string) []*InvestmentRecordResponse {
	records := s.store.InvestmentRecords(ledger.Unit(unit))
	out := make([]*InvestmentRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toInvestmentRecordResponse(r))
	}
	return out
}

// InvestmentTotal returns the sum of capital injected into a unit
func (s *FinanceService) InvestmentTotal(unit string) decimal.Decimal {
	return s.valuation.InvestmentTotal(ledger.Unit(unit))
}

func toExpenseRecordResponse(r *ledger.ExpenseRecord) *ExpenseRecordResponse {
	return &ExpenseRecordResponse{
		ID:            r.ID,
		Date:          r.Date,
		Category:      r.Category.String(),
		Amount:        r.Amount,
		Description:   r.Description,
		BusinessUnit:  r.Unit.String(),
		Partner:       r.Partner,
		PaymentMethod: string(r.PaymentMethod),
		CreatedAt:     r.CreatedAt,
	}
}

func toInvestmentRecordResponse(r *ledger.InvestmentRecord) *InvestmentRecordResponse {
	return &InvestmentRecordResponse{
		ID:           r.ID,
		Date:         r.Date,
		Amount:       r.Amount,
		Investor:     r.Investor,
		Description:  r.Description,
		BusinessUnit: r.Unit.String(),
		CreatedAt:    r.CreatedAt,
	}
}
