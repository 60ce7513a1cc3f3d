package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ExpenseCategory labels an expense. The set is open, but two categories are
// reserved for internal equity flows and excluded from operating expenses.
type ExpenseCategory string

const (
	ExpenseCategorySalaries       ExpenseCategory = "Staff Salaries"
	ExpenseCategoryUtilities      ExpenseCategory = "Utilities"
	ExpenseCategoryRent           ExpenseCategory = "Rent"
	ExpenseCategoryAdministration ExpenseCategory = "Administration"
	ExpenseCategoryOther          ExpenseCategory = "Other"

	// Reserved categories recording partner-equity mutations as expense
	// entries. They are never operating costs: counting them would
	// double-book equity flows into P&L.
	ExpenseCategoryPartnerWithdrawal   ExpenseCategory = "Partner Withdrawal"
	ExpenseCategoryPartnerContribution ExpenseCategory = "Partner Contribution"
)

// IsReserved reports whether the category records an equity flow
func (c ExpenseCategory) IsReserved() bool {
	return c == ExpenseCategoryPartnerWithdrawal || c == ExpenseCategoryPartnerContribution
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// PaymentMethod describes how an expense was settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// ExpenseRecord is an append-only expense ledger entry. Partner is set only
// on reserved-category rows tying the entry to a partner.
type ExpenseRecord struct {
	shared.BaseEntity
	Date          time.Time       `json:"date"`
	Category      ExpenseCategory `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	Unit          Unit            `json:"business_unit"`
	Partner       *string         `json:"partner,omitempty"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
}

// NewExpenseRecord creates an expense entry with a positive amount
func NewExpenseRecord(unit Unit, date time.Time, category ExpenseCategory, amount decimal.Decimal, description string, partner *string, method PaymentMethod) (*ExpenseRecord, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category cannot be empty")
	}

	return &ExpenseRecord{
		BaseEntity:    shared.NewBaseEntity(),
		Date:          date,
		Category:      category,
		Amount:        amount,
		Description:   description,
		Unit:          unit,
		Partner:       partner,
		PaymentMethod: method,
	}, nil
}

// IsOperating reports whether the entry counts toward operating expenses
func (e *ExpenseRecord) IsOperating() bool {
	return !e.Category.IsReserved()
}
