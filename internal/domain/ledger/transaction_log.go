package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionLogType labels an audit trail entry
type TransactionLogType string

const (
	TransactionLogExpense    TransactionLogType = "Expense"
	TransactionLogInvestment TransactionLogType = "Investment"
	TransactionLogWithdrawal TransactionLogType = "Partner Withdrawal"
)

// TransactionLogEntry is an output-only audit record appended by every
// money-moving operation. The engine never reads it back.
type TransactionLogEntry struct {
	shared.BaseEntity
	Date        time.Time          `json:"date"`
	Type        TransactionLogType `json:"type"`
	Amount      decimal.Decimal    `json:"amount"`
	From        string             `json:"from"`
	To          string             `json:"to"`
	Description string             `json:"description"`
}

// appendTransactionLog records an audit entry. Logging is best-effort and can
// never fail the operation that triggered it: zero amounts are silently
// skipped, mirroring the money-moving guard.
func (s *Store) appendTransactionLog(logType TransactionLogType, amount decimal.Decimal, from, to, description string) {
	if amount.IsZero() {
		return
	}
	if description == "" {
		description = string(logType) + " transaction"
	}
	s.transactions = append(s.transactions, &TransactionLogEntry{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        s.now(),
		Type:        logType,
		Amount:      amount,
		From:        from,
		To:          to,
		Description: description,
	})
}
