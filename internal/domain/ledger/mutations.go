package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Service executes the validated, all-or-nothing mutation operations on the
// ledger store. Every operation either completes fully or is rejected
// synchronously with no partial effect: all preconditions are checked before
// the first state change. Money-moving operations append an audit trail
// entry as a best-effort side effect that cannot fail the operation.
type Service struct {
	store *Store
}

// NewService creates a mutation Service over the given store
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordPurchase appends a purchase movement and debits the unit's cash by
// quantity × price. The record is not appended when the cash check fails.
func (s *Service) RecordPurchase(unit Unit, date time.Time, quantityKg, unitPrice decimal.Decimal, remarks string) (*InventoryRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) || unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	total := quantityKg.Mul(unitPrice).Round(2)
	if total.LessThan(minAmount) {
		return nil, ErrInvalidAmount
	}
	if !s.store.canDebit(unit, total) {
		return nil, ErrInsufficientFunds
	}

	record, err := NewInventoryRecord(unit, s.orNow(date), TransactionTypePurchase, quantityKg, unitPrice, remarks)
	if err != nil {
		return nil, err
	}
	if err := s.store.debitCash(unit, total); err != nil {
		return nil, err
	}
	s.store.inventory = append(s.store.inventory, record)
	return record, nil
}

// RecordSale appends a sale movement and credits the unit's cash
func (s *Service) RecordSale(unit Unit, date time.Time, quantityKg, unitPrice decimal.Decimal, remarks string) (*InventoryRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) || unitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	total := quantityKg.Mul(unitPrice).Round(2)
	if total.LessThan(minAmount) {
		return nil, ErrInvalidAmount
	}

	record, err := NewInventoryRecord(unit, s.orNow(date), TransactionTypeSale, quantityKg, unitPrice, remarks)
	if err != nil {
		return nil, err
	}
	if err := s.store.creditCash(unit, total); err != nil {
		return nil, err
	}
	s.store.inventory = append(s.store.inventory, record)
	return record, nil
}

// RecordExpense appends an operating expense and debits the unit's cash.
// The reserved equity-flow categories are rejected; they are written only by
// RecordInvestment and RecordWithdrawal.
func (s *Service) RecordExpense(unit Unit, date time.Time, category ExpenseCategory, amount decimal.Decimal, description string, method PaymentMethod) (*ExpenseRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	if category.IsReserved() {
		return nil, ErrReservedCategory
	}
	amount = amount.Round(2)
	if amount.LessThan(minAmount) {
		return nil, ErrInvalidAmount
	}
	if !s.store.canDebit(unit, amount) {
		return nil, ErrInsufficientFunds
	}

	record, err := NewExpenseRecord(unit, s.orNow(date), category, amount, description, nil, method)
	if err != nil {
		return nil, err
	}
	if err := s.store.debitCash(unit, amount); err != nil {
		return nil, err
	}
	s.store.expenses = append(s.store.expenses, record)
	s.store.appendTransactionLog(TransactionLogExpense, amount, unit.String(), category.String(), description)
	return record, nil
}

// UpdateMarketPrice sets the process-wide price per kg and appends a price
// history entry.
func (s *Service) UpdateMarketPrice(newPrice decimal.Decimal) error {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if newPrice.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}
	s.store.currentPrice = newPrice
	s.store.priceHistory = append(s.store.priceHistory, newPricePoint(newPrice, s.store.now()))
	return nil
}

// AddPartner appends a partner row to the unit's equity table. The unit's
// total allocation may never exceed 100%.
func (s *Service) AddPartner(unit Unit, name string, shareValue decimal.Decimal) (*Partner, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	if s.store.findPartner(unit, name) != nil {
		return nil, ErrDuplicatePartner
	}
	share, err := valueobject.NewShare(shareValue)
	if err != nil {
		if shareValue.GreaterThan(valueobject.MaxShare) {
			return nil, ErrShareExceeds100
		}
		return nil, ErrInvalidShare
	}
	if s.store.totalShares(unit).Add(shareValue).GreaterThan(valueobject.MaxShare) {
		return nil, ErrShareExceeds100
	}

	partner, err := NewPartner(name, share)
	if err != nil {
		return nil, err
	}
	s.store.partners[unit] = append(s.store.partners[unit], partner)
	return partner, nil
}

// RemovePartner deletes a partner row and returns the freed share. The
// caller decides what to do with it in a follow-up step: redistribute among
// the remaining partners or assign it to a new partner.
func (s *Service) RemovePartner(unit Unit, name string) (freedShare decimal.Decimal, err error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return decimal.Zero, ErrUnknownUnit
	}
	rows := s.store.partners[unit]
	for i, p := range rows {
		if p.Name == name {
			s.store.partners[unit] = append(rows[:i:i], rows[i+1:]...)
			return p.Share.Value(), nil
		}
	}
	return decimal.Zero, ErrPartnerNotFound
}

// RedistributeFreedShare distributes a freed percentage proportionally among
// the unit's remaining partners. No-op when the unit has no partners.
func (s *Service) RedistributeFreedShare(unit Unit, freedShare decimal.Decimal) ([]*Partner, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	s.store.partners[unit] = RedistributeShares(s.store.partners[unit], freedShare)
	return clonePartners(s.store.partners[unit]), nil
}

// AssignFreedShare gives part of a freed percentage to a new partner and
// redistributes any remainder among the full table (new partner included).
func (s *Service) AssignFreedShare(unit Unit, freedShare decimal.Decimal, newName string, newShare decimal.Decimal) ([]*Partner, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	if s.store.findPartner(unit, newName) != nil {
		return nil, ErrDuplicatePartner
	}
	if newShare.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidShare
	}
	if newShare.GreaterThan(freedShare) {
		return nil, ErrShareExceeds100
	}
	share, err := valueobject.NewShare(newShare)
	if err != nil {
		return nil, ErrInvalidShare
	}

	partner, err := NewPartner(newName, share)
	if err != nil {
		return nil, err
	}
	s.store.partners[unit] = append(s.store.partners[unit], partner)

	remainder := freedShare.Sub(newShare)
	if remainder.IsPositive() {
		s.store.partners[unit] = RedistributeShares(s.store.partners[unit], remainder)
	}
	return clonePartners(s.store.partners[unit]), nil
}

// RecordInvestment appends a capital injection, credits the unit's cash, and
// distributes the amount pro-rata: each partner's portion is written as a
// "Partner Contribution" expense entry and added to the partner's cumulative
// invested figure.
func (s *Service) RecordInvestment(unit Unit, date time.Time, amount decimal.Decimal, investor, description string) (*InvestmentRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	amount = amount.Round(2)
	if amount.LessThan(minAmount) {
		return nil, ErrInvalidAmount
	}
	partners := s.store.partners[unit]
	if len(partners) == 0 {
		return nil, ErrNoPartners
	}
	day := s.orNow(date)
	for _, existing := range s.store.investments {
		if existing.Matches(unit, investor, amount, day) {
			return nil, ErrDuplicateInvestment
		}
	}

	record, err := NewInvestmentRecord(unit, day, amount, investor, description)
	if err != nil {
		return nil, err
	}
	if err := s.store.creditCash(unit, amount); err != nil {
		return nil, err
	}
	s.store.investments = append(s.store.investments, record)
	s.store.appendTransactionLog(TransactionLogInvestment, amount, investor, unit.String(), record.Description)

	totalShares := s.store.totalShares(unit)
	for _, p := range partners {
		portion := p.Share.PortionOf(totalShares, amount)
		if !portion.IsPositive() {
			continue
		}
		name := p.Name
		contribution, err := NewExpenseRecord(unit, day, ExpenseCategoryPartnerContribution, portion,
			"Investment distribution from "+investor, &name, PaymentMethodBankTransfer)
		if err != nil {
			continue
		}
		s.store.expenses = append(s.store.expenses, contribution)
		p.recordContribution(portion)
	}
	return record, nil
}

// RecordWithdrawal pays out part of a partner's available entitlement. The
// cumulative withdrawn figure on the partner row is the source of truth; the
// matching "Partner Withdrawal" expense entry is bookkeeping only.
func (s *Service) RecordWithdrawal(unit Unit, partnerName string, amount decimal.Decimal, description string) (*ExpenseRecord, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if !s.store.hasUnit(unit) {
		return nil, ErrUnknownUnit
	}
	amount = amount.Round(2)
	if amount.LessThan(minAmount) {
		return nil, ErrInvalidAmount
	}
	partner := s.store.findPartner(unit, partnerName)
	if partner == nil {
		return nil, ErrPartnerNotFound
	}
	available, _ := s.store.availableNow(unit, partnerName)
	if amount.GreaterThan(available) {
		return nil, ErrInsufficientEntitlement
	}
	if !s.store.canDebit(unit, amount) {
		return nil, ErrInsufficientFunds
	}

	name := partner.Name
	record, err := NewExpenseRecord(unit, s.store.now(), ExpenseCategoryPartnerWithdrawal, amount, description, &name, PaymentMethodBankTransfer)
	if err != nil {
		return nil, err
	}
	partner.recordWithdrawal(amount)
	s.store.expenses = append(s.store.expenses, record)
	if err := s.store.debitCash(unit, amount); err != nil {
		return nil, err
	}
	s.store.appendTransactionLog(TransactionLogWithdrawal, amount, unit.String(), partnerName, description)
	return record, nil
}

func (s *Service) orNow(date time.Time) time.Time {
	if date.IsZero() {
		return s.store.now()
	}
	return date
}

func clonePartners(rows []*Partner) []*Partner {
	out := make([]*Partner, 0, len(rows))
	for _, p := range rows {
		out = append(out, p.clone())
	}
	return out
}
