package ledger

import (
	"sync"
	"time"

	"github.com/bizmaster/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// minAmount is the smallest monetary amount any operation may move.
var minAmount = decimal.New(1, -2) // 0.01

// SeedPartner describes a partner row to seed on init
type SeedPartner struct {
	Name  string
	Share float64
}

// SeedConfig holds the init-on-first-use defaults for a Store
type SeedConfig struct {
	Units         []Unit
	StartingCash  decimal.Decimal
	StartingPrice decimal.Decimal
	Partners      map[Unit][]SeedPartner
	KgPrecision   int32
}

// DefaultSeed returns the stock seed: two units with 10,000.00 cash each,
// market price 50.00, and two partners per unit.
func DefaultSeed() SeedConfig {
	return SeedConfig{
		Units:         DefaultUnits(),
		StartingCash:  decimal.NewFromInt(10000),
		StartingPrice: decimal.NewFromInt(50),
		Partners: map[Unit][]SeedPartner{
			UnitA: {
				{Name: "Ahmed", Share: 60},
				{Name: "Fatima", Share: 40},
			},
			UnitB: {
				{Name: "Ali", Share: 50},
				{Name: "Mariam", Share: 50},
			},
		},
		KgPrecision: 2,
	}
}

// Store owns every ledger entity exclusively: cash balances, the append-only
// transaction logs, partner tables, and the market price. All reads hand out
// copies, never aliases. A single mutex serializes the check-then-act
// sequences of mutation operations against concurrent writers.
type Store struct {
	mu sync.RWMutex

	units        []Unit
	cash         map[Unit]decimal.Decimal
	inventory    []*InventoryRecord
	expenses     []*ExpenseRecord
	investments  []*InvestmentRecord
	partners     map[Unit][]*Partner
	currentPrice decimal.Decimal
	priceHistory []PricePoint
	transactions []*TransactionLogEntry

	kgPrecision int32
	now         func() time.Time
}

// NewStore creates a Store seeded with the given defaults
func NewStore(seed SeedConfig) (*Store, error) {
	s := &Store{now: time.Now}
	if err := s.seed(seed); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSeededStore creates a Store with the stock seed defaults
func NewSeededStore() *Store {
	s, err := NewStore(DefaultSeed())
	if err != nil {
		// The stock seed is statically valid.
		panic(err)
	}
	return s
}

// Reset discards all state and re-seeds the store
func (s *Store) Reset(seed SeedConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed(seed)
}

func (s *Store) seed(seed SeedConfig) error {
	units := seed.Units
	if len(units) == 0 {
		units = DefaultUnits()
	}
	precision := seed.KgPrecision
	if precision <= 0 {
		precision = 2
	}

	cash := make(map[Unit]decimal.Decimal, len(units))
	partners := make(map[Unit][]*Partner, len(units))
	for _, unit := range units {
		cash[unit] = seed.StartingCash
		rows := make([]*Partner, 0, len(seed.Partners[unit]))
		for _, sp := range seed.Partners[unit] {
			share, err := valueobject.NewShareFromFloat(sp.Share)
			if err != nil {
				return err
			}
			p, err := NewPartner(sp.Name, share)
			if err != nil {
				return err
			}
			rows = append(rows, p)
		}
		partners[unit] = rows
	}

	s.units = append([]Unit(nil), units...)
	s.cash = cash
	s.inventory = nil
	s.expenses = nil
	s.investments = nil
	s.partners = partners
	s.currentPrice = seed.StartingPrice
	s.priceHistory = []PricePoint{newPricePoint(seed.StartingPrice, s.now())}
	s.transactions = nil
	s.kgPrecision = precision
	return nil
}

// ===================== Read-side accessors =====================

// Units returns the known business units in display order
func (s *Store) Units() []Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Unit(nil), s.units...)
}

// CashBalance returns the current cash balance of a unit
func (s *Store) CashBalance(unit Unit) decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cash[unit]
}

// CashBalances returns a copy of all unit cash balances
func (s *Store) CashBalances() map[Unit]decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[Unit]decimal.Decimal, len(s.cash))
	for unit, balance := range s.cash {
		out[unit] = balance
	}
	return out
}

// CurrentPrice returns the process-wide market price per kg
func (s *Store) CurrentPrice() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentPrice
}

// PriceHistory returns the append-only market price log
func (s *Store) PriceHistory() []PricePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PricePoint(nil), s.priceHistory...)
}

// InventoryRecords returns the unit's inventory movements in insertion order
func (s *Store) InventoryRecords(unit Unit) []*InventoryRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*InventoryRecord
	for _, r := range s.inventory {
		if r.Unit == unit {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}

// ExpenseRecords returns the unit's expense entries in insertion order
func (s *Store) ExpenseRecords(unit Unit) []*ExpenseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*ExpenseRecord
	for _, r := range s.expenses {
		if r.Unit == unit {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}

// InvestmentRecords returns the unit's investment entries in insertion order
func (s *Store) InvestmentRecords(unit Unit) []*InvestmentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*InvestmentRecord
	for _, r := range s.investments {
		if r.Unit == unit {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out
}

// Partners returns a snapshot of the unit's equity table
func (s *Store) Partners(unit Unit) []*Partner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := s.partners[unit]
	out := make([]*Partner, 0, len(rows))
	for _, p := range rows {
		out = append(out, p.clone())
	}
	return out
}

// TransactionLog returns the audit trail in insertion order
func (s *Store) TransactionLog() []*TransactionLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*TransactionLogEntry, 0, len(s.transactions))
	for _, t := range s.transactions {
		cp := *t
		out = append(out, &cp)
	}
	return out
}

// ===================== Unlocked internals =====================
// Callers must hold s.mu.

func (s *Store) hasUnit(unit Unit) bool {
	_, ok := s.cash[unit]
	return ok
}

func (s *Store) findPartner(unit Unit, name string) *Partner {
	for _, p := range s.partners[unit] {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (s *Store) totalShares(unit Unit) decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.partners[unit] {
		total = total.Add(p.Share.Value())
	}
	return total
}

// creditCash adds to a unit's balance. Amounts below the 0.01 minimum unit
// are rejected before any state changes.
func (s *Store) creditCash(unit Unit, amount decimal.Decimal) error {
	if !s.hasUnit(unit) {
		return ErrUnknownUnit
	}
	if amount.LessThan(minAmount) {
		return ErrInvalidAmount
	}
	s.cash[unit] = s.cash[unit].Add(amount)
	return nil
}

// debitCash subtracts from a unit's balance, rejecting atomically any
// subtraction that would drive it negative.
func (s *Store) debitCash(unit Unit, amount decimal.Decimal) error {
	if !s.hasUnit(unit) {
		return ErrUnknownUnit
	}
	if amount.LessThan(minAmount) {
		return ErrInvalidAmount
	}
	if s.cash[unit].LessThan(amount) {
		return ErrInsufficientFunds
	}
	s.cash[unit] = s.cash[unit].Sub(amount)
	return nil
}

// canDebit reports whether a debit of the given amount would succeed
func (s *Store) canDebit(unit Unit, amount decimal.Decimal) bool {
	return s.hasUnit(unit) && s.cash[unit].GreaterThanOrEqual(amount)
}
