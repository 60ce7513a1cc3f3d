package ledger

import (
	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// SystemService exposes the unit catalog and the data reset operation
type SystemService struct {
	store *ledger.Store
}

// NewSystemService creates a new SystemService
func NewSystemService(store *ledger.Store) *SystemService {
	return &SystemService{store: store}
}

// UnitResponse represents one business unit
type UnitResponse struct {
	Name        string          `json:"name"`
	CashBalance decimal.Decimal `json:"cash_balance"`
}

// ListUnits returns the known business units with their cash balances
func (s *SystemService) ListUnits() []*UnitResponse {
	balances := s.store.CashBalances()
	units := s.store.Units()
	out := make([]*UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, &UnitResponse{Name: u.String(), CashBalance: balances[u]})
	}
	return out
}

// Reset discards every ledger record and restores the stock seed: starting
// cash and market price, and the default partner tables. User accounts are
// untouched.
func (s *SystemService) Reset() error {
	return s.store.Reset(ledger.DefaultSeed())
}
