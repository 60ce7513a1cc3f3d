package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/shopspring/decimal"
)

// MarketService provides application-level market price operations
type MarketService struct {
	store *ledger.Store
	ops   *ledger.Service
}

// NewMarketService creates a new MarketService
func NewMarketService(store *ledger.Store, ops *ledger.Service) *MarketService {
	return &MarketService{store: store, ops: ops}
}

// PricePointResponse represents one price history entry
type PricePointResponse struct {
	Date  string          `json:"date"`
	Time  string          `json:"time"`
	Price decimal.Decimal `json:"price"`
}

// UpdatePriceRequest represents a request to set the market price per kg
type UpdatePriceRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// MarketPriceResponse represents the current market price
type MarketPriceResponse struct {
	Price     decimal.Decimal `json:"price"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CurrentPrice returns the market price applied to all units
func (s *MarketService) CurrentPrice() *MarketPriceResponse {
	history := s.store.PriceHistory()
	out := &MarketPriceResponse{Price: s.store.CurrentPrice()}
	if len(history) > 0 {
		out.UpdatedAt = history[len(history)-1].Time
	}
	return out
}

// UpdatePrice sets a new market price and appends a history entry
func (s *MarketService) UpdatePrice(req UpdatePriceRequest) (*MarketPriceResponse, error) {
	if err := s.ops.UpdateMarketPrice(req.Price); err != nil {
		return nil, err
	}
	return s.CurrentPrice(), nil
}

// PriceHistory returns every recorded price, oldest first
func (s *MarketService) PriceHistory() []*PricePointResponse {
	history := s.store.PriceHistory()
	out := make([]*PricePointResponse, 0, len(history))
	for _, p := range history {
		out = append(out, &PricePointResponse{
			Date:  p.Date.Format("2006-01-02"),
			Time:  p.Time.Format("15:04:05"),
			Price: p.Price,
		})
	}
	return out
}
