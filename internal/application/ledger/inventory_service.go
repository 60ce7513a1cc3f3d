package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryService provides application-level inventory operations
type InventoryService struct {
	store     *ledger.Store
	ops       *ledger.Service
	valuation *ledger.ValuationService
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(store *ledger.Store, ops *ledger.Service, valuation *ledger.ValuationService) *InventoryService {
	return &InventoryService{
		store:     store,
		ops:       ops,
		valuation: valuation,
	}
}

// InventoryRecordResponse represents an inventory movement in API responses
type InventoryRecordResponse struct {
	ID           uuid.UUID       `json:"id"`
	Date         time.Time       `json:"date"`
	Type         string          `json:"type"`
	QuantityKg   decimal.Decimal `json:"quantity_kg"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	BusinessUnit string          `json:"business_unit"`
	Remarks      string          `json:"remarks,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RecordMovementRequest represents a request to record a purchase or sale
type RecordMovementRequest struct {
	BusinessUnit string          `json:"business_unit" binding:"required"`
	Date         time.Time       `json:"date"`
	QuantityKg   decimal.Decimal `json:"quantity_kg" binding:"required"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	Remarks      string          `json:"remarks"`
}

// InventoryStatusResponse represents a unit's current stock position
type InventoryStatusResponse struct {
	BusinessUnit   string          `json:"business_unit"`
	StockKg        decimal.Decimal `json:"stock_kg"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	CurrentPrice   decimal.Decimal `json:"current_price"`
	CashBalance    decimal.Decimal `json:"cash_balance"`
}

// RecordPurchase records a stock purchase paid from the unit's cash
func (s *InventoryService) RecordPurchase(req RecordMovementRequest) (*InventoryRecordResponse, error) {
	record, err := s.ops.RecordPurchase(ledger.Unit(req.BusinessUnit), req.Date, req.QuantityKg, req.UnitPrice, req.Remarks)
	if err != nil {
		return nil, err
	}
	return toInventoryRecordResponse(record), nil
}

// RecordSale records a stock sale credited to the unit's cash
func (s *InventoryService) RecordSale(req RecordMovementRequest) (*InventoryRecordResponse, error) {
	record, err := s.ops.RecordSale(ledger.Unit(req.BusinessUnit), req.Date, req.QuantityKg, req.UnitPrice, req.Remarks)
	if err != nil {
		return nil, err
	}
	return toInventoryRecordResponse(record), nil
}

// ListRecords returns a unit's inventory movements oldest first
func (s *InventoryService) ListRecords(unit string) []*InventoryRecordResponse {
	records := s.store.InventoryRecords(ledger.Unit(unit))
	out := make([]*InventoryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toInventoryRecordResponse(r))
	}
	return out
}

// Status returns a unit's stock position valued at the current market price
func (s *InventoryService) Status(unit string) (*InventoryStatusResponse, error) {
	u := ledger.Unit(unit)
	if !hasUnit(s.store, u) {
		return nil, ledger.ErrUnknownUnit
	}
	stock, value := s.valuation.InventoryValue(u)
	return &InventoryStatusResponse{
		BusinessUnit:   unit,
		StockKg:        stock,
		InventoryValue: value,
		CurrentPrice:   s.store.CurrentPrice(),
		CashBalance:    s.store.CashBalance(u),
	}, nil
}

func toInventoryRecordResponse(r *ledger.InventoryRecord) *InventoryRecordResponse {
	return &InventoryRecordResponse{
		ID:           r.ID,
		Date:         r.Date,
		Type:         string(r.Type),
		QuantityKg:   r.QuantityKg,
		UnitPrice:    r.UnitPrice,
		TotalAmount:  r.TotalAmount,
		BusinessUnit: r.Unit.String(),
		Remarks:      r.Remarks,
		CreatedAt:    r.CreatedAt,
	}
}

func hasUnit(store *ledger.Store, unit ledger.Unit) bool {
	for _, u := range store.Units() {
		if u == unit {
			return true
		}
	}
	return false
}
