package ledger

import (
	"time"

	"github.com/bizmaster/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionType classifies an inventory movement
type TransactionType string

const (
	TransactionTypePurchase TransactionType = "Purchase"
	TransactionTypeSale     TransactionType = "Sale"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	return t == TransactionTypePurchase || t == TransactionTypeSale
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// InventoryRecord is a single inventory movement. Records are append-only
// and ordered by insertion; Date is a user-supplied display field.
type InventoryRecord struct {
	shared.BaseEntity
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"transaction_type"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Unit        Unit            `json:"business_unit"`
	Remarks     string          `json:"remarks"`
}

// NewInventoryRecord creates an inventory movement record.
// TotalAmount is derived as quantity × unit price, rounded to 2 decimals.
func NewInventoryRecord(unit Unit, date time.Time, txType TransactionType, quantityKg, unitPrice decimal.Decimal, remarks string) (*InventoryRecord, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Transaction type must be Purchase or Sale")
	}
	if quantityKg.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return nil, ErrInvalidPrice
	}

	return &InventoryRecord{
		BaseEntity:  shared.NewBaseEntity(),
		Date:        date,
		Type:        txType,
		QuantityKg:  quantityKg,
		UnitPrice:   unitPrice,
		TotalAmount: quantityKg.Mul(unitPrice).Round(2),
		Unit:        unit,
		Remarks:     remarks,
	}, nil
}

// IsPurchase returns true for purchase movements
func (r *InventoryRecord) IsPurchase() bool {
	return r.Type == TransactionTypePurchase
}

// IsSale returns true for sale movements
func (r *InventoryRecord) IsSale() bool {
	return r.Type == TransactionTypeSale
}
