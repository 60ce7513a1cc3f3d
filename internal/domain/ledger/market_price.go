package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint is one entry in the append-only market price history
type PricePoint struct {
	Date  time.Time       `json:"date"`
	Time  time.Time       `json:"time"`
	Price decimal.Decimal `json:"price"`
}

func newPricePoint(price decimal.Decimal, at time.Time) PricePoint {
	return PricePoint{
		Date:  at,
		Time:  at,
		Price: price,
	}
}
