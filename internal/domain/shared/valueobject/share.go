package valueobject

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxShare is the total ownership available in a business unit, in percent.
var MaxShare = decimal.NewFromInt(100)

// Share is a value object representing a partner's percentage ownership stake.
// It is immutable - all operations return new Share instances.
type Share struct {
	value decimal.Decimal
}

// NewShare creates a Share, validating that it lies in (0, 100].
func NewShare(value decimal.Decimal) (Share, error) {
	if value.LessThanOrEqual(decimal.Zero) {
		return Share{}, fmt.Errorf("share must be positive, got %s", value)
	}
	if value.GreaterThan(MaxShare) {
		return Share{}, fmt.Errorf("share cannot exceed 100, got %s", value)
	}
	return Share{value: value}, nil
}

// NewShareFromFloat creates a Share from a float64 percentage.
func NewShareFromFloat(value float64) (Share, error) {
	return NewShare(decimal.NewFromFloat(value))
}

// MustShare creates a Share, panicking on an out-of-range value.
// Reserved for values already proven valid (e.g. after re-normalization).
func MustShare(value decimal.Decimal) Share {
	s, err := NewShare(value)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the percentage as a decimal
func (s Share) Value() decimal.Decimal {
	return s.value
}

// Add returns the sum of two shares as a raw decimal (the sum may exceed
// a valid single share and must be range-checked by the caller)
func (s Share) Add(other Share) decimal.Decimal {
	return s.value.Add(other.value)
}

// ApplyTo returns this share's portion of the given amount (value/100 × amount)
func (s Share) ApplyTo(amount decimal.Decimal) decimal.Decimal {
	return s.value.Div(MaxShare).Mul(amount)
}

// PortionOf returns this share's weight relative to a total share pool
// (value/total × amount). Returns zero when total is zero.
func (s Share) PortionOf(total, amount decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return s.value.Div(total).Mul(amount)
}

// Round returns a new Share rounded to the specified decimal places
func (s Share) Round(places int32) Share {
	return Share{value: s.value.Round(places)}
}

// Equal returns true if both shares hold the same percentage
func (s Share) Equal(other Share) bool {
	return s.value.Equal(other.value)
}

// String returns the percentage formatted with two decimals
func (s Share) String() string {
	return s.value.StringFixed(2) + "%"
}

// Float64 returns the percentage as a float64 (may lose precision)
func (s Share) Float64() float64 {
	f, _ := s.value.Float64()
	return f
}

// MarshalJSON implements json.Marshaler, encoding the bare percentage
func (s Share) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}

// UnmarshalJSON implements json.Unmarshaler with full range validation
func (s *Share) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := NewShare(d)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
