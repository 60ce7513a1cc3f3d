package ledger

// Unit identifies an independent business division with its own cash,
// inventory, and partner equity table.
type Unit string

const (
	UnitA Unit = "Unit A"
	UnitB Unit = "Unit B"
)

// DefaultUnits lists the units seeded on first use, in display order.
func DefaultUnits() []Unit {
	return []Unit{UnitA, UnitB}
}

// String returns the display name of the unit
func (u Unit) String() string {
	return string(u)
}
