package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDec(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestNewStore(t *testing.T) {
	t.Run("seeds default state", func(t *testing.T) {
		store := NewSeededStore()

		assert.Equal(t, []Unit{UnitA, UnitB}, store.Units())
		assertDec(t, "10000", store.CashBalance(UnitA))
		assertDec(t, "10000", store.CashBalance(UnitB))
		assertDec(t, "50", store.CurrentPrice())
		require.Len(t, store.PriceHistory(), 1)

		a := store.Partners(UnitA)
		require.Len(t, a, 2)
		assert.Equal(t, "Ahmed", a[0].Name)
		assertDec(t, "60", a[0].Share.Value())
		assert.Equal(t, "Fatima", a[1].Name)
		assertDec(t, "40", a[1].Share.Value())

		b := store.Partners(UnitB)
		require.Len(t, b, 2)
		assert.Equal(t, "Ali", b[0].Name)
		assert.Equal(t, "Mariam", b[1].Name)
	})

	t.Run("fails with out-of-range seed share", func(t *testing.T) {
		seed := DefaultSeed()
		seed.Partners[UnitA] = []SeedPartner{{Name: "Ahmed", Share: 120}}

		store, err := NewStore(seed)

		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("empty unit list falls back to defaults", func(t *testing.T) {
		seed := DefaultSeed()
		seed.Units = nil

		store, err := NewStore(seed)

		require.NoError(t, err)
		assert.Equal(t, DefaultUnits(), store.Units())
	})
}

func TestStore_Reset(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)

	_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("10"), dec("50"), "")
	require.NoError(t, err)
	_, err = svc.RecordExpense(UnitA, time.Time{}, ExpenseCategoryRent, dec("300"), "office", PaymentMethodCash)
	require.NoError(t, err)

	require.NoError(t, store.Reset(DefaultSeed()))

	assertDec(t, "10000", store.CashBalance(UnitA))
	assert.Empty(t, store.InventoryRecords(UnitA))
	assert.Empty(t, store.ExpenseRecords(UnitA))
	assert.Empty(t, store.TransactionLog())
	require.Len(t, store.PriceHistory(), 1)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	store := NewSeededStore()

	t.Run("partner rows are clones", func(t *testing.T) {
		rows := store.Partners(UnitA)
		rows[0].Withdrawn = dec("9999")

		fresh := store.Partners(UnitA)
		assertDec(t, "0", fresh[0].Withdrawn)
	})

	t.Run("cash map is a copy", func(t *testing.T) {
		balances := store.CashBalances()
		balances[UnitA] = dec("0")

		assertDec(t, "10000", store.CashBalance(UnitA))
	})

	t.Run("unit slice is a copy", func(t *testing.T) {
		units := store.Units()
		units[0] = Unit("Mutated")

		assert.Equal(t, UnitA, store.Units()[0])
	})
}

func TestStore_TransactionLog(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)

	_, err := svc.RecordExpense(UnitA, time.Time{}, ExpenseCategoryUtilities, dec("120.50"), "electricity", PaymentMethodCash)
	require.NoError(t, err)

	log := store.TransactionLog()
	require.Len(t, log, 1)
	assert.Equal(t, TransactionLogExpense, log[0].Type)
	assertDec(t, "120.50", log[0].Amount)
	assert.Equal(t, UnitA.String(), log[0].From)
	assert.Equal(t, "Utilities", log[0].To)
	assert.Equal(t, "electricity", log[0].Description)
}
