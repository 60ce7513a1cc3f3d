package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValuationService_InventoryValue(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	valuation := NewValuationService(store)

	t.Run("zero with no records", func(t *testing.T) {
		stock, value := valuation.InventoryValue(UnitA)
		assertDec(t, "0", stock)
		assertDec(t, "0", value)
	})

	t.Run("values net stock at the current price", func(t *testing.T) {
		_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
		require.NoError(t, err)
		require.NoError(t, svc.UpdateMarketPrice(dec("80")))

		stock, value := valuation.InventoryValue(UnitA)
		assertDec(t, "100", stock)
		assertDec(t, "8000", value)
	})

	t.Run("sales reduce net stock", func(t *testing.T) {
		_, err := svc.RecordSale(UnitA, time.Time{}, dec("40"), dec("90"), "")
		require.NoError(t, err)

		stock, value := valuation.InventoryValue(UnitA)
		assertDec(t, "60", stock)
		assertDec(t, "4800", value)
	})

	t.Run("other unit is unaffected", func(t *testing.T) {
		stock, value := valuation.InventoryValue(UnitB)
		assertDec(t, "0", stock)
		assertDec(t, "0", value)
	})
}

func TestValuationService_OperatingExpenses(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	valuation := NewValuationService(store)

	_, err := svc.RecordExpense(UnitA, time.Time{}, ExpenseCategoryRent, dec("300"), "office", PaymentMethodCash)
	require.NoError(t, err)
	_, err = svc.RecordExpense(UnitA, time.Time{}, ExpenseCategoryUtilities, dec("120.50"), "", PaymentMethodBankTransfer)
	require.NoError(t, err)

	// Equity flows land in the expense ledger but never count as costs.
	_, err = svc.RecordInvestment(UnitA, time.Time{}, dec("1000"), "Ahmed", "")
	require.NoError(t, err)

	assertDec(t, "420.50", valuation.OperatingExpenses(UnitA))
}

func TestValuationService_ProfitLoss(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	valuation := NewValuationService(store)

	t.Run("purchases alone produce a loss", func(t *testing.T) {
		_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
		require.NoError(t, err)

		gross, net := valuation.ProfitLoss(UnitA)
		assertDec(t, "-5000", gross)
		assertDec(t, "-5000", net)
	})

	t.Run("sales and expenses move gross and net apart", func(t *testing.T) {
		_, err := svc.RecordSale(UnitA, time.Time{}, dec("100"), dec("60"), "")
		require.NoError(t, err)
		_, err = svc.RecordExpense(UnitA, time.Time{}, ExpenseCategorySalaries, dec("400"), "", PaymentMethodCash)
		require.NoError(t, err)

		gross, net := valuation.ProfitLoss(UnitA)
		assertDec(t, "1000", gross)
		assertDec(t, "600", net)
	})
}

func TestValuationService_DistributableProfit(t *testing.T) {
	t.Run("uses provisional profit while stock is held", func(t *testing.T) {
		store := NewSeededStore()
		svc := NewService(store)
		valuation := NewValuationService(store)

		_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
		require.NoError(t, err)
		require.NoError(t, svc.UpdateMarketPrice(dec("80")))

		assertDec(t, "8000", valuation.ProvisionalProfit(UnitA))
		assertDec(t, "8000", valuation.DistributableProfit(UnitA))
	})

	t.Run("uses net profit once stock is sold", func(t *testing.T) {
		store := NewSeededStore()
		svc := NewService(store)
		valuation := NewValuationService(store)

		_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
		require.NoError(t, err)
		_, err = svc.RecordSale(UnitA, time.Time{}, dec("100"), dec("60"), "")
		require.NoError(t, err)

		assertDec(t, "0", valuation.ProvisionalProfit(UnitA))
		assertDec(t, "1000", valuation.DistributableProfit(UnitA))
	})

	t.Run("provisional profit floors at zero", func(t *testing.T) {
		store := NewSeededStore()
		svc := NewService(store)
		valuation := NewValuationService(store)

		_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("10"), dec("50"), "")
		require.NoError(t, err)
		_, err = svc.RecordInvestment(UnitA, time.Time{}, dec("5000"), "Ahmed", "")
		require.NoError(t, err)

		// Stock value 500 minus 5000 invested is deep in the red.
		assertDec(t, "0", valuation.ProvisionalProfit(UnitA))
	})
}

func TestValuationService_InvestmentTotal(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	valuation := NewValuationService(store)

	_, err := svc.RecordInvestment(UnitA, time.Time{}, dec("1000"), "Ahmed", "")
	require.NoError(t, err)
	_, err = svc.RecordInvestment(UnitA, time.Time{}, dec("2500"), "Fatima", "")
	require.NoError(t, err)

	assertDec(t, "3500", valuation.InvestmentTotal(UnitA))
	assertDec(t, "0", valuation.InvestmentTotal(UnitB))
}
