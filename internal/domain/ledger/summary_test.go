package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryService(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	summaries := NewSummaryService(store)

	_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
	require.NoError(t, err)
	_, err = svc.RecordExpense(UnitA, time.Time{}, ExpenseCategoryRent, dec("300"), "", PaymentMethodCash)
	require.NoError(t, err)
	_, err = svc.RecordInvestment(UnitB, time.Time{}, dec("2000"), "Ali", "")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateMarketPrice(dec("80")))

	t.Run("unit snapshot", func(t *testing.T) {
		us, err := summaries.UnitSummary(UnitA)

		require.NoError(t, err)
		assertDec(t, "4700", us.CashBalance)
		assertDec(t, "100", us.StockKg)
		assertDec(t, "8000", us.InventoryValue)
		assertDec(t, "-5000", us.GrossProfit)
		assertDec(t, "-5300", us.NetProfit)
		assertDec(t, "7700", us.ProvisionalProfit)
		assertDec(t, "300", us.OperatingExpenses)
		assert.Equal(t, 2, us.PartnerCount)
	})

	t.Run("unknown unit", func(t *testing.T) {
		_, err := summaries.UnitSummary(Unit("Unit C"))
		assert.ErrorIs(t, err, ErrUnknownUnit)
	})

	t.Run("system snapshot sums the units", func(t *testing.T) {
		sys := summaries.SystemSummary()

		require.Len(t, sys.Units, 2)
		assertDec(t, "16700", sys.TotalCash)
		assertDec(t, "100", sys.TotalStockKg)
		assertDec(t, "8000", sys.TotalValue)
		assertDec(t, "2000", sys.TotalInvestments)
		assertDec(t, "80", sys.CurrentPrice)
		assertDec(t, "300", sys.OperatingExpenses)
		// Rent plus the two contribution rows from the investment.
		assertDec(t, "2300", sys.AllExpensesTotal)
		assert.Equal(t, 2, sys.TransactionCount)
	})
}
