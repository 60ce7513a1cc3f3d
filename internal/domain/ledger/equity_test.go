package ledger

import (
	"testing"
	"time"

	"github.com/bizmaster/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquityService_PartnerProfits(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	equity := NewEquityService(store)

	t.Run("zero entitlements with no profit", func(t *testing.T) {
		profits := equity.PartnerProfits(UnitA)

		require.Len(t, profits, 2)
		assertDec(t, "0", profits[0].TotalEntitlement)
		assertDec(t, "0", profits[0].AvailableNow)
	})

	t.Run("splits distributable profit by share", func(t *testing.T) {
		_, err := svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
		require.NoError(t, err)
		require.NoError(t, svc.UpdateMarketPrice(dec("80")))

		profits := equity.PartnerProfits(UnitA)

		require.Len(t, profits, 2)
		assert.Equal(t, "Ahmed", profits[0].Partner)
		assertDec(t, "4800", profits[0].TotalEntitlement)
		assertDec(t, "4800", profits[0].AvailableNow)
		assert.Equal(t, "Fatima", profits[1].Partner)
		assertDec(t, "3200", profits[1].TotalEntitlement)
		assertDec(t, "3200", profits[1].AvailableNow)
	})

	t.Run("withdrawals reduce the available figure only", func(t *testing.T) {
		_, err := svc.RecordWithdrawal(UnitA, "Ahmed", dec("1000"), "")
		require.NoError(t, err)

		profits := equity.PartnerProfits(UnitA)

		assertDec(t, "4800", profits[0].TotalEntitlement)
		assertDec(t, "3800", profits[0].AvailableNow)
		assertDec(t, "1000", profits[0].Withdrawn)
		assertDec(t, "3200", profits[1].AvailableNow)
	})

	t.Run("available floors at zero when profit shrinks", func(t *testing.T) {
		require.NoError(t, svc.UpdateMarketPrice(dec("5")))

		profits := equity.PartnerProfits(UnitA)

		assertDec(t, "0", profits[0].AvailableNow)
	})
}

func TestEquityService_CombinedPartnerProfits(t *testing.T) {
	store := NewSeededStore()
	svc := NewService(store)
	equity := NewEquityService(store)

	// Ahmed appears in both units.
	_, err := svc.AddPartner(UnitB, "Ahmed", dec("0"))
	assert.Error(t, err)
	freed, err := svc.RemovePartner(UnitB, "Mariam")
	require.NoError(t, err)
	_, err = svc.AssignFreedShare(UnitB, freed, "Ahmed", dec("50"))
	require.NoError(t, err)

	_, err = svc.RecordPurchase(UnitA, time.Time{}, dec("100"), dec("50"), "")
	require.NoError(t, err)
	_, err = svc.RecordPurchase(UnitB, time.Time{}, dec("50"), dec("50"), "")
	require.NoError(t, err)
	require.NoError(t, svc.UpdateMarketPrice(dec("80")))

	combined := equity.CombinedPartnerProfits()

	// Unit A distributable 8000, Unit B distributable 4000.
	require.Len(t, combined, 3)

	byName := make(map[string]CombinedPartnerProfit, len(combined))
	for _, row := range combined {
		byName[row.Partner] = row
	}

	ahmed := byName["Ahmed"]
	assertDec(t, "6800", ahmed.TotalEntitlement)
	assert.Equal(t, []Unit{UnitA, UnitB}, ahmed.Units)
	// 110 of 200 total share points across units.
	assertDec(t, "55", ahmed.SharePercentage)

	fatima := byName["Fatima"]
	assertDec(t, "3200", fatima.TotalEntitlement)
	assert.Equal(t, []Unit{UnitA}, fatima.Units)

	ali := byName["Ali"]
	assertDec(t, "2000", ali.TotalEntitlement)
}

func TestRedistributeShares(t *testing.T) {
	mustPartner := func(name string, share string) *Partner {
		p, err := NewPartner(name, valueobject.MustShare(dec(share)))
		if err != nil {
			panic(err)
		}
		return p
	}

	t.Run("grows proportionally and sums to 100", func(t *testing.T) {
		rows := []*Partner{
			mustPartner("Ahmed", "45"),
			mustPartner("Fatima", "30"),
		}

		out := RedistributeShares(rows, dec("25"))

		require.Len(t, out, 2)
		assertDec(t, "60", out[0].Share.Value())
		assertDec(t, "40", out[1].Share.Value())

		total := decimal.Zero
		for _, p := range out {
			total = total.Add(p.Share.Value())
		}
		assertDec(t, "100", total)
	})

	t.Run("normalizes uneven splits within a cent", func(t *testing.T) {
		rows := []*Partner{
			mustPartner("A", "33"),
			mustPartner("B", "33"),
			mustPartner("C", "33"),
		}

		out := RedistributeShares(rows, dec("1"))

		total := decimal.Zero
		for _, p := range out {
			total = total.Add(p.Share.Value())
		}
		diff := total.Sub(dec("100")).Abs()
		assert.True(t, diff.LessThanOrEqual(dec("0.01")), "total %s drifts past a cent", total)
	})

	t.Run("no-op on empty table", func(t *testing.T) {
		assert.Empty(t, RedistributeShares(nil, dec("10")))
	})

	t.Run("input rows are not mutated", func(t *testing.T) {
		rows := []*Partner{mustPartner("Ahmed", "50")}

		RedistributeShares(rows, dec("50"))

		assertDec(t, "50", rows[0].Share.Value())
	})
}
