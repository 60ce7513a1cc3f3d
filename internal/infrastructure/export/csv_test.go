package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter(t *testing.T) {
	t.Run("renders header and typed cells", func(t *testing.T) {
		w := NewCSVWriter("Date", "Category", "Amount", "Partner")
		day := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
		require.NoError(t, w.AppendRow(day, "Rent", decimal.NewFromFloat(300.50), nil))
		require.NoError(t, w.AppendRow(day, "Salaries", decimal.NewFromInt(1200), "Ahmed"))

		data, err := w.Bytes()
		require.NoError(t, err)
		assert.Equal(t,
			"Date,Category,Amount,Partner\n"+
				"2026-03-15,Rent,300.5,\n"+
				"2026-03-15,Salaries,1200,Ahmed\n",
			string(data))
	})

	t.Run("quotes cells containing commas", func(t *testing.T) {
		w := NewCSVWriter("Description")
		require.NoError(t, w.AppendRow("rent, March"))

		data, err := w.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "Description\n\"rent, March\"\n", string(data))
	})

	t.Run("rejects rows with a cell count mismatch", func(t *testing.T) {
		w := NewCSVWriter("A", "B")
		assert.Error(t, w.AppendRow("only one"))
	})

	t.Run("empty document still carries the header", func(t *testing.T) {
		w := NewCSVWriter("A", "B")
		data, err := w.Bytes()
		require.NoError(t, err)
		assert.Equal(t, "A,B\n", string(data))
	})
}

func TestFilename(t *testing.T) {
	at := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "expenses_2026-09-01.csv", Filename("expenses", at))
}
