package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShare(t *testing.T) {
	t.Run("accepts values in range", func(t *testing.T) {
		for _, v := range []float64{0.1, 40, 60, 100} {
			s, err := NewShareFromFloat(v)
			require.NoError(t, err)
			assert.InDelta(t, v, s.Float64(), 1e-9)
		}
	})

	t.Run("rejects zero and negative", func(t *testing.T) {
		_, err := NewShare(decimal.Zero)
		assert.Error(t, err)
		_, err = NewShareFromFloat(-5)
		assert.Error(t, err)
	})

	t.Run("rejects values above 100", func(t *testing.T) {
		_, err := NewShareFromFloat(100.01)
		assert.Error(t, err)
	})
}

func TestShare_ApplyTo(t *testing.T) {
	s, err := NewShareFromFloat(60)
	require.NoError(t, err)

	portion := s.ApplyTo(decimal.NewFromInt(8000))
	assert.True(t, portion.Equal(decimal.NewFromInt(4800)), "got %s", portion)
}

func TestShare_PortionOf(t *testing.T) {
	s, err := NewShareFromFloat(40)
	require.NoError(t, err)

	t.Run("weights by the total pool", func(t *testing.T) {
		portion := s.PortionOf(decimal.NewFromInt(100), decimal.NewFromInt(1000))
		assert.True(t, portion.Equal(decimal.NewFromInt(400)), "got %s", portion)
	})

	t.Run("zero total yields zero", func(t *testing.T) {
		portion := s.PortionOf(decimal.Zero, decimal.NewFromInt(1000))
		assert.True(t, portion.IsZero())
	})
}

func TestShare_JSON(t *testing.T) {
	s := MustShare(decimal.NewFromFloat(33.33))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"33.33"`, string(data))

	var parsed Share
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(s))

	var invalid Share
	assert.Error(t, json.Unmarshal([]byte(`"120"`), &invalid))
}
