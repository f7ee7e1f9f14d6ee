package inventory

import (
	"math"
	"testing"

	e "github.com/gartstein/farm/internal/farm/errors"
	"github.com/gartstein/farm/internal/farm/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func material(stock, minStock int64, price string) models.Material {
	return Recompute(models.Material{
		Name:         "Maize seed",
		CurrentStock: stock,
		MinStock:     minStock,
		PricePerUnit: decimal.RequireFromString(price),
	})
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		stock    int64
		minStock int64
		want     models.StockStatus
	}{
		{name: "zero stock zero threshold", stock: 0, minStock: 0, want: models.StockCritical},
		{name: "zero stock", stock: 0, minStock: 10, want: models.StockCritical},
		{name: "negative stock", stock: -3, minStock: 10, want: models.StockCritical},
		{name: "below threshold", stock: 5, minStock: 10, want: models.StockLow},
		{name: "equal to threshold", stock: 10, minStock: 10, want: models.StockLow},
		{name: "above threshold", stock: 11, minStock: 10, want: models.StockOK},
		{name: "positive stock zero threshold", stock: 1, minStock: 0, want: models.StockOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StatusFor(tt.stock, tt.minStock)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name       string
		material   models.Material
		quantity   int64
		wantStock  int64
		wantValue  string
		wantStatus models.StockStatus
	}{
		{
			name:       "withdraw everything",
			material:   material(45, 100, "2.00"),
			quantity:   45,
			wantStock:  0,
			wantValue:  "0",
			wantStatus: models.StockCritical,
		},
		{
			name:       "stays above threshold",
			material:   material(200, 100, "1.50"),
			quantity:   50,
			wantStock:  150,
			wantValue:  "225",
			wantStatus: models.StockOK,
		},
		{
			name:       "drops below threshold",
			material:   material(100, 100, "5.00"),
			quantity:   5,
			wantStock:  95,
			wantValue:  "475",
			wantStatus: models.StockLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.material
			got, err := Withdraw(tt.material, tt.quantity)
			require.NoError(t, err)

			assert.Equal(t, tt.wantStock, got.CurrentStock)
			assert.True(t, decimal.RequireFromString(tt.wantValue).Equal(got.Value),
				"expected value %s, got %s", tt.wantValue, got.Value)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.True(t, got.Value.Equal(ValueOf(got.CurrentStock, before.PricePerUnit)))
			assert.Equal(t, before, tt.material, "input must not be modified")
		})
	}
}

func TestWithdrawRejections(t *testing.T) {
	m := material(10, 5, "3.00")

	t.Run("insufficient stock", func(t *testing.T) {
		_, err := Withdraw(m, 20)
		assert.ErrorIs(t, err, e.ErrInsufficientStock)
		assert.Equal(t, int64(10), m.CurrentStock)
		assert.Equal(t, models.StockOK, m.Status)
	})

	for _, q := range []int64{0, -1} {
		_, err := Withdraw(m, q)
		assert.ErrorIs(t, err, e.ErrInvalidInput, "quantity %d", q)
	}
}

func TestWithdrawSubtractsExactly(t *testing.T) {
	m := material(1000, 10, "0.37")
	for q := int64(1); q <= 1000; q += 37 {
		got, err := Withdraw(m, q)
		require.NoError(t, err)
		assert.Equal(t, m.CurrentStock-q, got.CurrentStock)
		assert.True(t, got.Value.Equal(decimal.NewFromInt(got.CurrentStock).Mul(m.PricePerUnit)))
	}
}

func TestRestock(t *testing.T) {
	m := material(0, 10, "2.50")
	require.Equal(t, models.StockCritical, m.Status)

	got, err := Restock(m, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.CurrentStock)
	assert.Equal(t, models.StockOK, got.Status)
	assert.True(t, decimal.RequireFromString("30").Equal(got.Value))

	_, err = Restock(m, 0)
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestRestockBounds(t *testing.T) {
	tests := []struct {
		name     string
		material models.Material
		quantity int64
	}{
		{name: "stock overflow", material: models.Material{Name: "x", CurrentStock: math.MaxInt64 - 1, MinStock: 10}, quantity: 10},
		{name: "max quantity on top of stock", material: material(1, 0, "0"), quantity: math.MaxInt64},
		{name: "value above column range", material: material(10, 0, "1000000.00"), quantity: 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.material
			_, err := Restock(tt.material, tt.quantity)
			assert.ErrorIs(t, err, e.ErrInvalidInput)
			assert.Equal(t, before, tt.material)
		})
	}

	got, err := Restock(material(math.MaxInt64-10, 0, "0"), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), got.CurrentStock)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(material(1, 1, "1")))
	assert.NoError(t, Validate(material(3, 1, "1.50")))

	bad := []models.Material{
		{Name: ""},
		{Name: "x", CurrentStock: -1},
		{Name: "x", MinStock: -1},
		{Name: "x", PricePerUnit: decimal.NewFromInt(-1)},
		{Name: "x", PricePerUnit: decimal.RequireFromString("0.001")},
		{Name: "x", PricePerUnit: decimal.RequireFromString("1.005")},
		{Name: "x", PricePerUnit: decimal.RequireFromString("10000000000")},
		{Name: "x", CurrentStock: 1_000_000_000, PricePerUnit: decimal.RequireFromString("1000.00")},
	}
	for _, m := range bad {
		assert.ErrorIs(t, Validate(m), e.ErrInvalidInput)
	}
}
