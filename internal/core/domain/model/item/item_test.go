package item_test

import (
	"math"
	"testing"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount int64) kernel.Price {
	t.Helper()
	price, err := kernel.PriceFromInt(amount)
	require.NoError(t, err)
	return price
}

func TestNewItem(t *testing.T) {
	price := mustPrice(t, 10000)

	t.Run("should create item with stock", func(t *testing.T) {
		id := kernel.NewUUID()

		i, err := item.NewItem(id, "JPA Book", price, 10)

		require.NoError(t, err)
		require.NoError(t, i.Validate())
		assert.True(t, i.ID().IsEqual(id))
		assert.Equal(t, "JPA Book", i.Name())
		assert.True(t, i.Price().IsEqual(price))
		assert.Equal(t, 10, i.StockQuantity())
		assert.Equal(t, int64(0), i.Version())
	})

	t.Run("should accept empty stock", func(t *testing.T) {
		i, err := item.NewItem(kernel.NewUUID(), "Out of print", price, 0)

		require.NoError(t, err)
		assert.Equal(t, 0, i.StockQuantity())
	})

	t.Run("should collect all validation errors", func(t *testing.T) {
		i, err := item.NewItem(kernel.UUID{}, " ", kernel.Price{}, -1)

		require.Error(t, err)
		assert.Nil(t, i)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
		assert.Contains(t, err.Error(), "-1 is less than 0")
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should keep the stored version", func(t *testing.T) {
		i, err := item.RestoreItem(kernel.NewUUID(), "Spring Book", mustPrice(t, 20000), 3, 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), i.Version())
	})

	t.Run("should reject negative version", func(t *testing.T) {
		_, err := item.RestoreItem(kernel.NewUUID(), "Spring Book", mustPrice(t, 20000), 3, -1)

		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})
}

func TestItem_DecreaseStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "leaves remainder", stock: 10, quantity: 2, wantStock: 8},
		{name: "may reach zero", stock: 10, quantity: 10, wantStock: 0},
		{name: "fails when short by one", stock: 10, quantity: 11, wantStock: 10, wantErr: item.ErrInsufficientStock},
		{name: "fails on empty stock", stock: 0, quantity: 1, wantStock: 0, wantErr: item.ErrInsufficientStock},
		{name: "rejects zero quantity", stock: 10, quantity: 0, wantStock: 10, wantErr: errs.ErrValueIsInvalid},
		{name: "rejects negative quantity", stock: 10, quantity: -3, wantStock: 10, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := item.NewItem(kernel.NewUUID(), "JPA Book", mustPrice(t, 10000), tt.stock)
			require.NoError(t, err)

			err = i.DecreaseStock(tt.quantity)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, i.StockQuantity())
		})
	}
}

func TestItem_IncreaseStock(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		quantity  int
		wantStock int
		wantErr   error
	}{
		{name: "adds to stock", stock: 8, quantity: 2, wantStock: 10},
		{name: "may reach the maximum", stock: item.MaxStockQuantity - 5, quantity: 5, wantStock: item.MaxStockQuantity},
		{name: "rejects overflow by one", stock: item.MaxStockQuantity - 5, quantity: 6,
			wantStock: item.MaxStockQuantity - 5, wantErr: errs.ErrValueIsOutOfRange},
		{name: "rejects max int quantity", stock: 1, quantity: math.MaxInt, wantStock: 1, wantErr: errs.ErrValueIsOutOfRange},
		{name: "rejects zero quantity", stock: 8, quantity: 0, wantStock: 8, wantErr: errs.ErrValueIsInvalid},
		{name: "rejects negative quantity", stock: 8, quantity: -1, wantStock: 8, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := item.NewItem(kernel.NewUUID(), "JPA Book", mustPrice(t, 10000), tt.stock)
			require.NoError(t, err)

			err = i.IncreaseStock(tt.quantity)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, i.StockQuantity())
		})
	}
}

func TestItem_DecreaseThenIncreaseStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		quantity int
	}{
		{name: "partial", stock: 10, quantity: 3},
		{name: "whole stock", stock: 10, quantity: 10},
		{name: "at the maximum", stock: item.MaxStockQuantity, quantity: item.MaxStockQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, err := item.NewItem(kernel.NewUUID(), "JPA Book", mustPrice(t, 10000), tt.stock)
			require.NoError(t, err)

			require.NoError(t, i.DecreaseStock(tt.quantity))
			require.NoError(t, i.IncreaseStock(tt.quantity))

			assert.Equal(t, tt.stock, i.StockQuantity())
		})
	}
}

func TestNewItem_StockAboveMaximum(t *testing.T) {
	i, err := item.NewItem(kernel.NewUUID(), "JPA Book", mustPrice(t, 10000), item.MaxStockQuantity+1)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Nil(t, i)
}

func TestItem_Validate(t *testing.T) {
	var nilItem *item.Item
	assert.ErrorIs(t, nilItem.Validate(), item.ErrItemIsNotConstructed)

	literal := &item.Item{}
	assert.ErrorIs(t, literal.Validate(), item.ErrItemIsNotConstructed)
}

func TestItem_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := item.NewItem(id, "A", mustPrice(t, 1), 1)
	b, _ := item.RestoreItem(id, "B", mustPrice(t, 2), 2, 3)
	c, _ := item.NewItem(kernel.NewUUID(), "A", mustPrice(t, 1), 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
