package order_test

import (
	"testing"
	"time"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("should wire member, delivery and lines", func(t *testing.T) {
		m := newMember(t)
		book := newItem(t, 10000, 10)
		line := newLine(t, book, 2)
		delivery := newDelivery(t, m)
		id := kernel.NewUUID()
		before := time.Now().Add(-time.Second)

		o, err := order.NewOrder(id, m, delivery, line)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.MemberID().IsEqual(m.ID()))
		assert.True(t, m.HasOrder(id))
		assert.Same(t, delivery, o.Delivery())
		assert.True(t, delivery.OrderID().IsEqual(id))
		assert.Equal(t, []*order.OrderLine{line}, o.Lines())
		assert.True(t, line.OrderID().IsEqual(id))
		assert.Equal(t, order.Placed, o.Status())
		assert.WithinRange(t, o.OrderedAt(), before, time.Now().Add(time.Second))
		assert.Equal(t, 8, book.StockQuantity())
	})

	t.Run("should keep lines in insertion order", func(t *testing.T) {
		m := newMember(t)
		first := newLine(t, newItem(t, 10000, 10), 1)
		second := newLine(t, newItem(t, 20000, 10), 2)
		third := newLine(t, newItem(t, 30000, 10), 3)

		o := placeOrder(t, m, first, second, third)

		assert.Equal(t, []*order.OrderLine{first, second, third}, o.Lines())
	})

	t.Run("should require at least one line", func(t *testing.T) {
		m := newMember(t)

		o, err := order.NewOrder(kernel.NewUUID(), m, newDelivery(t, m))

		require.ErrorIs(t, err, order.ErrLinesAreRequired)
		assert.Nil(t, o)
		assert.Empty(t, m.OrderIDs())
	})

	t.Run("should reject a literal line", func(t *testing.T) {
		m := newMember(t)

		_, err := order.NewOrder(kernel.NewUUID(), m, newDelivery(t, m), &order.OrderLine{})

		require.ErrorIs(t, err, order.ErrOrderLineIsNotConstructed)
	})

	t.Run("should not wire anything when an argument is invalid", func(t *testing.T) {
		m := newMember(t)
		delivery := newDelivery(t, m)
		line := newLine(t, newItem(t, 10000, 10), 1)

		_, err := order.NewOrder(kernel.UUID{}, m, delivery, line)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Empty(t, m.OrderIDs())
		assert.Error(t, delivery.OrderID().Validate())
		assert.Error(t, line.OrderID().Validate())
	})

	t.Run("should collect every invalid argument", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, nil, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, member.ErrMemberIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrDeliveryIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject parts of another order", func(t *testing.T) {
		m := newMember(t)
		line := newLine(t, newItem(t, 10000, 10), 1)
		first := placeOrder(t, m, line)

		_, err := order.NewOrder(kernel.NewUUID(), m, first.Delivery(), newLine(t, newItem(t, 1, 1), 1))
		require.ErrorIs(t, err, order.ErrAlreadyAttached)

		_, err = order.NewOrder(kernel.NewUUID(), m, newDelivery(t, m), line)
		require.ErrorIs(t, err, order.ErrAlreadyAttached)
		assert.Len(t, m.OrderIDs(), 1)
	})

	t.Run("should reject the same line twice", func(t *testing.T) {
		m := newMember(t)
		line := newLine(t, newItem(t, 10000, 10), 1)

		_, err := order.NewOrder(kernel.NewUUID(), m, newDelivery(t, m), line, line)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreOrder(t *testing.T) {
	book := newItem(t, 10000, 10)
	line, err := order.RestoreOrderLine(kernel.NewUUID(), book, book.Price(), 2)
	require.NoError(t, err)
	delivery, err := order.RestoreDelivery(kernel.NewUUID(), newAddress(t), order.DeliveryCompleted)
	require.NoError(t, err)
	id, memberID := kernel.NewUUID(), kernel.NewUUID()
	orderedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("should restore persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(id, memberID, delivery, []*order.OrderLine{line}, orderedAt, order.Cancelled)

		require.NoError(t, err)
		assert.True(t, o.MemberID().IsEqual(memberID))
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, orderedAt, o.OrderedAt())
		assert.True(t, line.OrderID().IsEqual(id))
		assert.Equal(t, 10, book.StockQuantity())
	})

	t.Run("should validate persisted state", func(t *testing.T) {
		_, err := order.RestoreOrder(id, kernel.UUID{}, delivery, nil, time.Time{}, order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrLinesAreRequired)
		assert.Contains(t, err.Error(), "ordered at")
		assert.Contains(t, err.Error(), "is not a valid status")
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel and restore stock", func(t *testing.T) {
		book := newItem(t, 10000, 10)
		o := placeOrder(t, newMember(t), newLine(t, book, 2))
		require.Equal(t, 8, book.StockQuantity())

		require.NoError(t, o.Cancel())

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 10, book.StockQuantity())
	})

	t.Run("should restore every line", func(t *testing.T) {
		book := newItem(t, 10000, 10)
		other := newItem(t, 5000, 3)
		o := placeOrder(t, newMember(t), newLine(t, book, 2), newLine(t, other, 3), newLine(t, book, 1))
		require.Equal(t, 7, book.StockQuantity())
		require.Equal(t, 0, other.StockQuantity())

		require.NoError(t, o.Cancel())

		assert.Equal(t, 10, book.StockQuantity())
		assert.Equal(t, 3, other.StockQuantity())
	})

	t.Run("should keep stock restored before a failing line", func(t *testing.T) {
		book := newItem(t, 10000, 10)
		full := newItem(t, 5000, 5)
		o := placeOrder(t, newMember(t), newLine(t, book, 2), newLine(t, book, 1), newLine(t, full, 5))
		require.Equal(t, 7, book.StockQuantity())
		require.NoError(t, full.IncreaseStock(item.MaxStockQuantity))

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, 10, book.StockQuantity())
		assert.Equal(t, item.MaxStockQuantity, full.StockQuantity())
	})

	t.Run("should refuse when delivery is completed", func(t *testing.T) {
		book := newItem(t, 10000, 10)
		o := placeOrder(t, newMember(t), newLine(t, book, 2))
		require.NoError(t, o.Delivery().Complete())

		err := o.Cancel()

		require.ErrorIs(t, err, order.ErrCancellationNotAllowed)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, 8, book.StockQuantity())
	})

	t.Run("should refuse a second cancellation", func(t *testing.T) {
		book := newItem(t, 10000, 10)
		o := placeOrder(t, newMember(t), newLine(t, book, 2))
		require.NoError(t, o.Cancel())

		err := o.Cancel()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 10, book.StockQuantity())
	})
}

func TestOrder_CompleteDelivery(t *testing.T) {
	o := placeOrder(t, newMember(t), newLine(t, newItem(t, 10000, 10), 1))

	require.NoError(t, o.CompleteDelivery())
	assert.Equal(t, order.DeliveryCompleted, o.Delivery().Status())
	require.Error(t, o.CompleteDelivery())

	cancelled := placeOrder(t, newMember(t), newLine(t, newItem(t, 10000, 10), 1))
	require.NoError(t, cancelled.Cancel())
	require.ErrorIs(t, cancelled.CompleteDelivery(), errs.ErrValueIsInvalid)
	assert.Equal(t, order.DeliveryReady, cancelled.Delivery().Status())
}

func TestOrder_TotalPrice(t *testing.T) {
	t.Run("single line", func(t *testing.T) {
		o := placeOrder(t, newMember(t), newLine(t, newItem(t, 10000, 10), 2))

		assert.Equal(t, "20000", o.TotalPrice().String())
	})

	t.Run("several lines", func(t *testing.T) {
		o := placeOrder(t, newMember(t),
			newLine(t, newItem(t, 10000, 10), 2),
			newLine(t, newItem(t, 20000, 10), 3),
		)

		assert.Equal(t, "80000", o.TotalPrice().String())
	})

	t.Run("mixed prices", func(t *testing.T) {
		o := placeOrder(t, newMember(t),
			newLine(t, newItem(t, 10000, 10), 2),
			newLine(t, newItem(t, 5000, 10), 1),
		)

		assert.Equal(t, "25000", o.TotalPrice().String())
	})
}

func TestOrder_Items(t *testing.T) {
	book := newItem(t, 10000, 10)
	other := newItem(t, 5000, 10)
	o := placeOrder(t, newMember(t), newLine(t, book, 1), newLine(t, other, 1), newLine(t, book, 1))

	assert.Equal(t, []*item.Item{book, other}, o.Items())
}

func TestOrder_Validate(t *testing.T) {
	var o *order.Order
	assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}
