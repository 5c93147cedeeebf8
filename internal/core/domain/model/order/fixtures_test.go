package order_test

import (
	"testing"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/domain/model/order"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

func newAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(gofakeit.City(), gofakeit.Street(), gofakeit.Zip())
	require.NoError(t, err)
	return address
}

func newMember(t *testing.T) *member.Member {
	t.Helper()
	m, err := member.NewMember(kernel.NewUUID(), gofakeit.Name(), newAddress(t))
	require.NoError(t, err)
	return m
}

func newItem(t *testing.T, price int64, stock int) *item.Item {
	t.Helper()
	p, err := kernel.PriceFromInt(price)
	require.NoError(t, err)
	it, err := item.NewItem(kernel.NewUUID(), gofakeit.BookTitle(), p, stock)
	require.NoError(t, err)
	return it
}

func newDelivery(t *testing.T, m *member.Member) *order.Delivery {
	t.Helper()
	d, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	require.NoError(t, err)
	return d
}

func newLine(t *testing.T, it *item.Item, quantity int) *order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(kernel.NewUUID(), it, it.Price(), quantity)
	require.NoError(t, err)
	return line
}

func placeOrder(t *testing.T, m *member.Member, lines ...*order.OrderLine) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), m, newDelivery(t, m), lines...)
	require.NoError(t, err)
	return o
}
