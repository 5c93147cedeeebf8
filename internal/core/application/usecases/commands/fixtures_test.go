package commands_test

import (
	"testing"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/domain/model/order"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
)

func newMember(t *testing.T) *member.Member {
	t.Helper()
	address, err := kernel.NewAddress(gofakeit.City(), gofakeit.Street(), gofakeit.Zip())
	require.NoError(t, err)
	m, err := member.NewMember(kernel.NewUUID(), gofakeit.Name(), address)
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

func newOrder(t *testing.T, lines map[*item.Item]int) *order.Order {
	t.Helper()
	m := newMember(t)
	orderLines := make([]*order.OrderLine, 0, len(lines))
	for it, quantity := range lines {
		line, err := order.NewOrderLine(kernel.NewUUID(), it, it.Price(), quantity)
		require.NoError(t, err)
		orderLines = append(orderLines, line)
	}
	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), m, delivery, orderLines...)
	require.NoError(t, err)
	return o
}
