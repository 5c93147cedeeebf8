package member_test

import (
	"testing"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeAddress(t *testing.T) kernel.Address {
	t.Helper()
	address, err := kernel.NewAddress(gofakeit.City(), gofakeit.Street(), gofakeit.Zip())
	require.NoError(t, err)
	return address
}

func TestNewMember(t *testing.T) {
	t.Run("should create member without orders", func(t *testing.T) {
		id := kernel.NewUUID()
		address := fakeAddress(t)
		name := gofakeit.Name()

		m, err := member.NewMember(id, name, address)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, name, m.Name())
		assert.True(t, m.Address().IsEqual(address))
		assert.Empty(t, m.OrderIDs())
	})

	t.Run("should require name and address", func(t *testing.T) {
		m, err := member.NewMember(kernel.NewUUID(), "", kernel.Address{})

		require.Error(t, err)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, kernel.ErrAddressIsNotConstructed)
	})
}

func TestRestoreMember(t *testing.T) {
	orderIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	m, err := member.RestoreMember(kernel.NewUUID(), "kim", fakeAddress(t), orderIDs)

	require.NoError(t, err)
	assert.Equal(t, orderIDs, m.OrderIDs())

	_, err = member.RestoreMember(kernel.NewUUID(), "kim", fakeAddress(t), []kernel.UUID{{}})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestMember_AddOrder(t *testing.T) {
	m, err := member.NewMember(kernel.NewUUID(), "kim", fakeAddress(t))
	require.NoError(t, err)
	orderID := kernel.NewUUID()

	require.NoError(t, m.AddOrder(orderID))
	require.NoError(t, m.AddOrder(orderID))

	assert.True(t, m.HasOrder(orderID))
	assert.Len(t, m.OrderIDs(), 1)

	ids := m.OrderIDs()
	ids[0] = kernel.NewUUID()
	assert.True(t, m.HasOrder(orderID), "OrderIDs must return a copy")
}

func TestMember_Validate(t *testing.T) {
	var nilMember *member.Member
	assert.ErrorIs(t, nilMember.Validate(), member.ErrMemberIsNotConstructed)
	assert.ErrorIs(t, (&member.Member{}).Validate(), member.ErrMemberIsNotConstructed)
}
