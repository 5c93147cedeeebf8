package order_test

import (
	"testing"

	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearch(t *testing.T) {
	t.Run("no criteria", func(t *testing.T) {
		search, err := order.NewSearch(nil, "")

		require.NoError(t, err)
		_, hasStatus := search.Status()
		_, hasName := search.MemberName()
		assert.False(t, hasStatus)
		assert.False(t, hasName)
		assert.Equal(t, 1000, search.Limit())
	})

	t.Run("blank name is absent", func(t *testing.T) {
		search, err := order.NewSearch(nil, "   ")

		require.NoError(t, err)
		_, hasName := search.MemberName()
		assert.False(t, hasName)
	})

	t.Run("both criteria", func(t *testing.T) {
		status := order.Cancelled

		search, err := order.NewSearch(&status, "kim")
		status = order.Placed

		require.NoError(t, err)
		gotStatus, ok := search.Status()
		assert.True(t, ok)
		assert.Equal(t, order.Cancelled, gotStatus)
		name, ok := search.MemberName()
		assert.True(t, ok)
		assert.Equal(t, "kim", name)
	})

	t.Run("invalid status", func(t *testing.T) {
		status := order.Unknown

		_, err := order.NewSearch(&status, "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
