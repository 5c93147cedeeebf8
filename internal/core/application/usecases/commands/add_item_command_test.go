package commands_test

import (
	"errors"
	"testing"

	"bookshop/internal/core/application/usecases/commands"
	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	price, err := kernel.PriceFromInt(10000)
	require.NoError(t, err)

	cmd, err := commands.NewAddItemCommand(id, "JPA Book", price, 100)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "JPA Book", cmd.Name())
	assert.True(t, price.IsEqual(cmd.Price()))
	assert.Equal(t, 100, cmd.StockQuantity())
}

func TestNewAddItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddItemCommand(kernel.NewUUID(), " ", kernel.Price{}, -1)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, kernel.ErrPriceIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	price, err := kernel.PriceFromInt(10000)
	require.NoError(t, err)
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), "JPA Book", price, 100)
	require.NoError(t, err)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(it *item.Item) bool {
			return it.ID().IsEqual(cmd.ItemID()) && it.StockQuantity() == 100 && it.Version() == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddItemCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddItemCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockItemUoWFactory)

	err := commands.NewAddItemCommandHandler(factory).Handle(t.Context(), commands.AddItemCommand{})

	require.ErrorIs(t, err, commands.ErrAddItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAddItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddItemCommand(kernel.NewUUID(), "JPA Book", kernel.ZeroPrice(), 1)
	require.NoError(t, err)
	beginErr := errors.New("connection refused")

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(beginErr).Once()
	factory := new(MockItemUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddItemCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, beginErr)
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
	uow.AssertNotCalled(t, "ItemRepository")
}
