package queries

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrGetAllItemsQueryIsNotConstructed = errors.New(
	"GetAllItemsQuery must be created via NewGetAllItemsQuery constructor",
)

// GetAllItemsQuery lists the catalogue with current prices and stock.
type GetAllItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllItemsQuery() GetAllItemsQuery {
	return GetAllItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllItemsQueryIsNotConstructed)
}

type GetAllItemsQueryResponse struct {
	ID            kernel.UUID
	Name          string
	Price         kernel.Price
	StockQuantity int
}
