package queries

import (
	"errors"
	"time"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/guard"
)

var ErrSearchOrdersQueryIsNotConstructed = errors.New(
	"SearchOrdersQuery must be created via NewSearchOrdersQuery constructor",
)

// SearchOrdersQuery finds orders by status and by a fragment of the member's
// name. Both filters are optional; at most order.SearchLimit rows come back,
// oldest order first.
//
// Example:
//
//	placed := order.Placed
//	query, err := NewSearchOrdersQuery(&placed, "kim")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type SearchOrdersQuery struct {
	search order.Search

	guard guard.ConstructorGuard
}

// NewSearchOrdersQuery builds the query. A nil status or a blank member name
// leaves that filter out.
func NewSearchOrdersQuery(status *order.Status, memberName string) (SearchOrdersQuery, error) {
	search, err := order.NewSearch(status, memberName)
	if err != nil {
		return SearchOrdersQuery{}, err
	}

	return SearchOrdersQuery{
		search: search,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q SearchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrSearchOrdersQueryIsNotConstructed)
}

func (q SearchOrdersQuery) Search() order.Search {
	return q.search
}

// SearchOrdersQueryResponse is one row of the order list.
type SearchOrdersQueryResponse struct {
	ID             kernel.UUID
	MemberName     string
	Status         order.Status
	DeliveryStatus order.DeliveryStatus
	OrderedAt      time.Time
	TotalPrice     kernel.Price
}
