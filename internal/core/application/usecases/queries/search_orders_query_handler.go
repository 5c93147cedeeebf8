package queries

import (
	"context"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dialectPostgres = "postgres"

// orderTotalSQL sums the lines of the outer order row.
const orderTotalSQL = `(SELECT COALESCE(SUM(l.unit_price * l.quantity), 0) FROM order_lines AS l WHERE l.order_id = o.id)`

type SearchOrdersQueryHandler struct {
	db *gorm.DB
}

func NewSearchOrdersQueryHandler(db *gorm.DB) SearchOrdersQueryHandler {
	return SearchOrdersQueryHandler{db: db}
}

func (h SearchOrdersQueryHandler) Handle(
	ctx context.Context,
	query SearchOrdersQuery,
) ([]SearchOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlQuery, args, err := buildSearchOrdersQuery(query.Search())
	if err != nil {
		return nil, err
	}

	// The statement uses $n placeholders, so it goes straight to the pool
	// instead of through gorm's ? substitution.
	sqlDB, err := h.db.DB()
	if err != nil {
		return nil, err
	}

	rows, err := sqlDB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]SearchOrdersQueryResponse, 0)
	for rows.Next() {
		var resp SearchOrdersQueryResponse
		var id uuid.UUID
		var status, deliveryStatus int
		var total decimal.Decimal

		if err = rows.Scan(&id, &resp.MemberName, &status, &deliveryStatus, &resp.OrderedAt, &total); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		resp.Status = order.Status(status)
		if err = resp.Status.Validate(); err != nil {
			return nil, err
		}
		resp.DeliveryStatus = order.DeliveryStatus(deliveryStatus)
		if err = resp.DeliveryStatus.Validate(); err != nil {
			return nil, err
		}

		price, priceErr := kernel.NewPrice(total)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.TotalPrice = price
		resp.OrderedAt = resp.OrderedAt.UTC()

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// buildSearchOrdersQuery renders the order search as a prepared PostgreSQL
// statement. Orders are always joined to their member; the status and name
// conditions are added only when the search carries them.
func buildSearchOrdersQuery(search order.Search) (string, []any, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(goqu.T("orders").As("o")).
		Join(goqu.T("members").As("m"), goqu.On(goqu.I("o.member_id").Eq(goqu.I("m.id")))).
		Join(goqu.T("deliveries").As("d"), goqu.On(goqu.I("d.order_id").Eq(goqu.I("o.id")))).
		Select(
			goqu.I("o.id"),
			goqu.I("m.name"),
			goqu.I("o.status"),
			goqu.I("d.status").As("delivery_status"),
			goqu.I("o.ordered_at"),
			goqu.L(orderTotalSQL).As("total_price"),
		)

	conditions := make([]goqu.Expression, 0, 2)
	if status, ok := search.Status(); ok {
		conditions = append(conditions, goqu.I("o.status").Eq(int(status)))
	}
	if name, ok := search.MemberName(); ok {
		conditions = append(conditions, goqu.I("m.name").Like("%"+name+"%"))
	}
	if len(conditions) > 0 {
		selectStmt = selectStmt.Where(goqu.And(conditions...))
	}

	sqlQuery, args, err := selectStmt.
		Order(goqu.I("o.ordered_at").Asc()).
		Limit(uint(search.Limit())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build order search query: %w", err)
	}

	return sqlQuery, args, nil
}
