// Package ports defines the repository interfaces of the bookshop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its lines and its delivery. Items referenced
// by the lines are loaded with the order but are saved through ItemRepository.
type OrderRepository interface {
	// Add persists a new order aggregate with its lines and delivery.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order and of its delivery.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Lines come back in the order they were placed; lines of the same item
	// share one *item.Item.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllWithReadyDelivery retrieves placed orders whose delivery is still
	// Ready and that were ordered before placedBefore, oldest first.
	GetAllWithReadyDelivery(ctx context.Context, placedBefore time.Time) ([]*order.Order, error)
}
