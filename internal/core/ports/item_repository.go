package ports

import (
	"context"
	"errors"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
)

// ErrConcurrentModification is returned by ItemRepository.Update when the stored
// item changed after it was loaded.
var ErrConcurrentModification = errors.New("item was modified concurrently")

// ItemRepository defines the persistence contract for item aggregates.
type ItemRepository interface {
	// Add persists a new item.
	Add(ctx context.Context, aggregate *item.Item) error

	// Update saves the stock of an item if the stored version still equals
	// aggregate.Version(), and bumps the stored version. Otherwise it returns
	// an error wrapping ErrConcurrentModification.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)
}
