package ports

import (
	"context"

	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/kernel"
)

// CategoryRepository defines the persistence contract for category aggregates.
type CategoryRepository interface {
	// Add persists a new category together with its item links.
	Add(ctx context.Context, aggregate *category.Category) error

	// Update replaces the stored name and item links of the category.
	Update(ctx context.Context, aggregate *category.Category) error

	// Get retrieves a category with the ids of its items.
	Get(ctx context.Context, id kernel.UUID) (*category.Category, error)

	// GetChildren returns the direct children of parentID ordered by name.
	GetChildren(ctx context.Context, parentID kernel.UUID) ([]*category.Category, error)
}
