package categoryrepo

import (
	"context"
	"errors"

	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCategoryRepository implements ports.CategoryRepository.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the category row and its item links. A parent that is not
// stored violates the parent_id foreign key.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update renames the category and rewrites its item links. The parent never
// changes after creation.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *category.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&CategoryDTO{}).Where("id = ?", dto.ID).Update("name", dto.Name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("category", aggregate.ID().String())
	}

	if err := db.Where("category_id = ?", dto.ID).Delete(&CategoryItemDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*category.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormCategoryRepository) GetChildren(ctx context.Context, parentID kernel.UUID) ([]*category.Category, error) {
	if err := parentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CategoryDTO
	if err := r.withItems(ctx).
		Where("parent_id = ?", parentID.Bytes()).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	children := make([]*category.Category, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	return children, nil
}

func (r *GormCategoryRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("category_items.position")
		})
}
