package orderrepo

import (
	"context"
	"errors"
	"time"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its delivery and lines. The items the
// lines point to must already exist; their stock is saved by the item repository.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves the mutable state of an order: its status and the status of
// its delivery. Lines never change after an order is placed.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Update("status", dto.Status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Model(&DeliveryDTO{}).
		Where("order_id = ?", dto.ID).
		Update("status", dto.Delivery.Status).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withAssociations(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto, make(map[uuid.UUID]*item.Item))
}

func (r *GormOrderRepository) GetAllWithReadyDelivery(ctx context.Context, placedBefore time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withAssociations(ctx).
		Select("orders.*").
		Joins("JOIN deliveries ON deliveries.order_id = orders.id AND deliveries.status = ?", int(order.DeliveryReady)).
		Where("orders.status = ? AND orders.ordered_at < ?", int(order.Placed), placedBefore).
		Order("orders.ordered_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID]*item.Item)
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Delivery").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_lines.position")
		}).
		Preload("Lines.Item")
}
