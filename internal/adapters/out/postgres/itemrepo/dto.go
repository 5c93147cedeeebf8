// Package itemrepo persists item aggregates with GORM.
package itemrepo

import (
	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemDTO is the row of the items table. Version backs optimistic locking.
type ItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	StockQuantity int             `gorm:"type:int;not null;check:stock_quantity >= 0"`
	Version       int64           `gorm:"not null;default:0"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(aggregate *item.Item) ItemDTO {
	return ItemDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		Price:         aggregate.Price().Amount(),
		StockQuantity: aggregate.StockQuantity(),
		Version:       aggregate.Version(),
	}
}

// ToDomain restores an item from its row. Other repositories that load items
// through associations use it as well.
func ToDomain(dto ItemDTO) (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	return item.RestoreItem(id, dto.Name, price, dto.StockQuantity, dto.Version)
}
