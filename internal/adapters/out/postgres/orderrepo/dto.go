// Package orderrepo persists order aggregates with GORM. An order is stored in
// three tables: orders, order_lines and deliveries. Lines reference items,
// which are owned by itemrepo and are only read here.
package orderrepo

import (
	"time"

	"bookshop/internal/adapters/out/postgres/itemrepo"
	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/order"
	"bookshop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table with its owned associations.
type OrderDTO struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	MemberID  uuid.UUID      `gorm:"type:uuid;not null;index"`
	OrderedAt time.Time      `gorm:"not null;index"`
	Status    int            `gorm:"type:smallint;not null;index"`
	Delivery  DeliveryDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Lines     []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DeliveryDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status  int        `gorm:"type:smallint;not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

// OrderLineDTO is one row of order_lines. Position keeps the insertion order
// of the lines. Item is only filled when loading.
type OrderLineDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	Position  int               `gorm:"type:int;not null"`
	ItemID    uuid.UUID         `gorm:"type:uuid;not null;index"`
	Item      *itemrepo.ItemDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT"`
	UnitPrice decimal.Decimal   `gorm:"type:numeric(19,2);not null"`
	Quantity  int               `gorm:"type:int;not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	delivery := aggregate.Delivery()

	lines := make([]OrderLineDTO, 0, len(aggregate.Lines()))
	for position, line := range aggregate.Lines() {
		lines = append(lines, OrderLineDTO{
			ID:        line.ID().Bytes(),
			OrderID:   orderID,
			Position:  position,
			ItemID:    line.Item().ID().Bytes(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
		})
	}

	return OrderDTO{
		ID:        orderID,
		MemberID:  aggregate.MemberID().Bytes(),
		OrderedAt: aggregate.OrderedAt(),
		Status:    int(aggregate.Status()),
		Delivery: DeliveryDTO{
			ID:      delivery.ID().Bytes(),
			OrderID: orderID,
			Address: AddressDTO{
				City:    delivery.Address().City(),
				Street:  delivery.Address().Street(),
				Zipcode: delivery.Address().Zipcode(),
			},
			Status: int(delivery.Status()),
		},
		Lines: lines,
	}
}

// toDomain restores an order. items caches the items restored so far, so that
// lines referencing the same item (within one order or across the orders of
// one query) share a single *item.Item.
func toDomain(dto OrderDTO, items map[uuid.UUID]*item.Item) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}

	delivery, err := deliveryToDomain(dto.Delivery)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto, items)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, memberID, delivery, lines, dto.OrderedAt.UTC(), order.Status(dto.Status))
}

func deliveryToDomain(dto DeliveryDTO) (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	return order.RestoreDelivery(id, address, order.DeliveryStatus(dto.Status))
}

func lineToDomain(dto OrderLineDTO, items map[uuid.UUID]*item.Item) (*order.OrderLine, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	it, ok := items[dto.ItemID]
	if !ok {
		if dto.Item == nil {
			return nil, errs.NewObjectNotFoundError("item", dto.ItemID.String())
		}
		if it, err = itemrepo.ToDomain(*dto.Item); err != nil {
			return nil, err
		}
		items[dto.ItemID] = it
	}

	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderLine(id, it, unitPrice, dto.Quantity)
}
