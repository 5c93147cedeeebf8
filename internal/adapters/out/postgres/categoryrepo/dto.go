// Package categoryrepo persists category aggregates with GORM. The tree is a
// self-referencing parent_id on categories; the many-to-many link to items
// lives in the category_items join table.
package categoryrepo

import (
	"bookshop/internal/adapters/out/postgres/itemrepo"
	"bookshop/internal/core/domain/model/category"
	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CategoryDTO struct {
	ID       uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name     string            `gorm:"type:varchar(255);not null"`
	ParentID *uuid.UUID        `gorm:"type:uuid;index"`
	Parent   *CategoryDTO      `gorm:"foreignKey:ParentID;constraint:OnDelete:RESTRICT"`
	Items    []CategoryItemDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

// CategoryItemDTO is one row of the join table. Position keeps the order in
// which items were added to the category.
type CategoryItemDTO struct {
	CategoryID uuid.UUID         `gorm:"type:uuid;primaryKey"`
	ItemID     uuid.UUID         `gorm:"type:uuid;primaryKey;index"`
	Item       *itemrepo.ItemDTO `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
	Position   int               `gorm:"type:int;not null"`
}

func (CategoryItemDTO) TableName() string {
	return "category_items"
}

func fromDomain(aggregate *category.Category) CategoryDTO {
	dto := CategoryDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Items: itemLinks(aggregate),
	}
	if parentID, ok := aggregate.ParentID(); ok {
		raw := parentID.Bytes()
		dto.ParentID = &raw
	}
	return dto
}

func itemLinks(aggregate *category.Category) []CategoryItemDTO {
	categoryID := aggregate.ID().Bytes()
	links := make([]CategoryItemDTO, 0, len(aggregate.ItemIDs()))
	for position, itemID := range aggregate.ItemIDs() {
		links = append(links, CategoryItemDTO{
			CategoryID: categoryID,
			ItemID:     itemID.Bytes(),
			Position:   position,
		})
	}
	return links
}

func toDomain(dto CategoryDTO) (*category.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var parentID *kernel.UUID
	if dto.ParentID != nil {
		restored, parentErr := kernel.UUIDFromBytes(dto.ParentID[:])
		if parentErr != nil {
			return nil, parentErr
		}
		parentID = &restored
	}

	itemIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, link := range dto.Items {
		itemID, idErr := kernel.UUIDFromBytes(link.ItemID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemIDs = append(itemIDs, itemID)
	}

	return category.RestoreCategory(id, dto.Name, parentID, itemIDs)
}
