// Package memberrepo persists member aggregates with GORM. The ids of a
// member's orders are not stored on the member row; they are read back from
// the orders table, which holds the foreign key.
package memberrepo

import (
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

func (MemberDTO) TableName() string {
	return "members"
}

type AddressDTO struct {
	City    string `gorm:"type:varchar(255);not null"`
	Street  string `gorm:"type:varchar(255);not null"`
	Zipcode string `gorm:"type:varchar(32);not null"`
}

func fromDomain(aggregate *member.Member) MemberDTO {
	return MemberDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Address: AddressDTO{
			City:    aggregate.Address().City(),
			Street:  aggregate.Address().Street(),
			Zipcode: aggregate.Address().Zipcode(),
		},
	}
}

func toDomain(dto MemberDTO, orderIDs []uuid.UUID) (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.City, dto.Address.Street, dto.Address.Zipcode)
	if err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(orderIDs))
	for _, raw := range lo.Uniq(orderIDs) {
		orderID, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, orderID)
	}

	return member.RestoreMember(id, dto.Name, address, ids)
}
