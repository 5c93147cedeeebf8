package queries

import (
	"context"

	"bookshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllMembersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllMembersQueryHandler(db *gorm.DB) GetAllMembersQueryHandler {
	return GetAllMembersQueryHandler{db: db}
}

// Handle returns all members sorted by name.
func (h GetAllMembersQueryHandler) Handle(
	ctx context.Context,
	query GetAllMembersQuery,
) ([]GetAllMembersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	members := make([]GetAllMembersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address_city,
			address_street,
			address_zipcode
		FROM members
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllMembersQueryResponse
		var id uuid.UUID
		var city, street, zipcode string

		if err = rows.Scan(&id, &resp.Name, &city, &street, &zipcode); err != nil {
			return nil, err
		}

		memberID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = memberID

		address, addrErr := kernel.NewAddress(city, street, zipcode)
		if addrErr != nil {
			return nil, addrErr
		}
		resp.Address = address

		members = append(members, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}
