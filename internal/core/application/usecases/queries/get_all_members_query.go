package queries

import (
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/guard"
)

var ErrGetAllMembersQueryIsNotConstructed = errors.New(
	"GetAllMembersQuery must be created via NewGetAllMembersQuery constructor",
)

// GetAllMembersQuery lists every registered member.
type GetAllMembersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllMembersQuery() GetAllMembersQuery {
	return GetAllMembersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllMembersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllMembersQueryIsNotConstructed)
}

type GetAllMembersQueryResponse struct {
	ID      kernel.UUID
	Name    string
	Address kernel.Address
}
