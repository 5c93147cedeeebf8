package ports

import (
	"context"
	"errors"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
)

// ErrMemberNameTaken is returned by Add when another member already holds the name.
var ErrMemberNameTaken = errors.New("member name is taken")

// MemberRepository defines the persistence contract for member aggregates.
type MemberRepository interface {
	// Add persists a new member. Member names are unique; a clash returns
	// ErrMemberNameTaken.
	Add(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member together with the ids of its orders.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// FindByName returns the members whose name is exactly name.
	FindByName(ctx context.Context, name string) ([]*member.Member, error)
}
