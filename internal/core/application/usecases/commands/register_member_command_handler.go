package commands

import (
	"context"
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/ports"
)

// ErrDuplicateMember is returned when a member with the same name already exists.
var ErrDuplicateMember = errors.New("member already exists")

type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers a new member. The name check runs inside the transaction;
// the unique index on the member name rejects a concurrent registration that
// slips past it.
func (h RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()

	existing, err := memberRepo.FindByName(ctx, cmd.Name())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateMember, cmd.Name())
	}

	m, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	if err = memberRepo.Add(ctx, m); err != nil {
		if errors.Is(err, ports.ErrMemberNameTaken) {
			return fmt.Errorf("%w: %s", ErrDuplicateMember, cmd.Name())
		}
		return err
	}

	return uow.Commit(ctx)
}
