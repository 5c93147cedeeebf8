// Package commands contains business operations that modify system state.
// Every command is built through a validating constructor and handled inside
// one unit of work: validation, transaction, domain call, explicit save of
// every changed aggregate, commit.
package commands

import (
	"context"

	"bookshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// MemberUoW manages transactions for member-only operations.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// ItemUoW manages transactions for catalogue operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// CategoryUoW manages transactions for the category tree and its item
	// links. Items are only read.
	CategoryUoW interface {
		TxManager
		CategoryRepoFactory
		ItemRepoFactory
	}

	CategoryUoWFactory interface {
		Create() CategoryUoW
	}

	// OrderUoW manages transactions that change orders and the stock of the
	// items their lines reference.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW spans members, items and orders. Used for placing orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   m, err := uow.MemberRepository().Get(ctx, memberID)
	//   it, err := uow.ItemRepository().Get(ctx, itemID)
	//   // ... place the order, save order and items
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MemberRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
