// Package member contains the Member aggregate: a registered customer with a
// postal address. Orders reference members by id; the member keeps the ids of
// its orders for navigation only and does not own them.
package member

import (
	"errors"
	"slices"
	"strings"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember or RestoreMember constructor")

type Member struct {
	id       kernel.UUID
	name     string
	address  kernel.Address
	orderIDs []kernel.UUID

	guard guard.ConstructorGuard
}

func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return RestoreMember(id, name, address, nil)
}

// RestoreMember rebuilds a persisted member along with the ids of its orders.
func RestoreMember(id kernel.UUID, name string, address kernel.Address, orderIDs []kernel.UUID) (*Member, error) {
	m := &Member{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setAddress(address),
	); err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		if err := m.AddOrder(orderID); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Address() kernel.Address {
	return m.address
}

// OrderIDs returns the ids of the member's orders in the order they were placed.
func (m *Member) OrderIDs() []kernel.UUID {
	return slices.Clone(m.orderIDs)
}

// HasOrder reports whether orderID is in the member's order list.
func (m *Member) HasOrder(orderID kernel.UUID) bool {
	return slices.ContainsFunc(m.orderIDs, orderID.IsEqual)
}

// AddOrder appends orderID to the member's order list. Adding an id that is
// already present is a no-op.
func (m *Member) AddOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if m.HasOrder(orderID) {
		return nil
	}
	m.orderIDs = append(m.orderIDs, orderID)
	return nil
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Member) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	m.address = address
	return nil
}
