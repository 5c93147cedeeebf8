package order

import (
	"errors"
	"fmt"
	"time"

	"bookshop/internal/core/domain/model/item"
	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"

	"github.com/samber/lo"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCancellationNotAllowed is returned when cancelling an order whose delivery has completed.
	ErrCancellationNotAllowed = errors.New("order with a completed delivery can not be cancelled")

	// ErrLinesAreRequired is returned when an order is built without any line.
	ErrLinesAreRequired = errs.NewValueIsRequiredError("order lines")

	// ErrAlreadyAttached is returned when a delivery or a line already belongs to another order.
	ErrAlreadyAttached = errors.New("already attached to an order")
)

// Order is the aggregate root of an order placed by a member.
//
// Order follows these invariants:
//   - Has a valid identifier and references a valid member by id
//   - Owns exactly one delivery and at least one line, each attached to this order only
//   - Status transitions follow Status: Placed -> Cancelled
//   - Can not be cancelled once the delivery is completed
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id        kernel.UUID
	memberID  kernel.UUID
	delivery  *Delivery
	lines     []*OrderLine
	orderedAt time.Time
	status    Status

	guard guard.ConstructorGuard
}

// NewOrder places a new order for m.
//
// Every argument is validated before anything is wired together, so a failed
// call leaves the member, the delivery and the lines untouched. On success:
//   - the order id is appended to the member's order list
//   - the delivery and each line (in the given order) are attached to the order
//   - the status is Placed and the order time is now
//
// The lines are expected to come from NewOrderLine, which has already taken
// their quantities out of stock.
//
// Example:
//
//	line, _ := order.NewOrderLine(kernel.NewUUID(), book, book.Price(), 2)
//	delivery, _ := order.NewDelivery(kernel.NewUUID(), m.Address())
//	o, err := order.NewOrder(kernel.NewUUID(), m, delivery, line)
func NewOrder(id kernel.UUID, m *member.Member, delivery *Delivery, lines ...*OrderLine) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		m.Validate(),
		validateDelivery(delivery),
		validateLines(lines),
	); err != nil {
		return nil, err
	}

	if err := m.AddOrder(id); err != nil {
		return nil, err
	}

	return newOrder(id, m.ID(), delivery, lines, now(), Placed), nil
}

// RestoreOrder rebuilds a persisted order. The lines keep the order given, which
// is the order they were placed in.
func RestoreOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	lines []*OrderLine,
	orderedAt time.Time,
	status Status,
) (*Order, error) {
	var orderedAtErr error
	if orderedAt.IsZero() {
		orderedAtErr = errs.NewValueIsRequiredError("ordered at")
	}

	if err := errors.Join(
		id.Validate(),
		memberID.Validate(),
		delivery.Validate(),
		validateRestoredLines(lines),
		orderedAtErr,
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return newOrder(id, memberID, delivery, lines, orderedAt, status), nil
}

func newOrder(
	id kernel.UUID,
	memberID kernel.UUID,
	delivery *Delivery,
	lines []*OrderLine,
	orderedAt time.Time,
	status Status,
) *Order {
	delivery.attach(id)
	for _, line := range lines {
		line.attach(id)
	}

	return &Order{
		id:        id,
		memberID:  memberID,
		delivery:  delivery,
		lines:     append([]*OrderLine(nil), lines...),
		orderedAt: orderedAt,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) MemberID() kernel.UUID {
	return o.memberID
}

func (o *Order) Delivery() *Delivery {
	return o.delivery
}

// Lines returns the order lines in insertion order.
func (o *Order) Lines() []*OrderLine {
	return append([]*OrderLine(nil), o.lines...)
}

func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

func (o *Order) Status() Status {
	return o.status
}

// Items returns the distinct items referenced by the lines, in line order.
// These are the aggregates whose stock Cancel changes.
func (o *Order) Items() []*item.Item {
	items := lo.Map(o.lines, func(line *OrderLine, _ int) *item.Item {
		return line.Item()
	})
	return lo.UniqBy(items, func(it *item.Item) kernel.UUID {
		return it.ID()
	})
}

// Cancel withdraws the order and restores the stock of every line.
//
// Business rules:
//   - A completed delivery blocks cancellation with ErrCancellationNotAllowed
//   - Only a Placed order can be cancelled; cancelling twice fails
//   - Lines are cancelled in insertion order
//
// A failure while restoring a line is returned as is. Lines cancelled before it
// keep their restored stock; callers run Cancel inside a unit of work that
// discards the partial change.
func (o *Order) Cancel() error {
	if o.delivery.Status().IsCompleted() {
		return ErrCancellationNotAllowed
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = newStatus

	for _, line := range o.lines {
		if err = line.Cancel(); err != nil {
			return err
		}
	}

	return nil
}

// CompleteDelivery marks the delivery of a placed order as handed over.
func (o *Order) CompleteDelivery() error {
	if o.status != Placed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete delivery", o.status),
		)
	}
	return o.delivery.Complete()
}

// TotalPrice sums the totals of all lines.
func (o *Order) TotalPrice() kernel.Price {
	return lo.Reduce(o.lines, func(total kernel.Price, line *OrderLine, _ int) kernel.Price {
		return total.Add(line.TotalPrice())
	}, kernel.ZeroPrice())
}

func validateDelivery(delivery *Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	if delivery.isAttached() {
		return fmt.Errorf("delivery %s: %w", delivery.ID(), ErrAlreadyAttached)
	}
	return nil
}

func validateLines(lines []*OrderLine) error {
	if err := validateRestoredLines(lines); err != nil {
		return err
	}

	if len(lo.UniqBy(lines, (*OrderLine).ID)) != len(lines) {
		return errs.NewValueIsInvalidErrorWithCause("order lines", errors.New("the same line is given more than once"))
	}

	var attachErrs []error
	for _, line := range lines {
		if line.isAttached() {
			attachErrs = append(attachErrs, fmt.Errorf("order line %s: %w", line.ID(), ErrAlreadyAttached))
		}
	}
	return errors.Join(attachErrs...)
}

func validateRestoredLines(lines []*OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	lineErrs := make([]error, 0, len(lines))
	for _, line := range lines {
		lineErrs = append(lineErrs, line.Validate())
	}
	return errors.Join(lineErrs...)
}

// now is truncated to the precision PostgreSQL stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
