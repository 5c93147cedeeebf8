package item

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var (
	// ErrInsufficientStock is returned when a decrease would leave the stock negative.
	ErrInsufficientStock = errors.New("need more stock")

	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")
)

// MaxStockQuantity is the largest stock an item can hold. The stock column is int4.
const MaxStockQuantity = math.MaxInt32

// Item is a catalogue entry with a unit price and a stock quantity.
type Item struct {
	id            kernel.UUID
	name          string
	price         kernel.Price
	stockQuantity int
	version       int64

	guard guard.ConstructorGuard
}

// NewItem creates a new catalogue item with the given initial stock.
//
// Returns a joined error listing every invalid argument:
//   - id must be a constructed UUID
//   - name must not be blank
//   - price must be a constructed Price
//   - stockQuantity must not be negative
func NewItem(id kernel.UUID, name string, price kernel.Price, stockQuantity int) (*Item, error) {
	return RestoreItem(id, name, price, stockQuantity, 0)
}

// RestoreItem rebuilds a persisted item together with its stored version.
func RestoreItem(id kernel.UUID, name string, price kernel.Price, stockQuantity int, version int64) (*Item, error) {
	i := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setPrice(price),
		i.setStockQuantity(stockQuantity),
		i.setVersion(version),
	); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() kernel.Price {
	return i.price
}

func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

// Version is the persisted version the item was loaded with (0 for new items).
func (i *Item) Version() int64 {
	return i.version
}

// IncreaseStock adds quantity units back to the stock. The stock stays as is
// when the result would exceed MaxStockQuantity.
func (i *Item) IncreaseStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	if quantity > MaxStockQuantity-i.stockQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause("stock quantity", i.stockQuantity, 0, MaxStockQuantity,
			fmt.Errorf("cannot add %d units to item %s", quantity, i.id))
	}

	i.stockQuantity += quantity
	return nil
}

// DecreaseStock removes quantity units from the stock. If fewer than quantity
// units are available it returns ErrInsufficientStock and the stock stays as is.
func (i *Item) DecreaseStock(quantity int) error {
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	rest := i.stockQuantity - quantity
	if rest < 0 {
		return fmt.Errorf("%w: item %s has %d in stock, %d requested",
			ErrInsufficientStock, i.id, i.stockQuantity, quantity)
	}

	i.stockQuantity = rest
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity",
			fmt.Errorf("%d is less than 0", stockQuantity))
	}
	if stockQuantity > MaxStockQuantity {
		return errs.NewValueIsOutOfRangeError("stock quantity", stockQuantity, 0, MaxStockQuantity)
	}
	i.stockQuantity = stockQuantity
	return nil
}

func (i *Item) setVersion(version int64) error {
	if version < 0 {
		return errs.NewVersionIsInvalidErrorWithCause("item version",
			fmt.Errorf("%d is less than 0", version))
	}
	i.version = version
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}
