package kernel

import (
	"errors"
	"fmt"

	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPriceIsNotConstructed = errors.New("price must be created via NewPrice or PriceFromInt")

// Price is a non-negative money amount. Arithmetic never produces a negative
// value because quantities multiplied in are validated by their owners.
type Price struct {
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewPrice creates a Price from a decimal amount.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is less than 0", amount.String()))
	}
	return Price{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// PriceFromInt creates a Price from a whole amount.
func PriceFromInt(amount int64) (Price, error) {
	return NewPrice(decimal.NewFromInt(amount))
}

// PriceFromString parses a decimal amount such as "10000" or "12.50".
func PriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(d)
}

// ZeroPrice is the neutral element of Add.
func ZeroPrice() Price {
	return Price{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Mul returns the price of quantity units.
func (p Price) Mul(quantity int) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: p.guard}
}

func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount), guard: guard.NewConstructorGuard()}
}

func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

func (p Price) IsEqual(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) Validate() error {
	return p.guard.Validate(ErrPriceIsNotConstructed)
}

func (p Price) String() string {
	return p.amount.String()
}
