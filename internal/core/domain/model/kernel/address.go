package kernel

import (
	"errors"
	"strings"

	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("address must be created via NewAddress constructor")

// Address is a postal address. It is a value object: two addresses with the
// same city, street and zipcode are equal, and there are no setters.
type Address struct {
	city    string
	street  string
	zipcode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address. Every component is required; surrounding
// whitespace is trimmed before the check.
func NewAddress(city, street, zipcode string) (Address, error) {
	city = strings.TrimSpace(city)
	street = strings.TrimSpace(street)
	zipcode = strings.TrimSpace(zipcode)

	var validationErrs []error
	if city == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("city"))
	}
	if street == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("street"))
	}
	if zipcode == "" {
		validationErrs = append(validationErrs, errs.NewValueIsRequiredError("zipcode"))
	}
	if err := errors.Join(validationErrs...); err != nil {
		return Address{}, err
	}

	return Address{
		city:    city,
		street:  street,
		zipcode: zipcode,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Zipcode() string {
	return a.zipcode
}

func (a Address) IsEqual(other Address) bool {
	return a.city == other.city && a.street == other.street && a.zipcode == other.zipcode
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) String() string {
	return a.city + " " + a.street + " " + a.zipcode
}
