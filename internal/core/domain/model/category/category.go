// Package category contains the Category aggregate. Categories form a tree
// through the parent id each child keeps, and group catalogue items by id. An
// item may belong to any number of categories.
package category

import (
	"errors"
	"slices"
	"strings"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var (
	ErrCategoryIsNotConstructed = errors.New(
		"Category must be created via NewCategory, NewSubcategory or RestoreCategory constructor")

	// ErrCategoryIsOwnParent is returned when a category names itself as parent.
	ErrCategoryIsOwnParent = errors.New("category cannot be its own parent")
)

type Category struct {
	id       kernel.UUID
	name     string
	parentID *kernel.UUID
	itemIDs  []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCategory creates a root category with no items.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	return RestoreCategory(id, name, nil, nil)
}

// NewSubcategory creates an empty category under parent.
func NewSubcategory(id kernel.UUID, name string, parent *Category) (*Category, error) {
	if err := parent.Validate(); err != nil {
		return nil, err
	}
	parentID := parent.ID()
	return RestoreCategory(id, name, &parentID, nil)
}

// RestoreCategory rebuilds a persisted category. A nil parentID marks a root.
// Duplicate item ids collapse into one.
func RestoreCategory(id kernel.UUID, name string, parentID *kernel.UUID, itemIDs []kernel.UUID) (*Category, error) {
	c := &Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setParentID(parentID),
	); err != nil {
		return nil, err
	}

	for _, itemID := range itemIDs {
		if err := c.AddItem(itemID); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Category) ID() kernel.UUID {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

// ParentID returns the id of the parent category. The flag is false for a root.
func (c *Category) ParentID() (kernel.UUID, bool) {
	if c.parentID == nil {
		return kernel.UUID{}, false
	}
	return *c.parentID, true
}

func (c *Category) IsRoot() bool {
	return c.parentID == nil
}

// ItemIDs returns the ids of the category's items in the order they were added.
func (c *Category) ItemIDs() []kernel.UUID {
	return slices.Clone(c.itemIDs)
}

func (c *Category) HasItem(itemID kernel.UUID) bool {
	return slices.ContainsFunc(c.itemIDs, itemID.IsEqual)
}

// AddItem puts itemID into the category. Adding an item twice is a no-op.
func (c *Category) AddItem(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	if c.HasItem(itemID) {
		return nil
	}
	c.itemIDs = append(c.itemIDs, itemID)
	return nil
}

// RemoveItem takes itemID out of the category and reports whether it was there.
func (c *Category) RemoveItem(itemID kernel.UUID) bool {
	index := slices.IndexFunc(c.itemIDs, itemID.IsEqual)
	if index < 0 {
		return false
	}
	c.itemIDs = slices.Delete(c.itemIDs, index, index+1)
	return true
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Category) setParentID(parentID *kernel.UUID) error {
	if parentID == nil {
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	if parentID.IsEqual(c.id) {
		return ErrCategoryIsOwnParent
	}
	id := *parentID
	c.parentID = &id
	return nil
}
