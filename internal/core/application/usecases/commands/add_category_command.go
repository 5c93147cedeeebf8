package commands

import (
	"errors"
	"strings"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/pkg/errs"
	"bookshop/internal/pkg/guard"
)

var ErrAddCategoryCommandIsNotConstructed = errors.New(
	"AddCategoryCommand must be created via NewAddCategoryCommand or NewAddSubcategoryCommand constructor",
)

type AddCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	name       string
	parentID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddCategoryCommand builds a command creating a root category.
func NewAddCategoryCommand(categoryID kernel.UUID, name string) (AddCategoryCommand, error) {
	return newAddCategoryCommand(categoryID, name, nil)
}

// NewAddSubcategoryCommand builds a command creating a category under parentID.
func NewAddSubcategoryCommand(categoryID kernel.UUID, name string, parentID kernel.UUID) (AddCategoryCommand, error) {
	return newAddCategoryCommand(categoryID, name, &parentID)
}

func newAddCategoryCommand(categoryID kernel.UUID, name string, parentID *kernel.UUID) (AddCategoryCommand, error) {
	cmd := AddCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCategoryID(categoryID),
		cmd.setName(name),
		cmd.setParentID(parentID),
	); err != nil {
		return AddCategoryCommand{}, err
	}

	return cmd, nil
}

func (c AddCategoryCommand) Validate() error {
	return c.guard.Validate(ErrAddCategoryCommandIsNotConstructed)
}

func (c AddCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c AddCategoryCommand) Name() string {
	return c.name
}

// ParentID returns the parent category id; the flag is false for a root.
func (c AddCategoryCommand) ParentID() (kernel.UUID, bool) {
	if c.parentID == nil {
		return kernel.UUID{}, false
	}
	return *c.parentID, true
}

func (c *AddCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *AddCategoryCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddCategoryCommand) setParentID(parentID *kernel.UUID) error {
	if parentID == nil {
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}
	c.parentID = parentID
	return nil
}
