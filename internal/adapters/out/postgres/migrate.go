package postgres

import (
	"fmt"

	"bookshop/internal/adapters/out/postgres/categoryrepo"
	"bookshop/internal/adapters/out/postgres/itemrepo"
	"bookshop/internal/adapters/out/postgres/memberrepo"
	"bookshop/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Tables lists the tables created by Migrate, children first.
var Tables = []string{"category_items", "categories", "order_lines", "deliveries", "orders", "items", "members"}

// Migrate creates or updates the schema. Items and members come first because
// order lines and category links reference items.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&memberrepo.MemberDTO{},
		&itemrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.DeliveryDTO{},
		&orderrepo.OrderLineDTO{},
		&categoryrepo.CategoryDTO{},
		&categoryrepo.CategoryItemDTO{},
	); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
