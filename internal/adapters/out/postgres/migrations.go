package postgres

import (
	"gorm.io/gorm"

	"ordering/internal/adapters/out/postgres/branchrepo"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/partnerrepo"
)

// MigrateTables creates or updates the database schema for all aggregates.
// Called once at startup before the first unit of work is created.
func MigrateTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&branchrepo.BranchDTO{},
		&partnerrepo.DeliveryPartnerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}
