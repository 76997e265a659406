package persistence

import (
	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the database schema for all persisted
// aggregates. The tenant aggregate is mapped directly, everything else
// goes through the persistence models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.Tenant{},
		&models.UserModel{},
		&models.FuelSettingModel{},
		&models.PumpModel{},
		&models.NozzleModel{},
		&models.TankUnloadModel{},
		&models.DailyReadingModel{},
		&models.ShiftModel{},
		&models.ShiftReadingModel{},
		&models.ConsumableAllocationModel{},
		&models.CustomerModel{},
		&models.VehicleModel{},
		&models.IndentBookletModel{},
		&models.IndentModel{},
		&models.CreditTransactionModel{},
	)
}
