package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFuelSettingRepository implements FuelSettingRepository using GORM
type GormFuelSettingRepository struct {
	db *gorm.DB
}

// NewGormFuelSettingRepository creates a new GormFuelSettingRepository
func NewGormFuelSettingRepository(db *gorm.DB) *GormFuelSettingRepository {
	return &GormFuelSettingRepository{db: db}
}

// FindByID finds a fuel setting by ID
func (r *GormFuelSettingRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.FuelSetting, error) {
	var model models.FuelSettingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByFuelType finds a station's setting for the given fuel product
func (r *GormFuelSettingRepository) FindByFuelType(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType) (*station.FuelSetting, error) {
	var model models.FuelSettingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND fuel_type = ?", tenantID, fuelType).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all fuel settings of a station
func (r *GormFuelSettingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID) ([]station.FuelSetting, error) {
	var settingModels []models.FuelSettingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("fuel_type ASC").
		Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]station.FuelSetting, 0, len(settingModels))
	for i := range settingModels {
		settings = append(settings, *settingModels[i].ToDomain())
	}
	return settings, nil
}

// Save creates or updates a fuel setting
func (r *GormFuelSettingRepository) Save(ctx context.Context, setting *station.FuelSetting) error {
	model := models.FuelSettingModelFromDomain(setting)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a fuel setting
func (r *GormFuelSettingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FuelSettingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsByFuelType checks if a station already has a setting for the fuel product
func (r *GormFuelSettingRepository) ExistsByFuelType(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FuelSettingModel{}).
		Where("tenant_id = ? AND fuel_type = ?", tenantID, fuelType).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormFuelSettingRepository implements FuelSettingRepository
var _ station.FuelSettingRepository = (*GormFuelSettingRepository)(nil)
