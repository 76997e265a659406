package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTankUnloadRepository implements TankUnloadRepository using GORM
type GormTankUnloadRepository struct {
	db *gorm.DB
}

// NewGormTankUnloadRepository creates a new GormTankUnloadRepository
func NewGormTankUnloadRepository(db *gorm.DB) *GormTankUnloadRepository {
	return &GormTankUnloadRepository{db: db}
}

// FindByID finds a delivery record by ID
func (r *GormTankUnloadRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.TankUnload, error) {
	var model models.TankUnloadModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a delivery record by ID within a station
func (r *GormTankUnloadRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*station.TankUnload, error) {
	var model models.TankUnloadModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds delivery records of a station matching the filter
func (r *GormTankUnloadRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]station.TankUnload, error) {
	var unloadModels []models.TankUnloadModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.TankUnloadModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&unloadModels).Error; err != nil {
		return nil, err
	}
	return toDomainTankUnloads(unloadModels), nil
}

// FindBetween finds deliveries of a fuel product within the time range
func (r *GormTankUnloadRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, from, to time.Time) ([]station.TankUnload, error) {
	var unloadModels []models.TankUnloadModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND fuel_type = ? AND unloaded_at >= ? AND unloaded_at < ?",
			tenantID, fuelType, from, to).
		Order("unloaded_at ASC").
		Find(&unloadModels).Error; err != nil {
		return nil, err
	}
	return toDomainTankUnloads(unloadModels), nil
}

// Save creates or updates a delivery record
func (r *GormTankUnloadRepository) Save(ctx context.Context, unload *station.TankUnload) error {
	model := models.TankUnloadModelFromDomain(unload)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a delivery record
func (r *GormTankUnloadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TankUnloadModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts delivery records of a station matching the filter
func (r *GormTankUnloadRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.TankUnloadModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTankUnloadRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TankUnloadSortFields, "unloaded_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormTankUnloadRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("invoice_number ILIKE ? OR tanker_number ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "fuel_type":
			query = query.Where("fuel_type = ?", value)
		case "unloaded_from":
			query = query.Where("unloaded_at >= ?", value)
		case "unloaded_to":
			query = query.Where("unloaded_at < ?", value)
		}
	}

	return query
}

func toDomainTankUnloads(unloadModels []models.TankUnloadModel) []station.TankUnload {
	unloads := make([]station.TankUnload, 0, len(unloadModels))
	for i := range unloadModels {
		unloads = append(unloads, *unloadModels[i].ToDomain())
	}
	return unloads
}

// Ensure GormTankUnloadRepository implements TankUnloadRepository
var _ station.TankUnloadRepository = (*GormTankUnloadRepository)(nil)
