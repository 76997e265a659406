package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPumpRepository implements PumpRepository using GORM.
// Nozzles are saved and loaded together with the pump row.
type GormPumpRepository struct {
	db *gorm.DB
}

// NewGormPumpRepository creates a new GormPumpRepository
func NewGormPumpRepository(db *gorm.DB) *GormPumpRepository {
	return &GormPumpRepository{db: db}
}

// FindByID finds a pump by ID with nozzles loaded
func (r *GormPumpRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.Pump, error) {
	var model models.PumpModel
	if err := r.db.WithContext(ctx).
		Preload("Nozzles").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a pump by ID within a station
func (r *GormPumpRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*station.Pump, error) {
	var model models.PumpModel
	if err := r.db.WithContext(ctx).
		Preload("Nozzles").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds pumps of a station matching the filter
func (r *GormPumpRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]station.Pump, error) {
	var pumpModels []models.PumpModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.PumpModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Preload("Nozzles").Find(&pumpModels).Error; err != nil {
		return nil, err
	}
	return toDomainPumps(pumpModels), nil
}

// FindOperational finds pumps of a station that can currently dispense
func (r *GormPumpRepository) FindOperational(ctx context.Context, tenantID uuid.UUID) ([]station.Pump, error) {
	var pumpModels []models.PumpModel
	if err := r.db.WithContext(ctx).
		Preload("Nozzles").
		Where("tenant_id = ? AND status = ?", tenantID, station.PumpStatusOperational).
		Order("name ASC").
		Find(&pumpModels).Error; err != nil {
		return nil, err
	}
	return toDomainPumps(pumpModels), nil
}

// Save creates or updates a pump together with its nozzles
func (r *GormPumpRepository) Save(ctx context.Context, pump *station.Pump) error {
	model := models.PumpModelFromDomain(pump)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Nozzles").Save(model).Error; err != nil {
			return err
		}
		// Removed nozzles are deleted, remaining ones upserted
		keepIDs := make([]uuid.UUID, 0, len(model.Nozzles))
		for i := range model.Nozzles {
			keepIDs = append(keepIDs, model.Nozzles[i].ID)
		}
		del := tx.Where("pump_id = ?", model.ID)
		if len(keepIDs) > 0 {
			del = del.Where("id NOT IN ?", keepIDs)
		}
		if err := del.Delete(&models.NozzleModel{}).Error; err != nil {
			return err
		}
		if len(model.Nozzles) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model.Nozzles).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a pump and its nozzles
func (r *GormPumpRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.NozzleModel{}, "pump_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.PumpModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountForTenant counts pumps of a station matching the filter
func (r *GormPumpRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.PumpModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormPumpRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PumpSortFields, "name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormPumpRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

func toDomainPumps(pumpModels []models.PumpModel) []station.Pump {
	pumps := make([]station.Pump, 0, len(pumpModels))
	for i := range pumpModels {
		pumps = append(pumps, *pumpModels[i].ToDomain())
	}
	return pumps
}

// Ensure GormPumpRepository implements PumpRepository
var _ station.PumpRepository = (*GormPumpRepository)(nil)
