package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/shift"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShiftRepository implements shift.Repository using GORM.
// Readings and consumable allocations are saved and loaded together
// with the shift row.
type GormShiftRepository struct {
	db *gorm.DB
}

// NewGormShiftRepository creates a new GormShiftRepository
func NewGormShiftRepository(db *gorm.DB) *GormShiftRepository {
	return &GormShiftRepository{db: db}
}

// FindByID finds a shift by ID with readings and consumables loaded
func (r *GormShiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*shift.Shift, error) {
	var model models.ShiftModel
	if err := r.db.WithContext(ctx).
		Preload("Readings").
		Preload("Consumables").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a shift by ID within a station
func (r *GormShiftRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*shift.Shift, error) {
	var model models.ShiftModel
	if err := r.db.WithContext(ctx).
		Preload("Readings").
		Preload("Consumables").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByStaff finds the open shift of a staff member, if any
func (r *GormShiftRepository) FindActiveByStaff(ctx context.Context, tenantID, staffID uuid.UUID) (*shift.Shift, error) {
	var model models.ShiftModel
	if err := r.db.WithContext(ctx).
		Preload("Readings").
		Preload("Consumables").
		Where("tenant_id = ? AND staff_id = ? AND status = ?", tenantID, staffID, shift.ShiftStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds shifts of a station matching the filter
func (r *GormShiftRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]shift.Shift, error) {
	var shiftModels []models.ShiftModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ShiftModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Preload("Readings").Preload("Consumables").Find(&shiftModels).Error; err != nil {
		return nil, err
	}
	return toDomainShifts(shiftModels), nil
}

// FindByStatus finds shifts of a station in the given state
func (r *GormShiftRepository) FindByStatus(ctx context.Context, tenantID uuid.UUID, status shift.ShiftStatus, filter shared.Filter) ([]shift.Shift, error) {
	var shiftModels []models.ShiftModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.ShiftModel{}).
			Where("tenant_id = ? AND status = ?", tenantID, status),
		filter,
	)

	if err := query.Preload("Readings").Preload("Consumables").Find(&shiftModels).Error; err != nil {
		return nil, err
	}
	return toDomainShifts(shiftModels), nil
}

// FindCompletedBetween finds shifts that closed within the time range
func (r *GormShiftRepository) FindCompletedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]shift.Shift, error) {
	var shiftModels []models.ShiftModel
	if err := r.db.WithContext(ctx).
		Preload("Readings").
		Preload("Consumables").
		Where("tenant_id = ? AND status = ? AND end_time >= ? AND end_time < ?",
			tenantID, shift.ShiftStatusCompleted, from, to).
		Order("end_time ASC").
		Find(&shiftModels).Error; err != nil {
		return nil, err
	}
	return toDomainShifts(shiftModels), nil
}

// Save creates or updates a shift together with its readings and
// consumable allocations
func (r *GormShiftRepository) Save(ctx context.Context, s *shift.Shift) error {
	model := models.ShiftModelFromDomain(s)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Readings", "Consumables").Save(model).Error; err != nil {
			return err
		}
		if len(model.Readings) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model.Readings).Error; err != nil {
				return err
			}
		}
		if len(model.Consumables) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&model.Consumables).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a shift and its child rows
func (r *GormShiftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ShiftReadingModel{}, "shift_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ConsumableAllocationModel{}, "shift_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ShiftModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// CountForTenant counts shifts of a station matching the filter
func (r *GormShiftRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.ShiftModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// HasActiveShift reports whether the staff member has an open shift
func (r *GormShiftRepository) HasActiveShift(ctx context.Context, tenantID, staffID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ShiftModel{}).
		Where("tenant_id = ? AND staff_id = ? AND status = ?", tenantID, staffID, shift.ShiftStatusActive).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormShiftRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, ShiftSortFields, "start_time")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormShiftRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "staff_id":
			query = query.Where("staff_id = ?", value)
		case "shift_type":
			query = query.Where("shift_type = ?", value)
		case "start_from":
			query = query.Where("start_time >= ?", value)
		case "start_to":
			query = query.Where("start_time < ?", value)
		}
	}

	return query
}

func toDomainShifts(shiftModels []models.ShiftModel) []shift.Shift {
	shifts := make([]shift.Shift, 0, len(shiftModels))
	for i := range shiftModels {
		shifts = append(shifts, *shiftModels[i].ToDomain())
	}
	return shifts
}

// Ensure GormShiftRepository implements shift.Repository
var _ shift.Repository = (*GormShiftRepository)(nil)
