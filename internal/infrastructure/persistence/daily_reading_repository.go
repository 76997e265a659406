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

// GormDailyReadingRepository implements DailyReadingRepository using GORM
type GormDailyReadingRepository struct {
	db *gorm.DB
}

// NewGormDailyReadingRepository creates a new GormDailyReadingRepository
func NewGormDailyReadingRepository(db *gorm.DB) *GormDailyReadingRepository {
	return &GormDailyReadingRepository{db: db}
}

// FindByID finds a daily stock record by ID
func (r *GormDailyReadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*station.DailyReading, error) {
	var model models.DailyReadingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByDate finds the stock record of a fuel product for a calendar day
func (r *GormDailyReadingRepository) FindByDate(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, date time.Time) (*station.DailyReading, error) {
	dayStart, dayEnd := dayBounds(date)
	var model models.DailyReadingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND fuel_type = ? AND reading_date >= ? AND reading_date < ?",
			tenantID, fuelType, dayStart, dayEnd).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds daily stock records of a station matching the filter
func (r *GormDailyReadingRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]station.DailyReading, error) {
	var readingModels []models.DailyReadingModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.DailyReadingModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&readingModels).Error; err != nil {
		return nil, err
	}
	return toDomainDailyReadings(readingModels), nil
}

// FindBetween finds daily stock records of a fuel product within the date range
func (r *GormDailyReadingRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, from, to time.Time) ([]station.DailyReading, error) {
	var readingModels []models.DailyReadingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND fuel_type = ? AND reading_date >= ? AND reading_date < ?",
			tenantID, fuelType, from, to).
		Order("reading_date ASC").
		Find(&readingModels).Error; err != nil {
		return nil, err
	}
	return toDomainDailyReadings(readingModels), nil
}

// Save creates or updates a daily stock record
func (r *GormDailyReadingRepository) Save(ctx context.Context, reading *station.DailyReading) error {
	model := models.DailyReadingModelFromDomain(reading)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a daily stock record
func (r *GormDailyReadingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.DailyReadingModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// ExistsForDate checks if a record already exists for the fuel product and day
func (r *GormDailyReadingRepository) ExistsForDate(ctx context.Context, tenantID uuid.UUID, fuelType station.FuelType, date time.Time) (bool, error) {
	dayStart, dayEnd := dayBounds(date)
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.DailyReadingModel{}).
		Where("tenant_id = ? AND fuel_type = ? AND reading_date >= ? AND reading_date < ?",
			tenantID, fuelType, dayStart, dayEnd).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormDailyReadingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "fuel_type":
			query = query.Where("fuel_type = ?", value)
		case "date_from":
			query = query.Where("reading_date >= ?", value)
		case "date_to":
			query = query.Where("reading_date < ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, DailyReadingSortFields, "reading_date")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}

func toDomainDailyReadings(readingModels []models.DailyReadingModel) []station.DailyReading {
	readings := make([]station.DailyReading, 0, len(readingModels))
	for i := range readingModels {
		readings = append(readings, *readingModels[i].ToDomain())
	}
	return readings
}

// Ensure GormDailyReadingRepository implements DailyReadingRepository
var _ station.DailyReadingRepository = (*GormDailyReadingRepository)(nil)
