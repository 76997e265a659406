package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIndentRepository implements IndentRepository using GORM
type GormIndentRepository struct {
	db *gorm.DB
}

// NewGormIndentRepository creates a new GormIndentRepository
func NewGormIndentRepository(db *gorm.DB) *GormIndentRepository {
	return &GormIndentRepository{db: db}
}

// FindByID finds an indent by ID
func (r *GormIndentRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Indent, error) {
	var model models.IndentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds an indent by ID within a station
func (r *GormIndentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Indent, error) {
	var model models.IndentModel
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

// FindAllForTenant finds indents of a station matching the filter
func (r *GormIndentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Indent, error) {
	var indentModels []models.IndentModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.IndentModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Find(&indentModels).Error; err != nil {
		return nil, err
	}
	return toDomainIndents(indentModels), nil
}

// FindByCustomer finds indents of a customer matching the filter
func (r *GormIndentRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]partner.Indent, error) {
	var indentModels []models.IndentModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.IndentModel{}).
			Where("tenant_id = ? AND customer_id = ?", tenantID, customerID),
		filter,
	)

	if err := query.Find(&indentModels).Error; err != nil {
		return nil, err
	}
	return toDomainIndents(indentModels), nil
}

// FindByStaffBetween finds indents recorded by a staff member within
// the time range. Used to attribute credit sales to a shift.
func (r *GormIndentRepository) FindByStaffBetween(ctx context.Context, tenantID, staffID uuid.UUID, from, to time.Time) ([]partner.Indent, error) {
	var indentModels []models.IndentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND recorded_by = ? AND recorded_at >= ? AND recorded_at < ?",
			tenantID, staffID, from, to).
		Order("recorded_at ASC").
		Find(&indentModels).Error; err != nil {
		return nil, err
	}
	return toDomainIndents(indentModels), nil
}

// ExistsByNumber checks if an indent number has already been used in a booklet
func (r *GormIndentRepository) ExistsByNumber(ctx context.Context, tenantID, bookletID uuid.UUID, indentNumber int) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.IndentModel{}).
		Where("tenant_id = ? AND booklet_id = ? AND indent_number = ?", tenantID, bookletID, indentNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates an indent
func (r *GormIndentRepository) Save(ctx context.Context, indent *partner.Indent) error {
	model := models.IndentModelFromDomain(indent)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes an indent
func (r *GormIndentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IndentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts indents of a station matching the filter
func (r *GormIndentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&models.IndentModel{}).Where("tenant_id = ?", tenantID),
		filter,
	)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormIndentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, IndentSortFields, "recorded_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormIndentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "booklet_id":
			query = query.Where("booklet_id = ?", value)
		case "vehicle_id":
			query = query.Where("vehicle_id = ?", value)
		case "fuel_type":
			query = query.Where("fuel_type = ?", value)
		case "shift_id":
			query = query.Where("shift_id = ?", value)
		case "recorded_from":
			query = query.Where("recorded_at >= ?", value)
		case "recorded_to":
			query = query.Where("recorded_at < ?", value)
		}
	}

	return query
}

func toDomainIndents(indentModels []models.IndentModel) []partner.Indent {
	indents := make([]partner.Indent, 0, len(indentModels))
	for i := range indentModels {
		indents = append(indents, *indentModels[i].ToDomain())
	}
	return indents
}

// Ensure GormIndentRepository implements IndentRepository
var _ partner.IndentRepository = (*GormIndentRepository)(nil)
