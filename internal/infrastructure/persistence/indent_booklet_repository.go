package persistence

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormIndentBookletRepository implements IndentBookletRepository using GORM
type GormIndentBookletRepository struct {
	db *gorm.DB
}

// NewGormIndentBookletRepository creates a new GormIndentBookletRepository
func NewGormIndentBookletRepository(db *gorm.DB) *GormIndentBookletRepository {
	return &GormIndentBookletRepository{db: db}
}

// FindByID finds a booklet by ID
func (r *GormIndentBookletRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.IndentBooklet, error) {
	var model models.IndentBookletModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDForTenant finds a booklet by ID within a station
func (r *GormIndentBookletRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.IndentBooklet, error) {
	var model models.IndentBookletModel
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

// FindByCustomer finds all booklets issued to a customer
func (r *GormIndentBookletRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) ([]partner.IndentBooklet, error) {
	var bookletModels []models.IndentBookletModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Order("start_number ASC").
		Find(&bookletModels).Error; err != nil {
		return nil, err
	}

	booklets := make([]partner.IndentBooklet, 0, len(bookletModels))
	for i := range bookletModels {
		booklets = append(booklets, *bookletModels[i].ToDomain())
	}
	return booklets, nil
}

// FindActiveByCustomer finds the customer's booklet that still has
// unused indent numbers
func (r *GormIndentBookletRepository) FindActiveByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*partner.IndentBooklet, error) {
	var model models.IndentBookletModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND customer_id = ? AND status = ?",
			tenantID, customerID, partner.BookletStatusActive).
		Order("start_number ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a booklet
func (r *GormIndentBookletRepository) Save(ctx context.Context, booklet *partner.IndentBooklet) error {
	model := models.IndentBookletModelFromDomain(booklet)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a booklet
func (r *GormIndentBookletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.IndentBookletModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormIndentBookletRepository implements IndentBookletRepository
var _ partner.IndentBookletRepository = (*GormIndentBookletRepository)(nil)
