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

// GormCreditTransactionRepository implements CreditTransactionRepository using GORM
type GormCreditTransactionRepository struct {
	db *gorm.DB
}

// NewGormCreditTransactionRepository creates a new GormCreditTransactionRepository
func NewGormCreditTransactionRepository(db *gorm.DB) *GormCreditTransactionRepository {
	return &GormCreditTransactionRepository{db: db}
}

// FindByID finds a ledger entry by ID
func (r *GormCreditTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.CreditTransaction, error) {
	var model models.CreditTransactionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds ledger entries of a customer matching the filter
func (r *GormCreditTransactionRepository) FindByCustomer(ctx context.Context, tenantID, customerID uuid.UUID, filter shared.Filter) ([]partner.CreditTransaction, error) {
	var txModels []models.CreditTransactionModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.CreditTransactionModel{}).
			Where("tenant_id = ? AND customer_id = ?", tenantID, customerID),
		filter,
	)

	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}
	return toDomainCreditTransactions(txModels), nil
}

// FindBetween finds ledger entries of a station within the time range
func (r *GormCreditTransactionRepository) FindBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]partner.CreditTransaction, error) {
	var txModels []models.CreditTransactionModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND recorded_at >= ? AND recorded_at < ?", tenantID, from, to).
		Order("recorded_at ASC").
		Find(&txModels).Error; err != nil {
		return nil, err
	}
	return toDomainCreditTransactions(txModels), nil
}

// Save creates or updates a ledger entry
func (r *GormCreditTransactionRepository) Save(ctx context.Context, tx *partner.CreditTransaction) error {
	model := models.CreditTransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Save(model).Error
}

// CountByCustomer counts ledger entries of a customer
func (r *GormCreditTransactionRepository) CountByCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CreditTransactionModel{}).
		Where("tenant_id = ? AND customer_id = ?", tenantID, customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormCreditTransactionRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "type":
			query = query.Where("type = ?", value)
		case "source":
			query = query.Where("source = ?", value)
		case "recorded_from":
			query = query.Where("recorded_at >= ?", value)
		case "recorded_to":
			query = query.Where("recorded_at < ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, CreditTransactionSortFields, "recorded_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func toDomainCreditTransactions(txModels []models.CreditTransactionModel) []partner.CreditTransaction {
	txs := make([]partner.CreditTransaction, 0, len(txModels))
	for i := range txModels {
		txs = append(txs, *txModels[i].ToDomain())
	}
	return txs
}

// Ensure GormCreditTransactionRepository implements CreditTransactionRepository
var _ partner.CreditTransactionRepository = (*GormCreditTransactionRepository)(nil)
