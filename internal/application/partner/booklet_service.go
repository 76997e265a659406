package partner

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookletService manages the indent booklets issued to credit customers
type BookletService struct {
	bookletRepo  partner.IndentBookletRepository
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewBookletService creates a new booklet management service
func NewBookletService(
	bookletRepo partner.IndentBookletRepository,
	customerRepo partner.CustomerRepository,
	logger *zap.Logger,
) *BookletService {
	return &BookletService{
		bookletRepo:  bookletRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// IssueBooklet issues a numbered indent booklet to a customer. A
// customer holds at most one active booklet at a time.
func (s *BookletService) IssueBooklet(ctx context.Context, tenantID uuid.UUID, req IssueBookletRequest) (*BookletResponse, error) {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, req.CustomerID); err != nil {
		return nil, err
	}

	active, err := s.bookletRepo.FindActiveByCustomer(ctx, tenantID, req.CustomerID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if active != nil {
		return nil, shared.NewDomainError("BOOKLET_ACTIVE", "Customer already holds an active booklet")
	}

	booklet, err := partner.NewIndentBooklet(tenantID, req.CustomerID, req.StartNumber, req.EndNumber)
	if err != nil {
		return nil, err
	}
	if err := s.bookletRepo.Save(ctx, booklet); err != nil {
		return nil, err
	}

	s.logger.Info("Indent booklet issued",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", req.CustomerID.String()),
		zap.Int("start_number", req.StartNumber),
		zap.Int("end_number", req.EndNumber))

	resp := ToBookletResponse(booklet)
	return &resp, nil
}

// GetBooklet retrieves a booklet by ID
func (s *BookletService) GetBooklet(ctx context.Context, tenantID, bookletID uuid.UUID) (*BookletResponse, error) {
	booklet, err := s.bookletRepo.FindByIDForTenant(ctx, tenantID, bookletID)
	if err != nil {
		return nil, err
	}
	resp := ToBookletResponse(booklet)
	return &resp, nil
}

// ListBooklets retrieves the booklets issued to a customer
func (s *BookletService) ListBooklets(ctx context.Context, tenantID, customerID uuid.UUID) ([]BookletResponse, error) {
	booklets, err := s.bookletRepo.FindByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]BookletResponse, len(booklets))
	for i := range booklets {
		responses[i] = ToBookletResponse(&booklets[i])
	}
	return responses, nil
}

// CancelBooklet voids a booklet and its unused slips. Indents already
// recorded against the booklet are unaffected.
func (s *BookletService) CancelBooklet(ctx context.Context, tenantID, bookletID uuid.UUID) (*BookletResponse, error) {
	booklet, err := s.bookletRepo.FindByIDForTenant(ctx, tenantID, bookletID)
	if err != nil {
		return nil, err
	}
	if err := booklet.Cancel(); err != nil {
		return nil, err
	}
	if err := s.bookletRepo.Save(ctx, booklet); err != nil {
		return nil, err
	}

	s.logger.Info("Indent booklet cancelled",
		zap.String("tenant_id", tenantID.String()),
		zap.String("booklet_id", bookletID.String()),
		zap.Int("unused_from", booklet.NextNumber))

	resp := ToBookletResponse(booklet)
	return &resp, nil
}
