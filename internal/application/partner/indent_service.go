package partner

import (
	"context"
	"errors"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/domain/station"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IndentService records credit fuelings against indent slips
type IndentService struct {
	txScope    TransactionScope
	indentRepo partner.IndentRepository
	logger     *zap.Logger
}

// NewIndentService creates a new indent recording service
func NewIndentService(txScope TransactionScope, indentRepo partner.IndentRepository, logger *zap.Logger) *IndentService {
	return &IndentService{
		txScope:    txScope,
		indentRepo: indentRepo,
		logger:     logger,
	}
}

// RecordIndent records a credit fueling. The slip number, the
// customer's balance, the indent and its ledger entry are written in
// one transaction; a failed credit limit check rolls back everything
// including the consumed slip number.
//
// The amount is priced at the fuel price ruling right now, not a
// price sent by the client.
func (s *IndentService) RecordIndent(ctx context.Context, tenantID uuid.UUID, req RecordIndentRequest) (*IndentResponse, error) {
	var indent *partner.Indent

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, req.CustomerID)
		if err != nil {
			return err
		}

		booklet, err := s.resolveBooklet(ctx, repos, tenantID, req)
		if err != nil {
			return err
		}

		number, err := s.takeNumber(ctx, repos, tenantID, booklet, req.IndentNumber)
		if err != nil {
			return err
		}

		setting, err := repos.FuelSettingRepo().FindByFuelType(ctx, tenantID, station.FuelType(req.FuelType))
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewDomainError("FUEL_NOT_CONFIGURED", "This fuel is not configured for the station")
			}
			return err
		}

		indent, err = partner.NewIndent(tenantID, booklet.ID, customer.ID, req.RecordedBy,
			number, setting.FuelType, req.Liters, setting.Price)
		if err != nil {
			return err
		}
		indent.Notes = req.Notes

		if req.VehicleID != nil {
			vehicle, err := repos.VehicleRepo().FindByIDForTenant(ctx, tenantID, *req.VehicleID)
			if err != nil {
				return err
			}
			if vehicle.CustomerID != customer.ID {
				return shared.NewDomainError("VEHICLE_MISMATCH", "Vehicle belongs to a different customer")
			}
			if err := indent.AttachVehicle(vehicle.ID); err != nil {
				return err
			}
		}
		if req.ShiftID != nil {
			if err := indent.AttachShift(*req.ShiftID); err != nil {
				return err
			}
		}

		if err := customer.Debit(indent.Amount); err != nil {
			return err
		}

		entry, err := partner.NewCreditTransaction(tenantID, customer.ID, req.RecordedBy,
			partner.TransactionTypeDebit, partner.TransactionSourceIndent, indent.Amount, customer.Balance)
		if err != nil {
			return err
		}
		entry.SetReference(indent.ID)

		if err := repos.BookletRepo().Save(ctx, booklet); err != nil {
			return err
		}
		if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
			return err
		}
		if err := repos.IndentRepo().Save(ctx, indent); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Indent recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", req.CustomerID.String()),
		zap.Int("indent_number", indent.IndentNumber),
		zap.String("fuel_type", string(indent.FuelType)),
		zap.String("amount", indent.Amount.String()))

	resp := ToIndentResponse(indent)
	return &resp, nil
}

// resolveBooklet picks the booklet the slip comes from, either the one
// named in the request or the customer's single active booklet.
func (s *IndentService) resolveBooklet(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, req RecordIndentRequest) (*partner.IndentBooklet, error) {
	if req.BookletID != nil {
		booklet, err := repos.BookletRepo().FindByIDForTenant(ctx, tenantID, *req.BookletID)
		if err != nil {
			return nil, err
		}
		if booklet.CustomerID != req.CustomerID {
			return nil, shared.NewDomainError("BOOKLET_MISMATCH", "Booklet belongs to a different customer")
		}
		return booklet, nil
	}

	booklet, err := repos.BookletRepo().FindActiveByCustomer(ctx, tenantID, req.CustomerID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NO_ACTIVE_BOOKLET", "Customer has no active indent booklet")
		}
		return nil, err
	}
	return booklet, nil
}

// takeNumber consumes the next slip number, or validates a manually
// entered one against the booklet range and prior use.
func (s *IndentService) takeNumber(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, booklet *partner.IndentBooklet, manual *int) (int, error) {
	if manual == nil {
		return booklet.ConsumeNumber()
	}

	used, err := repos.IndentRepo().ExistsByNumber(ctx, tenantID, booklet.ID, *manual)
	if err != nil {
		return 0, err
	}
	if used {
		return 0, shared.NewDomainError("NUMBER_USED", "This indent number has already been recorded")
	}
	if err := booklet.MarkUsed(*manual); err != nil {
		return 0, err
	}
	return *manual, nil
}

// GetIndent retrieves an indent by ID
func (s *IndentService) GetIndent(ctx context.Context, tenantID, indentID uuid.UUID) (*IndentResponse, error) {
	indent, err := s.indentRepo.FindByIDForTenant(ctx, tenantID, indentID)
	if err != nil {
		return nil, err
	}
	resp := ToIndentResponse(indent)
	return &resp, nil
}

// ListIndents retrieves indents with filtering and pagination
func (s *IndentService) ListIndents(ctx context.Context, tenantID uuid.UUID, filter IndentListFilter) ([]IndentResponse, int64, error) {
	f := shared.DefaultFilter()
	if filter.Page > 0 {
		f.Page = filter.Page
	}
	if filter.PageSize > 0 {
		f.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		f.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		f.OrderDir = filter.OrderDir
	}
	f.Search = filter.Search
	if filter.CustomerID != nil {
		f.Filters["customer_id"] = *filter.CustomerID
	}
	if filter.BookletID != nil {
		f.Filters["booklet_id"] = *filter.BookletID
	}
	if filter.FuelType != "" {
		f.Filters["fuel_type"] = filter.FuelType
	}
	if filter.RecordedFrom != nil {
		f.Filters["recorded_from"] = *filter.RecordedFrom
	}
	if filter.RecordedTo != nil {
		f.Filters["recorded_to"] = *filter.RecordedTo
	}

	indents, err := s.indentRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.indentRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]IndentResponse, len(indents))
	for i := range indents {
		responses[i] = ToIndentResponse(&indents[i])
	}
	return responses, total, nil
}
