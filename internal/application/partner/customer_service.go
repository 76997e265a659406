package partner

import (
	"context"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CustomerService manages credit customers and their ledgers
type CustomerService struct {
	txScope      TransactionScope
	customerRepo partner.CustomerRepository
	ledgerRepo   partner.CreditTransactionRepository
	logger       *zap.Logger
}

// NewCustomerService creates a new customer management service
func NewCustomerService(
	txScope TransactionScope,
	customerRepo partner.CustomerRepository,
	ledgerRepo partner.CreditTransactionRepository,
	logger *zap.Logger,
) *CustomerService {
	return &CustomerService{
		txScope:      txScope,
		customerRepo: customerRepo,
		ledgerRepo:   ledgerRepo,
		logger:       logger,
	}
}

// CreateCustomer registers a credit customer
func (s *CustomerService) CreateCustomer(ctx context.Context, tenantID uuid.UUID, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(tenantID, req.Name, req.CreditLimit)
	if err != nil {
		return nil, err
	}
	if req.Phone != "" || req.Email != "" || req.GSTNumber != "" || req.Address != "" {
		if err := customer.Update(req.Name, req.Phone, req.Email, req.GSTNumber, req.Address); err != nil {
			return nil, err
		}
	}
	customer.Notes = req.Notes

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("Credit customer registered",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("credit_limit", customer.CreditLimit.String()))

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// ListCustomers retrieves customers with filtering and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, tenantID uuid.UUID, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
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
	if filter.Status != "" {
		f.Filters["status"] = filter.Status
	}

	customers, err := s.customerRepo.FindAllForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.CountForTenant(ctx, tenantID, f)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// UpdateCustomer updates a customer's contact details
func (s *CustomerService) UpdateCustomer(ctx context.Context, tenantID, customerID uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	name := customer.Name
	phone := customer.Phone
	email := customer.Email
	gstNumber := customer.GSTNumber
	address := customer.Address
	if req.Name != nil {
		name = *req.Name
	}
	if req.Phone != nil {
		phone = *req.Phone
	}
	if req.Email != nil {
		email = *req.Email
	}
	if req.GSTNumber != nil {
		gstNumber = *req.GSTNumber
	}
	if req.Address != nil {
		address = *req.Address
	}
	if err := customer.Update(name, phone, email, gstNumber, address); err != nil {
		return nil, err
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// SetCreditLimit changes a customer's credit limit
func (s *CustomerService) SetCreditLimit(ctx context.Context, tenantID, customerID uuid.UUID, req SetCreditLimitRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}

	oldLimit := customer.CreditLimit
	if err := customer.SetCreditLimit(req.CreditLimit); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	s.logger.Info("Credit limit changed",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("old_limit", oldLimit.String()),
		zap.String("new_limit", req.CreditLimit.String()))

	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// RecordPayment settles part of a customer's outstanding balance. The
// balance change and the ledger entry are written in one transaction.
func (s *CustomerService) RecordPayment(ctx context.Context, tenantID, customerID uuid.UUID, req RecordPaymentRequest) (*LedgerEntryResponse, error) {
	var entry *partner.CreditTransaction

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, customerID)
		if err != nil {
			return err
		}
		if err := customer.Credit(req.Amount); err != nil {
			return err
		}

		entry, err = partner.NewCreditTransaction(tenantID, customerID, req.RecordedBy,
			partner.TransactionTypeCredit, partner.TransactionSourcePayment, req.Amount, customer.Balance)
		if err != nil {
			return err
		}
		entry.Notes = req.Notes

		if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("amount", req.Amount.String()),
		zap.String("balance_after", entry.BalanceAfter.String()))

	resp := ToLedgerEntryResponse(entry)
	return &resp, nil
}

// RecordAdjustment corrects a customer's balance with an audited
// ledger entry.
func (s *CustomerService) RecordAdjustment(ctx context.Context, tenantID, customerID uuid.UUID, req RecordAdjustmentRequest) (*LedgerEntryResponse, error) {
	var entry *partner.CreditTransaction

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.CustomerRepo().FindByIDForTenant(ctx, tenantID, customerID)
		if err != nil {
			return err
		}

		txType := partner.TransactionType(req.Type)
		if err := customer.Adjust(txType, req.Amount); err != nil {
			return err
		}

		entry, err = partner.NewCreditTransaction(tenantID, customerID, req.RecordedBy,
			txType, partner.TransactionSourceAdjustment, req.Amount, customer.Balance)
		if err != nil {
			return err
		}
		entry.Notes = req.Notes

		if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
			return err
		}
		return repos.LedgerRepo().Save(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Warn("Balance adjusted",
		zap.String("tenant_id", tenantID.String()),
		zap.String("customer_id", customerID.String()),
		zap.String("type", req.Type),
		zap.String("amount", req.Amount.String()),
		zap.String("recorded_by", req.RecordedBy.String()))

	resp := ToLedgerEntryResponse(entry)
	return &resp, nil
}

// GetLedger retrieves a customer's credit ledger, newest first
func (s *CustomerService) GetLedger(ctx context.Context, tenantID, customerID uuid.UUID, filter LedgerListFilter) ([]LedgerEntryResponse, int64, error) {
	if _, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID); err != nil {
		return nil, 0, err
	}

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

	entries, err := s.ledgerRepo.FindByCustomer(ctx, tenantID, customerID, f)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.ledgerRepo.CountByCustomer(ctx, tenantID, customerID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses, total, nil
}

// ActivateCustomer reopens a customer account
func (s *CustomerService) ActivateCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	if err := customer.Activate(); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// DeactivateCustomer closes a customer account to new indents. The
// outstanding balance stays on the books until settled.
func (s *CustomerService) DeactivateCustomer(ctx context.Context, tenantID, customerID uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	if err := customer.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	resp := ToCustomerResponse(customer)
	return &resp, nil
}

// DeleteCustomer removes a customer. Customers with an outstanding
// balance cannot be deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, tenantID, customerID uuid.UUID) error {
	customer, err := s.customerRepo.FindByIDForTenant(ctx, tenantID, customerID)
	if err != nil {
		return err
	}
	if !customer.Balance.IsZero() {
		return shared.NewDomainError("BALANCE_OUTSTANDING", "Customer has an outstanding balance")
	}
	return s.customerRepo.Delete(ctx, customer.ID)
}
