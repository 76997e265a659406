package partner

import (
	"strings"
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStatus represents the status of a credit customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// Customer is the aggregate root for a credit customer, typically a
// fleet operator fueling on account. Balance is the outstanding
// amount the customer owes the station; indents raise it, payments
// lower it.
type Customer struct {
	shared.TenantAggregateRoot
	Name        string
	Phone       string
	Email       string
	GSTNumber   string
	Address     string
	CreditLimit decimal.Decimal
	Balance     decimal.Decimal
	Status      CustomerStatus
	Notes       string
}

// NewCustomer registers a credit customer for a station
func NewCustomer(tenantID uuid.UUID, name string, creditLimit decimal.Decimal) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 200 characters")
	}
	if creditLimit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}

	c := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		CreditLimit:         creditLimit,
		Balance:             decimal.Zero,
		Status:              CustomerStatusActive,
	}

	c.AddDomainEvent(NewCustomerCreatedEvent(c))

	return c, nil
}

// Update updates the customer's contact details
func (c *Customer) Update(name, phone, email, gstNumber, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}
	if len(gstNumber) > 30 {
		return shared.NewDomainError("INVALID_GST_NUMBER", "GST number cannot exceed 30 characters")
	}

	c.Name = name
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.ToLower(strings.TrimSpace(email))
	c.GSTNumber = strings.ToUpper(strings.TrimSpace(gstNumber))
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetCreditLimit changes the credit limit. The limit may be set
// below the current balance; it only gates new indents.
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_CREDIT_LIMIT", "Credit limit cannot be negative")
	}

	c.CreditLimit = limit
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// AvailableCredit returns how much more the customer can draw
func (c *Customer) AvailableCredit() decimal.Decimal {
	avail := c.CreditLimit.Sub(c.Balance)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}

// Debit raises the outstanding balance for an indent draw. The draw
// is rejected when it would push the balance past the credit limit.
func (c *Customer) Debit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return shared.NewDomainError("INVALID_AMOUNT", "Debit amount must be positive")
	}
	if c.Status != CustomerStatusActive {
		return shared.NewDomainError("CUSTOMER_INACTIVE", "Customer account is inactive")
	}
	if c.Balance.Add(amount).GreaterThan(c.CreditLimit) {
		return shared.ErrInsufficientBalance
	}

	c.Balance = c.Balance.Add(amount)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Credit lowers the outstanding balance for a payment received.
// Overpayment is allowed and leaves the balance negative, meaning
// the station owes the customer.
func (c *Customer) Credit(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return shared.NewDomainError("INVALID_AMOUNT", "Credit amount must be positive")
	}

	c.Balance = c.Balance.Sub(amount)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Adjust corrects the balance outside the indent and payment flows.
// A debit adjustment bypasses the credit limit check because it
// records money already owed, not a new draw.
func (c *Customer) Adjust(txType TransactionType, amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return shared.NewDomainError("INVALID_AMOUNT", "Adjustment amount must be positive")
	}

	switch txType {
	case TransactionTypeDebit:
		c.Balance = c.Balance.Add(amount)
	case TransactionTypeCredit:
		c.Balance = c.Balance.Sub(amount)
	default:
		return shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Unknown transaction type")
	}

	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Activate reopens the customer account
func (c *Customer) Activate() error {
	if c.Status == CustomerStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Customer is already active")
	}

	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate closes the customer account to new indents
func (c *Customer) Deactivate() error {
	if c.Status == CustomerStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Customer is already inactive")
	}

	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
