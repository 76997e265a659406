package partner

import (
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeCustomer = "Customer"
	AggregateTypeIndent   = "Indent"
)

// Event type constants
const (
	EventTypeCustomerCreated = "CustomerCreated"
	EventTypeIndentRecorded  = "IndentRecorded"
)

// CustomerCreatedEvent is published when a credit customer is registered
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	Name        string          `json:"name"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(c *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, AggregateTypeCustomer, c.ID, c.TenantID),
		Name:            c.Name,
		CreditLimit:     c.CreditLimit,
	}
}

// IndentRecordedEvent is published when a credit fueling is recorded
type IndentRecordedEvent struct {
	shared.BaseDomainEvent
	CustomerID   uuid.UUID       `json:"customer_id"`
	IndentNumber int             `json:"indent_number"`
	Amount       decimal.Decimal `json:"amount"`
}

// NewIndentRecordedEvent creates a new IndentRecordedEvent
func NewIndentRecordedEvent(i *Indent) *IndentRecordedEvent {
	return &IndentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeIndentRecorded, AggregateTypeIndent, i.ID, i.TenantID),
		CustomerID:      i.CustomerID,
		IndentNumber:    i.IndentNumber,
		Amount:          i.Amount,
	}
}
