package partner

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes draws from settlements
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// TransactionSource names what caused a ledger entry
type TransactionSource string

const (
	TransactionSourceIndent     TransactionSource = "indent"
	TransactionSourcePayment    TransactionSource = "payment"
	TransactionSourceAdjustment TransactionSource = "adjustment"
)

// CreditTransaction is one entry in a customer's credit ledger.
// BalanceAfter snapshots the running balance so statements can be
// rendered without replaying the whole ledger.
type CreditTransaction struct {
	shared.TenantAggregateRoot
	CustomerID   uuid.UUID
	Type         TransactionType
	Source       TransactionSource
	Amount       decimal.Decimal
	BalanceAfter decimal.Decimal
	ReferenceID  *uuid.UUID
	RecordedBy   uuid.UUID
	RecordedAt   time.Time
	Notes        string
}

// NewCreditTransaction records a ledger entry for a customer
func NewCreditTransaction(tenantID, customerID, recordedBy uuid.UUID, txType TransactionType, source TransactionSource, amount, balanceAfter decimal.Decimal) (*CreditTransaction, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer ID cannot be empty")
	}
	if recordedBy == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STAFF_ID", "Recording staff ID cannot be empty")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_TYPE", "Unknown transaction type")
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_TRANSACTION_SOURCE", "Unknown transaction source")
	}
	if amount.Sign() <= 0 {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Transaction amount must be positive")
	}

	return &CreditTransaction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CustomerID:          customerID,
		Type:                txType,
		Source:              source,
		Amount:              amount,
		BalanceAfter:        balanceAfter,
		RecordedBy:          recordedBy,
		RecordedAt:          time.Now(),
	}, nil
}

// SetReference links the ledger entry to the indent or payment
// record that caused it
func (t *CreditTransaction) SetReference(id uuid.UUID) {
	t.ReferenceID = &id
	t.UpdatedAt = time.Now()
}

// IsValid checks if the transaction type is known
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDebit || t == TransactionTypeCredit
}

// IsValid checks if the transaction source is known
func (s TransactionSource) IsValid() bool {
	switch s {
	case TransactionSourceIndent, TransactionSourcePayment, TransactionSourceAdjustment:
		return true
	}
	return false
}
