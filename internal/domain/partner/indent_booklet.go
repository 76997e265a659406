package partner

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// BookletStatus represents the lifecycle of an indent booklet
type BookletStatus string

const (
	BookletStatusActive    BookletStatus = "active"
	BookletStatusExhausted BookletStatus = "exhausted"
	BookletStatusCancelled BookletStatus = "cancelled"
)

// IndentBooklet is a numbered book of indent slips issued to a
// credit customer. Slip numbers are consumed in order; the booklet
// is exhausted once the last number is used.
type IndentBooklet struct {
	shared.TenantAggregateRoot
	CustomerID  uuid.UUID
	StartNumber int
	EndNumber   int
	NextNumber  int
	Status      BookletStatus
}

// NewIndentBooklet issues a booklet to a customer
func NewIndentBooklet(tenantID, customerID uuid.UUID, startNumber, endNumber int) (*IndentBooklet, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_ID", "Customer ID cannot be empty")
	}
	if startNumber <= 0 {
		return nil, shared.NewDomainError("INVALID_INDENT_RANGE", "Start number must be positive")
	}
	if endNumber < startNumber {
		return nil, shared.NewDomainError("INVALID_INDENT_RANGE", "End number cannot be lower than start number")
	}

	return &IndentBooklet{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		CustomerID:          customerID,
		StartNumber:         startNumber,
		EndNumber:           endNumber,
		NextNumber:          startNumber,
		Status:              BookletStatusActive,
	}, nil
}

// ConsumeNumber takes the next slip number from the booklet and
// marks the booklet exhausted when the range runs out
func (b *IndentBooklet) ConsumeNumber() (int, error) {
	if b.Status != BookletStatusActive {
		return 0, shared.NewDomainError("BOOKLET_NOT_ACTIVE", "Indent booklet is not active")
	}

	number := b.NextNumber
	b.NextNumber++
	if b.NextNumber > b.EndNumber {
		b.Status = BookletStatusExhausted
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return number, nil
}

// MarkUsed records that a slip number was used out of order. The
// counter is moved past the number so it is never issued again.
func (b *IndentBooklet) MarkUsed(number int) error {
	if b.Status != BookletStatusActive {
		return shared.NewDomainError("BOOKLET_NOT_ACTIVE", "Indent booklet is not active")
	}
	if !b.Contains(number) {
		return shared.NewDomainError("NUMBER_OUT_OF_RANGE", "Indent number does not belong to this booklet")
	}

	if number >= b.NextNumber {
		b.NextNumber = number + 1
		if b.NextNumber > b.EndNumber {
			b.Status = BookletStatusExhausted
		}
	}
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Remaining returns how many unused slips are left
func (b *IndentBooklet) Remaining() int {
	if b.Status != BookletStatusActive {
		return 0
	}
	return b.EndNumber - b.NextNumber + 1
}

// Cancel voids the booklet and its unused slips
func (b *IndentBooklet) Cancel() error {
	if b.Status == BookletStatusCancelled {
		return shared.NewDomainError("ALREADY_CANCELLED", "Indent booklet is already cancelled")
	}

	b.Status = BookletStatusCancelled
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	return nil
}

// Contains reports whether a slip number belongs to this booklet
func (b *IndentBooklet) Contains(number int) bool {
	return number >= b.StartNumber && number <= b.EndNumber
}
