package partner

import (
	"context"
	"testing"

	"github.com/fuelstation/backend/internal/domain/partner"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func (f *partnerFixture) bookletService() *BookletService {
	return NewBookletService(f.bookletRepo, f.customerRepo, zap.NewNop())
}

func TestBookletService_IssueBooklet(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("issues a booklet to a customer", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(nil, shared.ErrNotFound)
		f.bookletRepo.On("Save", ctx, mock.AnythingOfType("*partner.IndentBooklet")).Return(nil)

		resp, err := f.bookletService().IssueBooklet(ctx, tenantID, IssueBookletRequest{
			CustomerID:  customer.ID,
			StartNumber: 101,
			EndNumber:   150,
		})

		require.NoError(t, err)
		assert.Equal(t, 101, resp.NextNumber)
		assert.Equal(t, 50, resp.Remaining)
		assert.Equal(t, string(partner.BookletStatusActive), resp.Status)
	})

	t.Run("rejects a second active booklet", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")
		existing := newTestBooklet(t, tenantID, customer.ID, 1, 50)

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(existing, nil)

		_, err := f.bookletService().IssueBooklet(ctx, tenantID, IssueBookletRequest{
			CustomerID:  customer.ID,
			StartNumber: 51,
			EndNumber:   100,
		})

		assertDomainCode(t, err, "BOOKLET_ACTIVE")
	})

	t.Run("rejects an inverted number range", func(t *testing.T) {
		f := newPartnerFixture()
		customer := newTestCustomer(t, tenantID, "50000")

		f.customerRepo.On("FindByIDForTenant", ctx, tenantID, customer.ID).Return(customer, nil)
		f.bookletRepo.On("FindActiveByCustomer", ctx, tenantID, customer.ID).Return(nil, shared.ErrNotFound)

		_, err := f.bookletService().IssueBooklet(ctx, tenantID, IssueBookletRequest{
			CustomerID:  customer.ID,
			StartNumber: 100,
			EndNumber:   51,
		})

		assertDomainCode(t, err, "INVALID_INDENT_RANGE")
	})
}

func TestBookletService_CancelBooklet(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	f := newPartnerFixture()
	customer := newTestCustomer(t, tenantID, "50000")
	booklet := newTestBooklet(t, tenantID, customer.ID, 101, 150)
	_, err := booklet.ConsumeNumber()
	require.NoError(t, err)

	f.bookletRepo.On("FindByIDForTenant", ctx, tenantID, booklet.ID).Return(booklet, nil)
	f.bookletRepo.On("Save", ctx, booklet).Return(nil)

	resp, err := f.bookletService().CancelBooklet(ctx, tenantID, booklet.ID)

	require.NoError(t, err)
	assert.Equal(t, string(partner.BookletStatusCancelled), resp.Status)
	assert.Equal(t, 0, resp.Remaining)

	// Cancelling twice is an error.
	_, err = f.bookletService().CancelBooklet(ctx, tenantID, booklet.ID)
	assertDomainCode(t, err, "ALREADY_CANCELLED")
}
