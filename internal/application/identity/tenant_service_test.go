package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockObjectStorage is a mock implementation of ObjectStorageService
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, contentType, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, storageKey, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	args := m.Called(ctx, storageKey)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	args := m.Called(ctx, storageKey)
	return args.Bool(0), args.Error(1)
}

func newTenantService(tenantRepo *MockTenantRepository, userRepo *MockUserRepository, storage ObjectStorageService) *TenantService {
	return NewTenantService(tenantRepo, userRepo, storage, zap.NewNop())
}

func TestTenantService_CreateTenant(t *testing.T) {
	ctx := context.Background()

	t.Run("creates station with owner account", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		userRepo := new(MockUserRepository)

		tenantRepo.On("ExistsByCode", ctx, "HP-MAIN").Return(false, nil)
		tenantRepo.On("Save", ctx, mock.AnythingOfType("*identity.Tenant")).Return(nil)
		userRepo.On("Save", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Role == identity.UserRoleOwner && u.Username == "owner"
		})).Return(nil)

		service := newTenantService(tenantRepo, userRepo, nil)

		resp, err := service.CreateTenant(ctx, CreateTenantRequest{
			Code:          "hp-main",
			Name:          "Highway Fuel Point",
			Address:       "NH-44, Salem",
			GSTNumber:     "33aaaaa0000a1z5",
			OwnerUsername: "owner",
			OwnerPassword: "Password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "HP-MAIN", resp.Code)
		assert.Equal(t, "33AAAAA0000A1Z5", resp.GSTNumber)
		assert.Equal(t, string(identity.TenantStatusActive), resp.Status)
		tenantRepo.AssertExpectations(t)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("ExistsByCode", ctx, "HP-MAIN").Return(true, nil)

		service := newTenantService(tenantRepo, new(MockUserRepository), nil)

		_, err := service.CreateTenant(ctx, CreateTenantRequest{
			Code:          "HP-MAIN",
			Name:          "Highway Fuel Point",
			OwnerUsername: "owner",
			OwnerPassword: "Password123",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})

	t.Run("rolls back station when owner creation fails", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		userRepo := new(MockUserRepository)

		tenantRepo.On("ExistsByCode", ctx, "HP-MAIN").Return(false, nil)
		tenantRepo.On("Save", ctx, mock.AnythingOfType("*identity.Tenant")).Return(nil)
		tenantRepo.On("Delete", ctx, mock.AnythingOfType("uuid.UUID")).Return(nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(errors.New("db down"))

		service := newTenantService(tenantRepo, userRepo, nil)

		_, err := service.CreateTenant(ctx, CreateTenantRequest{
			Code:          "HP-MAIN",
			Name:          "Highway Fuel Point",
			OwnerUsername: "owner",
			OwnerPassword: "Password123",
		})

		require.Error(t, err)
		tenantRepo.AssertExpectations(t)
	})
}

func TestTenantService_UpdateTenantConfig(t *testing.T) {
	ctx := context.Background()

	tenant := createTestTenant()

	tenantRepo := new(MockTenantRepository)
	tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
	tenantRepo.On("Save", ctx, tenant).Return(nil)

	service := newTenantService(tenantRepo, new(MockUserRepository), nil)

	lowStock := 15
	prefix := "HFP"
	resp, err := service.UpdateTenantConfig(ctx, tenant.ID, UpdateTenantConfigRequest{
		LowStockPercent: &lowStock,
		InvoicePrefix:   &prefix,
	})

	require.NoError(t, err)
	assert.Equal(t, 15, resp.Config.LowStockPercent)
	assert.Equal(t, "HFP", resp.Config.InvoicePrefix)
	// Untouched settings keep their defaults
	assert.Equal(t, "INR", resp.Config.Currency)
}

func TestTenantService_LogoUpload(t *testing.T) {
	ctx := context.Background()

	tenant := createTestTenant()

	t.Run("prepares presigned upload", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

		storage := new(MockObjectStorage)
		expiresAt := time.Now().Add(15 * time.Minute)
		storage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "image/png", 15*time.Minute).
			Return("https://storage.example.com/upload/logo.png", expiresAt, nil)

		service := newTenantService(tenantRepo, new(MockUserRepository), storage)

		result, err := service.PrepareLogoUpload(ctx, tenant.ID, "image/png")
		require.NoError(t, err)
		assert.NotEmpty(t, result.UploadURL)
		assert.Contains(t, result.StorageKey, "logos/"+tenant.ID.String())
		storage.AssertExpectations(t)
	})

	t.Run("rejects unsupported content type", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

		service := newTenantService(tenantRepo, new(MockUserRepository), new(MockObjectStorage))

		_, err := service.PrepareLogoUpload(ctx, tenant.ID, "application/zip")
		require.Error(t, err)
	})

	t.Run("confirm rejects missing object", func(t *testing.T) {
		tenantRepo := new(MockTenantRepository)
		tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)

		storage := new(MockObjectStorage)
		storage.On("ObjectExists", ctx, "logos/missing.png").Return(false, nil)

		service := newTenantService(tenantRepo, new(MockUserRepository), storage)

		_, err := service.ConfirmLogoUpload(ctx, tenant.ID, "logos/missing.png", "https://cdn.example.com/logo.png")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "UPLOAD_INCOMPLETE", domainErr.Code)
	})
}

func TestTenantService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	tenant := createTestTenant()

	tenantRepo := new(MockTenantRepository)
	tenantRepo.On("FindByID", ctx, tenant.ID).Return(tenant, nil)
	tenantRepo.On("Save", ctx, tenant).Return(nil)

	service := newTenantService(tenantRepo, new(MockUserRepository), nil)

	require.NoError(t, service.SuspendTenant(ctx, tenant.ID))
	assert.Equal(t, identity.TenantStatusSuspended, tenant.Status)

	require.NoError(t, service.ActivateTenant(ctx, tenant.ID))
	assert.Equal(t, identity.TenantStatusActive, tenant.Status)

	require.NoError(t, service.DeactivateTenant(ctx, tenant.ID))
	assert.Equal(t, identity.TenantStatusInactive, tenant.Status)
}
