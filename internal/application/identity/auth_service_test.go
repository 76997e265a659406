package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/fuelstation/backend/internal/infrastructure/auth"
	"github.com/fuelstation/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockTenantRepository is a mock implementation of identity.TenantRepository
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByCode(ctx context.Context, code string) (*identity.Tenant, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Tenant, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByStatus(ctx context.Context, status identity.TenantStatus, filter shared.Filter) ([]identity.Tenant, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTenantRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*identity.User, error) {
	args := m.Called(ctx, tenantID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByRole(ctx context.Context, tenantID uuid.UUID, role identity.UserRole, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, tenantID, role, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, tenantID uuid.UUID, username string) (bool, error) {
	args := m.Called(ctx, tenantID, username)
	return args.Bool(0), args.Error(1)
}

func createTestTenant() *identity.Tenant {
	tenant, _ := identity.NewTenant("HP-MAIN", "Highway Fuel Point")
	return tenant
}

func createTestStaff(tenantID uuid.UUID, role identity.UserRole) *identity.User {
	user, _ := identity.NewUser(tenantID, "aravind", "Password123", role)
	return user
}

func createAuthService(tenantRepo *MockTenantRepository, userRepo *MockUserRepository) *AuthService {
	jwtCfg := config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	}
	return NewAuthService(
		tenantRepo,
		userRepo,
		auth.NewJWTService(jwtCfg),
		auth.NewInMemoryTokenBlacklist(),
		zap.NewNop(),
	)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleManager)

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)
	userRepo.On("FindByUsername", ctx, tenant.ID, "aravind").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	authService := createAuthService(tenantRepo, userRepo)

	result, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "Password123",
		IP:          "127.0.0.1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, "aravind", result.User.Username)
	assert.Equal(t, tenant.ID, result.User.TenantID)
	assert.Equal(t, "manager", result.User.Role)

	tenantRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownStation(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenantRepo.On("FindByCode", ctx, "NOPE").Return(nil, shared.ErrNotFound)

	authService := createAuthService(tenantRepo, userRepo)

	result, err := authService.Login(ctx, LoginInput{
		StationCode: "NOPE",
		Username:    "aravind",
		Password:    "Password123",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
}

func TestAuthService_Login_SuspendedStation(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	require.NoError(t, tenant.Suspend())

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)

	authService := createAuthService(tenantRepo, userRepo)

	_, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "Password123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "STATION_INACTIVE", domainErr.Code)
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleAttendant)

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)
	userRepo.On("FindByUsername", ctx, tenant.ID, "aravind").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	authService := createAuthService(tenantRepo, userRepo)

	result, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "wrongpassword",
	})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CREDENTIALS", domainErr.Code)
	assert.Equal(t, 1, user.FailedAttempts)
}

func TestAuthService_Login_AccountLocksAfterMaxAttempts(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleAttendant)

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)
	userRepo.On("FindByUsername", ctx, tenant.ID, "aravind").Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	authService := createAuthService(tenantRepo, userRepo)

	input := LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "wrongpassword",
	}

	var lastErr error
	for i := 0; i < 5; i++ {
		_, lastErr = authService.Login(ctx, input)
		require.Error(t, lastErr)
	}

	var domainErr *shared.DomainError
	require.True(t, errors.As(lastErr, &domainErr))
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
	assert.Equal(t, identity.UserStatusLocked, user.Status)

	// The next attempt is rejected before the password is even checked
	_, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "Password123",
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_LOCKED", domainErr.Code)
}

func TestAuthService_Login_DeactivatedAccount(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleAttendant)
	require.NoError(t, user.Deactivate())

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)
	userRepo.On("FindByUsername", ctx, tenant.ID, "aravind").Return(user, nil)

	authService := createAuthService(tenantRepo, userRepo)

	_, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "Password123",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "ACCOUNT_DEACTIVATED", domainErr.Code)
}

func TestAuthService_RefreshToken_Success(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleManager)

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)
	userRepo.On("FindByUsername", ctx, tenant.ID, "aravind").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	authService := createAuthService(tenantRepo, userRepo)

	login, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "Password123",
	})
	require.NoError(t, err)

	// Promote the user so the refreshed token carries the new role
	require.NoError(t, user.SetRole(identity.UserRoleOwner))

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-32-characters-long",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "test-issuer",
		MaxRefreshCount:        10,
	})
	claims, err := jwtService.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "owner", claims.Role)
}

func TestAuthService_RefreshToken_InvalidToken(t *testing.T) {
	ctx := context.Background()
	authService := createAuthService(new(MockTenantRepository), new(MockUserRepository))

	result, err := authService.RefreshToken(ctx, RefreshTokenInput{RefreshToken: "not-a-token"})

	require.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_RefreshToken_RevokedAfterLogout(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleAttendant)

	tenantRepo.On("FindByCode", ctx, "HP-MAIN").Return(tenant, nil)
	userRepo.On("FindByUsername", ctx, tenant.ID, "aravind").Return(user, nil)
	userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	authService := createAuthService(tenantRepo, userRepo)

	login, err := authService.Login(ctx, LoginInput{
		StationCode: "HP-MAIN",
		Username:    "aravind",
		Password:    "Password123",
	})
	require.NoError(t, err)

	require.NoError(t, authService.Logout(ctx, LogoutInput{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	}))

	_, err = authService.RefreshToken(ctx, RefreshTokenInput{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleManager)

	userRepo.On("FindByIDForTenant", ctx, tenant.ID, user.ID).Return(user, nil)
	userRepo.On("Save", ctx, user).Return(nil)

	authService := createAuthService(tenantRepo, userRepo)

	t.Run("wrong old password", func(t *testing.T) {
		err := authService.ChangePassword(ctx, tenant.ID, user.ID, ChangePasswordRequest{
			OldPassword: "wrongpassword",
			NewPassword: "NewPassword456",
		})
		require.Error(t, err)
	})

	t.Run("success", func(t *testing.T) {
		err := authService.ChangePassword(ctx, tenant.ID, user.ID, ChangePasswordRequest{
			OldPassword: "Password123",
			NewPassword: "NewPassword456",
		})
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewPassword456"))
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	tenantRepo := new(MockTenantRepository)
	userRepo := new(MockUserRepository)

	tenant := createTestTenant()
	user := createTestStaff(tenant.ID, identity.UserRoleAttendant)

	userRepo.On("FindByIDForTenant", ctx, tenant.ID, user.ID).Return(user, nil)

	authService := createAuthService(tenantRepo, userRepo)

	info, err := authService.GetCurrentUser(ctx, tenant.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "aravind", info.Username)
	assert.Equal(t, "attendant", info.Role)
	// Display name falls back to the username when unset
	assert.Equal(t, "aravind", info.DisplayName)
}
