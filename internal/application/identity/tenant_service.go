package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/fuelstation/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorageService defines the object storage operations used for
// station logos
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// LogoUploadResult carries the presigned upload URL for a station logo
type LogoUploadResult struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// TenantService handles station account management
type TenantService struct {
	tenantRepo identity.TenantRepository
	userRepo   identity.UserRepository
	storage    ObjectStorageService
	logger     *zap.Logger
}

// NewTenantService creates a new station management service
func NewTenantService(
	tenantRepo identity.TenantRepository,
	userRepo identity.UserRepository,
	storage ObjectStorageService,
	logger *zap.Logger,
) *TenantService {
	return &TenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		storage:    storage,
		logger:     logger,
	}
}

// CreateTenant registers a new station together with its owner account
func (s *TenantService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*TenantResponse, error) {
	exists, err := s.tenantRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A station with this code already exists")
	}

	tenant, err := identity.NewTenant(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	if req.ContactName != "" || req.ContactPhone != "" || req.ContactEmail != "" {
		if err := tenant.SetContact(req.ContactName, req.ContactPhone, req.ContactEmail); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.GSTNumber != "" {
		if err := tenant.Update(tenant.Name, req.Address, req.GSTNumber); err != nil {
			return nil, err
		}
	}

	owner, err := identity.NewUser(tenant.ID, req.OwnerUsername, req.OwnerPassword, identity.UserRoleOwner)
	if err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, owner); err != nil {
		// Roll the station back so the code is not left claimed without
		// a working owner account
		if derr := s.tenantRepo.Delete(ctx, tenant.ID); derr != nil {
			s.logger.Error("Failed to roll back station after owner creation failure",
				zap.String("tenant_id", tenant.ID.String()),
				zap.Error(derr))
		}
		return nil, err
	}

	s.logger.Info("Station registered",
		zap.String("tenant_id", tenant.ID.String()),
		zap.String("code", tenant.Code))

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// GetTenant retrieves a station by ID
func (s *TenantService) GetTenant(ctx context.Context, id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// ListTenants lists stations matching the filter
func (s *TenantService) ListTenants(ctx context.Context, filter shared.Filter) ([]TenantResponse, int64, error) {
	tenants, err := s.tenantRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tenantRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	responses := make([]TenantResponse, len(tenants))
	for i := range tenants {
		responses[i] = ToTenantResponse(&tenants[i])
	}
	return responses, total, nil
}

// UpdateTenant updates station details
func (s *TenantService) UpdateTenant(ctx context.Context, id uuid.UUID, req UpdateTenantRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := tenant.Name
	if req.Name != nil {
		name = *req.Name
	}
	address := tenant.Address
	if req.Address != nil {
		address = *req.Address
	}
	gstNumber := tenant.GSTNumber
	if req.GSTNumber != nil {
		gstNumber = *req.GSTNumber
	}
	if err := tenant.Update(name, address, gstNumber); err != nil {
		return nil, err
	}

	if req.ContactName != nil || req.ContactPhone != nil || req.ContactEmail != nil {
		contactName := tenant.ContactName
		if req.ContactName != nil {
			contactName = *req.ContactName
		}
		contactPhone := tenant.ContactPhone
		if req.ContactPhone != nil {
			contactPhone = *req.ContactPhone
		}
		contactEmail := tenant.ContactEmail
		if req.ContactEmail != nil {
			contactEmail = *req.ContactEmail
		}
		if err := tenant.SetContact(contactName, contactPhone, contactEmail); err != nil {
			return nil, err
		}
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// UpdateTenantConfig updates station settings such as currency and
// low stock thresholds
func (s *TenantService) UpdateTenantConfig(ctx context.Context, id uuid.UUID, req UpdateTenantConfigRequest) (*TenantResponse, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	cfg := tenant.Config
	if req.Currency != nil {
		cfg.Currency = *req.Currency
	}
	if req.Timezone != nil {
		cfg.Timezone = *req.Timezone
	}
	if req.LowStockPercent != nil {
		cfg.LowStockPercent = *req.LowStockPercent
	}
	if req.InvoicePrefix != nil {
		cfg.InvoicePrefix = *req.InvoicePrefix
	}
	if req.ReceiptFooterNote != nil {
		cfg.ReceiptFooterNote = *req.ReceiptFooterNote
	}
	if err := tenant.UpdateConfig(cfg); err != nil {
		return nil, err
	}

	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}
	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// PrepareLogoUpload issues a presigned URL the client uploads the station
// logo to, and records the resulting public URL on the station
func (s *TenantService) PrepareLogoUpload(ctx context.Context, id uuid.UUID, contentType string) (*LogoUploadResult, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Object storage is not configured")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := extensionForContentType(contentType)
	if ext == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unsupported logo content type")
	}

	storageKey := fmt.Sprintf("logos/%s/%s%s", tenant.ID, uuid.New(), ext)
	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, storageKey, contentType, 15*time.Minute)
	if err != nil {
		s.logger.Error("Failed to generate logo upload URL", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to prepare logo upload")
	}

	return &LogoUploadResult{
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmLogoUpload records an uploaded logo on the station after the
// client finished the presigned upload
func (s *TenantService) ConfirmLogoUpload(ctx context.Context, id uuid.UUID, storageKey, publicURL string) (*TenantResponse, error) {
	if s.storage == nil {
		return nil, shared.NewDomainError("STORAGE_DISABLED", "Object storage is not configured")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	exists, err := s.storage.ObjectExists(ctx, storageKey)
	if err != nil {
		s.logger.Error("Failed to verify uploaded logo", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to verify uploaded logo")
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_INCOMPLETE", "Logo upload has not completed")
	}

	if err := tenant.SetLogoURL(publicURL); err != nil {
		return nil, err
	}
	if err := s.tenantRepo.Save(ctx, tenant); err != nil {
		return nil, err
	}

	resp := ToTenantResponse(tenant)
	return &resp, nil
}

// ActivateTenant re-enables a suspended or deactivated station
func (s *TenantService) ActivateTenant(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := tenant.Activate(); err != nil {
		return err
	}
	return s.tenantRepo.Save(ctx, tenant)
}

// SuspendTenant suspends a station, rejecting all logins
func (s *TenantService) SuspendTenant(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := tenant.Suspend(); err != nil {
		return err
	}
	return s.tenantRepo.Save(ctx, tenant)
}

// DeactivateTenant permanently disables a station
func (s *TenantService) DeactivateTenant(ctx context.Context, id uuid.UUID) error {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := tenant.Deactivate(); err != nil {
		return err
	}
	return s.tenantRepo.Save(ctx, tenant)
}

func extensionForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ""
	}
}
