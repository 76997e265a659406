package identity

import (
	"time"

	"github.com/fuelstation/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// =============================================================================
// Auth DTOs
// =============================================================================

// LoginInput represents a login request
type LoginInput struct {
	StationCode string `json:"station_code" binding:"required,min=2,max=50"`
	Username    string `json:"username" binding:"required,min=3,max=100"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	IP          string `json:"-"`
}

// UserInfo represents the authenticated staff member in auth responses
type UserInfo struct {
	ID          uuid.UUID `json:"id"`
	TenantID    uuid.UUID `json:"tenant_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"`
}

// LoginResult represents a successful login
type LoginResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
	User                  UserInfo  `json:"user"`
}

// RefreshTokenInput represents a token refresh request
type RefreshTokenInput struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResult represents a successful token refresh
type RefreshTokenResult struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// LogoutInput represents a logout request
type LogoutInput struct {
	AccessToken  string
	RefreshToken string
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// =============================================================================
// Staff DTOs
// =============================================================================

// CreateUserRequest represents a request to register a staff member
type CreateUserRequest struct {
	Username    string     `json:"username" binding:"required,min=3,max=100"`
	Password    string     `json:"password" binding:"required,min=8,max=128"`
	Role        string     `json:"role" binding:"required,oneof=owner manager attendant"`
	DisplayName string     `json:"display_name" binding:"max=200"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	Phone       string     `json:"phone" binding:"max=50"`
	Notes       string     `json:"notes"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateUserRequest represents a request to update a staff member
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name" binding:"omitempty,max=200"`
	Email       *string `json:"email" binding:"omitempty,email,max=200"`
	Phone       *string `json:"phone" binding:"omitempty,max=50"`
	Role        *string `json:"role" binding:"omitempty,oneof=owner manager attendant"`
	Notes       *string `json:"notes"`
}

// ResetPasswordRequest represents an admin password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required,min=8,max=128"`
}

// UserResponse represents a staff member in API responses
type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	TenantID    uuid.UUID  `json:"tenant_id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// UserListFilter represents filter options for the staff list
type UserListFilter struct {
	Search   string `form:"search"`
	Role     string `form:"role" binding:"omitempty,oneof=owner manager attendant"`
	Status   string `form:"status" binding:"omitempty,oneof=active locked deactivated"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToUserResponse converts a domain User to a response DTO
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		TenantID:    u.TenantID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Phone:       u.Phone,
		Role:        string(u.Role),
		Status:      string(u.Status),
		LastLoginAt: u.LastLoginAt,
		Notes:       u.Notes,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// =============================================================================
// Station DTOs
// =============================================================================

// CreateTenantRequest represents a request to register a station
type CreateTenantRequest struct {
	Code          string `json:"code" binding:"required,min=2,max=50"`
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactName   string `json:"contact_name" binding:"max=100"`
	ContactPhone  string `json:"contact_phone" binding:"max=50"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
	GSTNumber     string `json:"gst_number" binding:"max=30"`
	OwnerUsername string `json:"owner_username" binding:"required,min=3,max=100"`
	OwnerPassword string `json:"owner_password" binding:"required,min=8,max=128"`
}

// UpdateTenantRequest represents a request to update station details
type UpdateTenantRequest struct {
	Name         *string `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName  *string `json:"contact_name" binding:"omitempty,max=100"`
	ContactPhone *string `json:"contact_phone" binding:"omitempty,max=50"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email,max=200"`
	Address      *string `json:"address" binding:"omitempty,max=500"`
	GSTNumber    *string `json:"gst_number" binding:"omitempty,max=30"`
}

// UpdateTenantConfigRequest represents a request to update station settings
type UpdateTenantConfigRequest struct {
	Currency          *string `json:"currency" binding:"omitempty,len=3"`
	Timezone          *string `json:"timezone" binding:"omitempty,max=50"`
	LowStockPercent   *int    `json:"low_stock_percent" binding:"omitempty,min=1,max=100"`
	InvoicePrefix     *string `json:"invoice_prefix" binding:"omitempty,max=10"`
	ReceiptFooterNote *string `json:"receipt_footer_note" binding:"omitempty,max=500"`
}

// TenantResponse represents a station in API responses
type TenantResponse struct {
	ID           uuid.UUID             `json:"id"`
	Code         string                `json:"code"`
	Name         string                `json:"name"`
	Status       string                `json:"status"`
	ContactName  string                `json:"contact_name"`
	ContactPhone string                `json:"contact_phone"`
	ContactEmail string                `json:"contact_email"`
	Address      string                `json:"address"`
	GSTNumber    string                `json:"gst_number"`
	LogoURL      string                `json:"logo_url"`
	Config       identity.TenantConfig `json:"config"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// ToTenantResponse converts a domain Tenant to a response DTO
func ToTenantResponse(t *identity.Tenant) TenantResponse {
	return TenantResponse{
		ID:           t.ID,
		Code:         t.Code,
		Name:         t.Name,
		Status:       string(t.Status),
		ContactName:  t.ContactName,
		ContactPhone: t.ContactPhone,
		ContactEmail: t.ContactEmail,
		Address:      t.Address,
		GSTNumber:    t.GSTNumber,
		LogoURL:      t.LogoURL,
		Config:       t.Config,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}
